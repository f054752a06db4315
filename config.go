package pixelskyline

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every size and bound used to generate and render a skyline.
// Sizes are in logical pixels unless noted.
type Config struct {
	PixelSize     int // output pixels per logical pixel, both axes
	MinFloors     int
	MaxFloors     int // inclusive
	MinWidth      int
	MaxWidth      int // exclusive
	PenthouseRows int
	SkylineWidth  int
	ViewportWidth int // output pixels
	MaxAttempts   int // generator calls allowed to the coverage planner
	Palette       Palette
}

func DefaultConfig() Config {
	const pixelSize = 4
	return Config{
		PixelSize:     pixelSize,
		MinFloors:     4,
		MaxFloors:     28,
		MinWidth:      3,
		MaxWidth:      25,
		PenthouseRows: 3,
		SkylineWidth:  3840 / pixelSize,
		ViewportWidth: 1920,
		MaxAttempts:   1_000_000,
		Palette:       DefaultPalette,
	}
}

func (c Config) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"PixelSize", c.PixelSize},
		{"MinFloors", c.MinFloors},
		{"MinWidth", c.MinWidth},
		{"PenthouseRows", c.PenthouseRows},
		{"SkylineWidth", c.SkylineWidth},
		{"ViewportWidth", c.ViewportWidth},
		{"MaxAttempts", c.MaxAttempts},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "%s must be positive, got %d", p.name, p.v)
		}
	}
	if c.MinFloors >= c.MaxFloors {
		return errors.Wrapf(ErrInvalidConfig, "MinFloors (%d) must be below MaxFloors (%d)", c.MinFloors, c.MaxFloors)
	}
	if c.MinWidth >= c.MaxWidth {
		return errors.Wrapf(ErrInvalidConfig, "MinWidth (%d) must be below MaxWidth (%d)", c.MinWidth, c.MaxWidth)
	}
	return nil
}

// Height is the logical height of the skyline: the tallest building plus its cap.
func (c Config) Height() int {
	return c.MaxFloors*2 + c.PenthouseRows
}

// FrameCount is one frame per logical column, i.e. one full loop.
func (c Config) FrameCount() int {
	return c.SkylineWidth
}

// FrameOffset is the horizontal shift, in output pixels, of frame i.
func (c Config) FrameOffset(i int) int {
	return -i * c.PixelSize
}
