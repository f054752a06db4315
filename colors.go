package pixelskyline

import (
	"image"
	"image/color"
)

// Palette is the flat colour set a skyline is painted with.
type Palette struct {
	Dark        color.NRGBA `json:"dark"`
	DarkWindow  color.NRGBA `json:"darkWindow"`
	Light       color.NRGBA `json:"light"`
	LightWindow color.NRGBA `json:"lightWindow"`
}

var DefaultPalette = Palette{
	Dark:        color.NRGBA{6, 0, 54, 255},
	DarkWindow:  color.NRGBA{77, 133, 173, 255},
	Light:       color.NRGBA{33, 36, 91, 255},
	LightWindow: color.NRGBA{255, 251, 203, 255},
}

// Colors returns the palette with transparent at index 0, which is the
// background of every raster.
func (p Palette) Colors() color.Palette {
	return color.Palette{
		color.NRGBA{},
		p.Dark,
		p.DarkWindow,
		p.Light,
		p.LightWindow,
	}
}

func (p Palette) facade(dark bool) *image.Uniform {
	if dark {
		return image.NewUniform(p.Dark)
	}
	return image.NewUniform(p.Light)
}

func (p Palette) window(dark bool) *image.Uniform {
	if dark {
		return image.NewUniform(p.DarkWindow)
	}
	return image.NewUniform(p.LightWindow)
}
