package pixelskyline

import (
	"image"
	"log/slog"
)

// Skyline is a planned and rendered skyline. Image is one horizontal period
// and must not be modified; frames are cut from it.
type Skyline struct {
	Seed  uint64
	Plan  Plan
	Image *image.RGBA
}

// Generate plans and renders the skyline for seed. The same seed and config
// always give the same image.
func Generate(seed uint64, cfg Config) (*Skyline, error) {
	r := NewRand(seed)

	plan, err := PlanSkyline(r, cfg)
	if err != nil {
		return nil, err
	}

	img := Render(r, plan.Buildings, cfg)

	Logger().Info("skyline generated",
		slog.Uint64("seed", seed),
		slog.Int("buildings", len(plan.Buildings)))

	return &Skyline{Seed: seed, Plan: plan, Image: img}, nil
}

// Frame is frame i of the scrolling loop.
func (s *Skyline) Frame(cfg Config, i int) *image.RGBA {
	return Frame(s.Image, cfg.FrameOffset(i), cfg.ViewportWidth)
}
