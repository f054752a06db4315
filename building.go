package pixelskyline

// Building describes one tower of the skyline. Widths are logical pixels,
// Height is a floor count; each floor is two logical rows tall.
type Building struct {
	X      int
	Height int

	DarkWidth  int
	LightWidth int

	// Cap taper, interpolated from the bottom cap row to the top one.
	PenthouseStartWidthDelta int
	PenthouseEndWidthDelta   int
}

func (b Building) Width() int {
	return b.DarkWidth + b.LightWidth
}

// Columns calls fn with every skyline column the building covers,
// wrapping at skylineWidth.
func (b Building) Columns(skylineWidth int, fn func(col int)) {
	for i := range b.Width() {
		fn((b.X + i) % skylineWidth)
	}
}

// GenerateBuilding draws a random building within the bounds of cfg.
// Buildings narrower than 2*MinWidth are a single facade colour; wider ones
// are split so that both segments are at least MinWidth.
func GenerateBuilding(r Rand, cfg Config) Building {
	var b Building

	b.X = r.IntN(cfg.SkylineWidth)
	b.Height = intRange(r, cfg.MinFloors, cfg.MaxFloors+1)

	total := intRange(r, cfg.MinWidth, cfg.MaxWidth)
	if total < 2*cfg.MinWidth {
		if coin(r) {
			b.DarkWidth = total
		} else {
			b.LightWidth = total
		}
	} else {
		b.DarkWidth = intRange(r, cfg.MinWidth, total-cfg.MinWidth+1)
		b.LightWidth = total - b.DarkWidth
	}

	b.PenthouseStartWidthDelta = intRange(r, -1, 2)
	b.PenthouseEndWidthDelta = intRange(r, -3, 4)

	return b
}
