package pixelskyline

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// A window is lit when a draw from [0,10) exceeds windowThreshold (30%).
const windowThreshold = 6

// Render paints buildings, in order, onto a skyline raster that tiles
// horizontally, and scales it up by cfg.PixelSize. Window placement draws
// from r.
func Render(r Rand, buildings []Building, cfg Config) *image.RGBA {
	logical := renderLogical(r, buildings, cfg)

	b := logical.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*cfg.PixelSize, b.Dy()*cfg.PixelSize))
	draw.NearestNeighbor.Scale(out, out.Bounds(), logical, b, draw.Src, nil)

	Logger().Debug("skyline rendered",
		slog.Int("buildings", len(buildings)),
		slog.Int("width", out.Bounds().Dx()),
		slog.Int("height", out.Bounds().Dy()))

	return out
}

// renderLogical paints at one pixel per logical pixel.
func renderLogical(r Rand, buildings []Building, cfg Config) *image.RGBA {
	w, h := cfg.SkylineWidth, cfg.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for _, b := range buildings {
		windows := placeWindows(r, b, h)
		left, right := b.extent(cfg.PenthouseRows)

		// Every copy whose silhouette reaches into [0, w) is painted, so
		// anything hanging off one edge shows up on the other.
		span := right - left
		for k := -(span/w + 1); k <= span/w+1; k++ {
			x := b.X + k*w
			if x+right <= 0 || x+left >= w {
				continue
			}
			paintBuilding(img, b, x, windows, cfg)
		}
	}
	return img
}

type window struct {
	dx, y int
	dark  bool
}

// placeWindows decides the lit windows of b once, so every painted copy of
// the building shows the same pattern.
func placeWindows(r Rand, b Building, height int) []window {
	var ws []window
	for floor := 1; floor < b.Height; floor++ {
		y := height - floor*2
		for dx := 2; dx < b.Width()-2; dx++ {
			if r.IntN(10) > windowThreshold {
				ws = append(ws, window{dx: dx, y: y, dark: dx < b.DarkWidth})
			}
		}
	}
	return ws
}

func paintBuilding(img *image.RGBA, b Building, x int, windows []window, cfg Config) {
	h := cfg.Height()
	bodyHeight := b.Height * 2
	top := h - bodyHeight
	pal := cfg.Palette

	fillRect(img, x, top, b.DarkWidth, bodyHeight, pal.facade(true))
	fillRect(img, x+b.DarkWidth, top, b.LightWidth, bodyHeight, pal.facade(false))

	for row := range cfg.PenthouseRows {
		delta := penthouseDelta(b, row, cfg.PenthouseRows)
		width := b.Width() + delta*2
		if width <= 0 {
			continue
		}
		dark := b.DarkWidth * width / b.Width()
		y := top - row - 1
		fillRect(img, x-delta, y, dark, 1, pal.facade(true))
		fillRect(img, x-delta+dark, y, width-dark, 1, pal.facade(false))
	}

	for _, w := range windows {
		fillRect(img, x+w.dx, w.y, 1, 1, pal.window(w.dark))
	}
}

// penthouseDelta is how far cap row extends past each side of the body.
// It interpolates from PenthouseStartWidthDelta at the bottom row towards
// PenthouseEndWidthDelta, rounding half away from zero.
func penthouseDelta(b Building, row, rows int) int {
	sum := b.PenthouseStartWidthDelta*(rows-1-row) + b.PenthouseEndWidthDelta*row
	return int(math.Round(float64(sum) / float64(rows)))
}

// extent is the horizontal span of the silhouette relative to X, covering
// the body and every cap row.
func (b Building) extent(rows int) (left, right int) {
	left, right = 0, b.Width()
	for row := range rows {
		d := penthouseDelta(b, row, rows)
		if b.Width()+d*2 <= 0 {
			continue
		}
		left = min(left, -d)
		right = max(right, b.Width()+d)
	}
	return left, right
}

func fillRect(img *image.RGBA, x, y, w, h int, c image.Image) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.Draw(img, image.Rect(x, y, x+w, y+h), c, image.Point{}, draw.Src)
}
