package pixelskyline

import (
	"image"

	"golang.org/x/image/draw"
)

// Frame returns a viewportWidth-wide view of the horizontally repeating
// skyline, shifted right by xOffset output pixels. Offsets that differ by a
// multiple of the skyline width give identical frames.
func Frame(sky *image.RGBA, xOffset, viewportWidth int) *image.RGBA {
	sb := sky.Bounds()
	period := sb.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, viewportWidth, sb.Dy()))
	if period == 0 {
		return dst
	}

	x := xOffset % period
	if x > 0 {
		x -= period
	}
	// x is now in (-period, 0]; tile rightwards until the viewport is full.
	for ; x < viewportWidth; x += period {
		draw.Copy(dst, image.Pt(x, 0), sky, sb, draw.Src, nil)
	}
	return dst
}
