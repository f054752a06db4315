package sink

import (
	"bufio"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// GIF collects every stride-th frame into an animated, looping preview.
// Frames are quantised to the given palette. Add is safe for concurrent use.
type GIF struct {
	palette color.Palette
	stride  int
	delay   int // hundredths of a second per kept frame

	mu     sync.Mutex
	frames map[int]*image.Paletted
}

// NewGIF keeps frames whose index is a multiple of stride. Index 0 of
// palette is treated as transparent background.
func NewGIF(palette color.Palette, stride, delay int) *GIF {
	if stride < 1 {
		stride = 1
	}
	return &GIF{
		palette: palette,
		stride:  stride,
		delay:   delay,
		frames:  make(map[int]*image.Paletted),
	}
}

// Add records frame i if it falls on the stride.
func (g *GIF) Add(i int, img image.Image) {
	if i%g.stride != 0 {
		return
	}
	p := image.NewPaletted(img.Bounds(), g.palette)
	draw.Draw(p, p.Bounds(), img, img.Bounds().Min, draw.Src)

	g.mu.Lock()
	g.frames[i] = p
	g.mu.Unlock()
}

// Len is the number of frames kept so far.
func (g *GIF) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.frames)
}

// Save writes the kept frames, in index order, to path.
func (g *GIF) Save(path string) error {
	g.mu.Lock()
	anim := &gif.GIF{LoopCount: 0}
	for i := 0; len(anim.Image) < len(g.frames); i += g.stride {
		p, ok := g.frames[i]
		if !ok {
			g.mu.Unlock()
			return errors.Errorf("gif preview is missing frame %d", i)
		}
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, g.delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	g.mu.Unlock()

	if len(anim.Image) == 0 {
		return errors.New("gif preview has no frames")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create file")
	}
	bw := bufio.NewWriter(f)
	if err := gif.EncodeAll(bw, anim); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode gif %s", path)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
