package pixelskyline

import (
	"errors"
	"image"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := smallConfig()

	a, err := Generate(21, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(21, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if string(a.Image.Pix) != string(b.Image.Pix) {
		t.Error("same seed produced different skylines")
	}

	c, err := Generate(22, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if string(a.Image.Pix) == string(c.Image.Pix) {
		t.Error("different seeds produced identical skylines")
	}
}

func TestGenerateSize(t *testing.T) {
	cfg := DefaultConfig()
	sky, err := Generate(1, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := image.Rect(0, 0, 3840, (28*2+3)*4)
	if got := sky.Image.Bounds(); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
	if sky.Seed != 1 || len(sky.Plan.Buildings) == 0 {
		t.Errorf("unexpected skyline metadata: seed=%d buildings=%d", sky.Seed, len(sky.Plan.Buildings))
	}

	// Every column has a building, so the bottom row is fully opaque.
	y := sky.Image.Bounds().Dy() - 1
	for x := range sky.Image.Bounds().Dx() {
		if sky.Image.RGBAAt(x, y).A != 255 {
			t.Fatalf("bottom row column %d is transparent", x)
		}
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinFloors = cfg.MaxFloors + 1

	if _, err := Generate(1, cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Generate() = %v, want ErrInvalidConfig", err)
	}
}
