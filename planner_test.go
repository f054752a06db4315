package pixelskyline

import (
	"errors"
	"testing"
)

// constRand always draws the lowest value of every range.
type constRand struct{}

func (constRand) IntN(int) int { return 0 }

func checkCoverage(t *testing.T, p Plan, cfg Config) {
	t.Helper()
	covered := make([]bool, cfg.SkylineWidth)
	for _, b := range p.Buildings {
		b.Columns(cfg.SkylineWidth, func(col int) { covered[col] = true })
	}
	for col, ok := range covered {
		if !ok {
			t.Fatalf("column %d not covered by any of %d buildings", col, len(p.Buildings))
		}
	}
}

func TestPlanSkylineCoversEveryColumn(t *testing.T) {
	cfg := DefaultConfig()
	for seed := range uint64(20) {
		p, err := PlanSkyline(NewRand(seed), cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkCoverage(t, p, cfg)
		if len(p.Buildings) > cfg.SkylineWidth {
			t.Errorf("seed %d: %d buildings for %d columns", seed, len(p.Buildings), cfg.SkylineWidth)
		}
		if p.Attempts < len(p.Buildings) {
			t.Errorf("seed %d: Attempts = %d < %d buildings", seed, p.Attempts, len(p.Buildings))
		}
	}
}

func TestPlanSkylineEachBuildingAddsCoverage(t *testing.T) {
	cfg := DefaultConfig()
	p, err := PlanSkyline(NewRand(7), cfg)
	if err != nil {
		t.Fatal(err)
	}

	covered := make([]bool, cfg.SkylineWidth)
	for i, b := range p.Buildings {
		fresh := false
		b.Columns(cfg.SkylineWidth, func(col int) {
			if !covered[col] {
				fresh = true
			}
			covered[col] = true
		})
		if !fresh {
			t.Fatalf("building %d (%+v) adds no coverage", i, b)
		}
	}
}

func TestPlanSkylineTinyMonochrome(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkylineWidth = 4
	cfg.MinWidth = 1
	cfg.MaxWidth = 2

	for seed := range uint64(200) {
		p, err := PlanSkyline(NewRand(seed), cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkCoverage(t, p, cfg)
		if len(p.Buildings) != 4 {
			t.Fatalf("seed %d: %d buildings, want 4 width-1 buildings", seed, len(p.Buildings))
		}
		for _, b := range p.Buildings {
			if b.Width() != 1 || (b.DarkWidth != 0 && b.LightWidth != 0) {
				t.Fatalf("seed %d: building %+v is not width-1 monochrome", seed, b)
			}
		}
	}
}

func TestPlanSkylineStress(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		minW, maxW int
		seeds      uint64
	}{
		{"single column", 1, 1, 2, 50},
		{"narrower than building", 2, 3, 25, 50},
		{"small", 7, 1, 4, 200},
		{"prime width", 97, 3, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SkylineWidth = tt.width
			cfg.MinWidth = tt.minW
			cfg.MaxWidth = tt.maxW
			cfg.MaxAttempts = 100_000
			for seed := range tt.seeds {
				p, err := PlanSkyline(NewRand(seed), cfg)
				if err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
				checkCoverage(t, p, cfg)
			}
		})
	}
}

func TestPlanSkylineExhausted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 50

	// Every building lands on column 0 with the minimum width.
	_, err := PlanSkyline(constRand{}, cfg)
	if !errors.Is(err, ErrPlanExhausted) {
		t.Fatalf("PlanSkyline() = %v, want ErrPlanExhausted", err)
	}
}

func TestPlanSkylineInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWidth = cfg.MaxWidth

	if _, err := PlanSkyline(NewRand(1), cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("PlanSkyline() = %v, want ErrInvalidConfig", err)
	}
}

func TestPlanSkylineDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, err := PlanSkyline(NewRand(42), cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PlanSkyline(NewRand(42), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Buildings) != len(b.Buildings) {
		t.Fatalf("plans differ in length: %d vs %d", len(a.Buildings), len(b.Buildings))
	}
	for i := range a.Buildings {
		if a.Buildings[i] != b.Buildings[i] {
			t.Fatalf("building %d differs: %+v vs %+v", i, a.Buildings[i], b.Buildings[i])
		}
	}
}
