package scorer

import (
	"math"

	"pixelskyline"
)

// SeedSource supplies candidate seeds. *rand.Rand from math/rand/v2 satisfies it.
type SeedSource interface {
	Uint64() uint64
}

type SeedScore struct {
	Seed  uint64
	Score float64
}

// BestSeeds plans tries random skylines and returns the n best scoring
// seeds, best first. Only the plan is computed, not the raster.
func BestSeeds(src SeedSource, cfg pixelskyline.Config, tries, n int) ([]SeedScore, error) {
	var best []SeedScore

	for range tries {
		seed := src.Uint64()
		plan, err := pixelskyline.PlanSkyline(pixelskyline.NewRand(seed), cfg)
		if err != nil {
			return nil, err
		}
		s := Score(plan.Buildings, cfg)
		best = insertBest(best, SeedScore{Seed: seed, Score: s}, n)
	}

	return best, nil
}

func insertBest(list []SeedScore, ss SeedScore, max int) []SeedScore {
	list = append(list, ss)
	for i := len(list) - 1; i > 0; i-- {
		if list[i].Score > list[i-1].Score {
			list[i], list[i-1] = list[i-1], list[i]
		} else {
			break
		}
	}
	if len(list) > max {
		return list[:max]
	}
	return list
}

// Roofline is the tallest floor count over each column, wrapping.
func Roofline(buildings []pixelskyline.Building, skylineWidth int) []int {
	roof := make([]int, skylineWidth)
	for _, b := range buildings {
		b.Columns(skylineWidth, func(col int) {
			roof[col] = max(roof[col], b.Height)
		})
	}
	return roof
}

// Score rates a skyline in [0,1]: varied roof heights, frequent steps in the
// roofline, and some overlap between buildings without burying them.
func Score(buildings []pixelskyline.Building, cfg pixelskyline.Config) float64 {
	w := cfg.SkylineWidth
	roof := Roofline(buildings, w)

	bins := cfg.MaxFloors - cfg.MinFloors + 1
	hist := make([]int, bins)
	for _, h := range roof {
		b := h - cfg.MinFloors
		if b < 0 {
			b = 0
		}
		if b >= bins {
			b = bins - 1
		}
		hist[b]++
	}
	total := float64(w)
	entropy := 0.0
	for _, c := range hist {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log(p)
	}
	entropyScore := 0.0
	if bins > 1 {
		entropyScore = entropy / math.Log(float64(bins))
	}

	edgeCount := 0
	for x := range w {
		if absInt(roof[x]-roof[(x+1)%w]) > 2 {
			edgeCount++
		}
	}
	edgeScore := float64(edgeCount) / total

	// Overlap of 1.5 (half again as much facade as ground) scores best.
	area := 0
	for _, b := range buildings {
		area += b.Width()
	}
	overlap := float64(area) / total
	overlapScore := 1.0 - math.Abs(overlap-1.5)/1.5
	if overlapScore < 0 {
		overlapScore = 0
	}

	return 0.5*entropyScore + 0.3*edgeScore + 0.2*overlapScore
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
