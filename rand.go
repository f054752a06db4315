package pixelskyline

import "math/rand/v2"

// Rand is the random source threaded through generation and window placement.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// intRange draws uniformly from [lo, hi).
func intRange(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo)
}

func coin(r Rand) bool {
	return r.IntN(2) == 0
}
