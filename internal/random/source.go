package random

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Source is the default domain.Random backed by a PCG generator
type Source struct {
	rng *rand.Rand
}

// NewSource creates a source seeded from the wall clock
func NewSource(logger *zap.Logger) *Source {
	now := time.Now()
	seed1, seed2 := uint64(now.UnixNano()), uint64(now.UnixMicro())
	logger.Debug("Random source seeded", zap.Uint64("seed", seed1))
	return NewSeededSource(seed1, seed2)
}

// NewSeededSource creates a source with a fixed seed
func NewSeededSource(seed1, seed2 uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Float64Range returns a uniform float in [lo, hi)
func (s *Source) Float64Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// IntRange returns a uniform integer in [lo, hi).
// An empty range yields lo.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo)
}

// Bool returns true with probability p
func (s *Source) Bool(p float64) bool {
	if p >= 1 {
		return true
	}
	if p <= 0 {
		return false
	}
	return s.rng.Float64() < p
}
