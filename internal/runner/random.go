package runner

import "math/rand"

// RandomSource supplies the randomness used for spawn timing and placement.
// Tests substitute a scripted source to make spawning deterministic.
type RandomSource interface {
	// Range returns a uniform value in [min, max).
	Range(min, max float64) float64
	// Chance returns true with probability p.
	Chance(p float64) bool
}

// seededSource is a RandomSource backed by math/rand.
type seededSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a RandomSource with the given seed.
// The same seed always yields the same sequence.
func NewRandomSource(seed int64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *seededSource) Chance(p float64) bool {
	return s.rng.Float64() < p
}
