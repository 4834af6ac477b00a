package sim

import (
	"math/rand"
	"time"
)

// RandomSource supplies the uniform draws behind every stochastic choice in
// the simulation. *rand.Rand satisfies it directly; tests substitute seeded
// or scripted sources.
type RandomSource interface {
	Float64() float64 // uniform [0, 1)
	Intn(n int) int
}

// NewSeededSource returns a reproducible source for tests and replays.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSource seeds from the wall clock.
func NewTimeSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
