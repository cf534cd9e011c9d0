package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded returns a Generator backed by math/rand with the given seed.
// Only use this when the shuffle must be reproducible (i.e., tests).
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed))
}
