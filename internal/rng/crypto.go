package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is a Generator backed by crypto/rand. It is the default shuffle
// source for live decks; anywhere a reproducible deal is needed (tests),
// swap in Seeded instead
type Crypto struct{}

var _ Generator = Crypto{}

// Intn returns a uniform random number in [0, n)
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
