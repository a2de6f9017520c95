package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomInts generates num random integers in [0, max) using the
// given RNG.
func (r *RNG) GenerateRandomInts(num int, max int) []int {
	values := make([]int, num)
	for i := range values {
		values[i] = r.rand.Intn(max)
	}

	return values
}

// GenerateRandomStrings generates num random lowercase strings of the given
// length using the given RNG.
func (r *RNG) GenerateRandomStrings(num int, length int) []string {
	values := make([]string, num)
	for i := range values {
		b := make([]byte, length)
		for j := range b {
			b[j] = byte('a' + r.rand.Intn(26))
		}
		values[i] = string(b)
	}

	return values
}

// Shuffle permutes values in place using the given RNG.
func (r *RNG) Shuffle(values []int) {
	r.rand.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}
