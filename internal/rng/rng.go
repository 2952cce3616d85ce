// Package rng implements the Park–Miller minimal standard generator.
// A seed yields the same stream on every platform, which keeps city
// selection and damage assignment reproducible.
package rng

import "math"

const (
	// Modulus is the Mersenne prime 2^31 - 1.
	Modulus int64 = 2147483647
	// Multiplier is the minimal standard multiplier 7^5.
	Multiplier int64 = 16807
)

// Source is a deterministic Park–Miller generator.
// The zero value is not usable; create one with New.
type Source struct {
	state int64
}

// New creates a source from an integer seed.
// The seed is reduced modulo Modulus; non-positive residues are shifted into
// [1, Modulus-1] so that 0 and multiples of Modulus still produce a live stream.
func New(seed int64) *Source {
	state := seed % Modulus
	if state <= 0 {
		state += Modulus - 1
	}
	if state <= 0 {
		// seed ≡ -(Modulus-1): the shift above lands exactly on zero.
		state = 1
	}
	return &Source{state: state}
}

// State returns the internal generator state, always in [1, Modulus-1].
func (s *Source) State() int64 {
	return s.state
}

// Next advances the generator and returns a value in [0, 1).
func (s *Source) Next() float64 {
	s.state = (s.state * Multiplier) % Modulus
	return float64(s.state-1) / float64(Modulus-1)
}

// Intn returns a value in [0, n). It panics if n <= 0, like math/rand.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	return int(math.Floor(s.Next() * float64(n)))
}

// Shuffle performs a Fisher–Yates shuffle over n elements, walking from the
// last index down and drawing one value per swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}

// ShuffleSlice shuffles items in place and returns the same slice.
func ShuffleSlice[T any](s *Source, items []T) []T {
	s.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}
