package random

import "math/rand/v2"

// Source abstracts randomness so session metrics stay reproducible in tests.
type Source interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

type SystemSource struct{}

func (SystemSource) IntN(n int) int {
	return rand.IntN(n)
}
