package quiz

import "math/rand/v2"

// Rand is the source of randomness for quiz construction. Injected so
// tests can supply a deterministic fake and assert exact outcomes.
type Rand interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int

	// Bool returns an unbiased coin flip.
	Bool() bool

	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// systemRand backs Rand with the shared math/rand/v2 generator.
type systemRand struct{}

func (systemRand) IntN(n int) int                 { return rand.IntN(n) }
func (systemRand) Bool() bool                     { return rand.IntN(2) == 0 }
func (systemRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// SystemRand returns a Rand backed by the process-wide generator.
func SystemRand() Rand { return systemRand{} }
