// Package rng provides the random source used by dungeon generation.
package rng

import (
	"math/rand"
	"time"
)

// DefaultProbability is the chance used for a fair coin flip.
const DefaultProbability = 0.5

// Source produces the uniform integers and booleans the generator consumes.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// Intn returns an int in [0, exclusiveMax). Returns 0 when exclusiveMax <= 0.
	Intn(exclusiveMax int) int
	// IntRange returns an int in [min, max] inclusive. Returns min when max < min.
	IntRange(min, max int) int
	// Bool returns true with the given probability.
	Bool(probability float64) bool
}

// Rand is a Source backed by math/rand.
type Rand struct {
	r *rand.Rand
}

// New returns a Source seeded from the current time.
func New() *Rand {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Source that replays the same sequence for the same seed.
func NewSeeded(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Intn returns an int in [0, exclusiveMax).
func (s *Rand) Intn(exclusiveMax int) int {
	if exclusiveMax <= 0 {
		return 0
	}
	return s.r.Intn(exclusiveMax)
}

// IntRange returns an int in [min, max].
func (s *Rand) IntRange(min, max int) int {
	if max < min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// Bool returns true with the given probability.
func (s *Rand) Bool(probability float64) bool {
	return s.r.Float64() < probability
}
