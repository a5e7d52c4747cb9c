// Package testutil provides deterministic random value generation for
// point-field tests.
package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/pointfield/numeric"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Value returns a pseudo-random value of the given kind. Floats are drawn
// from random bit patterns with NaN re-rolled, so subnormals, infinities and
// signed zero all occur.
func (r *RNG) Value(kind numeric.Kind) numeric.Value {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch kind {
	case numeric.KindInt32:
		return numeric.Int32Value(int32(r.rand.Uint32()))
	case numeric.KindInt64:
		return numeric.Int64Value(int64(r.rand.Uint64()))
	case numeric.KindFloat64:
		for {
			f := math.Float64frombits(r.rand.Uint64())
			if !math.IsNaN(f) {
				return numeric.Float64Value(f)
			}
		}
	default:
		panic("testutil: invalid kind")
	}
}

// Values returns n pseudo-random values of the given kind.
func (r *RNG) Values(kind numeric.Kind, n int) []numeric.Value {
	values := make([]numeric.Value, n)
	for i := range values {
		values[i] = r.Value(kind)
	}
	return values
}
