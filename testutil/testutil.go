package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/conv"
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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// fillRange fills dst with values in [minVal, maxVal). Locks only once per call.
func (r *RNG) fillRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformVector returns a vector with elements drawn uniformly from
// [minVal, maxVal). Integer element types receive the truncated value, so
// integer vectors land in [minVal, maxVal-1]. For unsigned element types
// the range is clamped to start at 0.
func UniformVector[T vecmath.Scalar, A vecmath.Array[T]](r *RNG, minVal, maxVal float64) vecmath.Vector[T, A] {
	if conv.IsUnsigned[T]() {
		minVal = max(minVal, 0)
		maxVal = max(maxVal, minVal)
	}

	var v vecmath.Vector[T, A]
	vals := make([]float64, v.Len())
	r.fillRange(vals, minVal, maxVal)
	if !conv.IsFloat[T]() {
		for i := range vals {
			vals[i] = float64(int64(vals[i]))
		}
	}
	for i, p := range v.Elems() {
		*p = T(vals[i])
	}
	return v
}

// UniformVectors generates num random vectors with UniformVector.
func UniformVectors[T vecmath.Scalar, A vecmath.Array[T]](r *RNG, num int, minVal, maxVal float64) []vecmath.Vector[T, A] {
	vectors := make([]vecmath.Vector[T, A], num)
	for i := range vectors {
		vectors[i] = UniformVector[T, A](r, minVal, maxVal)
	}
	return vectors
}
