package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecmath"
)

// Dot calculates the dot product of two vectors.
func Dot[T vecmath.Scalar, A vecmath.Array[T]](a, b vecmath.Vector[T, A]) T {
	return a.Dot(b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2[T vecmath.Scalar, A vecmath.Array[T]](a, b vecmath.Vector[T, A]) T {
	d := a.Sub(b)
	return d.Dot(d)
}

// L2 calculates the Euclidean distance. Like Vector.Length it truncates for
// integer element types.
func L2[T vecmath.Scalar, A vecmath.Array[T]](a, b vecmath.Vector[T, A]) T {
	return a.Sub(b).Length()
}

// Manhattan calculates the sum of absolute elementwise differences.
// Unsigned element types are handled without wrap-around.
func Manhattan[T vecmath.Scalar, A vecmath.Array[T]](a, b vecmath.Vector[T, A]) T {
	var sum T
	for i, x := range a.All() {
		y := b.Get(i)
		if x >= y {
			sum += x - y
		} else {
			sum += y - x
		}
	}
	return sum
}

// Cosine calculates the cosine similarity of two vectors in float64.
// It returns 0 if either vector has zero length.
func Cosine[T vecmath.Scalar, A vecmath.Array[T]](a, b vecmath.Vector[T, A]) float64 {
	var dot, na, nb float64
	for i, x := range a.All() {
		fx, fy := float64(x), float64(b.Get(i))
		dot += fx * fy
		na += fx * fx
		nb += fy * fy
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Normalize returns v scaled to unit length.
// Returns false if v has zero length. Integer vectors truncate every
// element, so only axis-aligned integer vectors normalize meaningfully.
func Normalize[T vecmath.Scalar, A vecmath.Array[T]](v vecmath.Vector[T, A]) (vecmath.Vector[T, A], bool) {
	norm := math.Sqrt(float64(v.Dot(v)))
	if norm == 0 {
		return v, false
	}
	for _, p := range v.Elems() {
		*p = T(float64(*p) / norm)
	}
	return v, true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
	MetricDot
	MetricManhattan
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	case MetricManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Func is a function type for distance calculation.
type Func[T vecmath.Scalar, A vecmath.Array[T]] func(a, b vecmath.Vector[T, A]) T

// Provider returns the distance function for the given metric.
// Cosine maps to Dot, so callers must pass normalized vectors.
func Provider[T vecmath.Scalar, A vecmath.Array[T]](m Metric) (Func[T, A], error) {
	switch m {
	case MetricL2:
		return SquaredL2[T, A], nil
	case MetricCosine, MetricDot:
		return Dot[T, A], nil
	case MetricManhattan:
		return Manhattan[T, A], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
