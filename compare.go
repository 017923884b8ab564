package vecmath

import (
	"cmp"
	"math"
)

// Equal reports whether v and o hold the same elements. It matches v == o.
func (v Vector[T, A]) Equal(o Vector[T, A]) bool {
	return v == o
}

// Compare compares v and o lexicographically in index order and returns -1,
// 0 or +1. Elements are compared with cmp.Compare, so NaN orders before
// every other value and equals itself.
//
// This is a sequence ordering, not a geometric one: V2(1, 5) < V2(2, 0)
// even though the former is longer.
func (v Vector[T, A]) Compare(o Vector[T, A]) int {
	for i := range len(v.data) {
		if c := cmp.Compare(v.data[i], o.data[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether v orders before o. See Compare.
func (v Vector[T, A]) Less(o Vector[T, A]) bool { return v.Compare(o) < 0 }

// LessEqual reports whether v orders before or equal to o. See Compare.
func (v Vector[T, A]) LessEqual(o Vector[T, A]) bool { return v.Compare(o) <= 0 }

// Greater reports whether v orders after o. See Compare.
func (v Vector[T, A]) Greater(o Vector[T, A]) bool { return v.Compare(o) > 0 }

// GreaterEqual reports whether v orders after or equal to o. See Compare.
func (v Vector[T, A]) GreaterEqual(o Vector[T, A]) bool { return v.Compare(o) >= 0 }

// ApproxEqual reports whether every element pair of a and b is within
// tolerance: |a_i - b_i| <= max(abs, rel * max(|a_i|, |b_i|)).
// Without options the comparison is exact.
func ApproxEqual[T Scalar, A Array[T]](a, b Vector[T, A], opts ...Option) bool {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	for i := range len(a.data) {
		x, y := float64(a.data[i]), float64(b.data[i])
		if x == y {
			continue
		}
		tol := max(o.absTolerance, o.relTolerance*max(math.Abs(x), math.Abs(y)))
		if !(math.Abs(x-y) <= tol) {
			return false
		}
	}
	return true
}
