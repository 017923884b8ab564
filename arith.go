package vecmath

import "math"

// Add returns the elementwise sum v + o.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] += o.data[i]
	}
	return v
}

// Sub returns the elementwise difference v - o.
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] -= o.data[i]
	}
	return v
}

// Scale returns v with every element multiplied by s.
func (v Vector[T, A]) Scale(s T) Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] *= s
	}
	return v
}

// ScaleBy returns s * v. It is the scalar-on-the-left form of Scale and
// yields the same result.
func ScaleBy[T Scalar, A Array[T]](s T, v Vector[T, A]) Vector[T, A] {
	return v.Scale(s)
}

// CompMul returns the componentwise (Hadamard) product of a and b:
// (a_0*b_0, a_1*b_1, ...).
func CompMul[T Scalar, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	for i := range len(a.data) {
		a.data[i] *= b.data[i]
	}
	return a
}

// Neg returns -v. v is left unchanged.
func (v Vector[T, A]) Neg() Vector[T, A] {
	for i := range len(v.data) {
		v.data[i] = -v.data[i]
	}
	return v
}

// AddAssign sets v to v.Add(o) and returns v.
func (v *Vector[T, A]) AddAssign(o Vector[T, A]) *Vector[T, A] {
	*v = v.Add(o)
	return v
}

// SubAssign sets v to v.Sub(o) and returns v.
func (v *Vector[T, A]) SubAssign(o Vector[T, A]) *Vector[T, A] {
	*v = v.Sub(o)
	return v
}

// ScaleAssign sets v to v.Scale(s) and returns v.
func (v *Vector[T, A]) ScaleAssign(s T) *Vector[T, A] {
	*v = v.Scale(s)
	return v
}

// Dot returns the inner product of v and o.
func (v Vector[T, A]) Dot(o Vector[T, A]) T {
	var sum T
	for i := range len(v.data) {
		sum += v.data[i] * o.data[i]
	}
	return sum
}

// Length returns the Euclidean norm sqrt(v.Dot(v)) converted to T. For
// integer T the result is truncated, e.g. V2(1, 1).Length() == 1.
func (v Vector[T, A]) Length() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}
