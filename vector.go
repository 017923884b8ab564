package vecmath

import "unsafe"

// Vector is a fixed-dimension vector of N scalars of type T, where N is the
// length of the storage array A. Vectors are values: assignment copies all
// elements and nothing inside a Vector is shared.
//
// Vectors are comparable with ==. Ordering (Compare, Less, ...) is
// lexicographic in index order with element 0 most significant. It is a
// total order on the element sequence, not an ordering by magnitude or
// length: (1, 100) < (2, 0).
//
// A Vector must not be mutated from several goroutines at once.
type Vector[T Scalar, A Array[T]] struct {
	data A
}

// New returns a vector holding vals in order. It fails with *ErrArity unless
// exactly N values are given.
func New[T Scalar, A Array[T]](vals ...T) (Vector[T, A], error) {
	var v Vector[T, A]
	if len(vals) != len(v.data) {
		return v, &ErrArity{Expected: len(v.data), Actual: len(vals)}
	}
	for i, x := range vals {
		v.data[i] = x
	}
	return v, nil
}

// MustNew is like New but panics on an arity mismatch.
func MustNew[T Scalar, A Array[T]](vals ...T) Vector[T, A] {
	v, err := New[T, A](vals...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromArray wraps a storage array.
func FromArray[T Scalar, A Array[T]](a A) Vector[T, A] {
	return Vector[T, A]{data: a}
}

// Splat returns a vector with every element set to s.
func Splat[T Scalar, A Array[T]](s T) Vector[T, A] {
	var v Vector[T, A]
	for i := range len(v.data) {
		v.data[i] = s
	}
	return v
}

// V2 returns the 2D vector (x, y).
func V2[T Scalar](x, y T) Vec2[T] {
	return Vector[T, [2]T]{data: [2]T{x, y}}
}

// V3 returns the 3D vector (x, y, z).
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vector[T, [3]T]{data: [3]T{x, y, z}}
}

// V4 returns the 4D vector (x, y, z, w).
func V4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vector[T, [4]T]{data: [4]T{x, y, z, w}}
}

// Len returns the dimension N.
func (v Vector[T, A]) Len() int {
	return len(v.data)
}

// Get returns element i. It panics with *ErrIndexOutOfRange if i is not in [0, N).
func (v Vector[T, A]) Get(i int) T {
	v.mustIndex(i)
	return v.data[i]
}

// Set stores x at element i. It panics with *ErrIndexOutOfRange if i is not in [0, N).
func (v *Vector[T, A]) Set(i int, x T) {
	v.mustIndex(i)
	v.data[i] = x
}

// At returns element i, or *ErrIndexOutOfRange.
func (v Vector[T, A]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// SetAt stores x at element i, or returns *ErrIndexOutOfRange.
func (v *Vector[T, A]) SetAt(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.data[i] = x
	return nil
}

func (v *Vector[T, A]) checkIndex(i int) error {
	if i < 0 || i >= len(v.data) {
		return &ErrIndexOutOfRange{Index: i, Dimension: len(v.data)}
	}
	return nil
}

func (v *Vector[T, A]) mustIndex(i int) {
	if err := v.checkIndex(i); err != nil {
		panic(err)
	}
}

// X returns element 0.
func (v Vector[T, A]) X() T { return v.data[0] }

// Y returns element 1.
func (v Vector[T, A]) Y() T { return v.data[1] }

// SetX stores element 0.
func (v *Vector[T, A]) SetX(x T) { v.data[0] = x }

// SetY stores element 1.
func (v *Vector[T, A]) SetY(y T) { v.data[1] = y }

// Z returns element 2. It only accepts vectors with N >= 3.
func Z[T Scalar, A Array3[T]](v Vector[T, A]) T { return v.data[2] }

// W returns element 3. It only accepts vectors with N >= 4.
func W[T Scalar, A Array4[T]](v Vector[T, A]) T { return v.data[3] }

// SetZ stores element 2 of a vector with N >= 3.
func SetZ[T Scalar, A Array3[T]](v *Vector[T, A], z T) { v.data[2] = z }

// SetW stores element 3 of a vector with N >= 4.
func SetW[T Scalar, A Array4[T]](v *Vector[T, A], w T) { v.data[3] = w }

// Data returns the vector storage as a slice of length N for buffer-based
// APIs. The slice aliases v: writes through it modify v, and it must not be
// used after v goes out of scope.
func (v *Vector[T, A]) Data() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.data)), len(v.data)) //nolint:gosec // A is a [N]T array
}

// Array returns a copy of the storage array.
func (v Vector[T, A]) Array() A {
	return v.data
}

// Slice returns a freshly allocated copy of the elements.
func (v Vector[T, A]) Slice() []T {
	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i]
	}
	return out
}
