package vecmath

import "golang.org/x/exp/constraints"

// Scalar is the set of element types a Vector can hold.
// bool and complex types are excluded.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Array is the storage of a Vector. Its length is the vector dimension N,
// which is fixed by the type and always at least 2.
type Array[T Scalar] interface {
	[2]T | [3]T | [4]T | [5]T | [6]T | [7]T | [8]T | [9]T |
		[10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T
}

// Array3 restricts Array to dimensions of at least 3.
type Array3[T Scalar] interface {
	[3]T | [4]T | [5]T | [6]T | [7]T | [8]T | [9]T |
		[10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T
}

// Array4 restricts Array to dimensions of at least 4.
type Array4[T Scalar] interface {
	[4]T | [5]T | [6]T | [7]T | [8]T | [9]T |
		[10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T
}

// Dim returns the dimension of Vector[T, A].
func Dim[T Scalar, A Array[T]]() int {
	var a A
	return len(a)
}
