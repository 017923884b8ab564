package vecmath

import (
	"unsafe"

	"github.com/hupe1980/vecmath/internal/conv"
)

// Convert builds a Vector[T, A] from a vector of another scalar type and a
// dimension no larger than N. Elements are converted with a Go conversion
// and the trailing N - N2 elements are zero. A source larger than N fails
// with *ErrDimensionMismatch.
//
//	v3 := vecmath.MustConvert[float64, [3]float64](vecmath.V2(1, 2)) // (1, 2, 0)
func Convert[T Scalar, A Array[T], T2 Scalar, A2 Array[T2]](src Vector[T2, A2]) (Vector[T, A], error) {
	var dst Vector[T, A]
	if len(src.data) > len(dst.data) {
		return dst, &ErrDimensionMismatch{Expected: len(dst.data), Actual: len(src.data)}
	}
	for i := range len(src.data) {
		dst.data[i] = T(src.data[i])
	}
	return dst, nil
}

// MustConvert is like Convert but panics on a dimension mismatch.
func MustConvert[T Scalar, A Array[T], T2 Scalar, A2 Array[T2]](src Vector[T2, A2]) Vector[T, A] {
	dst, err := Convert[T, A](src)
	if err != nil {
		panic(err)
	}
	return dst
}

// ConvertExact is like Convert but also fails with *ErrLossyConversion if an
// element does not survive the conversion unchanged.
func ConvertExact[T Scalar, A Array[T], T2 Scalar, A2 Array[T2]](src Vector[T2, A2]) (Vector[T, A], error) {
	var dst Vector[T, A]
	if len(src.data) > len(dst.data) {
		return dst, &ErrDimensionMismatch{Expected: len(dst.data), Actual: len(src.data)}
	}
	for i := range len(src.data) {
		x, err := conv.Exact[T](src.data[i])
		if err != nil {
			return Vector[T, A]{}, &ErrLossyConversion{Index: i, cause: err}
		}
		dst.data[i] = x
	}
	return dst, nil
}

// Assign overwrites dst with the converted elements of src using the rules of
// Convert. Assigning a vector to itself leaves it untouched. On error dst is
// not modified.
func Assign[T Scalar, A Array[T], T2 Scalar, A2 Array[T2]](dst *Vector[T, A], src *Vector[T2, A2]) error {
	if unsafe.Pointer(dst) == unsafe.Pointer(src) { //nolint:gosec // identity check only
		return nil
	}
	v, err := Convert[T, A](*src)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
