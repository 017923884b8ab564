package vecmath

// Mixed scalar types are combined in an explicit result type R chosen by the
// caller: both operands are converted to R element by element (a Go
// conversion, as in Convert) and the operation runs in R. Go has no implicit
// numeric promotion, so the result type follows this table by convention:
//
//	int    op float  -> float
//	float32 op float64 -> float64
//	narrow int op wide int -> wide int
//
// The dimensions of both operands and of AR must match, otherwise the
// functions fail with *ErrDimensionMismatch.
//
//	sum, err := vecmath.AddAs[float64, [2]float64](vecmath.V2(1, 2), vecmath.V2(0.5, 0.5))

// AddAs returns the elementwise sum a + b computed in R.
func AddAs[R Scalar, AR Array[R], T Scalar, A Array[T], T2 Scalar, A2 Array[T2]](a Vector[T, A], b Vector[T2, A2]) (Vector[R, AR], error) {
	ra, rb, err := promotePair[R, AR](a, b)
	if err != nil {
		return Vector[R, AR]{}, err
	}
	return ra.Add(rb), nil
}

// SubAs returns the elementwise difference a - b computed in R.
func SubAs[R Scalar, AR Array[R], T Scalar, A Array[T], T2 Scalar, A2 Array[T2]](a Vector[T, A], b Vector[T2, A2]) (Vector[R, AR], error) {
	ra, rb, err := promotePair[R, AR](a, b)
	if err != nil {
		return Vector[R, AR]{}, err
	}
	return ra.Sub(rb), nil
}

// CompMulAs returns the componentwise product of a and b computed in R.
func CompMulAs[R Scalar, AR Array[R], T Scalar, A Array[T], T2 Scalar, A2 Array[T2]](a Vector[T, A], b Vector[T2, A2]) (Vector[R, AR], error) {
	ra, rb, err := promotePair[R, AR](a, b)
	if err != nil {
		return Vector[R, AR]{}, err
	}
	return CompMul(ra, rb), nil
}

// ScaleAs returns v * s computed in R.
func ScaleAs[R Scalar, AR Array[R], T Scalar, A Array[T], S Scalar](v Vector[T, A], s S) (Vector[R, AR], error) {
	rv, err := promote[R, AR](v)
	if err != nil {
		return Vector[R, AR]{}, err
	}
	return rv.Scale(R(s)), nil
}

// ScaleByAs returns s * v computed in R. It is the scalar-on-the-left form
// of ScaleAs and yields the same result.
func ScaleByAs[R Scalar, AR Array[R], S Scalar, T Scalar, A Array[T]](s S, v Vector[T, A]) (Vector[R, AR], error) {
	return ScaleAs[R, AR](v, s)
}

// promote converts v to R and requires len(A) == len(AR).
func promote[R Scalar, AR Array[R], T Scalar, A Array[T]](v Vector[T, A]) (Vector[R, AR], error) {
	if n, want := len(v.data), Dim[R, AR](); n != want {
		return Vector[R, AR]{}, &ErrDimensionMismatch{Expected: want, Actual: n}
	}
	return Convert[R, AR](v)
}

func promotePair[R Scalar, AR Array[R], T Scalar, A Array[T], T2 Scalar, A2 Array[T2]](a Vector[T, A], b Vector[T2, A2]) (Vector[R, AR], Vector[R, AR], error) {
	ra, err := promote[R, AR](a)
	if err != nil {
		return ra, ra, err
	}
	rb, err := promote[R, AR](b)
	if err != nil {
		return ra, rb, err
	}
	return ra, rb, nil
}
