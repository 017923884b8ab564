package conv

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of types Exact converts between.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	return T(1)/T(2) != 0
}

// Exact converts v to R and fails if the result does not represent v
// exactly: overflow, truncated fractions, sign flips and precision loss are
// all rejected. NaN and infinities pass between float types only.
func Exact[R, T Number](v T) (R, error) {
	r := R(v)

	if v != v { // NaN
		if IsFloat[R]() {
			return r, nil
		}
		return 0, errors.New("NaN cannot be converted to an integer type")
	}

	if (v < 0) != (r < 0) {
		return 0, fmt.Errorf("sign change: %v converted to %v", v, r)
	}

	if T(r) != v {
		return 0, fmt.Errorf("value change: %v converted to %v", v, r)
	}

	return r, nil
}

// IsUnsigned reports whether T is an unsigned integer type.
func IsUnsigned[T Number]() bool {
	return T(0)-T(1) > 0
}
