package vecmath

import "fmt"

// ErrArity is returned when the number of values given to New does not match
// the vector dimension.
type ErrArity struct {
	Expected int
	Actual   int
}

func (e *ErrArity) Error() string {
	return fmt.Sprintf("arity mismatch: expected %d values, got %d", e.Expected, e.Actual)
}

// ErrDimensionMismatch indicates a source vector or sequence that does not fit
// into the destination dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates an element access outside [0, Dimension).
type ErrIndexOutOfRange struct {
	Index     int
	Dimension int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Dimension)
}

// ErrLossyConversion indicates an element that changed value while being
// converted to another scalar type.
//
// The underlying conversion error can be accessed via errors.Unwrap.
type ErrLossyConversion struct {
	Index int
	cause error
}

func (e *ErrLossyConversion) Error() string {
	return fmt.Sprintf("lossy conversion at index %d: %v", e.Index, e.cause)
}

func (e *ErrLossyConversion) Unwrap() error { return e.cause }

// BuilderErrorKind classifies builder contract violations.
type BuilderErrorKind int

const (
	// Overflow means more values were appended than the vector holds.
	Overflow BuilderErrorKind = iota
	// Underflow means the builder finished before every slot was filled.
	Underflow
	// Finished means the builder was used after Finish.
	Finished
	// Unbound means the builder has no target vector.
	Unbound
)

func (k BuilderErrorKind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case Finished:
		return "finished"
	case Unbound:
		return "unbound"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ErrBuilder reports a sequential builder that was given the wrong number of
// values. Index is the fill index at the point of failure.
type ErrBuilder struct {
	Kind      BuilderErrorKind
	Index     int
	Dimension int
}

func (e *ErrBuilder) Error() string {
	return fmt.Sprintf("builder %s: %d of %d values supplied", e.Kind, e.Index, e.Dimension)
}

// Is reports whether target is an *ErrBuilder of the same kind.
func (e *ErrBuilder) Is(target error) bool {
	t, ok := target.(*ErrBuilder)
	return ok && t.Kind == e.Kind
}

var (
	// ErrBuilderOverflow matches any overflow ErrBuilder via errors.Is.
	ErrBuilderOverflow = &ErrBuilder{Kind: Overflow}
	// ErrBuilderUnderflow matches any underflow ErrBuilder via errors.Is.
	ErrBuilderUnderflow = &ErrBuilder{Kind: Underflow}
	// ErrBuilderFinished matches use of a finished builder via errors.Is.
	ErrBuilderFinished = &ErrBuilder{Kind: Finished}
	// ErrBuilderUnbound matches use of a Builder without a target via errors.Is.
	ErrBuilderUnbound = &ErrBuilder{Kind: Unbound}
)
