package vecmath

// Source is a read-only sequence of scalars that a Builder can splice into
// its target. Every Vector[T, A] is a Source[T].
type Source[T Scalar] interface {
	Len() int
	Get(i int) T
}

// Builder fills the elements of a vector one value at a time, in index
// order, and checks that exactly N values were supplied.
//
//	var v vecmath.Vector3f
//	err := v.Init(1).Next(2).Next(3).Finish()
//
// A Builder borrows its target: the vector must stay alive and must not be
// modified by anything else until Finish returns. Fill makes the borrow
// explicit by scoping the builder to a callback.
//
// A Builder must be obtained from Build, Init, InitFrom or Fill. The zero
// Builder has no target and records an Unbound violation on first use.
//
// The first contract violation is sticky. An overflow is recorded at the
// append that exceeds N, later appends are ignored, and Finish reports it.
type Builder[T Scalar, A Array[T]] struct {
	target   *Vector[T, A]
	index    int
	err      error
	finished bool
}

// Build starts an empty builder on v.
func (v *Vector[T, A]) Build() *Builder[T, A] {
	return &Builder[T, A]{target: v}
}

// Init starts a builder on v and appends x as its first value.
func (v *Vector[T, A]) Init(x T) *Builder[T, A] {
	return v.Build().Next(x)
}

// InitFrom starts a builder on v and splices the elements of src as its
// first values.
func (v *Vector[T, A]) InitFrom(src Source[T]) *Builder[T, A] {
	return v.Build().NextFrom(src)
}

// Fill runs fn with a builder on v and finishes it, returning the first
// contract violation. The builder must not be retained after fn returns.
func Fill[T Scalar, A Array[T]](v *Vector[T, A], fn func(b *Builder[T, A])) error {
	b := v.Build()
	fn(b)
	return b.Finish()
}

// Next stores x in the next slot.
func (b *Builder[T, A]) Next(x T) *Builder[T, A] {
	if !b.ready() {
		return b
	}
	if b.index >= Dim[T, A]() {
		b.err = &ErrBuilder{Kind: Overflow, Index: b.index + 1, Dimension: Dim[T, A]()}
		return b
	}
	b.target.data[b.index] = x
	b.index++
	return b
}

// NextFrom splices the elements of src into the following slots, one per
// element. A source longer than N is rejected as a whole with
// *ErrDimensionMismatch; a source that merely does not fit into the
// remaining slots overflows.
func (b *Builder[T, A]) NextFrom(src Source[T]) *Builder[T, A] {
	if !b.ready() {
		return b
	}
	if n := src.Len(); n > Dim[T, A]() {
		b.err = &ErrDimensionMismatch{Expected: Dim[T, A](), Actual: n}
		return b
	}
	for i := range src.Len() {
		b.Next(src.Get(i))
	}
	return b
}

// Splice appends the elements of a vector of another scalar type, converting
// each one like Convert does.
func Splice[T Scalar, A Array[T], T2 Scalar, A2 Array[T2]](b *Builder[T, A], src Vector[T2, A2]) *Builder[T, A] {
	if !b.ready() {
		return b
	}
	if len(src.data) > Dim[T, A]() {
		b.err = &ErrDimensionMismatch{Expected: Dim[T, A](), Actual: len(src.data)}
		return b
	}
	for i := range len(src.data) {
		b.Next(T(src.data[i]))
	}
	return b
}

// Index returns the number of values supplied so far.
func (b *Builder[T, A]) Index() int { return b.index }

// Err returns the first contract violation recorded so far.
func (b *Builder[T, A]) Err() error { return b.err }

// Finish ends the builder. It returns the first recorded violation, or an
// underflow *ErrBuilder if fewer than N values were supplied. Later calls
// return the first violation recorded, including appends after Finish.
func (b *Builder[T, A]) Finish() error {
	if b.finished {
		return b.err
	}
	b.finished = true
	if b.err == nil && b.target == nil {
		b.err = &ErrBuilder{Kind: Unbound, Dimension: Dim[T, A]()}
	}
	if b.err == nil && b.index != Dim[T, A]() {
		b.err = &ErrBuilder{Kind: Underflow, Index: b.index, Dimension: Dim[T, A]()}
	}
	return b.err
}

// MustFinish is like Finish but panics on a contract violation.
func (b *Builder[T, A]) MustFinish() {
	if err := b.Finish(); err != nil {
		panic(err)
	}
}

func (b *Builder[T, A]) ready() bool {
	if b.err != nil {
		return false
	}
	if b.target == nil {
		b.err = &ErrBuilder{Kind: Unbound, Index: b.index, Dimension: Dim[T, A]()}
		return false
	}
	if b.finished {
		b.err = &ErrBuilder{Kind: Finished, Index: b.index, Dimension: Dim[T, A]()}
		return false
	}
	return true
}
