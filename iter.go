package vecmath

import "iter"

// All returns an iterator over index-element pairs in index order.
func (v Vector[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range len(v.data) {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (v Vector[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range len(v.data) {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs from the last
// element to the first.
func (v Vector[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Elems returns an iterator over index-pointer pairs in index order.
// Writes through the pointers modify v.
func (v *Vector[T, A]) Elems() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		data := v.Data()
		for i := range data {
			if !yield(i, &data[i]) {
				return
			}
		}
	}
}

// BackwardElems is like Elems but runs from the last element to the first.
func (v *Vector[T, A]) BackwardElems() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		data := v.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, &data[i]) {
				return
			}
		}
	}
}
