package vecmath_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/vecmath"
)

func TestIterators(t *testing.T) {
	v := vecmath.V4(1, 2, 3, 4)

	t.Run("All", func(t *testing.T) {
		var idx, vals []int
		for i, x := range v.All() {
			idx = append(idx, i)
			vals = append(vals, x)
		}
		assert.Equal(t, []int{0, 1, 2, 3}, idx)
		assert.Equal(t, []int{1, 2, 3, 4}, vals)
	})

	t.Run("Values", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(v.Values()))
	})

	t.Run("Backward", func(t *testing.T) {
		var idx, vals []int
		for i, x := range v.Backward() {
			idx = append(idx, i)
			vals = append(vals, x)
		}
		assert.Equal(t, []int{3, 2, 1, 0}, idx)
		assert.Equal(t, []int{4, 3, 2, 1}, vals)
	})

	t.Run("restartable", func(t *testing.T) {
		seq := v.Values()
		assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	})

	t.Run("early stop", func(t *testing.T) {
		var got []int
		for x := range v.Values() {
			if x == 3 {
				break
			}
			got = append(got, x)
		}
		assert.Equal(t, []int{1, 2}, got)

		got = got[:0]
		for _, x := range v.Backward() {
			if x == 2 {
				break
			}
			got = append(got, x)
		}
		assert.Equal(t, []int{4, 3}, got)
	})
}

func TestMutableIterators(t *testing.T) {
	v := vecmath.V3(1.0, 2, 3)

	for i, p := range v.Elems() {
		*p *= float64(i + 1)
	}
	assert.Equal(t, vecmath.V3(1.0, 4, 9), v)

	prev := 0.0
	for _, p := range v.BackwardElems() {
		*p += prev
		prev = *p
	}
	assert.Equal(t, vecmath.V3(14.0, 13, 9), v)
}
