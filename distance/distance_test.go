package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     vecmath.Vector3d
		expected float64
	}{
		{"Simple", vecmath.V3(1.0, 2, 3), vecmath.V3(4.0, 5, 6), 32},
		{"Zero", vecmath.Vector3d{}, vecmath.Vector3d{}, 0},
		{"Mixed", vecmath.V3(1.0, -1, 2), vecmath.V3(1.0, 1, -2), -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Dot(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     vecmath.Vector3f
		expected float32
	}{
		{"Simple", vecmath.V3[float32](1, 2, 3), vecmath.V3[float32](4, 5, 6), 27},
		{"Zero", vecmath.Vector3f{}, vecmath.Vector3f{}, 0},
		{"Identical", vecmath.V3[float32](1, 2, 3), vecmath.V3[float32](1, 2, 3), 0},
		{"Mixed", vecmath.V3[float32](1, -1, 0), vecmath.V3[float32](-1, 1, 0), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.a, tt.b), 1e-5)
		})
	}
}

func TestL2(t *testing.T) {
	assert.Equal(t, 5.0, L2(vecmath.V2(0.0, 0), vecmath.V2(3.0, 4)))
	// Integer distances truncate.
	assert.Equal(t, 1, L2(vecmath.V2(0, 0), vecmath.V2(1, 1)))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7, Manhattan(vecmath.V2(1, 5), vecmath.V2(4, 1)))
	assert.Equal(t, uint8(7), Manhattan(vecmath.V2[uint8](1, 5), vecmath.V2[uint8](4, 1)))
	assert.InDelta(t, 3.5, Manhattan(vecmath.V3(0.5, 0, 0), vecmath.V3(0.0, 1, -2)), 1e-9)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine(vecmath.V2(1, 0), vecmath.V2(5, 0)), 1e-9)
	assert.InDelta(t, 0.0, Cosine(vecmath.V2(1, 0), vecmath.V2(0, 3)), 1e-9)
	assert.InDelta(t, -1.0, Cosine(vecmath.V2(2.0, 2), vecmath.V2(-1.0, -1)), 1e-9)
	assert.Equal(t, 0.0, Cosine(vecmath.V2(0, 0), vecmath.V2(1, 1)))
}

func TestNormalize(t *testing.T) {
	t.Run("Float", func(t *testing.T) {
		v := vecmath.V2[float32](3, 4)
		n, ok := Normalize(v)
		assert.True(t, ok)
		assert.InDelta(t, float32(0.6), n.X(), 1e-5)
		assert.InDelta(t, float32(0.8), n.Y(), 1e-5)
		assert.InDelta(t, float32(1.0), n.Length(), 1e-5)

		// Input is a value and stays untouched.
		assert.Equal(t, vecmath.V2[float32](3, 4), v)
	})

	t.Run("Zero", func(t *testing.T) {
		_, ok := Normalize(vecmath.Vector3d{})
		assert.False(t, ok)
	})

	t.Run("Integer", func(t *testing.T) {
		n, ok := Normalize(vecmath.V3(0, 0, 7))
		assert.True(t, ok)
		assert.Equal(t, vecmath.V3(0, 0, 1), n)
	})
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "L2", MetricL2.String())
		assert.Equal(t, "Cosine", MetricCosine.String())
		assert.Equal(t, "Dot", MetricDot.String())
		assert.Equal(t, "Manhattan", MetricManhattan.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Provider", func(t *testing.T) {
		a, b := vecmath.V3(1.0, 2, 3), vecmath.V3(4.0, 5, 6)

		f, err := Provider[float64, [3]float64](MetricL2)
		require.NoError(t, err)
		assert.InDelta(t, 27.0, f(a, b), 1e-9)

		f, err = Provider[float64, [3]float64](MetricDot)
		require.NoError(t, err)
		assert.InDelta(t, 32.0, f(a, b), 1e-9)

		f, err = Provider[float64, [3]float64](MetricCosine)
		require.NoError(t, err)
		assert.NotNil(t, f)

		f, err = Provider[float64, [3]float64](MetricManhattan)
		require.NoError(t, err)
		assert.InDelta(t, 9.0, f(a, b), 1e-9)

		_, err = Provider[float64, [3]float64](Metric(99))
		assert.Error(t, err)
	})
}

func TestCosineMatchesNormalizedDot(t *testing.T) {
	a, b := vecmath.V3(1.0, 2, 2), vecmath.V3(-2.0, 1, 0.5)
	na, _ := Normalize(a)
	nb, _ := Normalize(b)
	assert.InDelta(t, Cosine(a, b), Dot(na, nb), 1e-12)
	assert.False(t, math.IsNaN(Cosine(a, b)))
}
