package linalg

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var _ = fmt.Print

func as_dense(m Matrix3[float64]) *mat.Dense {
	v := m.Values()
	return mat.NewDense(3, 3, v[:])
}

func TestMatrixBasics(t *testing.T) {
	m := NewMatrix3([9]float64{1, 2, 3, 4, 5, 6, 7, 8, 10})
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, [3]float64{3, 6, 10}, m.Column(2))
	assert.Equal(t, m, m.Multiply(Identity[float64]()))
	assert.Equal(t, m, Identity[float64]().Multiply(m))
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, m, FromColumns(m.Column(0), m.Column(1), m.Column(2)))
	x, y, z := m.TransformVector(1, 1, 1)
	assert.Equal(t, []float64{6, 15, 25}, []float64{x, y, z})
	s := m.ScaleColumns(2, 0, 1)
	assert.Equal(t, NewMatrix3([9]float64{2, 0, 3, 8, 0, 6, 14, 0, 10}), s)
	assert.InDelta(t, -3.0, m.Determinant(), 1e-12)
	assert.Contains(t, m.String(), "[1 2 3]")
}

func TestInverseAgainstGonum(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := range 200 {
		var v [9]float64
		for j := range v {
			v[j] = r.Float64()*4 - 2
		}
		m := NewMatrix3(v)
		d := as_dense(m)
		require.InDelta(t, mat.Det(d), m.Determinant(), 1e-9, "iteration: %d", i)
		inv, err := m.Inverse()
		var expected mat.Dense
		gerr := expected.Inverse(d)
		if err != nil {
			require.ErrorIs(t, err, ErrSingularMatrix)
			require.Less(t, abs(mat.Det(d)), 1e-8)
			continue
		}
		if gerr != nil {
			continue
		}
		for row := range 3 {
			for col := range 3 {
				require.InDelta(t, expected.At(row, col), inv.At(row, col), 1e-6*max(1, abs(expected.At(row, col))))
			}
		}
		require.True(t, m.Multiply(inv).IsIdentity(1e-9), "m × m⁻¹ != I for %s", m)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestSingular(t *testing.T) {
	testCases := []struct {
		name string
		m    Matrix3[float64]
	}{
		{"zero", Matrix3[float64]{}},
		{"dependent rows", NewMatrix3([9]float64{1, 2, 3, 2, 4, 6, 0, 1, 1})},
		{"dependent columns", NewMatrix3([9]float64{1, 2, 3, 4, 5, 9, 7, 8, 15})},
		{"tiny perturbation", NewMatrix3([9]float64{1, 2, 3, 2, 4, 6 + 1e-14, 0, 1, 1})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.m.Inverse()
			require.ErrorIs(t, err, ErrSingularMatrix)
		})
	}
	t.Run("small but regular", func(t *testing.T) {
		m := Identity[float64]().ScaleColumns(1e-3, 1e-3, 1e-3)
		inv, err := m.Inverse()
		require.NoError(t, err)
		assert.True(t, inv.Equals(Identity[float64]().ScaleColumns(1e3, 1e3, 1e3), 1e-9))
	})
}

func TestFloat32(t *testing.T) {
	m := NewMatrix3([9]float32{0.4124564, 0.3575761, 0.1804375, 0.2126729, 0.7151522, 0.0721750, 0.0193339, 0.1191920, 0.9503041})
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, m.Multiply(inv).IsIdentity(1e-5))
	assert.InDelta(t, 3.2404542, float64(inv.At(0, 0)), 1e-4)
}
