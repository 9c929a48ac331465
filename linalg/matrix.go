// Package linalg provides the fixed size 3x3 matrix used to derive and
// apply color space transforms.
package linalg

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/kovidgoyal/chroma/channel"
	"gonum.org/v1/gonum/floats/scalar"
)

var _ = fmt.Print

// Determinants smaller than this, relative to the cube of the largest
// entry, are treated as zero when inverting.
const DeterminantTolerance = 1e-10

var ErrSingularMatrix = errors.New("matrix is singular and cannot be inverted")

// Matrix3 is a 3x3 matrix indexed as m[row][column].
type Matrix3[T channel.Scalar] [3][3]T

// NewMatrix3 builds a matrix from nine values in row-major order.
func NewMatrix3[T channel.Scalar](v [9]T) Matrix3[T] {
	return Matrix3[T]{
		{v[0], v[1], v[2]},
		{v[3], v[4], v[5]},
		{v[6], v[7], v[8]},
	}
}

func Identity[T channel.Scalar]() Matrix3[T] {
	return Matrix3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// FromColumns builds a matrix whose columns are the three given vectors.
func FromColumns[T channel.Scalar](c0, c1, c2 [3]T) Matrix3[T] {
	return Matrix3[T]{
		{c0[0], c1[0], c2[0]},
		{c0[1], c1[1], c2[1]},
		{c0[2], c1[2], c2[2]},
	}
}

func (m Matrix3[T]) At(row, col int) T { return m[row][col] }

// Values returns the entries in row-major order.
func (m Matrix3[T]) Values() (ans [9]T) {
	for i := range 9 {
		ans[i] = m[i/3][i%3]
	}
	return
}

func (m Matrix3[T]) Column(col int) [3]T {
	return [3]T{m[0][col], m[1][col], m[2][col]}
}

// Multiply returns m × o.
func (m Matrix3[T]) Multiply(o Matrix3[T]) (ans Matrix3[T]) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += float64(m[i][k]) * float64(o[k][j])
			}
			ans[i][j] = T(sum)
		}
	}
	return
}

// TransformVector returns m × (x, y, z).
func (m Matrix3[T]) TransformVector(x, y, z T) (T, T, T) {
	fx, fy, fz := float64(x), float64(y), float64(z)
	row := func(r [3]T) T {
		return T(float64(r[0])*fx + float64(r[1])*fy + float64(r[2])*fz)
	}
	return row(m[0]), row(m[1]), row(m[2])
}

// ScaleColumns multiplies every entry of column i by s[i].
func (m Matrix3[T]) ScaleColumns(s0, s1, s2 T) (ans Matrix3[T]) {
	for i := range 3 {
		ans[i] = [3]T{m[i][0] * s0, m[i][1] * s1, m[i][2] * s2}
	}
	return
}

func (m Matrix3[T]) Transpose() (ans Matrix3[T]) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = m[j][i]
		}
	}
	return
}

func (m *Matrix3[T]) f64() (a [3][3]float64) {
	for i := range 3 {
		for j := range 3 {
			a[i][j] = float64(m[i][j])
		}
	}
	return
}

func det3(a *[3][3]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

func (m Matrix3[T]) Determinant() T {
	a := m.f64()
	return T(det3(&a))
}

func (m *Matrix3[T]) largest_entry() (ans float64) {
	for _, row := range m {
		for _, x := range row {
			ans = max(ans, math.Abs(float64(x)))
		}
	}
	return
}

// Inverse returns the inverse of m or ErrSingularMatrix if the determinant
// is indistinguishable from zero at the scale of the matrix entries.
func (m Matrix3[T]) Inverse() (ans Matrix3[T], err error) {
	a := m.f64()
	det := det3(&a)
	scale := m.largest_entry()
	if scale == 0 || math.IsNaN(det) || math.Abs(det) <= DeterminantTolerance*scale*scale*scale {
		return ans, fmt.Errorf("%w: determinant %g", ErrSingularMatrix, det)
	}
	inv_det := 1 / det
	adj := [3][3]float64{
		{
			a[1][1]*a[2][2] - a[1][2]*a[2][1],
			a[0][2]*a[2][1] - a[0][1]*a[2][2],
			a[0][1]*a[1][2] - a[0][2]*a[1][1],
		},
		{
			a[1][2]*a[2][0] - a[1][0]*a[2][2],
			a[0][0]*a[2][2] - a[0][2]*a[2][0],
			a[0][2]*a[1][0] - a[0][0]*a[1][2],
		},
		{
			a[1][0]*a[2][1] - a[1][1]*a[2][0],
			a[0][1]*a[2][0] - a[0][0]*a[2][1],
			a[0][0]*a[1][1] - a[0][1]*a[1][0],
		},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = T(inv_det * adj[i][j])
		}
	}
	return
}

// Equals reports whether every entry of m is within tolerance of o.
func (m Matrix3[T]) Equals(o Matrix3[T], tolerance float64) bool {
	for i := range 3 {
		for j := range 3 {
			if !scalar.EqualWithinAbs(float64(m[i][j]), float64(o[i][j]), tolerance) {
				return false
			}
		}
	}
	return true
}

func (m Matrix3[T]) IsIdentity(tolerance float64) bool {
	return m.Equals(Identity[T](), tolerance)
}

func (m Matrix3[T]) String() string {
	rows := make([]string, 3)
	for i, r := range m {
		rows[i] = fmt.Sprintf("[%.7g %.7g %.7g]", r[0], r[1], r[2])
	}
	return "Matrix3{" + strings.Join(rows, " ") + "}"
}
