package colorspace

import (
	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/linalg"
	"github.com/kovidgoyal/chroma/xyz"
)

// Bradford cone response matrices (forward and inverse)
var (
	bradford = linalg.Matrix3[float64]{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	inv_bradford = linalg.Matrix3[float64]{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}
)

// BradfordAdaptation returns the matrix that maps XYZ values relative to
// src onto XYZ values relative to dst using the Bradford method.
func BradfordAdaptation[T channel.Scalar](src, dst xyz.Xyz[T]) linalg.Matrix3[T] {
	src_l, src_m, src_s := bradford.TransformVector(float64(src.X()), float64(src.Y()), float64(src.Z()))
	dst_l, dst_m, dst_s := bradford.TransformVector(float64(dst.X()), float64(dst.Y()), float64(dst.Z()))
	// adapt = inv_bradford * diag(ratios) * bradford
	diag := linalg.NewMatrix3([9]float64{dst_l / src_l, 0, 0, 0, dst_m / src_m, 0, 0, 0, dst_s / src_s})
	adapt := inv_bradford.Multiply(diag.Multiply(bradford))
	var ans linalg.Matrix3[T]
	for r := range 3 {
		for c := range 3 {
			ans[r][c] = T(adapt[r][c])
		}
	}
	return ans
}

// adaptation is the identity when the white points already agree, so that
// converting between spaces sharing a white point adds no error.
func adaptation[T channel.Scalar](src, dst xyz.Xyz[T]) linalg.Matrix3[T] {
	if src.ApproxEq(dst, 1e-9) {
		return linalg.Identity[T]()
	}
	return BradfordAdaptation(src, dst)
}
