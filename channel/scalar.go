// Package channel implements the three kinds of color channel: bounded
// channels normalized into [0, 1], free channels with no natural range and
// angular channels that live on a circle.
package channel

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

var _ = fmt.Print

// Scalar is the numeric type a channel stores its value in.
type Scalar interface {
	constraints.Float
}

// DefaultEpsilon is the tolerance used by ApproxEq when none is more appropriate.
const DefaultEpsilon = 1e-6

// Cast converts between floating point precisions. Values outside the
// representable range of To saturate to its largest finite magnitude
// instead of becoming infinite.
func Cast[To, From Scalar](v From) To {
	f := float64(v)
	ans := To(f)
	if math.IsInf(float64(ans), 0) && !math.IsInf(f, 0) {
		if f > 0 {
			return To(math.MaxFloat32)
		}
		return To(-math.MaxFloat32)
	}
	return ans
}

// Quantize rounds v to the nearest integer and clamps it to [0, max I].
// NaN quantizes to zero.
func Quantize[I constraints.Unsigned, T Scalar](v T) I {
	top := ^I(0)
	f := float64(v)
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= float64(top):
		return top
	}
	return I(math.Round(f))
}

func approx_eq(a, b, eps float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, eps, eps)
}

func lerp[T Scalar](a, b, pos T) T {
	return a + (b-a)*pos
}

func clamp[T Scalar](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
