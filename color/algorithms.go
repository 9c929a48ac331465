package color

import (
	"fmt"

	"github.com/kovidgoyal/chroma/channel"
	"gonum.org/v1/gonum/floats/scalar"
)

var _ = fmt.Print

// RoundTrip rebuilds c from its tuple.
func RoundTrip[C FromTuple[C, Tup], Tup any](c C) C {
	var zero C
	return zero.FromTuple(c.ToTuple())
}

// Broadcast returns a C with every channel set to v.
func Broadcast[C Homogeneous[C, T], T any](v T) C {
	var zero C
	return zero.Broadcast(v)
}

func ClampAll[C Homogeneous[C, T], T any](c C, lo, hi T) C {
	return c.Clamp(lo, hi)
}

// Clamp01 clamps every channel of c into [0, 1].
func Clamp01[C Homogeneous[C, T], T channel.Scalar](c C) C {
	return ClampAll[C, T](c, 0, 1)
}

// Normalize returns the normalized color and whether it differed from c.
func Normalize[C Bounded[C]](c C) (C, bool) {
	if c.IsNormalized() {
		return c, false
	}
	return c.Normalize(), true
}

func Complement[C Inverter[C]](c C) C {
	return c.Invert()
}

// Mix blends a and b, weight is the share of b in the result.
func Mix[C Lerper[C, P], P channel.Scalar](a, b C, weight P) C {
	return a.Lerp(b, weight)
}

// Gradient returns steps colors evenly spaced from a to b inclusive.
func Gradient[C Lerper[C, P], P channel.Scalar](a, b C, steps int) []C {
	switch {
	case steps < 1:
		return nil
	case steps == 1:
		return []C{a}
	}
	ans := make([]C, steps)
	for i := range steps {
		ans[i] = a.Lerp(b, P(i)/P(steps-1))
	}
	return ans
}

// Flattened concatenates the channel values of colors, in order.
func Flattened[C Flatten[C, T], T any](colors []C) []T {
	if len(colors) == 0 {
		return nil
	}
	first := colors[0].Slice()
	ans := make([]T, 0, len(first)*len(colors))
	ans = append(ans, first...)
	for _, c := range colors[1:] {
		ans = append(ans, c.Slice()...)
	}
	return ans
}

// FromFlat builds a C from a slice ordered as C.Slice() orders it.
func FromFlat[C Flatten[C, T], T any](vals []T) C {
	var zero C
	return zero.FromSlice(vals)
}

// ApproxEqual compares the flattened channels of two colors.
func ApproxEqual[C Flatten[C, T], T channel.Scalar](a, b C, eps float64) bool {
	x, y := a.Slice(), b.Slice()
	if len(x) != len(y) {
		return false
	}
	for i, v := range x {
		if !scalar.EqualWithinAbsOrRel(float64(v), float64(y[i]), eps, eps) {
			return false
		}
	}
	return true
}

// CheckSliceLen panics if a slice handed to FromSlice has the wrong length.
func CheckSliceLen[T any](vals []T, n int, model string) {
	if len(vals) != n {
		panic(fmt.Sprintf("%s needs exactly %d channel values, got: %d", model, n, len(vals)))
	}
}
