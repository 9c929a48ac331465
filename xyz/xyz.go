// Package xyz implements the device independent CIE 1931 XYZ tristimulus
// color model, scaled so that the reference white has Y = 1.
package xyz

import (
	"fmt"

	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/color"
)

var _ = fmt.Print

// Xyz holds tristimulus values. Its tuple and slice forms are ordered X, Y, Z.
type Xyz[T channel.Scalar] struct {
	x, y, z channel.FreeChannel[T]
}

var _ color.FromTuple[Xyz[float64], color.Tuple3[float64, float64, float64]] = Xyz[float64]{}
var _ color.Color3[float64, float64, float64] = Xyz[float64]{}
var _ color.Flatten[Xyz[float64], float64] = Xyz[float64]{}
var _ color.Homogeneous[Xyz[float64], float64] = Xyz[float64]{}
var _ color.Lerper[Xyz[float64], float64] = Xyz[float64]{}

func New[T channel.Scalar](x, y, z T) Xyz[T] {
	return Xyz[T]{channel.NewFree(x), channel.NewFree(y), channel.NewFree(z)}
}

// FromChromaticity builds the color with chromaticity (x, y) and luminance Y.
// y must not be zero.
func FromChromaticity[T channel.Scalar](x, y, Y T) Xyz[T] {
	return New(x*Y/y, Y, (1-x-y)*Y/y)
}

func Cast[To, From channel.Scalar](c Xyz[From]) Xyz[To] {
	return Xyz[To]{channel.CastFree[To](c.x), channel.CastFree[To](c.y), channel.CastFree[To](c.z)}
}

func (c Xyz[T]) X() T { return c.x.Value() }
func (c Xyz[T]) Y() T { return c.y.Value() }
func (c Xyz[T]) Z() T { return c.z.Value() }

// Chromaticity returns the CIE xy coordinates of the color. Black has no
// chromaticity and returns (0, 0).
func (c Xyz[T]) Chromaticity() (x, y T) {
	sum := c.X() + c.Y() + c.Z()
	if sum == 0 {
		return 0, 0
	}
	return c.X() / sum, c.Y() / sum
}

func (c Xyz[T]) NumChannels() int { return 3 }

func (c Xyz[T]) ToTuple() color.Tuple3[T, T, T] {
	return color.Tuple3[T, T, T]{V0: c.X(), V1: c.Y(), V2: c.Z()}
}

func (Xyz[T]) FromTuple(t color.Tuple3[T, T, T]) Xyz[T] { return New(t.V0, t.V1, t.V2) }

func (c Xyz[T]) Slice() []T { return []T{c.X(), c.Y(), c.Z()} }

func (Xyz[T]) FromSlice(v []T) Xyz[T] {
	color.CheckSliceLen(v, 3, "Xyz")
	return New(v[0], v[1], v[2])
}

func (Xyz[T]) Broadcast(v T) Xyz[T] { return New(v, v, v) }

func (c Xyz[T]) Clamp(lo, hi T) Xyz[T] {
	return Xyz[T]{c.x.Clamp(lo, hi), c.y.Clamp(lo, hi), c.z.Clamp(lo, hi)}
}

func (c Xyz[T]) Lerp(o Xyz[T], pos T) Xyz[T] {
	return Xyz[T]{c.x.Lerp(o.x, pos), c.y.Lerp(o.y, pos), c.z.Lerp(o.z, pos)}
}

func (c Xyz[T]) Normalize() Xyz[T]  { return c }
func (c Xyz[T]) IsNormalized() bool { return true }

func (c Xyz[T]) ApproxEq(o Xyz[T], eps float64) bool {
	return c.x.ApproxEq(o.x, eps) && c.y.ApproxEq(o.y, eps) && c.z.ApproxEq(o.z, eps)
}

func (c Xyz[T]) String() string {
	return fmt.Sprintf("Xyz{%v %v %v}", c.X(), c.Y(), c.Z())
}
