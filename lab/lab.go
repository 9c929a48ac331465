// Package lab implements CIE L*a*b* relative to an arbitrary reference
// white. L is in [0, 100] and a, b are roughly in [-128, 127].
package lab

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/color"
	"github.com/kovidgoyal/chroma/xyz"
)

var _ = fmt.Print

type Lab[T channel.Scalar] struct {
	l, a, b channel.FreeChannel[T]
}

var _ color.FromTuple[Lab[float64], color.Tuple3[float64, float64, float64]] = Lab[float64]{}
var _ color.Flatten[Lab[float64], float64] = Lab[float64]{}
var _ color.Homogeneous[Lab[float64], float64] = Lab[float64]{}
var _ color.Lerper[Lab[float64], float64] = Lab[float64]{}

func New[T channel.Scalar](l, a, b T) Lab[T] {
	return Lab[T]{channel.NewFree(l), channel.NewFree(a), channel.NewFree(b)}
}

const delta = 6.0 / 29.0

func f(t float64) float64 {
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func finv(t float64) float64 {
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// FromXyz converts c, which must be relative to white, into Lab.
func FromXyz[T channel.Scalar](c, white xyz.Xyz[T]) Lab[T] {
	fx := f(float64(c.X()) / float64(white.X()))
	fy := f(float64(c.Y()) / float64(white.Y()))
	fz := f(float64(c.Z()) / float64(white.Z()))
	return New(T(116*fy-16), T(500*(fx-fy)), T(200*(fy-fz)))
}

// ToXyz converts c into XYZ relative to white.
func (c Lab[T]) ToXyz(white xyz.Xyz[T]) xyz.Xyz[T] {
	fy := (float64(c.L()) + 16) / 116
	fx := fy + float64(c.A())/500
	fz := fy - float64(c.B())/200
	return xyz.New(
		T(finv(fx)*float64(white.X())),
		T(finv(fy)*float64(white.Y())),
		T(finv(fz)*float64(white.Z())),
	)
}

func (c Lab[T]) L() T { return c.l.Value() }
func (c Lab[T]) A() T { return c.a.Value() }
func (c Lab[T]) B() T { return c.b.Value() }

// Chroma is the distance from the neutral axis.
func (c Lab[T]) Chroma() T { return T(math.Hypot(float64(c.A()), float64(c.B()))) }

// ScaleChroma moves the color towards (s < 1) or away from the neutral axis
// keeping lightness and hue.
func (c Lab[T]) ScaleChroma(s T) Lab[T] { return New(c.L(), c.A()*s, c.B()*s) }

func (c Lab[T]) NumChannels() int { return 3 }

func (c Lab[T]) ToTuple() color.Tuple3[T, T, T] {
	return color.Tuple3[T, T, T]{V0: c.L(), V1: c.A(), V2: c.B()}
}

func (Lab[T]) FromTuple(t color.Tuple3[T, T, T]) Lab[T] { return New(t.V0, t.V1, t.V2) }

func (c Lab[T]) Slice() []T { return []T{c.L(), c.A(), c.B()} }

func (Lab[T]) FromSlice(v []T) Lab[T] {
	color.CheckSliceLen(v, 3, "Lab")
	return New(v[0], v[1], v[2])
}

func (Lab[T]) Broadcast(v T) Lab[T] { return New(v, v, v) }

func (c Lab[T]) Clamp(lo, hi T) Lab[T] {
	return Lab[T]{c.l.Clamp(lo, hi), c.a.Clamp(lo, hi), c.b.Clamp(lo, hi)}
}

func (c Lab[T]) Lerp(o Lab[T], pos T) Lab[T] {
	return Lab[T]{c.l.Lerp(o.l, pos), c.a.Lerp(o.a, pos), c.b.Lerp(o.b, pos)}
}

func (c Lab[T]) ApproxEq(o Lab[T], eps float64) bool {
	return c.l.ApproxEq(o.l, eps) && c.a.ApproxEq(o.a, eps) && c.b.ApproxEq(o.b, eps)
}

func (c Lab[T]) String() string {
	return fmt.Sprintf("Lab{%v %v %v}", c.L(), c.A(), c.B())
}
