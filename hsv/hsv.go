// Package hsv implements the hue, saturation, value model, a polar form of
// RGB that is as device dependent as the RGB it came from.
package hsv

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/color"
	"github.com/kovidgoyal/chroma/rgb"
)

var _ = fmt.Print

// Hsv tuples are ordered hue (degrees), saturation, value.
type Hsv[T channel.Scalar] struct {
	h    channel.AngularChannel[channel.Degrees, T]
	s, v channel.PosNormalChannel[T]
}

var _ color.FromTuple[Hsv[float64], color.Tuple3[float64, float64, float64]] = Hsv[float64]{}
var _ color.Polar[channel.AngularChannel[channel.Degrees, float64], channel.PosNormalChannel[float64]] = Hsv[float64]{}
var _ color.Lerper[Hsv[float64], float64] = Hsv[float64]{}
var _ color.Inverter[Hsv[float64]] = Hsv[float64]{}
var _ color.Bounded[Hsv[float64]] = Hsv[float64]{}
var _ color.DeviceDependent = Hsv[float64]{}

func New[T channel.Scalar](hue, saturation, value T) Hsv[T] {
	return Hsv[T]{channel.NewAngular[channel.Degrees](hue), channel.NewPosNormal(saturation), channel.NewPosNormal(value)}
}

func (c Hsv[T]) H() T { return c.h.Value() }
func (c Hsv[T]) S() T { return c.s.Value() }
func (c Hsv[T]) V() T { return c.v.Value() }

func (c Hsv[T]) NumChannels() int { return 3 }

func (c Hsv[T]) ToTuple() color.Tuple3[T, T, T] {
	return color.Tuple3[T, T, T]{V0: c.H(), V1: c.S(), V2: c.V()}
}

func (Hsv[T]) FromTuple(t color.Tuple3[T, T, T]) Hsv[T] { return New(t.V0, t.V1, t.V2) }

func (c Hsv[T]) Angular() channel.AngularChannel[channel.Degrees, T] { return c.h }

func (c Hsv[T]) Cartesian() []channel.PosNormalChannel[T] {
	return []channel.PosNormalChannel[T]{c.s, c.v}
}

// Lerp takes the shorter way round the hue circle.
func (c Hsv[T]) Lerp(o Hsv[T], pos T) Hsv[T] {
	return Hsv[T]{c.h.Lerp(o.h, pos), c.s.Lerp(o.s, pos), c.v.Lerp(o.v, pos)}
}

func (c Hsv[T]) Invert() Hsv[T] { return Hsv[T]{c.h.Invert(), c.s.Invert(), c.v.Invert()} }

func (c Hsv[T]) Normalize() Hsv[T] {
	return Hsv[T]{c.h.Normalize(), c.s.Normalize(), c.v.Normalize()}
}

func (c Hsv[T]) IsNormalized() bool {
	return c.h.IsNormalized() && c.s.IsNormalized() && c.v.IsNormalized()
}

func (c Hsv[T]) DeviceDependent() {}

// MapTransfer applies f to saturation and value, hue is exempt.
func (c Hsv[T]) MapTransfer(f func(float64) float64) Hsv[T] {
	return Hsv[T]{c.h, channel.NewPosNormal(T(f(float64(c.S())))), channel.NewPosNormal(T(f(float64(c.V()))))}
}

func (c Hsv[T]) ApproxEq(o Hsv[T], eps float64) bool {
	return c.h.ApproxEq(o.h, eps) && c.s.ApproxEq(o.s, eps) && c.v.ApproxEq(o.v, eps)
}

func (c Hsv[T]) String() string {
	return fmt.Sprintf("Hsv{%v %v %v}", c.h, c.S(), c.V())
}

// FromRgb converts from RGB, achromatic colors get a hue of zero.
func FromRgb[T channel.Scalar](c rgb.Rgb[T]) Hsv[T] {
	r, g, b := float64(c.R()), float64(c.G()), float64(c.B())
	hi, lo := max(r, g, b), min(r, g, b)
	d := hi - lo
	var h, s float64
	if hi != 0 {
		s = d / hi
	}
	if d != 0 {
		switch hi {
		case r:
			h = math.Mod((g-b)/d, 6)
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}
	return Hsv[T]{channel.NewAngular[channel.Degrees](T(h)).Normalize(), channel.NewPosNormal(T(s)), channel.NewPosNormal(T(hi))}
}

func (c Hsv[T]) ToRgb() rgb.Rgb[T] {
	h := float64(c.h.Normalize().Value()) / 60
	s, v := float64(c.S()), float64(c.V())
	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	m := v - chroma
	return rgb.New(T(r+m), T(g+m), T(b+m))
}
