// Package rgb implements the device dependent RGB and RGBA color models.
package rgb

import (
	"fmt"
	"strings"

	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/color"
	"golang.org/x/image/colornames"
)

var _ = fmt.Print

// Rgb is a color with red, green and blue channels, normally in [0, 1].
// Its tuple and slice forms are ordered red, green, blue.
type Rgb[T channel.Scalar] struct {
	r, g, b channel.PosNormalChannel[T]
}

var _ color.FromTuple[Rgb[float64], color.Tuple3[float64, float64, float64]] = Rgb[float64]{}
var _ color.Color3[float32, float32, float32] = Rgb[float32]{}
var _ color.Flatten[Rgb[float64], float64] = Rgb[float64]{}
var _ color.Homogeneous[Rgb[float64], float64] = Rgb[float64]{}
var _ color.Lerper[Rgb[float64], float64] = Rgb[float64]{}
var _ color.Inverter[Rgb[float64]] = Rgb[float64]{}
var _ color.Bounded[Rgb[float64]] = Rgb[float64]{}
var _ color.DeviceDependent = Rgb[float64]{}

func New[T channel.Scalar](r, g, b T) Rgb[T] {
	return Rgb[T]{channel.NewPosNormal(r), channel.NewPosNormal(g), channel.NewPosNormal(b)}
}

func FromChannels[T channel.Scalar](r, g, b channel.PosNormalChannel[T]) Rgb[T] {
	return Rgb[T]{r, g, b}
}

// FromUint8 maps 8-bit channel values onto [0, 1].
func FromUint8[T channel.Scalar](r, g, b uint8) Rgb[T] {
	return Rgb[T]{channel.PosNormalFromUint8[T](r), channel.PosNormalFromUint8[T](g), channel.PosNormalFromUint8[T](b)}
}

// Named returns one of the SVG 1.1 named colors (such as "tomato"). The
// values are sRGB encoded. Names are case insensitive.
func Named[T channel.Scalar](name string) (ans Rgb[T], found bool) {
	c, found := colornames.Map[strings.ToLower(name)]
	if !found {
		return
	}
	return FromUint8[T](c.R, c.G, c.B), true
}

// Cast changes the precision of every channel.
func Cast[To, From channel.Scalar](c Rgb[From]) Rgb[To] {
	return Rgb[To]{channel.CastPosNormal[To](c.r), channel.CastPosNormal[To](c.g), channel.CastPosNormal[To](c.b)}
}

func (c Rgb[T]) R() T { return c.r.Value() }
func (c Rgb[T]) G() T { return c.g.Value() }
func (c Rgb[T]) B() T { return c.b.Value() }

func (c Rgb[T]) Channels() (r, g, b channel.PosNormalChannel[T]) { return c.r, c.g, c.b }

func (c Rgb[T]) NumChannels() int { return 3 }

func (c Rgb[T]) ToTuple() color.Tuple3[T, T, T] {
	return color.Tuple3[T, T, T]{V0: c.R(), V1: c.G(), V2: c.B()}
}

func (Rgb[T]) FromTuple(t color.Tuple3[T, T, T]) Rgb[T] { return New(t.V0, t.V1, t.V2) }

func (c Rgb[T]) Slice() []T { return []T{c.R(), c.G(), c.B()} }

func (Rgb[T]) FromSlice(v []T) Rgb[T] {
	color.CheckSliceLen(v, 3, "Rgb")
	return New(v[0], v[1], v[2])
}

func (Rgb[T]) Broadcast(v T) Rgb[T] { return New(v, v, v) }

func (c Rgb[T]) Clamp(lo, hi T) Rgb[T] {
	return Rgb[T]{c.r.Clamp(lo, hi), c.g.Clamp(lo, hi), c.b.Clamp(lo, hi)}
}

func (c Rgb[T]) Lerp(o Rgb[T], pos T) Rgb[T] {
	return Rgb[T]{c.r.Lerp(o.r, pos), c.g.Lerp(o.g, pos), c.b.Lerp(o.b, pos)}
}

func (c Rgb[T]) Invert() Rgb[T] { return Rgb[T]{c.r.Invert(), c.g.Invert(), c.b.Invert()} }

func (c Rgb[T]) Normalize() Rgb[T] {
	return Rgb[T]{c.r.Normalize(), c.g.Normalize(), c.b.Normalize()}
}

func (c Rgb[T]) IsNormalized() bool {
	return c.r.IsNormalized() && c.g.IsNormalized() && c.b.IsNormalized()
}

func (c Rgb[T]) DeviceDependent() {}

// MapTransfer applies f to all three channels.
func (c Rgb[T]) MapTransfer(f func(float64) float64) Rgb[T] {
	return New(T(f(float64(c.R()))), T(f(float64(c.G()))), T(f(float64(c.B()))))
}

func (c Rgb[T]) ApproxEq(o Rgb[T], eps float64) bool {
	return c.r.ApproxEq(o.r, eps) && c.g.ApproxEq(o.g, eps) && c.b.ApproxEq(o.b, eps)
}

// ToUint8 quantizes every channel to 0..255.
func (c Rgb[T]) ToUint8() (r, g, b uint8) {
	return c.r.ToUint8(), c.g.ToUint8(), c.b.ToUint8()
}

// AsSharp returns the #RRGGBB form of the quantized color.
func (c Rgb[T]) AsSharp() string {
	r, g, b := c.ToUint8()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func (c Rgb[T]) String() string {
	return fmt.Sprintf("Rgb{%v %v %v}", c.R(), c.G(), c.B())
}
