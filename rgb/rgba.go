package rgb

import (
	"fmt"

	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/color"
)

// Rgba is an Rgb with a straight (not premultiplied) alpha channel. Its
// tuple and slice forms are ordered red, green, blue, alpha. Alpha is
// always linear and never takes part in a transfer function.
type Rgba[T channel.Scalar] struct {
	Rgb[T]
	a channel.PosNormalChannel[T]
}

var _ color.FromTuple[Rgba[float64], color.Tuple4[float64, float64, float64, float64]] = Rgba[float64]{}
var _ color.Color4[float64, float64, float64, float64] = Rgba[float64]{}
var _ color.Flatten[Rgba[float64], float64] = Rgba[float64]{}
var _ color.Homogeneous[Rgba[float64], float64] = Rgba[float64]{}
var _ color.Lerper[Rgba[float64], float64] = Rgba[float64]{}
var _ color.Bounded[Rgba[float64]] = Rgba[float64]{}

func NewRgba[T channel.Scalar](r, g, b, a T) Rgba[T] {
	return Rgba[T]{New(r, g, b), channel.NewPosNormal(a)}
}

func WithAlpha[T channel.Scalar](c Rgb[T], a T) Rgba[T] {
	return Rgba[T]{c, channel.NewPosNormal(a)}
}

func (c Rgba[T]) A() T          { return c.a.Value() }
func (c Rgba[T]) Color() Rgb[T] { return c.Rgb }

func (c Rgba[T]) NumChannels() int { return 4 }

func (c Rgba[T]) ToTuple() color.Tuple4[T, T, T, T] {
	return color.Tuple4[T, T, T, T]{V0: c.R(), V1: c.G(), V2: c.B(), V3: c.A()}
}

func (Rgba[T]) FromTuple(t color.Tuple4[T, T, T, T]) Rgba[T] {
	return NewRgba(t.V0, t.V1, t.V2, t.V3)
}

func (c Rgba[T]) Slice() []T { return []T{c.R(), c.G(), c.B(), c.A()} }

func (Rgba[T]) FromSlice(v []T) Rgba[T] {
	color.CheckSliceLen(v, 4, "Rgba")
	return NewRgba(v[0], v[1], v[2], v[3])
}

func (Rgba[T]) Broadcast(v T) Rgba[T] { return NewRgba(v, v, v, v) }

func (c Rgba[T]) Clamp(lo, hi T) Rgba[T] {
	return Rgba[T]{c.Rgb.Clamp(lo, hi), c.a.Clamp(lo, hi)}
}

func (c Rgba[T]) Lerp(o Rgba[T], pos T) Rgba[T] {
	return Rgba[T]{c.Rgb.Lerp(o.Rgb, pos), c.a.Lerp(o.a, pos)}
}

// Invert inverts the color channels, alpha is unchanged.
func (c Rgba[T]) Invert() Rgba[T] { return Rgba[T]{c.Rgb.Invert(), c.a} }

func (c Rgba[T]) Normalize() Rgba[T] { return Rgba[T]{c.Rgb.Normalize(), c.a.Normalize()} }

func (c Rgba[T]) IsNormalized() bool { return c.Rgb.IsNormalized() && c.a.IsNormalized() }

// MapTransfer applies f to the color channels only.
func (c Rgba[T]) MapTransfer(f func(float64) float64) Rgba[T] {
	return Rgba[T]{c.Rgb.MapTransfer(f), c.a}
}

func (c Rgba[T]) ApproxEq(o Rgba[T], eps float64) bool {
	return c.Rgb.ApproxEq(o.Rgb, eps) && c.a.ApproxEq(o.a, eps)
}

func (c Rgba[T]) String() string {
	return fmt.Sprintf("Rgba{%v %v %v %v}", c.R(), c.G(), c.B(), c.A())
}
