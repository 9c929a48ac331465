// Package color defines the capabilities a color model can opt into. Each
// capability is a small independent interface, so generic algorithms can be
// written against exactly the set of capabilities they need.
//
// Interfaces that construct a new value, such as FromTuple or Broadcast,
// ignore their receiver, so they can be called on the zero value of a model:
//
//	var zero rgb.Rgb[float64]
//	c := zero.FromTuple(t)
package color

import (
	"github.com/kovidgoyal/chroma/channel"
)

// Tuple3 is the flat form of a three channel color.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Tuple4 is the flat form of a four channel color.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Color is implemented by every color model. Tup is the model's channel
// tuple, its arity is fixed by the type.
type Color[Tup any] interface {
	NumChannels() int
	ToTuple() Tup
}

// FromTuple is a color that can be rebuilt losslessly from its tuple.
type FromTuple[C any, Tup any] interface {
	Color[Tup]
	FromTuple(Tup) C
}

type Color3[A, B, C any] interface {
	Color[Tuple3[A, B, C]]
}

type Color4[A, B, C, D any] interface {
	Color[Tuple4[A, B, C, D]]
}

// Flatten is a color whose channels share one scalar type and so can be
// presented as a slice. The order of the slice is documented by the model
// and is the same as the order of its tuple.
type Flatten[C any, T any] interface {
	Slice() []T
	FromSlice([]T) C
}

// Homogeneous is a color with a single kind of channel.
type Homogeneous[C any, T any] interface {
	Broadcast(T) C
	Clamp(lo, hi T) C
}

// Polar is a color with one angular channel and the rest cartesian.
type Polar[H any, Cart any] interface {
	Angular() H
	Cartesian() []Cart
}

// DeviceDependent marks a color that needs a color space to identify a
// unique stimulus, RGB for instance.
type DeviceDependent interface {
	DeviceDependent()
}

type Lerper[C any, P channel.Scalar] interface {
	Lerp(other C, pos P) C
}

type Inverter[C any] interface {
	Invert() C
}

// Bounded is a value with a normal range it can be clipped into.
type Bounded[C any] interface {
	Normalize() C
	IsNormalized() bool
}
