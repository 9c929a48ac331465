package colorspace

import (
	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/encoding"
	"github.com/kovidgoyal/chroma/rgb"
	"github.com/kovidgoyal/chroma/xyz"
)

// LinearToXyz applies the forward transform of space to linear light.
func LinearToXyz[T channel.Scalar](space ColorSpace[T], c encoding.LinearColor[rgb.Rgb[T]]) xyz.Xyz[T] {
	v := c.Color()
	x, y, z := space.ApplyTransform(v.R(), v.G(), v.B())
	return xyz.New(x, y, z)
}

// EncodedToXyz decodes c and then applies the forward transform of space.
func EncodedToXyz[T channel.Scalar, E encoding.Encoding](space ColorSpace[T], c encoding.EncodedColor[rgb.Rgb[T], E]) xyz.Xyz[T] {
	return LinearToXyz(space, c.Decode())
}

// XyzToLinear applies the inverse transform of space. Colors outside the
// gamut of space give channels outside [0, 1], they are not clamped.
func XyzToLinear[T channel.Scalar](space ColorSpace[T], c xyz.Xyz[T]) encoding.LinearColor[rgb.Rgb[T]] {
	r, g, b := space.ApplyInverseTransform(c.X(), c.Y(), c.Z())
	return encoding.AsLinear(rgb.New(r, g, b))
}

func XyzToEncoded[T channel.Scalar, E encoding.Encoding](space ColorSpace[T], c xyz.Xyz[T], e E) encoding.EncodedColor[rgb.Rgb[T], E] {
	return encoding.Encode(XyzToLinear(space, c), e)
}

// DecodeColor reads c as holding values in the encoding of space and
// decodes them to linear light.
func DecodeColor[C encoding.Encodable[C], T channel.Scalar, E encoding.Encoding](space EncodedColorSpace[T, E], c C) encoding.LinearColor[C] {
	return encoding.NewEncoded(c, space.Encoding()).Decode()
}

// ToSpaceEncoding expresses c in the encoding of space. Nothing is computed
// when c already uses that encoding.
func ToSpaceEncoding[C encoding.Encodable[C], T channel.Scalar, E, EIn encoding.Encoding](space EncodedColorSpace[T, E], c encoding.EncodedColor[C, EIn]) encoding.EncodedColor[C, E] {
	return encoding.Reencode(c, space.Encoding())
}

func (s LinearColorSpace[T]) ColorToXyz(c encoding.LinearColor[rgb.Rgb[T]]) xyz.Xyz[T] {
	return LinearToXyz[T](s, c)
}

func (s LinearColorSpace[T]) XyzToColor(c xyz.Xyz[T]) encoding.LinearColor[rgb.Rgb[T]] {
	return XyzToLinear[T](s, c)
}

// Encoded tags c as holding values in the encoding of s.
func (s EncodedColorSpace[T, E]) Encoded(c rgb.Rgb[T]) encoding.EncodedColor[rgb.Rgb[T], E] {
	return encoding.NewEncoded(c, s.encoding)
}

// ColorToXyz converts c, whose values are in the encoding of s.
func (s EncodedColorSpace[T, E]) ColorToXyz(c rgb.Rgb[T]) xyz.Xyz[T] {
	return EncodedToXyz[T](s, s.Encoded(c))
}

// XyzToColor returns the color encoded in the encoding of s.
func (s EncodedColorSpace[T, E]) XyzToColor(c xyz.Xyz[T]) rgb.Rgb[T] {
	return XyzToEncoded[T](s, c, s.encoding).Color()
}
