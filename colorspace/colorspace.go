// Package colorspace derives the transform between linear RGB and CIE XYZ
// from the chromaticities of three primaries and a white point, and
// combines it with an encoding to convert colors between the two.
package colorspace

import (
	"errors"
	"fmt"

	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/encoding"
	"github.com/kovidgoyal/chroma/linalg"
	"github.com/kovidgoyal/chroma/xyz"
)

var _ = fmt.Print

var (
	// ErrDependentPrimaries is returned when the primaries cannot span XYZ,
	// it wraps linalg.ErrSingularMatrix.
	ErrDependentPrimaries = errors.New("the red, green and blue primaries are linearly dependent")
	ErrInvalidPrimary     = errors.New("invalid primary")
	// ErrInconsistentTransforms is returned when the transforms given to
	// NewLinearColorSpaceWithTransforms are not inverses of each other.
	ErrInconsistentTransforms = errors.New("the forward and inverse XYZ transforms are not inverses of each other")
)

// InverseTolerance is how far from the identity forward × inverse may be.
const InverseTolerance = 1e-4

type ColorSpace[T channel.Scalar] interface {
	RedPrimary() RgbPrimary[T]
	GreenPrimary() RgbPrimary[T]
	BluePrimary() RgbPrimary[T]
	WhitePoint() xyz.Xyz[T]
	// XyzTransform maps linear RGB to XYZ
	XyzTransform() linalg.Matrix3[T]
	// InverseXyzTransform maps XYZ to linear RGB
	InverseXyzTransform() linalg.Matrix3[T]
	ApplyTransform(r, g, b T) (x, y, z T)
	ApplyInverseTransform(x, y, z T) (r, g, b T)
}

var _ ColorSpace[float64] = LinearColorSpace[float64]{}
var _ ColorSpace[float64] = EncodedColorSpace[float64, encoding.SRGB]{}

// LinearColorSpace is an RGB color space without a transfer function. It
// is immutable and safe for concurrent use.
type LinearColorSpace[T channel.Scalar] struct {
	red, green, blue RgbPrimary[T]
	white_point      xyz.Xyz[T]
	xyz_transform    linalg.Matrix3[T]
	inv_transform    linalg.Matrix3[T]
}

func dependent_primaries(err error) error {
	return fmt.Errorf("%w: %w", ErrDependentPrimaries, err)
}

// BuildTransform derives the matrix mapping linear RGB to XYZ. The
// tristimulus directions of the primaries form the columns of P, which are
// then scaled by P⁻¹ × white so that RGB (1, 1, 1) maps to the white point.
func BuildTransform[T channel.Scalar](red, green, blue RgbPrimary[T], white_point xyz.Xyz[T]) (ans linalg.Matrix3[T], err error) {
	for _, x := range []struct {
		p    RgbPrimary[T]
		name string
	}{{red, "red"}, {green, "green"}, {blue, "blue"}} {
		if err = x.p.validate(x.name); err != nil {
			return
		}
	}
	p := linalg.FromColumns(red.TristimulusDirection(), green.TristimulusDirection(), blue.TristimulusDirection())
	inv, err := p.Inverse()
	if err != nil {
		return ans, dependent_primaries(err)
	}
	sr, sg, sb := inv.TransformVector(white_point.X(), white_point.Y(), white_point.Z())
	return p.ScaleColumns(sr, sg, sb), nil
}

// NewLinearColorSpace derives a color space from its primaries and white
// point. It fails if the primaries are linearly dependent, there is no
// usable color space in that case.
func NewLinearColorSpace[T channel.Scalar](red, green, blue RgbPrimary[T], white_point xyz.Xyz[T]) (ans LinearColorSpace[T], err error) {
	fwd, err := BuildTransform(red, green, blue, white_point)
	if err != nil {
		Logger().Debug("rejected color space", "red", red, "green", green, "blue", blue, "white", white_point, "error", err)
		return
	}
	inv, err := fwd.Inverse()
	if err != nil {
		err = dependent_primaries(err)
		Logger().Debug("rejected color space", "red", red, "green", green, "blue", blue, "white", white_point, "error", err)
		return
	}
	ans = LinearColorSpace[T]{red: red, green: green, blue: blue, white_point: white_point, xyz_transform: fwd, inv_transform: inv}
	Logger().Debug("derived color space", "forward", fwd.String(), "inverse", inv.String())
	return
}

// MustLinearColorSpace is NewLinearColorSpace for static configuration, it
// panics on error.
func MustLinearColorSpace[T channel.Scalar](red, green, blue RgbPrimary[T], white_point xyz.Xyz[T]) LinearColorSpace[T] {
	ans, err := NewLinearColorSpace(red, green, blue, white_point)
	if err != nil {
		panic(err)
	}
	return ans
}

// NewLinearColorSpaceWithTransforms uses precomputed transforms, for
// instance ones published with fewer digits than a derivation would give.
// The transforms must be inverses of each other within InverseTolerance.
func NewLinearColorSpaceWithTransforms[T channel.Scalar](red, green, blue RgbPrimary[T], white_point xyz.Xyz[T], xyz_transform, inv_transform linalg.Matrix3[T]) (ans LinearColorSpace[T], err error) {
	if !xyz_transform.Multiply(inv_transform).IsIdentity(InverseTolerance) {
		return ans, fmt.Errorf("%w: %s × %s", ErrInconsistentTransforms, xyz_transform, inv_transform)
	}
	return LinearColorSpace[T]{red: red, green: green, blue: blue, white_point: white_point, xyz_transform: xyz_transform, inv_transform: inv_transform}, nil
}

func (s LinearColorSpace[T]) RedPrimary() RgbPrimary[T]              { return s.red }
func (s LinearColorSpace[T]) GreenPrimary() RgbPrimary[T]            { return s.green }
func (s LinearColorSpace[T]) BluePrimary() RgbPrimary[T]             { return s.blue }
func (s LinearColorSpace[T]) WhitePoint() xyz.Xyz[T]                 { return s.white_point }
func (s LinearColorSpace[T]) XyzTransform() linalg.Matrix3[T]        { return s.xyz_transform }
func (s LinearColorSpace[T]) InverseXyzTransform() linalg.Matrix3[T] { return s.inv_transform }

func (s LinearColorSpace[T]) ApplyTransform(r, g, b T) (x, y, z T) {
	return s.xyz_transform.TransformVector(r, g, b)
}

func (s LinearColorSpace[T]) ApplyInverseTransform(x, y, z T) (r, g, b T) {
	return s.inv_transform.TransformVector(x, y, z)
}

func (s LinearColorSpace[T]) String() string {
	return fmt.Sprintf("LinearColorSpace{red: %s green: %s blue: %s white: %s}", s.red, s.green, s.blue, s.white_point)
}

// EncodedColorSpace is a LinearColorSpace plus the encoding its RGB values
// are stored in. It is immutable and safe for concurrent use.
type EncodedColorSpace[T channel.Scalar, E encoding.Encoding] struct {
	linear   LinearColorSpace[T]
	encoding E
}

func NewEncodedColorSpace[T channel.Scalar, E encoding.Encoding](red, green, blue RgbPrimary[T], white_point xyz.Xyz[T], e E) (ans EncodedColorSpace[T, E], err error) {
	linear, err := NewLinearColorSpace(red, green, blue, white_point)
	if err != nil {
		return
	}
	return EncodedColorSpace[T, E]{linear: linear, encoding: e}, nil
}

func MustEncodedColorSpace[T channel.Scalar, E encoding.Encoding](red, green, blue RgbPrimary[T], white_point xyz.Xyz[T], e E) EncodedColorSpace[T, E] {
	ans, err := NewEncodedColorSpace(red, green, blue, white_point, e)
	if err != nil {
		panic(err)
	}
	return ans
}

// WithEncoding pairs an existing linear space with an encoding.
func WithEncoding[T channel.Scalar, E encoding.Encoding](s LinearColorSpace[T], e E) EncodedColorSpace[T, E] {
	return EncodedColorSpace[T, E]{linear: s, encoding: e}
}

func (s EncodedColorSpace[T, E]) LinearColorSpace() LinearColorSpace[T] { return s.linear }
func (s EncodedColorSpace[T, E]) Encoding() E                           { return s.encoding }

func (s EncodedColorSpace[T, E]) RedPrimary() RgbPrimary[T]   { return s.linear.RedPrimary() }
func (s EncodedColorSpace[T, E]) GreenPrimary() RgbPrimary[T] { return s.linear.GreenPrimary() }
func (s EncodedColorSpace[T, E]) BluePrimary() RgbPrimary[T]  { return s.linear.BluePrimary() }
func (s EncodedColorSpace[T, E]) WhitePoint() xyz.Xyz[T]      { return s.linear.WhitePoint() }

func (s EncodedColorSpace[T, E]) XyzTransform() linalg.Matrix3[T] {
	return s.linear.XyzTransform()
}

func (s EncodedColorSpace[T, E]) InverseXyzTransform() linalg.Matrix3[T] {
	return s.linear.InverseXyzTransform()
}

func (s EncodedColorSpace[T, E]) ApplyTransform(r, g, b T) (x, y, z T) {
	return s.linear.ApplyTransform(r, g, b)
}

func (s EncodedColorSpace[T, E]) ApplyInverseTransform(x, y, z T) (r, g, b T) {
	return s.linear.ApplyInverseTransform(x, y, z)
}

func (s EncodedColorSpace[T, E]) EncodeChannel(v T) T { return encoding.EncodeChannel(s.encoding, v) }
func (s EncodedColorSpace[T, E]) DecodeChannel(v T) T { return encoding.DecodeChannel(s.encoding, v) }

func (s EncodedColorSpace[T, E]) String() string {
	return fmt.Sprintf("EncodedColorSpace{%s encoding: %s}", s.linear, s.encoding)
}
