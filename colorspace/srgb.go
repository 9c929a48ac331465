package colorspace

import (
	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/encoding"
	"github.com/kovidgoyal/chroma/whitepoint"
)

// NewSRGB returns the IEC 61966-2-1 sRGB color space.
func NewSRGB[T channel.Scalar]() EncodedColorSpace[T, encoding.SRGB] {
	return MustEncodedColorSpace(
		NewRgbPrimary[T](0.64, 0.33), NewRgbPrimary[T](0.30, 0.60), NewRgbPrimary[T](0.15, 0.06),
		whitepoint.D65[T](), encoding.SRGB{})
}

// NewDisplayP3 returns Display P3, the DCI-P3 primaries with a D65 white
// point and the sRGB transfer function.
func NewDisplayP3[T channel.Scalar]() EncodedColorSpace[T, encoding.SRGB] {
	return MustEncodedColorSpace(
		NewRgbPrimary[T](0.680, 0.320), NewRgbPrimary[T](0.265, 0.690), NewRgbPrimary[T](0.150, 0.060),
		whitepoint.D65[T](), encoding.SRGB{})
}

// NewAdobeRGB returns Adobe RGB (1998), whose gamma is 563/256.
func NewAdobeRGB[T channel.Scalar]() EncodedColorSpace[T, encoding.Gamma] {
	return MustEncodedColorSpace(
		NewRgbPrimary[T](0.64, 0.33), NewRgbPrimary[T](0.21, 0.71), NewRgbPrimary[T](0.15, 0.06),
		whitepoint.D65[T](), encoding.MustGamma(563.0/256.0))
}
