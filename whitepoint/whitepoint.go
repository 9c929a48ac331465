// Package whitepoint has the two reference whites almost everything needs.
// Other illuminants can be built with xyz.FromChromaticity.
package whitepoint

import (
	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/xyz"
)

// D65 is the CIE standard illuminant D65 (noon daylight), 2° observer.
func D65[T channel.Scalar]() xyz.Xyz[T] {
	return xyz.New[T](0.95047, 1.00000, 1.08883)
}

// D50 is the ICC profile connection space white. Note that its Z value is the
// one from the ICC specification rather than the CIE one.
func D50[T channel.Scalar]() xyz.Xyz[T] {
	return xyz.New[T](0.96422, 1.00000, 0.82491)
}
