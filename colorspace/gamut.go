package colorspace

import (
	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/encoding"
	"github.com/kovidgoyal/chroma/lab"
	"github.com/kovidgoyal/chroma/rgb"
	"github.com/kovidgoyal/chroma/xyz"
)

const gamut_map_iterations = 24

func in_gamut[T channel.Scalar](c rgb.Rgb[T]) bool {
	const eps = 1e-12
	for _, v := range c.Slice() {
		if float64(v) < -eps || float64(v) > 1+eps {
			return false
		}
	}
	return true
}

func clamp01[T channel.Scalar](c rgb.Rgb[T]) rgb.Rgb[T] { return c.Clamp(0, 1) }

// GamutMapLab converts c, whose white point is lab_white, into the space s.
// Colors outside the gamut of s are brought in by scaling their chroma
// towards zero with L kept constant, searching for the largest scale that
// still fits. The returned color is encoded in the encoding of s and mapped
// reports whether chroma had to be reduced.
func GamutMapLab[T channel.Scalar, E encoding.Encoding](s EncodedColorSpace[T, E], c lab.Lab[T], lab_white xyz.Xyz[T]) (ans rgb.Rgb[T], mapped bool) {
	adapt := adaptation(lab_white, s.WhitePoint())
	to_linear := func(l lab.Lab[T]) rgb.Rgb[T] {
		v := l.ToXyz(lab_white)
		x, y, z := adapt.TransformVector(v.X(), v.Y(), v.Z())
		r, g, b := s.ApplyInverseTransform(x, y, z)
		return rgb.New(r, g, b)
	}
	encode := func(v rgb.Rgb[T]) rgb.Rgb[T] {
		return encoding.Encode(encoding.AsLinear(clamp01(v)), s.Encoding()).Color()
	}
	lin := to_linear(c)
	if in_gamut(lin) {
		return encode(lin), false
	}
	if c.A() == 0 && c.B() == 0 {
		return encode(lin), true
	}
	lo, hi := 0.0, 1.0
	var found rgb.Rgb[T]
	ok := false
	for range gamut_map_iterations {
		mid := (lo + hi) / 2
		q := to_linear(c.ScaleChroma(T(mid)))
		if in_gamut(q) {
			found, ok = q, true
			lo = mid
		} else {
			hi = mid
		}
	}
	if !ok {
		// even the fully desaturated color does not fit, clip it
		found = to_linear(c.ScaleChroma(0))
	}
	return encode(found), true
}
