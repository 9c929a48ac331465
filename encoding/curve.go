// Package encoding implements transfer functions (encodings) and the
// wrapper types that record whether a color holds linear light or
// encoded values.
package encoding

import (
	"fmt"
	"math"
	"reflect"

	"github.com/kovidgoyal/chroma/channel"
)

var _ = fmt.Print

// Encoding is a transfer function between linear light and encoded values.
// EncodeValue and DecodeValue must be mutually inverse.
type Encoding interface {
	EncodeValue(linear float64) float64
	DecodeValue(encoded float64) float64
	String() string
}

var _ Encoding = Linear{}
var _ Encoding = Gamma{}
var _ Encoding = SRGB{}
var _ Encoding = Parametric{}

// SameEncoding reports whether a and b are the same transfer function.
func SameEncoding(a, b Encoding) bool {
	return reflect.DeepEqual(a, b)
}

func EncodeChannel[T channel.Scalar](e Encoding, v T) T {
	return T(e.EncodeValue(float64(v)))
}

func DecodeChannel[T channel.Scalar](e Encoding, v T) T {
	return T(e.DecodeValue(float64(v)))
}

// Linear is the identity encoding.
type Linear struct{}

func (Linear) EncodeValue(x float64) float64 { return x }
func (Linear) DecodeValue(x float64) float64 { return x }
func (Linear) String() string                { return "Linear{}" }

// Gamma is a pure power law: encoded = linear^(1/gamma). Negative values are
// mirrored through the origin.
type Gamma struct {
	gamma, inv_gamma float64
}

func NewGamma(gamma float64) (Gamma, error) {
	if gamma <= 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return Gamma{}, fmt.Errorf("gamma must be a finite positive value, not: %v", gamma)
	}
	return Gamma{gamma: gamma, inv_gamma: 1 / gamma}, nil
}

func MustGamma(gamma float64) Gamma {
	ans, err := NewGamma(gamma)
	if err != nil {
		panic(err)
	}
	return ans
}

func mirrored_pow(x, p float64) float64 {
	if x < 0 {
		return -math.Pow(-x, p)
	}
	return math.Pow(x, p)
}

func (c Gamma) Value() float64                { return c.gamma }
func (c Gamma) EncodeValue(x float64) float64 { return mirrored_pow(x, c.inv_gamma) }
func (c Gamma) DecodeValue(x float64) float64 { return mirrored_pow(x, c.gamma) }
func (c Gamma) String() string                { return fmt.Sprintf("Gamma{%v}", c.gamma) }

// SRGB is the piecewise sRGB transfer function of IEC 61966-2-1. Negative
// values are mirrored through the origin.
type SRGB struct{}

func (SRGB) EncodeValue(x float64) float64 {
	if x < 0 {
		return -SRGB{}.EncodeValue(-x)
	}
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

func (SRGB) DecodeValue(x float64) float64 {
	if x < 0 {
		return -SRGB{}.DecodeValue(-x)
	}
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

func (SRGB) String() string { return "SRGB{}" }

// Parametric is the ICC type 4 parametric curve, which decodes as
//
//	linear = (a·x + b)^g + e   for x ≥ d
//	linear = c·x + f           for x < d
//
// Simpler curves are obtained by zeroing parameters, sRGB for instance is
// g=2.4 a=1/1.055 b=0.055/1.055 c=1/12.92 d=0.04045 e=f=0.
type Parametric struct {
	g, a, b, c, d, e, f float64
	inv_g, inv_a, inv_c float64
	threshold           float64
}

func NewParametric(g, a, b, c, d, e, f float64) (Parametric, error) {
	if a == 0 || g == 0 || c == 0 {
		return Parametric{}, fmt.Errorf("parametric curve has zero parameter value: a=%v or g=%v or c=%v", a, g, c)
	}
	if base := a*d + b; base < 0 {
		return Parametric{}, fmt.Errorf("parametric curve has negative base at the split point: a*d+b=%v", base)
	}
	ans := Parametric{g: g, a: a, b: b, c: c, d: d, e: e, f: f}
	ans.inv_g, ans.inv_a, ans.inv_c = 1/g, 1/a, 1/c
	ans.threshold = math.Pow(a*d+b, g) + e
	return ans, nil
}

func (c Parametric) DecodeValue(x float64) float64 {
	if x >= c.d {
		if base := c.a*x + c.b; base > 0 {
			return math.Pow(base, c.g) + c.e
		}
		return c.e
	}
	return c.c*x + c.f
}

func (c Parametric) EncodeValue(y float64) float64 {
	if y < c.threshold {
		return (y - c.f) * c.inv_c
	}
	if e := y - c.e; e > 0 {
		return (math.Pow(e, c.inv_g) - c.b) * c.inv_a
	}
	return 0
}

func (c Parametric) String() string {
	return fmt.Sprintf("Parametric{g: %v a: %v b: %v c: %v d: %v e: %v f: %v}", c.g, c.a, c.b, c.c, c.d, c.e, c.f)
}
