package channel

import (
	"fmt"
	"math"
)

// AngleUnit selects the period of an angular channel.
type AngleUnit interface {
	Degrees | Radians | Turns
	Period() float64
	Suffix() string
}

type Degrees struct{}
type Radians struct{}
type Turns struct{}

func (Degrees) Period() float64 { return 360 }
func (Degrees) Suffix() string  { return "°" }
func (Radians) Period() float64 { return 2 * math.Pi }
func (Radians) Suffix() string  { return "rad" }
func (Turns) Period() float64   { return 1 }
func (Turns) Suffix() string    { return "turn" }

func period[U AngleUnit]() float64 {
	var u U
	return u.Period()
}

// wrap reduces v into [0, p)
func wrap(v, p float64) float64 {
	r := math.Mod(v, p)
	if r < 0 {
		r += p
	}
	if r >= p {
		// -tiny + p rounds up to p
		r = 0
	}
	return r
}

// canonical converts an angle already reduced into [0, p) to T. Rounding to
// a narrower T can carry a value just below p up to p itself, which wraps
// to 0.
func canonical[T Scalar](v, p float64) T {
	ans := T(v)
	if float64(ans) >= p {
		ans = 0
	}
	return ans
}

// AngularChannel holds an angle, such as a hue, measured in the unit U.
type AngularChannel[U AngleUnit, T Scalar] struct {
	v T
}

// NewAngular creates an angular channel, the unit must be given explicitly:
//
//	hue := channel.NewAngular[channel.Degrees](120.0)
func NewAngular[U AngleUnit, T Scalar](v T) AngularChannel[U, T] {
	return AngularChannel[U, T]{v}
}

// ConvertAngle expresses the angle in a different unit.
func ConvertAngle[V, U AngleUnit, T Scalar](c AngularChannel[U, T]) AngularChannel[V, T] {
	return AngularChannel[V, T]{T(float64(c.v) * period[V]() / period[U]())}
}

// CastAngular changes the precision of the channel, saturating if needed.
func CastAngular[To, From Scalar, U AngleUnit](c AngularChannel[U, From]) AngularChannel[U, To] {
	return AngularChannel[U, To]{Cast[To](c.v)}
}

func (c AngularChannel[U, T]) Value() T         { return c.v }
func (c AngularChannel[U, T]) Period() T        { return T(period[U]()) }
func (c AngularChannel[U, T]) Radians() float64 { return float64(c.v) * 2 * math.Pi / period[U]() }

// Lerp interpolates along the shorter arc between the two angles. When the
// angles are exactly half a period apart the arc in the positive direction
// is used. The result is normalized.
func (c AngularChannel[U, T]) Lerp(other AngularChannel[U, T], pos T) AngularChannel[U, T] {
	p := period[U]()
	half := p / 2
	a, b := wrap(float64(c.v), p), wrap(float64(other.v), p)
	d := b - a
	if d > half {
		d -= p
	} else if d <= -half {
		d += p
	}
	return AngularChannel[U, T]{canonical[T](wrap(a+d*float64(pos), p), p)}
}

// Invert rotates the angle by half a period.
func (c AngularChannel[U, T]) Invert() AngularChannel[U, T] {
	p := period[U]()
	return AngularChannel[U, T]{canonical[T](wrap(float64(c.v)+p/2, p), p)}
}

// Normalize reduces the angle into [0, period).
func (c AngularChannel[U, T]) Normalize() AngularChannel[U, T] {
	p := period[U]()
	return AngularChannel[U, T]{canonical[T](wrap(float64(c.v), p), p)}
}

func (c AngularChannel[U, T]) IsNormalized() bool {
	return c.v >= 0 && float64(c.v) < period[U]()
}

// ApproxEq compares the angles modulo the period, so that 359.9999° equals 0°.
func (c AngularChannel[U, T]) ApproxEq(other AngularChannel[U, T], eps float64) bool {
	p := period[U]()
	d := math.Abs(wrap(float64(c.v), p) - wrap(float64(other.v), p))
	return min(d, p-d) <= eps
}

func (c AngularChannel[U, T]) String() string {
	var u U
	return fmt.Sprintf("%v%s", c.v, u.Suffix())
}
