package channel

import (
	"fmt"
	"math"
)

// PosNormalChannel is a bounded channel whose normal range is [0, 1].
type PosNormalChannel[T Scalar] struct {
	v T
}

func NewPosNormal[T Scalar](v T) PosNormalChannel[T] {
	return PosNormalChannel[T]{v}
}

// PosNormalFromUint8 maps 0..255 linearly onto [0, 1].
func PosNormalFromUint8[T Scalar](v uint8) PosNormalChannel[T] {
	return PosNormalChannel[T]{T(float64(v) / math.MaxUint8)}
}

// PosNormalFromUint16 maps 0..65535 linearly onto [0, 1].
func PosNormalFromUint16[T Scalar](v uint16) PosNormalChannel[T] {
	return PosNormalChannel[T]{T(float64(v) / math.MaxUint16)}
}

// CastPosNormal changes the precision of the channel, saturating if needed.
func CastPosNormal[To, From Scalar](c PosNormalChannel[From]) PosNormalChannel[To] {
	return PosNormalChannel[To]{Cast[To](c.v)}
}

func (c PosNormalChannel[T]) Value() T    { return c.v }
func (c PosNormalChannel[T]) MinBound() T { return 0 }
func (c PosNormalChannel[T]) MaxBound() T { return 1 }

// Lerp interpolates linearly, pos outside [0, 1] extrapolates.
func (c PosNormalChannel[T]) Lerp(other PosNormalChannel[T], pos T) PosNormalChannel[T] {
	return PosNormalChannel[T]{lerp(c.v, other.v, pos)}
}

// Invert returns the complement of the value within [0, 1].
func (c PosNormalChannel[T]) Invert() PosNormalChannel[T] {
	return PosNormalChannel[T]{c.MaxBound() - c.v + c.MinBound()}
}

func (c PosNormalChannel[T]) Normalize() PosNormalChannel[T] {
	return c.Clamp(c.MinBound(), c.MaxBound())
}

func (c PosNormalChannel[T]) IsNormalized() bool {
	return c.v >= c.MinBound() && c.v <= c.MaxBound()
}

func (c PosNormalChannel[T]) Clamp(lo, hi T) PosNormalChannel[T] {
	return PosNormalChannel[T]{clamp(c.v, lo, hi)}
}

func (c PosNormalChannel[T]) ApproxEq(other PosNormalChannel[T], eps float64) bool {
	return approx_eq(float64(c.v), float64(other.v), eps)
}

// ToUint8 scales the normalized value to 0..255, rounding to nearest and
// clamping out of range values.
func (c PosNormalChannel[T]) ToUint8() uint8 {
	return Quantize[uint8](float64(c.v) * math.MaxUint8)
}

// ToUint16 scales the normalized value to 0..65535, rounding to nearest and
// clamping out of range values.
func (c PosNormalChannel[T]) ToUint16() uint16 {
	return Quantize[uint16](float64(c.v) * math.MaxUint16)
}

func (c PosNormalChannel[T]) String() string { return fmt.Sprintf("%v", c.v) }
