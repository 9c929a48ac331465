package channel

import (
	"fmt"
)

// FreeChannel holds a value with no natural bounds, such as luminance or
// one of the XYZ tristimulus values. It is always considered normalized.
type FreeChannel[T Scalar] struct {
	v T
}

func NewFree[T Scalar](v T) FreeChannel[T] {
	return FreeChannel[T]{v}
}

// CastFree changes the precision of the channel, saturating if needed.
func CastFree[To, From Scalar](c FreeChannel[From]) FreeChannel[To] {
	return FreeChannel[To]{Cast[To](c.v)}
}

func (c FreeChannel[T]) Value() T { return c.v }

func (c FreeChannel[T]) Lerp(other FreeChannel[T], pos T) FreeChannel[T] {
	return FreeChannel[T]{lerp(c.v, other.v, pos)}
}

// Invert negates the value, there being no range to complement it within.
func (c FreeChannel[T]) Invert() FreeChannel[T] { return FreeChannel[T]{-c.v} }

func (c FreeChannel[T]) Normalize() FreeChannel[T] { return c }
func (c FreeChannel[T]) IsNormalized() bool        { return true }

func (c FreeChannel[T]) Clamp(lo, hi T) FreeChannel[T] {
	return FreeChannel[T]{clamp(c.v, lo, hi)}
}

func (c FreeChannel[T]) ApproxEq(other FreeChannel[T], eps float64) bool {
	return approx_eq(float64(c.v), float64(other.v), eps)
}

// ToUint8 clamps the raw value to 0..255 and rounds it.
func (c FreeChannel[T]) ToUint8() uint8 { return Quantize[uint8](c.v) }

// ToUint16 clamps the raw value to 0..65535 and rounds it.
func (c FreeChannel[T]) ToUint16() uint16 { return Quantize[uint16](c.v) }

func (c FreeChannel[T]) String() string { return fmt.Sprintf("%v", c.v) }
