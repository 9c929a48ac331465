package colorspace

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/chroma/channel"
)

// RgbPrimary is the CIE xy chromaticity of one of the red, green or blue
// primaries of an RGB color space.
type RgbPrimary[T channel.Scalar] struct {
	x, y T
}

func NewRgbPrimary[T channel.Scalar](x, y T) RgbPrimary[T] {
	return RgbPrimary[T]{x, y}
}

func (p RgbPrimary[T]) X() T              { return p.x }
func (p RgbPrimary[T]) Y() T              { return p.y }
func (p RgbPrimary[T]) ToTuple() (x, y T) { return p.x, p.y }

// TristimulusDirection is the XYZ of the primary scaled to Y = 1, that is
// (x/y, 1, (1-x-y)/y).
func (p RgbPrimary[T]) TristimulusDirection() [3]T {
	return [3]T{p.x / p.y, 1, (1 - p.x - p.y) / p.y}
}

func (p RgbPrimary[T]) validate(name string) error {
	x, y := float64(p.x), float64(p.y)
	switch {
	case math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0):
		return fmt.Errorf("%w: the %s primary is not finite: %s", ErrInvalidPrimary, name, p)
	case y == 0:
		return fmt.Errorf("%w: the %s primary has y = 0", ErrInvalidPrimary, name)
	}
	return nil
}

func (p RgbPrimary[T]) String() string {
	return fmt.Sprintf("RgbPrimary{%v %v}", p.x, p.y)
}
