package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXyz(t *testing.T) {
	c := New(0.5, 1.5, -0.25)
	assert.Equal(t, []float64{0.5, 1.5, -0.25}, c.Slice())
	assert.Equal(t, c, Xyz[float64]{}.FromTuple(c.ToTuple()))
	assert.Equal(t, c, Xyz[float64]{}.FromSlice(c.Slice()))
	assert.True(t, c.IsNormalized())
	assert.Equal(t, c, c.Normalize())
	assert.Equal(t, New(0.5, 1, 0), c.Clamp(0, 1))
	assert.Equal(t, New(0.25, 0.75, -0.125), c.Lerp(New(0.0, 0, 0), 0.5))
	assert.Equal(t, New(2.0, 2, 2), Xyz[float64]{}.Broadcast(2))
	assert.InDelta(t, 0.5, Cast[float32](c).X(), 1e-7)
}

func TestChromaticity(t *testing.T) {
	w := FromChromaticity(0.3127, 0.3290, 1.0)
	assert.InDelta(t, 1, w.Y(), 1e-15)
	assert.InDelta(t, 0.95046, w.X(), 1e-5)
	assert.InDelta(t, 1.08906, w.Z(), 1e-5)
	x, y := w.Chromaticity()
	assert.InDelta(t, 0.3127, x, 1e-12)
	assert.InDelta(t, 0.3290, y, 1e-12)

	x, y = New(0.0, 0, 0).Chromaticity()
	assert.Equal(t, [2]float64{0, 0}, [2]float64{x, y})
}
