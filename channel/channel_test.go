package channel

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestPosNormalChannel(t *testing.T) {
	t.Run("Invert", func(t *testing.T) {
		c := NewPosNormal(0.3)
		assert.InDelta(t, 0.7, c.Invert().Value(), 1e-12)
		// 1 - (1 - v) is exact for v in [0.5, 1] and for dyadic values
		for _, v := range []float64{0, 0.25, 0.5, 0.125, 0.7, 0.6, 0.9, 1} {
			p := NewPosNormal(v)
			require.Equal(t, p, p.Invert().Invert(), "%v", v)
		}
		q := NewPosNormal(float32(0.25))
		require.Equal(t, float32(0.75), q.Invert().Value())
		require.Equal(t, q, q.Invert().Invert())
		// below 0.5 the intermediate 1 - v is rounded, so the value comes back
		// within one ulp of 1 - v
		for _, v := range []float64{0.3, 0.1, 0.01, 0.123456789} {
			got := NewPosNormal(v).Invert().Invert().Value()
			ulp := math.Nextafter(1-v, 2) - (1 - v)
			require.LessOrEqual(t, math.Abs(got-v), ulp, "%v came back as %v", v, got)
		}
		assert.Equal(t, math.Nextafter(0.3, 1), NewPosNormal(0.3).Invert().Invert().Value())
	})
	t.Run("Lerp", func(t *testing.T) {
		a, b := NewPosNormal(0.2), NewPosNormal(0.6)
		assert.Equal(t, a, a.Lerp(b, 0))
		assert.InDelta(t, 0.6, a.Lerp(b, 1).Value(), 1e-12)
		assert.InDelta(t, 0.4, a.Lerp(b, 0.5).Value(), 1e-12)
		// extrapolation is allowed
		assert.InDelta(t, 1.0, a.Lerp(b, 2).Value(), 1e-12)
	})
	t.Run("Normalize", func(t *testing.T) {
		for _, tc := range []struct{ in, out float64 }{{-0.5, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {1.5, 1}} {
			c := NewPosNormal(tc.in)
			assert.Equal(t, tc.in >= 0 && tc.in <= 1, c.IsNormalized())
			assert.Equal(t, tc.out, c.Normalize().Value())
			assert.True(t, c.Normalize().IsNormalized())
		}
	})
	t.Run("Quantize", func(t *testing.T) {
		assert.Equal(t, uint8(0), NewPosNormal(-1.0).ToUint8())
		assert.Equal(t, uint8(128), NewPosNormal(0.5).ToUint8())
		assert.Equal(t, uint8(255), NewPosNormal(1.7).ToUint8())
		assert.Equal(t, uint16(65535), NewPosNormal(1.0).ToUint16())
		assert.Equal(t, uint16(32768), NewPosNormal(0.5).ToUint16())
		for i := range 256 {
			require.Equal(t, uint8(i), PosNormalFromUint8[float32](uint8(i)).ToUint8())
		}
		assert.InDelta(t, 1.0, PosNormalFromUint16[float64](math.MaxUint16).Value(), 1e-12)
	})
	t.Run("Cast", func(t *testing.T) {
		c := CastPosNormal[float32](NewPosNormal(0.1))
		assert.InDelta(t, 0.1, float64(c.Value()), 1e-7)
		back := CastPosNormal[float64](c)
		assert.True(t, back.ApproxEq(NewPosNormal(0.1), 1e-7))
	})
}

func TestFreeChannel(t *testing.T) {
	c := NewFree(2.5)
	assert.True(t, c.IsNormalized())
	assert.Equal(t, c, c.Normalize())
	assert.Equal(t, -2.5, c.Invert().Value())
	assert.Equal(t, c, c.Invert().Invert())
	assert.Equal(t, 1.0, c.Clamp(0, 1).Value())
	assert.InDelta(t, 3.75, c.Lerp(NewFree(5.0), 0.5).Value(), 1e-12)
	assert.Equal(t, uint8(3), c.ToUint8())
	assert.Equal(t, uint8(255), NewFree(300.0).ToUint8())
	assert.Equal(t, uint8(0), NewFree(-4.0).ToUint8())
	assert.Equal(t, uint16(300), NewFree(300.2).ToUint16())
}

func TestCast(t *testing.T) {
	assert.Equal(t, float32(math.MaxFloat32), Cast[float32](1e300))
	assert.Equal(t, float32(-math.MaxFloat32), Cast[float32](-1e300))
	assert.True(t, math.IsInf(float64(Cast[float32](math.Inf(1))), 1))
	assert.Equal(t, 0.5, Cast[float64](float32(0.5)))
	f := CastFree[float32](NewFree(1e300))
	assert.Equal(t, float32(math.MaxFloat32), f.Value())
	assert.Equal(t, uint8(0), Quantize[uint8](math.NaN()))
	assert.Equal(t, uint8(3), Quantize[uint8](2.5))
	assert.Equal(t, uint32(math.MaxUint32), Quantize[uint32](1e12))
}

func TestAngularChannel(t *testing.T) {
	deg := func(v float64) AngularChannel[Degrees, float64] { return NewAngular[Degrees](v) }
	t.Run("ShortestArc", func(t *testing.T) {
		testCases := []struct {
			a, b, pos, want float64
		}{
			{350, 10, 0.5, 0},
			{10, 350, 0.5, 0},
			{10, 350, 0.25, 5},
			{0, 90, 0.5, 45},
			{90, 0, 0.5, 45},
			{720, 30, 0.5, 15},
			{-30, 30, 0.5, 0},
			{20, 40, 0, 20},
			{20, 40, 1, 40},
		}
		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%v->%v@%v", tc.a, tc.b, tc.pos), func(t *testing.T) {
				got := deg(tc.a).Lerp(deg(tc.b), tc.pos)
				require.True(t, got.ApproxEq(deg(tc.want), 1e-9), "got: %v", got)
				require.True(t, got.IsNormalized())
			})
		}
	})
	t.Run("Antipodal", func(t *testing.T) {
		assert.InDelta(t, 90.0, deg(0).Lerp(deg(180), 0.5).Value(), 1e-9)
		assert.InDelta(t, 270.0, deg(180).Lerp(deg(0), 0.5).Value(), 1e-9)
	})
	t.Run("Invert", func(t *testing.T) {
		assert.InDelta(t, 190.0, deg(10).Invert().Value(), 1e-9)
		assert.InDelta(t, 10.0, deg(190).Invert().Value(), 1e-9)
		assert.InDelta(t, 10.0, deg(10).Invert().Invert().Value(), 1e-9)
		r := NewAngular[Radians](0.5)
		assert.InDelta(t, 0.5+math.Pi, r.Invert().Value(), 1e-12)
		tu := NewAngular[Turns](float32(0.75))
		assert.InDelta(t, 0.25, float64(tu.Invert().Value()), 1e-6)
		// 179.99999 + 180 rounds up to 360 in float32
		f := NewAngular[Degrees](float32(179.99999)).Invert()
		assert.True(t, f.IsNormalized(), "got: %v", f)
		assert.True(t, f.ApproxEq(NewAngular[Degrees](float32(0)), 1e-4))
	})
	t.Run("Normalize", func(t *testing.T) {
		assert.False(t, deg(360).IsNormalized())
		assert.Equal(t, 0.0, deg(360).Normalize().Value())
		assert.InDelta(t, 350.0, deg(-10).Normalize().Value(), 1e-9)
		assert.InDelta(t, 45.0, deg(765).Normalize().Value(), 1e-9)
		assert.True(t, deg(359.5).IsNormalized())
		assert.True(t, deg(-1e-20).Normalize().IsNormalized())
		for _, v := range []float32{-1e-5, -1e-7, 360, 720, -360.00002} {
			n := NewAngular[Degrees](v).Normalize()
			require.True(t, n.IsNormalized(), "%v normalized to %v", v, n)
		}
		r := NewAngular[Radians](float32(-1e-8)).Normalize()
		require.True(t, r.IsNormalized(), "got: %v", r)
		assert.Equal(t, float32(0), r.Value())
		l := NewAngular[Degrees](float32(359.99998)).Lerp(NewAngular[Degrees](float32(359.99999)), 0.5)
		assert.True(t, l.IsNormalized(), "got: %v", l)
	})
	t.Run("ApproxEq", func(t *testing.T) {
		assert.True(t, deg(359.9999999).ApproxEq(deg(0), 1e-6))
		assert.False(t, deg(1).ApproxEq(deg(359), 1e-6))
	})
	t.Run("ConvertAngle", func(t *testing.T) {
		r := ConvertAngle[Radians](deg(180))
		assert.InDelta(t, math.Pi, r.Value(), 1e-12)
		tu := ConvertAngle[Turns](r)
		assert.InDelta(t, 0.5, tu.Value(), 1e-12)
		assert.InDelta(t, math.Pi/2, deg(90).Radians(), 1e-12)
		assert.Equal(t, "90°", deg(90).String())
	})
}
