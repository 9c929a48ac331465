package colorspace

import (
	"fmt"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/chroma/channel"
	"github.com/kovidgoyal/chroma/encoding"
	"github.com/kovidgoyal/chroma/linalg"
	"github.com/kovidgoyal/chroma/rgb"
)

const parallel_threshold = 4096

// Converter converts RGB colors from one space to another. The linear
// steps, src to XYZ, white point adaptation and XYZ to dst, are fused into a
// single matrix so a conversion is a decode, one matrix multiply and an
// encode. It is immutable and safe for concurrent use.
type Converter[T channel.Scalar, ES, ED encoding.Encoding] struct {
	src    EncodedColorSpace[T, ES]
	dst    EncodedColorSpace[T, ED]
	matrix linalg.Matrix3[T]
}

func NewConverter[T channel.Scalar, ES, ED encoding.Encoding](src EncodedColorSpace[T, ES], dst EncodedColorSpace[T, ED]) *Converter[T, ES, ED] {
	adapt := adaptation(src.WhitePoint(), dst.WhitePoint())
	m := dst.InverseXyzTransform().Multiply(adapt.Multiply(src.XyzTransform()))
	Logger().Debug("fused color space conversion", "src", src.String(), "dst", dst.String(), "matrix", m.String())
	return &Converter[T, ES, ED]{src: src, dst: dst, matrix: m}
}

// Matrix maps linear RGB in the source space to linear RGB in the
// destination space.
func (c *Converter[T, ES, ED]) Matrix() linalg.Matrix3[T] { return c.matrix }

// ConvertLinear converts linear light. The result is not clamped, colors
// outside the destination gamut have channels outside [0, 1].
func (c *Converter[T, ES, ED]) ConvertLinear(v encoding.LinearColor[rgb.Rgb[T]]) encoding.LinearColor[rgb.Rgb[T]] {
	return v.Apply(func(x rgb.Rgb[T]) rgb.Rgb[T] {
		r, g, b := c.matrix.TransformVector(x.R(), x.G(), x.B())
		return rgb.New(r, g, b)
	})
}

// Convert converts a color encoded in the encoding of the source space into
// one encoded in the encoding of the destination space.
func (c *Converter[T, ES, ED]) Convert(v rgb.Rgb[T]) rgb.Rgb[T] {
	lin := c.ConvertLinear(c.src.Encoded(v).Decode())
	return encoding.Encode(lin, c.dst.Encoding()).Color()
}

// ConvertSlice converts src into dst, which must be at least as long, using
// all available CPUs for large inputs.
func (c *Converter[T, ES, ED]) ConvertSlice(dst, src []rgb.Rgb[T]) (err error) {
	if len(dst) < len(src) {
		return fmt.Errorf("destination has room for %d colors, need %d", len(dst), len(src))
	}
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			dst[i] = c.Convert(src[i])
		}
	}
	if len(src) < parallel_threshold {
		f(0, len(src))
		return
	}
	return parallel.Run_in_parallel_over_range(0, f, 0, len(src))
}

func (c *Converter[T, ES, ED]) String() string {
	return fmt.Sprintf("Converter{%s -> %s}", c.src, c.dst)
}
