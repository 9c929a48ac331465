package encoding

import (
	"fmt"
)

var _ = fmt.Print

// Encodable is a color whose channels can be pushed through a transfer
// function. MapTransfer applies f to every channel that participates in the
// transfer function and leaves the others, such as hue or alpha, untouched.
type Encodable[C any] interface {
	MapTransfer(f func(float64) float64) C
}

// EncodedColor is a color holding values encoded with E. The only way to
// get linear light out of it is Decode.
type EncodedColor[C Encodable[C], E Encoding] struct {
	color    C
	encoding E
}

// LinearColor is a color holding linear light. It can only be produced by
// decoding an EncodedColor, so code accepting a LinearColor never sees
// encoded values.
type LinearColor[C Encodable[C]] struct {
	color C
}

func NewEncoded[C Encodable[C], E Encoding](c C, e E) EncodedColor[C, E] {
	return EncodedColor[C, E]{color: c, encoding: e}
}

// AsLinear declares that c already holds linear light. It is the decode of c
// under the Linear encoding.
func AsLinear[C Encodable[C]](c C) LinearColor[C] {
	return NewEncoded(c, Linear{}).Decode()
}

func (c EncodedColor[C, E]) Color() C    { return c.color }
func (c EncodedColor[C, E]) Encoding() E { return c.encoding }

// Decode applies the inverse of the transfer function, channel by channel.
func (c EncodedColor[C, E]) Decode() LinearColor[C] {
	return LinearColor[C]{color: c.color.MapTransfer(c.encoding.DecodeValue)}
}

func (c EncodedColor[C, E]) String() string {
	return fmt.Sprintf("Encoded[%s]{%v}", c.encoding, c.color)
}

func (c LinearColor[C]) Color() C { return c.color }

// Apply runs an operation that maps linear light to linear light, such as
// mixing or scaling, keeping the result tagged as linear.
func (c LinearColor[C]) Apply(f func(C) C) LinearColor[C] {
	return LinearColor[C]{color: f(c.color)}
}

func (c LinearColor[C]) String() string {
	return fmt.Sprintf("Linear{%v}", c.color)
}

// Encode applies the transfer function e, channel by channel.
func Encode[C Encodable[C], E Encoding](c LinearColor[C], e E) EncodedColor[C, E] {
	return EncodedColor[C, E]{color: c.color.MapTransfer(e.EncodeValue), encoding: e}
}

// Reencode expresses c in the encoding e. When e is the encoding c already
// has the values are returned as is, otherwise they pass through linear
// light.
func Reencode[E Encoding, C Encodable[C], EIn Encoding](c EncodedColor[C, EIn], e E) EncodedColor[C, E] {
	if SameEncoding(c.encoding, e) {
		return EncodedColor[C, E]{color: c.color, encoding: e}
	}
	return Encode(c.Decode(), e)
}
