package encoding

import (
	"math"
	"sort"
	"sync"
)

// DecodeTable8 caches the linear value of every 8-bit encoded value.
type DecodeTable8 struct {
	encoding Encoding
	values   [256]float64
}

func NewDecodeTable8(e Encoding) *DecodeTable8 {
	ans := DecodeTable8{encoding: e}
	for i := range ans.values {
		ans.values[i] = e.DecodeValue(float64(i) / math.MaxUint8)
	}
	return &ans
}

var srgb_decode_table = sync.OnceValue(func() *DecodeTable8 { return NewDecodeTable8(SRGB{}) })

// SRGBDecodeTable returns the shared table for the sRGB transfer function.
func SRGBDecodeTable() *DecodeTable8 { return srgb_decode_table() }

func (t *DecodeTable8) Encoding() Encoding { return t.encoding }

// Decode returns the linear value of the 8-bit encoded value v.
func (t *DecodeTable8) Decode(v uint8) float64 { return t.values[v] }

// Encode returns the 8-bit value whose linear value is nearest to x. The
// table must be monotonically increasing, which all the encodings in this
// package are.
func (t *DecodeTable8) Encode(x float64) uint8 {
	i := sort.SearchFloat64s(t.values[:], x)
	switch {
	case i <= 0:
		return 0
	case i >= len(t.values):
		return math.MaxUint8
	}
	if x-t.values[i-1] <= t.values[i]-x {
		return uint8(i - 1)
	}
	return uint8(i)
}
