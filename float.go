package exact

import (
	"math"
	"math/big"
)

// layout describes an IEEE-754 binary interchange format.
type layout struct {
	mant uint
	exp  uint
	bias int
}

var (
	binary32 = layout{mant: 23, exp: 8, bias: 127}
	binary64 = layout{mant: 52, exp: 11, bias: 1023}
)

// value decodes bits laid out as l into the exact number they encode.
func (l layout) value(bits uint64) Value {
	mant := bits & (1<<l.mant - 1)
	biased := int(bits >> l.mant & (1<<l.exp - 1))
	neg := bits>>(l.mant+l.exp)&1 == 1

	if biased == 1<<l.exp-1 {
		switch {
		case mant != 0:
			return NaN
		case neg:
			return NegativeInfinity
		default:
			return PositiveInfinity
		}
	}

	// Subnormals have no implicit bit and share the smallest normal exponent.
	var exp int
	if biased == 0 {
		exp = 1 - l.bias - int(l.mant)
	} else {
		mant |= 1 << l.mant
		exp = biased - l.bias - int(l.mant)
	}

	n := new(big.Int).SetUint64(mant)
	d := big.NewInt(1)

	if exp >= 0 {
		n.Lsh(n, uint(exp))
	} else {
		d.Lsh(d, uint(-exp))
	}

	if neg {
		n.Neg(n)
	}

	return reduce(n, d)
}

// FromBits64 returns the exact value of the IEEE-754 binary64 bit pattern b.
// Every NaN payload maps to NaN and both zeros map to Zero.
func FromBits64(b uint64) Value {
	return binary64.value(b)
}

// FromBits32 returns the exact value of the IEEE-754 binary32 bit pattern b.
func FromBits32(b uint32) Value {
	return binary32.value(uint64(b))
}

// FromFloat64 returns the exact binary value of f.
func FromFloat64(f float64) Value {
	return FromBits64(math.Float64bits(f))
}

// FromFloat32 returns the exact binary value of f.
func FromFloat32(f float32) Value {
	return FromBits32(math.Float32bits(f))
}
