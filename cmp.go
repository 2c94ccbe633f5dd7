package exact

import (
	"cmp"
	"encoding/binary"
	"math/big"

	"github.com/cespare/xxhash/v2"
)

// Cmp compares x and y and returns -1, 0 or +1. The order is total: NaN is
// equal to itself and greater than every other value, including +Infinity.
func (x Value) Cmp(y Value) int {
	xs, ys := x.status(), y.status()

	switch {
	case xs == notANumber && ys == notANumber:
		return 0
	case xs == notANumber:
		return 1
	case ys == notANumber:
		return -1
	case xs == infinite && ys == infinite:
		return cmp.Compare(x.Sign(), y.Sign())
	case xs == infinite:
		return x.Sign()
	case ys == infinite:
		return -y.Sign()
	case x.Sign() == 0 && y.Sign() == 0:
		return 0
	case x.Sign() != y.Sign():
		return cmp.Compare(x.Sign(), y.Sign())
	}

	a := new(big.Int).Mul(x.n(), y.d())
	b := new(big.Int).Mul(y.n(), x.d())

	return a.Cmp(b)
}

// Equal reports whether x and y have the same canonical form. Unlike the
// float64 == operator, NaN equals NaN.
func (x Value) Equal(y Value) bool {
	return x.n().Cmp(y.n()) == 0 && x.d().Cmp(y.d()) == 0
}

// Min returns a if a < b and b otherwise, in the order of Cmp.
func Min(a, b Value) Value {
	if a.Cmp(b) < 0 {
		return a
	}

	return b
}

// Max returns a if a > b and b otherwise, in the order of Cmp.
func Max(a, b Value) Value {
	if a.Cmp(b) > 0 {
		return a
	}

	return b
}

// Hash returns a hash of the canonical form of x. Equal values have equal
// hashes.
func (x Value) Hash() uint64 {
	nb := x.n().Bytes()
	db := x.d().Bytes()

	buf := make([]byte, 0, 1+2*binary.MaxVarintLen64+len(nb)+len(db))
	buf = append(buf, byte(x.Sign()+1))
	buf = binary.AppendUvarint(buf, uint64(len(nb)))
	buf = append(buf, nb...)
	buf = binary.AppendUvarint(buf, uint64(len(db)))
	buf = append(buf, db...)

	return xxhash.Sum64(buf)
}
