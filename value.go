package exact

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Value is an exact rational number, a signed infinity or NaN.
type Value struct {
	num *big.Int
	den *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)

var (
	Zero    = New(0, 1)
	One     = New(1, 1)
	Two     = New(2, 1)
	Eight   = New(8, 1)
	Ten     = New(10, 1)
	Sixteen = New(16, 1)

	PositiveInfinity = New(1, 0)
	NegativeInfinity = New(-1, 0)
	NaN              = New(0, 0)
)

type status int

const (
	finite status = iota
	infinite
	notANumber
)

// reduce is the only way a Value is built. It takes ownership of n and d.
func reduce(n, d *big.Int) Value {
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	switch {
	case d.Sign() == 0 && n.Sign() == 0:
		return Value{num: new(big.Int), den: new(big.Int)}
	case d.Sign() == 0:
		return Value{num: big.NewInt(int64(n.Sign())), den: new(big.Int)}
	case n.Sign() == 0:
		return Value{num: new(big.Int), den: big.NewInt(1)}
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}

	return Value{num: n, den: d}
}

// New returns num/den in lowest terms. A zero den gives an infinity, or NaN
// when num is also zero.
func New(num, den int64) Value {
	return reduce(big.NewInt(num), big.NewInt(den))
}

// NewBig is like New for arbitrary precision integers. The arguments are not
// retained.
func NewBig(num, den *big.Int) Value {
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den))
}

// FromInt returns the integer v.
func FromInt[T constraints.Integer](v T) Value {
	n := new(big.Int)
	if v < 0 {
		n.SetInt64(int64(v))
	} else {
		n.SetUint64(uint64(v))
	}

	return reduce(n, big.NewInt(1))
}

// FromBigRat returns the value of r.
func FromBigRat(r *big.Rat) Value {
	return NewBig(r.Num(), r.Denom())
}

func (x Value) n() *big.Int {
	if x.num == nil {
		return bigZero
	}

	return x.num
}

func (x Value) d() *big.Int {
	if x.den == nil {
		return bigOne
	}

	return x.den
}

func (x Value) status() status {
	switch {
	case x.d().Sign() != 0:
		return finite
	case x.n().Sign() != 0:
		return infinite
	default:
		return notANumber
	}
}

// IsNaN reports whether x is NaN.
func (x Value) IsNaN() bool {
	return x.status() == notANumber
}

// IsFinite reports whether x is neither an infinity nor NaN.
func (x Value) IsFinite() bool {
	return x.status() == finite
}

// IsInf reports whether x is +Infinity or -Infinity.
func (x Value) IsInf() bool {
	return x.status() == infinite
}

// Sign returns -1, 0 or +1 depending on the sign of x. NaN has no sign and
// returns 0.
func (x Value) Sign() int {
	return x.n().Sign()
}

// Num returns a copy of the numerator of x.
func (x Value) Num() *big.Int {
	return new(big.Int).Set(x.n())
}

// Denom returns a copy of the denominator of x. It is 0 for infinities and
// NaN.
func (x Value) Denom() *big.Int {
	return new(big.Int).Set(x.d())
}

// Rat returns x as a big.Rat. It returns false if x is not finite.
func (x Value) Rat() (*big.Rat, bool) {
	if !x.IsFinite() {
		return nil, false
	}

	return new(big.Rat).SetFrac(x.n(), x.d()), true
}

// Float64 returns the float64 nearest to x and whether it represents x
// exactly. Infinities and NaN map to their float64 counterparts.
func (x Value) Float64() (float64, bool) {
	switch x.status() {
	case notANumber:
		return math.NaN(), true
	case infinite:
		return math.Inf(x.Sign()), true
	}

	r, _ := x.Rat()

	return r.Float64()
}
