package exact

import "math/big"

// Add returns x + y.
//
// NaN in either operand gives NaN. Infinities of the same sign add to that
// infinity and of opposite sign to NaN. An infinity plus a finite value is
// the infinity.
func (x Value) Add(y Value) Value {
	switch {
	case x.IsNaN() || y.IsNaN():
		return NaN
	case x.IsInf() && y.IsInf():
		if x.Sign() == y.Sign() {
			return x
		}

		return NaN
	case x.IsInf():
		return x
	case y.IsInf():
		return y
	}

	n := new(big.Int).Mul(x.n(), y.d())
	n.Add(n, new(big.Int).Mul(y.n(), x.d()))

	return reduce(n, new(big.Int).Mul(x.d(), y.d()))
}

// Sub returns x - y.
//
// NaN in either operand gives NaN. Infinities of the same sign subtract to
// NaN and of opposite sign to x. An infinity minus a finite value is the
// infinity and a finite value minus an infinity is its negation.
func (x Value) Sub(y Value) Value {
	switch {
	case x.IsNaN() || y.IsNaN():
		return NaN
	case x.IsInf() && y.IsInf():
		if x.Sign() != y.Sign() {
			return x
		}

		return NaN
	case x.IsInf():
		return x
	case y.IsInf():
		return y.Neg()
	}

	n := new(big.Int).Mul(x.n(), y.d())
	n.Sub(n, new(big.Int).Mul(y.n(), x.d()))

	return reduce(n, new(big.Int).Mul(x.d(), y.d()))
}

// Mul returns x * y. Zero times an infinity is NaN.
func (x Value) Mul(y Value) Value {
	return reduce(
		new(big.Int).Mul(x.n(), y.n()),
		new(big.Int).Mul(x.d(), y.d()),
	)
}

// Quo returns x / y. A nonzero x divided by zero is an infinity with the sign
// of x; 0/0 and Infinity/Infinity are NaN.
func (x Value) Quo(y Value) Value {
	n := new(big.Int).Mul(x.n(), y.d())
	d := new(big.Int).Mul(x.d(), y.n())

	// The denominator of an infinite x is 0 and cannot carry the sign of y.
	if y.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	return reduce(n, d)
}

// Abs returns |x|. NaN stays NaN.
func (x Value) Abs() Value {
	return reduce(new(big.Int).Abs(x.n()), new(big.Int).Set(x.d()))
}

// Neg returns -x. NaN stays NaN.
func (x Value) Neg() Value {
	return reduce(new(big.Int).Neg(x.n()), new(big.Int).Set(x.d()))
}
