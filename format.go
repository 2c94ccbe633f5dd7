package exact

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Fixed returns x in decimal with exactly places digits after the decimal
// point. Digits beyond places are truncated, never rounded. Negative places
// are treated as 0, which omits the decimal point. Infinities and NaN format
// as "Infinity", "-Infinity" and "NaN" regardless of places.
func (x Value) Fixed(places int) string {
	switch x.status() {
	case notANumber:
		return "NaN"
	case infinite:
		if x.Sign() < 0 {
			return "-Infinity"
		}

		return "Infinity"
	}

	if places < 0 {
		places = 0
	}

	var sb strings.Builder

	if x.Sign() < 0 {
		sb.WriteByte('-')
	}

	q, r := new(big.Int).QuoRem(new(big.Int).Abs(x.n()), x.d(), new(big.Int))
	sb.WriteString(q.String())

	if places == 0 {
		return sb.String()
	}

	r.Mul(r, new(big.Int).Exp(bigTen, big.NewInt(int64(places)), nil))
	r.Quo(r, x.d())

	digits := r.String()

	sb.WriteByte('.')
	sb.WriteString(strings.Repeat("0", places-len(digits)))
	sb.WriteString(digits)

	return sb.String()
}

// String returns x with two decimal places.
func (x Value) String() string {
	return x.Fixed(2)
}

// Format implements fmt.Formatter. The verbs %v and %s print String; %f and
// %F print Fixed with the given precision (2 by default). Width pads with
// spaces, on the right with the '-' flag. The '+' flag prints the sign of
// non-negative values.
func (x Value) Format(f fmt.State, verb rune) {
	var s string

	switch verb {
	case 'v', 's':
		s = x.String()
	case 'f', 'F':
		places, ok := f.Precision()
		if !ok {
			places = 2
		}

		s = x.Fixed(places)
	default:
		fmt.Fprintf(f, "%%!%c(exact.Value=%s)", verb, x.String())
		return
	}

	if f.Flag('+') && x.Sign() >= 0 && !x.IsNaN() {
		s = "+" + s
	}

	if w, ok := f.Width(); ok && len(s) < w {
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}

	_, _ = io.WriteString(f, s)
}
