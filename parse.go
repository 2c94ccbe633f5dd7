package exact

import (
	"fmt"
	"math"
	"math/big"
)

// Parse returns the exact value of the decimal text s. It accepts
//
//	[sign] digits ['.' digits] [('e'|'E') [sign] digits]
//
// and the literals "NaN", "Infinity", "+Infinity" and "-Infinity". The
// exponent must fit in 32 bits. Any other input returns a *FormatError.
func Parse(s string) (v Value, err error) {
	defer Error.WrapP(&err)

	switch s {
	case "NaN":
		return NaN, nil
	case "Infinity", "+Infinity":
		return PositiveInfinity, nil
	case "-Infinity":
		return NegativeInfinity, nil
	}

	var (
		pos   int
		width = len(s)
		neg   bool
		eneg  bool
		exp   int64
	)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	intStart := pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	intEnd := pos

	if intStart == intEnd {
		return Value{}, &FormatError{Input: s}
	}

	// Fraction
	fracStart, fracEnd := pos, pos
	if pos < width && s[pos] == '.' {
		pos++
		fracStart = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		fracEnd = pos

		if fracStart == fracEnd {
			return Value{}, &FormatError{Input: s}
		}
	}

	// Exponent
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++

		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}

		expStart := pos
		for pos < width && isDigit(s[pos]) {
			exp = exp*10 + int64(s[pos]-'0')
			if exp > math.MaxInt32 {
				return Value{}, &FormatError{Input: s}
			}
			pos++
		}

		if expStart == pos {
			return Value{}, &FormatError{Input: s}
		}
	}

	if pos != width {
		return Value{}, &FormatError{Input: s}
	}

	if eneg {
		exp = -exp
	}
	exp -= int64(fracEnd - fracStart)

	n, ok := new(big.Int).SetString(s[intStart:intEnd]+s[fracStart:fracEnd], 10)
	if !ok {
		return Value{}, &FormatError{Input: s}
	}

	if neg {
		n.Neg(n)
	}

	d := big.NewInt(1)
	if exp < 0 {
		d.Exp(bigTen, big.NewInt(-exp), nil)
	} else if exp > 0 {
		n.Mul(n, new(big.Int).Exp(bigTen, big.NewInt(exp), nil))
	}

	return reduce(n, d), nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return v
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (x *Value) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = v

	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
