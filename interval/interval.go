// Package interval implements closed intervals of exact values.
//
// An Interval [lower, upper] encloses every number that a computation on its
// members can produce. Operations combine the bounds with the exact
// arithmetic of package exact, so no rounding widens the result.
package interval

import (
	"fmt"

	"github.com/calebcase/exact"
	"golang.org/x/exp/constraints"
)

// Interval is the closed set [lower, upper]. The zero Interval is [0, 0].
type Interval struct {
	lower exact.Value
	upper exact.Value
}

var (
	// Entire is [-Infinity, +Infinity].
	Entire = Interval{exact.NegativeInfinity, exact.PositiveInfinity}

	// NaN is the interval of an undefined result.
	NaN = Interval{exact.NaN, exact.NaN}
)

// New returns the degenerate interval [v, v].
func New(v exact.Value) Interval {
	return Between(v, v)
}

// Between returns the interval spanning a and b in either order. If either is
// NaN the result is NaN.
func Between(a, b exact.Value) Interval {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}

	return Interval{
		lower: exact.Min(a, b),
		upper: exact.Max(a, b),
	}
}

// FromInt returns [v, v].
func FromInt[T constraints.Integer](v T) Interval {
	return New(exact.FromInt(v))
}

// FromFloat64 returns [f, f] for the exact binary value of f.
func FromFloat64(f float64) Interval {
	return New(exact.FromFloat64(f))
}

// FromFloat32 returns [f, f] for the exact binary value of f.
func FromFloat32(f float32) Interval {
	return New(exact.FromFloat32(f))
}

func (i Interval) Lower() exact.Value {
	return i.lower
}

func (i Interval) Upper() exact.Value {
	return i.upper
}

// IsNaN reports whether i is the NaN interval.
func (i Interval) IsNaN() bool {
	return i.lower.IsNaN()
}

// Add returns [i.lower + j.lower, i.upper + j.upper].
func (i Interval) Add(j Interval) Interval {
	return Between(i.lower.Add(j.lower), i.upper.Add(j.upper))
}

// Sub returns [i.lower - j.upper, i.upper - j.lower].
func (i Interval) Sub(j Interval) Interval {
	return Between(i.lower.Sub(j.upper), i.upper.Sub(j.lower))
}

// Mul returns the smallest interval holding every product of the bounds.
func (i Interval) Mul(j Interval) Interval {
	if i.IsNaN() || j.IsNaN() {
		return NaN
	}

	ps := [...]exact.Value{
		mulBound(i.lower, j.lower),
		mulBound(i.lower, j.upper),
		mulBound(i.upper, j.lower),
		mulBound(i.upper, j.upper),
	}

	lower, upper := ps[0], ps[0]
	for _, p := range ps[1:] {
		lower = exact.Min(lower, p)
		upper = exact.Max(upper, p)
	}

	return Interval{lower: lower, upper: upper}
}

// mulBound is x * y except that a zero bound absorbs an infinite one.
func mulBound(x, y exact.Value) exact.Value {
	if x.Sign() == 0 && !x.IsNaN() || y.Sign() == 0 && !y.IsNaN() {
		return exact.Zero
	}

	return x.Mul(y)
}

// Quo returns i * [1/j.upper, 1/j.lower]. If j contains zero the result is
// Entire.
func (i Interval) Quo(j Interval) Interval {
	if i.IsNaN() || j.IsNaN() {
		return NaN
	}

	if j.Contains(exact.Zero) {
		return Entire
	}

	return i.Mul(Interval{
		lower: exact.One.Quo(j.upper),
		upper: exact.One.Quo(j.lower),
	})
}

// Abs returns the interval of |x| for every x in i.
func (i Interval) Abs() Interval {
	switch {
	case i.IsNaN():
		return NaN
	case i.lower.Sign() >= 0:
		return i
	case i.upper.Sign() <= 0:
		return Interval{lower: i.upper.Neg(), upper: i.lower.Neg()}
	}

	return Interval{
		lower: exact.Zero,
		upper: exact.Max(i.lower.Neg(), i.upper),
	}
}

// Neg returns [-upper, -lower].
func (i Interval) Neg() Interval {
	return Interval{lower: i.upper.Neg(), upper: i.lower.Neg()}
}

// Contains reports whether lower <= v <= upper. Nothing contains NaN.
func (i Interval) Contains(v exact.Value) bool {
	if i.IsNaN() || v.IsNaN() {
		return false
	}

	return i.lower.Cmp(v) <= 0 && v.Cmp(i.upper) <= 0
}

// Width returns upper - lower.
func (i Interval) Width() exact.Value {
	if i.lower.IsInf() && i.lower.Equal(i.upper) {
		return exact.Zero
	}

	return i.upper.Sub(i.lower)
}

// Equal reports whether i and j have the same bounds.
func (i Interval) Equal(j Interval) bool {
	return i.lower.Equal(j.lower) && i.upper.Equal(j.upper)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", i.lower, i.upper)
}
