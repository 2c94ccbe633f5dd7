// Package exact implements arbitrary-precision rational numbers over the
// extended reals.
//
// A [Value] is a fraction num/den of two [big.Int] kept in lowest terms with
// the sign carried by the numerator. Besides the finite rationals a Value can
// hold the two signed infinities and a single NaN:
//
//	| num | den | value     |
//	|-----|-----|-----------|
//	|  0  |  0  | NaN       |
//	| +1  |  0  | +Infinity |
//	| -1  |  0  | -Infinity |
//	|  n  | >0  | n/den     |
//
// Values are immutable and safe for concurrent use. The zero Value is Zero.
//
// # Construction
//
// Values are built from integer pairs ([New], [NewBig], [FromInt]), from the
// exact binary value of IEEE-754 floats ([FromFloat64], [FromBits64] and the
// 32-bit variants) and from decimal text ([Parse]):
//
//	v := exact.MustParse("3.14159e-2")
//	w := exact.FromFloat64(0.1) // 3602879701896397/36028797018963968
//
// # Arithmetic
//
// Arithmetic never fails. Division by zero yields a signed infinity (or NaN
// for 0/0) and operations on infinities follow the IEEE-754 conventions.
//
// # Presentation
//
// [Value.Fixed] renders a fixed number of decimal places by truncation; it
// never rounds. [Value.String] uses two places.
package exact
