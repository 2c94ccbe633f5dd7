package exact_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/exact"
	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	type TC struct {
		v        exact.Value
		places   int
		expected string
		Mark     error
	}

	tcs := []TC{
		{v: exact.New(1, 3), places: 16, expected: "0.3333333333333333", Mark: oops.New("unexpected")},
		{v: exact.New(-10, 10), places: -5, expected: "-1", Mark: oops.New("unexpected")},
		{v: exact.New(-8, 7), places: 16, expected: "-1.1428571428571428", Mark: oops.New("unexpected")},
		{v: exact.New(2, 3), places: 2, expected: "0.66", Mark: oops.New("unexpected")},
		{v: exact.New(-2, 3), places: 2, expected: "-0.66", Mark: oops.New("unexpected")},
		{v: exact.New(-1, 3), places: 0, expected: "-0", Mark: oops.New("unexpected")},
		{v: exact.New(1, 100), places: 3, expected: "0.010", Mark: oops.New("unexpected")},
		{v: exact.New(1, 1000), places: 2, expected: "0.00", Mark: oops.New("unexpected")},
		{v: exact.New(999, 1000), places: 2, expected: "0.99", Mark: oops.New("unexpected")},
		{v: exact.New(123, 1), places: 1, expected: "123.0", Mark: oops.New("unexpected")},
		{v: exact.Zero, places: 0, expected: "0", Mark: oops.New("unexpected")},
		{v: exact.Zero, places: 3, expected: "0.000", Mark: oops.New("unexpected")},
		{v: exact.PositiveInfinity, places: 8, expected: "Infinity", Mark: oops.New("unexpected")},
		{v: exact.NegativeInfinity, places: 0, expected: "-Infinity", Mark: oops.New("unexpected")},
		{v: exact.NaN, places: -1, expected: "NaN", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.expected), func(t *testing.T) {
			require.Equal(t, tc.expected, tc.v.Fixed(tc.places), tc.Mark)
		})
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "0.33", exact.New(1, 3).String())
	require.Equal(t, "-1.00", exact.New(-1, 1).String())
	require.Equal(t, "Infinity", exact.PositiveInfinity.String())
	require.Equal(t, "NaN", exact.NaN.String())
}

func TestFormat(t *testing.T) {
	type TC struct {
		format   string
		v        exact.Value
		expected string
		Mark     error
	}

	tcs := []TC{
		{format: "%v", v: exact.New(1, 3), expected: "0.33", Mark: oops.New("unexpected")},
		{format: "%s", v: exact.New(-1, 3), expected: "-0.33", Mark: oops.New("unexpected")},
		{format: "%f", v: exact.New(1, 8), expected: "0.12", Mark: oops.New("unexpected")},
		{format: "%.4f", v: exact.New(1, 3), expected: "0.3333", Mark: oops.New("unexpected")},
		{format: "%.0F", v: exact.New(7, 2), expected: "3", Mark: oops.New("unexpected")},
		{format: "%8.1f", v: exact.New(1, 3), expected: "     0.3", Mark: oops.New("unexpected")},
		{format: "%-8.1f|", v: exact.New(1, 3), expected: "0.3     |", Mark: oops.New("unexpected")},
		{format: "%+.1f", v: exact.New(1, 3), expected: "+0.3", Mark: oops.New("unexpected")},
		{format: "%+v", v: exact.NaN, expected: "NaN", Mark: oops.New("unexpected")},
		{format: "%+v", v: exact.PositiveInfinity, expected: "+Infinity", Mark: oops.New("unexpected")},
		{format: "%12v", v: exact.NegativeInfinity, expected: "   -Infinity", Mark: oops.New("unexpected")},
		{format: "%d", v: exact.New(1, 3), expected: "%!d(exact.Value=0.33)", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.format), func(t *testing.T) {
			require.Equal(t, tc.expected, fmt.Sprintf(tc.format, tc.v), tc.Mark)
		})
	}
}

func BenchmarkFixed(b *testing.B) {
	v := exact.New(-8, 7)

	for n := 0; n < b.N; n++ {
		_ = v.Fixed(32)
	}
}
