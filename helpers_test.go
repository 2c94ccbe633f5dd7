package exact_test

import (
	"math/big"
	"testing"

	"github.com/calebcase/exact"
	"github.com/stretchr/testify/require"
)

// requireEqual compares canonical forms. require.Equal would compare the
// internal layout of big.Int, which differs between equal values.
func requireEqual(t testing.TB, expected, actual exact.Value, msgAndArgs ...interface{}) {
	t.Helper()

	if expected.Equal(actual) {
		return
	}

	t.Logf("expected: %s/%s", expected.Num(), expected.Denom())
	t.Logf("actual:   %s/%s", actual.Num(), actual.Denom())
	require.Fail(t, "values differ", msgAndArgs...)
}

// requireCanonical checks the invariants every value must satisfy.
func requireCanonical(t testing.TB, v exact.Value, msgAndArgs ...interface{}) {
	t.Helper()

	n, d := v.Num(), v.Denom()

	require.GreaterOrEqual(t, d.Sign(), 0, msgAndArgs...)

	switch {
	case d.Sign() == 0:
		require.LessOrEqual(t, new(big.Int).Abs(n).Cmp(big.NewInt(1)), 0, msgAndArgs...)
	case n.Sign() == 0:
		require.Equal(t, 0, d.Cmp(big.NewInt(1)), msgAndArgs...)
	default:
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
		require.Equal(t, 0, g.Cmp(big.NewInt(1)), msgAndArgs...)
	}
}

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}
