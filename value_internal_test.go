package exact

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	type TC struct {
		n, d   int64
		status status
	}

	tcs := []TC{
		{n: 0, d: 0, status: notANumber},
		{n: 3, d: 0, status: infinite},
		{n: -3, d: 0, status: infinite},
		{n: 0, d: -3, status: finite},
		{n: 6, d: -4, status: finite},
		{n: -1, d: 1, status: finite},
		{n: 1 << 40, d: 1 << 20, status: finite},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d/%d", i, tc.n, tc.d), func(t *testing.T) {
			v := reduce(big.NewInt(tc.n), big.NewInt(tc.d))
			require.Equal(t, tc.status, v.status())
			require.GreaterOrEqual(t, v.den.Sign(), 0)

			again := reduce(new(big.Int).Set(v.num), new(big.Int).Set(v.den))
			require.True(t, v.Equal(again))
			require.Equal(t, 0, v.num.Cmp(again.num))
			require.Equal(t, 0, v.den.Cmp(again.den))
		})
	}
}

func TestZeroValueAccess(t *testing.T) {
	var v Value

	require.Nil(t, v.num)
	require.Nil(t, v.den)
	require.Equal(t, finite, v.status())
	require.Equal(t, 0, v.n().Sign())
	require.Equal(t, 0, v.d().Cmp(bigOne))
}
