package terminal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSplitProducts(t *testing.T) {
	require.Equal(t, []string{"Pizza", "Suco", "Pizza"}, splitProducts(" Pizza ,Suco,, Pizza"))
	require.Empty(t, splitProducts(""))
}

func TestParseDecimal(t *testing.T) {
	testCases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "10.5", want: "10.5", ok: true},
		{in: "10,5", want: "10.5", ok: true},
		{in: "-3", want: "-3", ok: true},
		{in: "dez", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseDecimal(tc.in)
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)))
		})
	}
}

func TestMoney(t *testing.T) {
	require.Equal(t, "R$15.50", money(decimal.RequireFromString("15.5")))
}
