package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type TC struct {
		text  string
		value string
		err   bool
	}

	tcs := []TC{
		{text: "0", value: "0"},
		{text: "+1", value: "1"},
		{text: "16777216", value: "16777216"},
		{text: "340282366920938463463374607431768211456", value: "340282366920938463463374607431768211456"},
		{text: "", err: true},
		{text: "-1", err: true},
		{text: "1.5", err: true},
		{text: "0x10", err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.text), func(t *testing.T) {
			v, err := Parse(tc.text)
			if tc.err {
				require.Error(t, err)
				require.True(t, Error.Has(err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.value, v.String())
		})
	}
}

func TestBinary(t *testing.T) {
	require.Equal(t, "0", Binary(big.NewInt(0)))
	require.Equal(t, "11", Binary(big.NewInt(3)))
	require.Equal(t, "1011101000111", Binary(big.NewInt(5959)))
}

func TestNormalize(t *testing.T) {
	type TC struct {
		value     int64
		width     int
		digits    string
		exponent  int
		truncated bool
		round     bool
	}

	tcs := []TC{
		{value: 1, width: 23, digits: "", exponent: 0},
		{value: 3, width: 23, digits: "1", exponent: 1},
		{value: 5959, width: 23, digits: "011101000111", exponent: 12},
		{value: 16777215, width: 23, digits: "11111111111111111111111", exponent: 23},
		{value: 16777216, width: 23, digits: "00000000000000000000000", exponent: 24, truncated: true},
		{value: 16777217, width: 23, digits: "00000000000000000000000", exponent: 24, truncated: true, round: true},
		{value: 16777219, width: 23, digits: "00000000000000000000001", exponent: 24, truncated: true, round: true},
		{value: 0b1101, width: 2, digits: "10", exponent: 3, truncated: true, round: true},
		{value: 0b1100, width: 2, digits: "10", exponent: 3, truncated: true},
		{value: 0b1111, width: 0, digits: "", exponent: 3, truncated: true, round: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, tc.value), func(t *testing.T) {
			b, err := Normalize(big.NewInt(tc.value), tc.width)
			require.NoError(t, err)

			require.Equal(t, tc.digits, b.Digits.String())
			require.Equal(t, tc.exponent, b.Exponent)
			require.Equal(t, tc.truncated, b.Truncated)
			require.Equal(t, tc.round, b.Round)
		})
	}

	t.Run("not positive", func(t *testing.T) {
		_, err := Normalize(big.NewInt(0), 23)
		require.Error(t, err)

		_, err = Normalize(big.NewInt(-3), 23)
		require.Error(t, err)
	})

	t.Run("invalid width", func(t *testing.T) {
		_, err := Normalize(big.NewInt(3), 257)
		require.Error(t, err)
	})

	t.Run("wide", func(t *testing.T) {
		i := new(big.Int).Lsh(big.NewInt(1), 300)
		i.Add(i, new(big.Int).Lsh(big.NewInt(1), 299))

		b, err := Normalize(i, 255)
		require.NoError(t, err)
		require.Equal(t, 300, b.Exponent)
		require.Equal(t, 255, b.Digits.Size())
		require.True(t, b.Digits.Get(254))
		require.Equal(t, 1, b.Digits.OnesCount())
		require.True(t, b.Truncated)
		require.False(t, b.Round)
	})
}
