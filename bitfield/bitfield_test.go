package bitfield

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Field {
	t.Helper()

	f, err := Parse(text)
	require.NoError(t, err)

	return f
}

func TestParse(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		f := mustParse(t, "001111011001")
		require.Equal(t, 12, f.Size())

		expected := []bool{
			true, false, false, true, true, false,
			true, true, true, true, false, false,
		}
		for i, bit := range expected {
			require.Equal(t, bit, f.Get(i), "bit %d", i)
		}

		require.False(t, f.Get(12))
		require.False(t, f.Get(-1))
		require.Equal(t, "001111011001", f.String())
	})

	t.Run("truncated", func(t *testing.T) {
		f, err := ParseSize("001111011001", 4)
		require.NoError(t, err)
		require.Equal(t, 4, f.Size())
		require.Equal(t, "1001", f.String())
	})

	t.Run("padded", func(t *testing.T) {
		f, err := ParseSize("101111", 10)
		require.NoError(t, err)
		require.Equal(t, 10, f.Size())
		require.Equal(t, "0000101111", f.String())
	})

	t.Run("empty", func(t *testing.T) {
		f := mustParse(t, "")
		require.Equal(t, 0, f.Size())
		require.Equal(t, "", f.String())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, text := range []string{"0120", "1 0", "x", "١"} {
			_, err := Parse(text)
			require.Error(t, err, text)
			require.True(t, Error.Has(err), text)
		}
	})

	t.Run("too wide", func(t *testing.T) {
		_, err := Parse(strings.Repeat("0", MaxSize+1))
		require.Error(t, err)

		f, err := Parse(strings.Repeat("1", MaxSize))
		require.NoError(t, err)
		require.Equal(t, MaxSize, f.OnesCount())
	})
}

func TestConstructors(t *testing.T) {
	type TC struct {
		name string
		f    Field
		text string
	}

	tcs := []TC{
		{"zero 0", AllZero(0), ""},
		{"zero 5", AllZero(5), "00000"},
		{"one 1", AllOne(1), "1"},
		{"one 8", AllOne(8), "11111111"},
		{"one 32", AllOne(32), strings.Repeat("1", 32)},
		{"one 33", AllOne(33), strings.Repeat("1", 33)},
		{"u8", FromUnsigned(uint8(5), 4), "0101"},
		{"u8 truncated", FromUnsigned(uint8(0xff), 3), "111"},
		{"u16", FromUnsigned(uint16(0x8001), 16), "1000000000000001"},
		{"u32", FromUnsigned(uint32(1), 0), ""},
		{"u64", FromUnsigned(^uint64(0), 70), "000000" + strings.Repeat("1", 64)},
		{"u128", FromUint128(1, 0, 66), "01" + strings.Repeat("0", 64)},
		{"u128 low", FromUint128(0, 3, 4), "0011"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.text, tc.f.String())
			require.Equal(t, len(tc.text), tc.f.Size())
		})
	}

	t.Run("full capacity", func(t *testing.T) {
		f := AllOne(MaxSize)
		require.Equal(t, MaxSize, f.OnesCount())
		require.True(t, f.AllBitsAre(true))
	})

	t.Run("over capacity", func(t *testing.T) {
		require.Panics(t, func() { New(MaxSize + 1) })
		require.Panics(t, func() { AllOne(MaxSize + 1) })
		require.Panics(t, func() { AllZero(-1) })
	})
}

func TestSet(t *testing.T) {
	f := AllZero(4)

	require.NoError(t, f.Set(0, true))
	require.NoError(t, f.Set(3, true))
	require.Equal(t, "1001", f.String())

	require.NoError(t, f.Set(0, false))
	require.Equal(t, "1000", f.String())

	err := f.Set(4, true)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.True(t, Error.Has(err))
	require.Equal(t, "bitfield: position out of range: pos=4 size=4", err.Error())
	require.Equal(t, "1000", f.String())

	err = f.Set(-1, true)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestConcat(t *testing.T) {
	t.Run("float32 one", func(t *testing.T) {
		sign := AllZero(1)
		exponent := AllOne(8)
		require.NoError(t, exponent.Set(7, false))
		mantissa := AllZero(23)

		require.Equal(t,
			"00111111100000000000000000000000",
			sign.Concat(exponent).Concat(mantissa).String(),
		)
	})

	t.Run("zeros", func(t *testing.T) {
		sum := FromUnsigned(uint8(0), 1).Concat(AllZero(11))
		require.Equal(t, "000000000000", sum.String())
	})

	t.Run("across words", func(t *testing.T) {
		sum := AllZero(12).Concat(AllOne(52))
		require.Equal(t, "000000000000"+strings.Repeat("1", 52), sum.String())

		sum = FromUnsigned(uint8(0), 1).Concat(AllZero(11)).Concat(AllOne(52))
		require.Equal(t, "000000000000"+strings.Repeat("1", 52), sum.String())
	})

	t.Run("identity", func(t *testing.T) {
		f := mustParse(t, "001111011001")

		require.True(t, f.Concat(New(0)).Equal(f))
		require.True(t, New(0).Concat(f).Equal(f))
	})

	t.Run("in place", func(t *testing.T) {
		f := mustParse(t, "10")
		f.ConcatInPlace(mustParse(t, "01"))
		f.PushLow(true)
		f.PushLow(false)
		require.Equal(t, "100110", f.String())
	})

	t.Run("stale low bits", func(t *testing.T) {
		low := AllOne(8)
		low.Resize(2, AffectHighBits)

		require.Equal(t, "0011", AllZero(2).Concat(low).String())
	})

	t.Run("full capacity", func(t *testing.T) {
		f := AllOne(1).Concat(AllZero(MaxSize - 1))
		require.Equal(t, MaxSize, f.Size())
		require.True(t, f.Get(MaxSize-1))
		require.Equal(t, 1, f.OnesCount())
	})

	t.Run("over capacity", func(t *testing.T) {
		require.Panics(t, func() { AllOne(200).Concat(AllOne(57)) })
	})
}

func TestResize(t *testing.T) {
	type TC struct {
		input  string
		size   int
		policy ResizePolicy
		output string
	}

	tcs := []TC{
		{"001111011001", 5, AffectLowBits, "00111"},
		{"001111011001", 5, AffectHighBits, "11001"},
		{"001111011001", 21, AffectLowBits, "001111011001000000000"},
		{"001111011001", 21, AffectHighBits, "000000000001111011001"},
		{"001111011001", 12, AffectLowBits, "001111011001"},
		{"001111011001", 0, AffectLowBits, ""},
		{"", 4, AffectLowBits, "0000"},
		{"1", 4, AffectLowBits, "1000"},
		{strings.Repeat("1", 40), 72, AffectLowBits, strings.Repeat("1", 40) + strings.Repeat("0", 32)},
		{strings.Repeat("1", 40) + strings.Repeat("0", 33), 40, AffectLowBits, strings.Repeat("1", 40)},
		{"1" + strings.Repeat("0", 99) + "1", 37, AffectHighBits, strings.Repeat("0", 36) + "1"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s %d %s", i, tc.input, tc.size, tc.policy), func(t *testing.T) {
			f := mustParse(t, tc.input)
			f.Resize(tc.size, tc.policy)
			require.Equal(t, tc.size, f.Size())
			require.Equal(t, tc.output, f.String())
		})
	}

	t.Run("high growth zero fills", func(t *testing.T) {
		f := mustParse(t, "111111")
		f.Resize(3, AffectHighBits)
		require.Equal(t, "111", f.String())

		f.Resize(6, AffectHighBits)
		require.Equal(t, "000111", f.String(), spew.Sdump(f))
		require.Equal(t, 3, f.OnesCount())
	})

	t.Run("over capacity", func(t *testing.T) {
		f := AllOne(8)
		require.Panics(t, func() { f.Resize(MaxSize+1, AffectLowBits) })
	})
}

func TestSub(t *testing.T) {
	f := mustParse(t, "001111011001")

	type TC struct {
		r      Range
		output string
	}

	tcs := []TC{
		{Range{2, 7}, "10110"},
		{Range{0, 12}, "001111011001"},
		{Range{0, 1}, "1"},
		{Range{11, 12}, "0"},
		{Range{4, 4}, ""},
		{Range{10, 14}, "0000"},
		{Range{3, 10}, "1111011"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.r), func(t *testing.T) {
			s := f.Sub(tc.r)
			require.Equal(t, tc.r.Len(), s.Size())
			require.Equal(t, tc.output, s.String())
		})
	}

	t.Run("across words", func(t *testing.T) {
		wide := AllZero(20).Concat(AllOne(50)).Concat(AllZero(30))
		s := wide.Sub(Range{28, 84})
		require.Equal(t, "0000"+strings.Repeat("1", 50)+"00", s.String())
	})
}

func TestAllBitsInRangeAre(t *testing.T) {
	f := mustParse(t, "001111011001")

	require.True(t, f.AllBitsInRangeAre(Range{6, 10}, true))
	require.True(t, f.AllBitsInRangeAre(Range{10, 12}, false))
	require.True(t, f.AllBitsInRangeAre(Range{10, 20}, false))
	require.False(t, f.AllBitsInRangeAre(Range{5, 10}, true))
	require.True(t, f.AllBitsInRangeAre(Range{3, 3}, true))
	require.True(t, f.AllBitsInRangeAre(Range{3, 3}, false))

	require.True(t, AllZero(9).AllBitsAre(false))
	require.True(t, AllOne(9).AllBitsAre(true))
	require.False(t, f.AllBitsAre(true))
	require.False(t, f.AllBitsAre(false))
}

func TestIncrement(t *testing.T) {
	type TC struct {
		input  string
		r      Range
		output string
		carry  bool
	}

	tcs := []TC{
		{"0000", Range{0, 4}, "0001", false},
		{"0111", Range{0, 4}, "1000", false},
		{"1111", Range{0, 4}, "0000", true},
		{"0111", Range{0, 2}, "0100", true},
		{"0011", Range{2, 4}, "0111", false},
		{"0" + strings.Repeat("1", 40), Range{0, 41}, "1" + strings.Repeat("0", 40), false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s %s", i, tc.input, tc.r), func(t *testing.T) {
			f := mustParse(t, tc.input)
			carry := f.Increment(tc.r)
			require.Equal(t, tc.output, f.String())
			require.Equal(t, tc.carry, carry)
		})
	}
}

func TestUint64(t *testing.T) {
	require.Equal(t, uint64(129), mustParse(t, "10000001").Uint64())
	require.Equal(t, uint64(0), New(0).Uint64())
	require.Equal(t, ^uint64(0), AllOne(64).Uint64())
	require.Equal(t, ^uint64(0), AllOne(100).Uint64())
}

func TestEqual(t *testing.T) {
	require.True(t, mustParse(t, "0101").Equal(FromUnsigned(uint8(5), 4)))
	require.False(t, mustParse(t, "0101").Equal(FromUnsigned(uint8(5), 5)))
	require.False(t, mustParse(t, "0101").Equal(mustParse(t, "0111")))
	require.True(t, New(0).Equal(AllOne(0)))
}

func TestHex(t *testing.T) {
	type TC struct {
		bits string
		hex  string
	}

	tcs := []TC{
		{"01000000010010001111010111000011", "4048F5C3"},
		{"01111111110000000000000000000001", "7FC00001"},
		{"1010010", "52"},
		{"1", "1"},
		{"", ""},
		{"0000000000000000000", "00000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.hex), func(t *testing.T) {
			f := mustParse(t, tc.bits)
			require.Equal(t, tc.hex, f.Hex())

			if tc.hex == "" {
				return
			}

			parsed, err := ParseHex(tc.hex, len(tc.bits))
			require.NoError(t, err)
			require.Equal(t, tc.bits, parsed.String())

			parsed, err = ParseHex("0x"+strings.ToLower(tc.hex), len(tc.bits))
			require.NoError(t, err)
			require.Equal(t, tc.bits, parsed.String())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseHex("FF", 7)
		require.Error(t, err)

		_, err = ParseHex("0x", 8)
		require.Error(t, err)

		_, err = ParseHex("G0", 8)
		require.Error(t, err)
		require.True(t, Error.Has(err))

		_, err = ParseHex("00", MaxSize+1)
		require.Error(t, err)
	})
}
