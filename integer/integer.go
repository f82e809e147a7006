package integer

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/binfloat/bitfield"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Parse returns the unsigned integer written in base 10 by text.
func Parse(text string) (i *big.Int, err error) {
	defer Error.WrapP(&err)

	text = strings.TrimPrefix(text, "+")
	if text == "" || strings.HasPrefix(text, "-") {
		return nil, Error.New("invalid unsigned integer %q", text)
	}

	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, Error.New("invalid unsigned integer %q", text)
	}

	return i, nil
}

// Binary returns the base 2 digits of i, most significant first. Zero is
// "0".
func Binary(i *big.Int) string {
	return i.Text(2)
}

// Block is a positive integer in normalized binary form:
//
//  i = 1.Digits * 2^Exponent
//
// The implicit leading 1 is not stored.
type Block struct {
	// Digits holds the digits following the leading 1, most significant
	// first, up to the requested width.
	Digits bitfield.Field

	// Exponent is the number of digits following the leading 1.
	Exponent int

	// Truncated is true when digits beyond the requested width were
	// dropped.
	Truncated bool

	// Round is the first dropped digit.
	Round bool
}

// Normalize returns the normalized binary form of i keeping at most width
// digits after the leading 1. The value must be positive.
func Normalize(i *big.Int, width int) (b Block, err error) {
	defer Error.WrapP(&err)

	if i.Sign() <= 0 {
		return b, Error.New("cannot normalize %s", i)
	}

	if width < 0 || width > bitfield.MaxSize {
		return b, Error.New("invalid width %d", width)
	}

	b.Exponent = i.BitLen() - 1

	keep := b.Exponent
	if keep > width {
		keep = width
		b.Truncated = true
	}

	b.Digits = bitfield.New(keep)
	for n := 0; n < keep; n++ {
		pos := b.Exponent - keep + n
		if i.Bit(pos) == 1 {
			err = b.Digits.Set(n, true)
			if err != nil {
				return Block{}, err
			}
		}
	}

	if b.Truncated {
		b.Round = i.Bit(b.Exponent-keep-1) == 1
	}

	return b, nil
}
