package codec

import (
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/cases"

	"github.com/calebcase/binfloat/bitfield"
	"github.com/calebcase/binfloat/decimal"
	"github.com/calebcase/binfloat/integer"
	"github.com/calebcase/binfloat/layout"
	"github.com/calebcase/binfloat/special"
)

var log2of10 = math.Log2(10)

// Encode returns the bit string, most significant bit first, of the numeral
// text under l. The result always has l.Size() characters.
func Encode(text string, l layout.Layout) (string, error) {
	f, err := EncodeField(text, l)
	if err != nil {
		return "", err
	}

	return f.String(), nil
}

// EncodeField is Encode returning the bit field itself.
//
// Numerals are read exactly and rounded once, to nearest with ties away from
// zero. Tokens containing "inf" or "nan" in any case encode the infinity
// (signed by a leading '-') and the quiet NaN.
func EncodeField(text string, l layout.Layout) (f bitfield.Field, err error) {
	defer Error.WrapP(&err)

	err = l.Validate()
	if err != nil {
		return f, err
	}

	token := cases.Fold().String(strings.TrimSpace(text))
	negative := strings.HasPrefix(token, "-")

	switch {
	case strings.Contains(token, "inf"):
		return infinity(negative, l)
	case strings.Contains(token, "nan"):
		return special.Construct(special.NaN(false, bitfield.New(0)), l), nil
	}

	d, err := decimal.Parse(token)
	if err != nil {
		return f, Error.New("%w: %v", ErrMalformed, err)
	}

	negative = negative || d.Negative

	if d.IsZero() {
		return special.Construct(special.Zero(negative), l), nil
	}

	if negative && !l.Signed() {
		return f, Error.New("%w: %q is negative and %s is unsigned", ErrRange, text, l)
	}

	return encode(d, negative, l)
}

func infinity(negative bool, l layout.Layout) (bitfield.Field, error) {
	if negative && !l.Signed() {
		return bitfield.Field{}, Error.New("%w: -infinity in unsigned %s", ErrRange, l)
	}

	return special.Construct(special.Infinity(negative), l), nil
}

func zero(negative bool, l layout.Layout) (bitfield.Field, error) {
	return special.Construct(special.Zero(negative), l), nil
}

func signField(negative bool, l layout.Layout) bitfield.Field {
	var v uint8
	if negative {
		v = 1
	}

	return bitfield.FromUnsigned(v, l.SignWidth())
}

func encode(d *apd.Decimal, negative bool, l layout.Layout) (f bitfield.Field, err error) {
	m := l.MantissaWidth()
	bias := l.Bias()
	maxField := l.MaxExponentField()

	// Far out of range values are settled before their digits are expanded.
	mag := decimal.Magnitude(d)
	switch {
	case mag > 0 && float64(mag-1)*log2of10 > float64(maxField-bias):
		return infinity(negative, l)
	case mag < 0 && float64(-mag-1)*log2of10 > float64(bias+int64(m)+1):
		return zero(negative, l)
	}

	whole, frac, err := decimal.Split(d)
	if err != nil {
		return f, err
	}

	// digits holds the binary digits after the leading 1, most significant
	// first, and exp the power of two of the leading 1.
	var digits bitfield.Field
	var exp int64
	var round, rounded bool

	if whole.Sign() > 0 {
		b, err := integer.Normalize(whole, m)
		if err != nil {
			return f, err
		}

		digits = b.Digits
		exp = int64(b.Exponent)

		if b.Truncated {
			round, rounded = b.Round, true
		}
	} else {
		// |d| < 10^(mag+1), so the first digits up to that bound are zero.
		skip := int64(float64(-mag-1)*log2of10) - 2
		if skip > 0 {
			err = frac.Shift(skip)
			if err != nil {
				return f, err
			}

			exp = -skip
		}

		limit := bias + int64(m) + 1
		for {
			exp--

			bit, err := frac.Next()
			if err != nil {
				return f, err
			}
			if bit {
				break
			}

			if -exp > limit {
				return zero(negative, l)
			}
		}
	}

	if !rounded {
		for digits.Size() < m && !frac.IsZero() {
			bit, err := frac.Next()
			if err != nil {
				return f, err
			}

			digits.PushLow(bit)
		}

		if digits.Size() == m && !frac.IsZero() {
			round, err = frac.Next()
			if err != nil {
				return f, err
			}
		}
	}

	digits.Resize(m, bitfield.AffectLowBits)

	biased := exp + bias
	if biased >= maxField {
		return infinity(negative, l)
	}

	if biased <= 0 {
		// Subnormal: the leading 1 moves into the mantissa.
		shift := int(1 - biased)
		if shift > m+1 {
			return zero(negative, l)
		}

		full := bitfield.AllOne(1).Concat(digits)
		round = full.Get(shift - 1)

		full.Resize(m+1-shift, bitfield.AffectLowBits)
		full.Resize(m, bitfield.AffectHighBits)

		digits = full
		biased = 0
	}

	f = signField(negative, l)
	f.ConcatInPlace(bitfield.FromUnsigned(uint64(biased), l.ExponentWidth()))
	f.ConcatInPlace(digits)

	if round {
		magnitude := bitfield.Range{Start: 0, End: l.ExponentBits().End}
		largest := special.Construct(special.Landmark(special.KindLargestNormal), l)

		if f.Sub(magnitude).Equal(largest.Sub(magnitude)) {
			return infinity(negative, l)
		}

		// The carry may run from the mantissa into the exponent.
		f.Increment(magnitude)
	}

	return f, nil
}
