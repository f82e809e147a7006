package codec

import (
	"math"
	"strings"

	"github.com/calebcase/binfloat/bitfield"
	"github.com/calebcase/binfloat/decimal"
	"github.com/calebcase/binfloat/layout"
	"github.com/calebcase/binfloat/special"
)

// Decode returns the decimal numeral of the bit string, most significant bit
// first, under l. Finite values are rounded half to even to at most
// precision fractional digits and carry no trailing zeros. Zeros,
// infinities and NaNs decode to "0.0", "-0.0", "Infinity", "-Infinity" and
// "NaN".
func Decode(bits string, l layout.Layout, precision int) (s string, err error) {
	defer Error.WrapP(&err)

	f, err := parse(bits, l, precision)
	if err != nil {
		return "", err
	}

	return decode(f, l, precision)
}

// DecodeField is Decode for a bit field. The field must be exactly as wide
// as l.
func DecodeField(f bitfield.Field, l layout.Layout, precision int) (s string, err error) {
	defer Error.WrapP(&err)

	err = check(f, l, precision)
	if err != nil {
		return "", err
	}

	return decode(f, l, precision)
}

func check(f bitfield.Field, l layout.Layout, precision int) error {
	err := l.Validate()
	if err != nil {
		return err
	}

	if precision < 0 {
		return Error.New("negative precision %d", precision)
	}

	if f.Size() != l.Size() {
		return Error.New("%w: %d bits for %d bit layout %s", ErrMalformed, f.Size(), l.Size(), l)
	}

	return nil
}

func parse(bits string, l layout.Layout, precision int) (f bitfield.Field, err error) {
	text := strings.TrimSpace(bits)

	if len(text) > bitfield.MaxSize {
		return f, Error.New("%w: %d bits for %d bit layout %s", ErrMalformed, len(text), l.Size(), l)
	}

	f, err = bitfield.Parse(text)
	if err != nil {
		return f, Error.New("%w: %v", ErrMalformed, err)
	}

	return f, check(f, l, precision)
}

func decode(f bitfield.Field, l layout.Layout, precision int) (string, error) {
	if v, ok := special.Classify(f, l); ok {
		if tok, ok := token(v); ok {
			return tok, nil
		}
	}

	x, err := split(f, l).value()
	if err != nil {
		return "", err
	}

	return decimal.Format(x, precision)
}

// token returns the literal for zeros, infinities and NaNs. Landmarks
// decode as numbers.
func token(v special.Value) (string, bool) {
	switch v.Kind {
	case special.KindZero:
		if v.Negative {
			return "-0.0", true
		}
		return "0.0", true
	case special.KindInfinity:
		if v.Negative {
			return "-Infinity", true
		}
		return "Infinity", true
	case special.KindNaN:
		return "NaN", true
	}

	return "", false
}

// parts is a pattern split into its fields.
type parts struct {
	negative  bool
	field     uint64
	exponent  int64
	subnormal bool
	mantissa  float64
}

func split(f bitfield.Field, l layout.Layout) (p parts) {
	if bit, ok := l.SignBit(); ok {
		p.negative = f.Get(bit)
	}

	p.field = f.Sub(l.ExponentBits()).Uint64()
	p.exponent = int64(p.field) - l.Bias()

	// A zero exponent field has no implicit leading 1 and the exponent of
	// the smallest normal.
	lead := 1.0
	if p.field == 0 {
		p.subnormal = true
		p.exponent = 1 - l.Bias()
		lead = 0
	}

	m := l.MantissaWidth()

	p.mantissa = lead
	for i := 0; i < m; i++ {
		if f.Get(m - 1 - i) {
			p.mantissa += halfPows[i]
		}
	}

	return p
}

// value returns the pattern's value as a float64.
func (p parts) value() (float64, error) {
	x := math.Ldexp(p.mantissa, int(p.exponent))

	if math.IsInf(x, 0) || (x == 0 && p.mantissa != 0) {
		return 0, Error.New("%w: %g * 2^%d is outside the float64 range", ErrRange, p.mantissa, p.exponent)
	}

	if p.negative {
		x = -x
	}

	return x, nil
}
