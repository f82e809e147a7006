package codec

import (
	"github.com/calebcase/binfloat/bitfield"
	"github.com/calebcase/binfloat/decimal"
	"github.com/calebcase/binfloat/layout"
	"github.com/calebcase/binfloat/special"
)

// significandPrecision is enough fractional digits that significands are
// never rounded.
const significandPrecision = 1100

// Info describes a bit pattern field by field.
type Info struct {
	Bits     string `json:"bits"`
	Hex      string `json:"hex"`
	Layout   string `json:"layout"`
	Sign     string `json:"sign"`
	Exponent string `json:"exponent"`
	Mantissa string `json:"mantissa"`

	Negative bool `json:"negative"`

	// ExponentField is the stored exponent and Power the exponent after the
	// bias is removed.
	ExponentField uint64 `json:"exponent_field"`
	Power         int64  `json:"power"`

	// Significand is the mantissa with its leading digit, 0 for subnormals
	// and 1 otherwise.
	Significand string `json:"significand"`
	Subnormal   bool   `json:"subnormal"`

	// Special names the special value or landmark the pattern encodes.
	Special string `json:"special,omitempty"`

	Value string `json:"value"`
}

// Inspect decodes the bit string like Decode and also reports its fields.
func Inspect(bits string, l layout.Layout, precision int) (info Info, err error) {
	defer Error.WrapP(&err)

	f, err := parse(bits, l, precision)
	if err != nil {
		return info, err
	}

	return inspect(f, l, precision)
}

// InspectField is Inspect for a bit field.
func InspectField(f bitfield.Field, l layout.Layout, precision int) (info Info, err error) {
	defer Error.WrapP(&err)

	err = check(f, l, precision)
	if err != nil {
		return info, err
	}

	return inspect(f, l, precision)
}

func inspect(f bitfield.Field, l layout.Layout, precision int) (info Info, err error) {
	p := split(f, l)

	info = Info{
		Bits:          f.String(),
		Hex:           f.Hex(),
		Layout:        l.String(),
		Sign:          f.Sub(l.SignBits()).String(),
		Exponent:      f.Sub(l.ExponentBits()).String(),
		Mantissa:      f.Sub(l.MantissaBits()).String(),
		Negative:      p.negative,
		ExponentField: p.field,
		Power:         p.exponent,
		Subnormal:     p.subnormal && !f.AllBitsInRangeAre(l.MantissaBits(), false),
	}

	info.Significand, err = decimal.Format(p.mantissa, significandPrecision)
	if err != nil {
		return Info{}, err
	}

	if v, ok := special.Classify(f, l); ok {
		info.Special = v.String()
	}

	info.Value, err = decode(f, l, precision)
	if err != nil {
		return Info{}, err
	}

	return info, nil
}
