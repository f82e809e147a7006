package decimal

import (
	"math"

	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd/v3"
)

// rounding has room for every digit of a float64 plus any fractional
// precision that still changes its value.
var rounding = apd.Context{
	Precision:   1000,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       apd.DefaultTraps,
	Rounding:    apd.RoundHalfEven,
}

// Format returns the shortest decimal that reads back as x, rounded half to
// even to at most precision fractional digits, with trailing zeros removed. Negative
// values that round to zero keep their sign.
func Format(x float64, precision int) (s string, err error) {
	defer Error.WrapP(&err)

	if precision < 0 {
		return "", Error.New("negative precision %d", precision)
	}

	var d apd.Decimal

	_, err = d.SetFloat64(x)
	if err != nil {
		return "", oops.Trace(err)
	}

	if int64(d.Exponent) < -int64(precision) {
		_, err = rounding.Quantize(&d, &d, int32(-precision))
		if err != nil {
			return "", oops.Trace(err)
		}
	}

	d.Reduce(&d)
	if d.IsZero() {
		d.Exponent = 0
		d.Negative = math.Signbit(x)
	}

	return d.Text('f'), nil
}
