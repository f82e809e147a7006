package codec

import (
	"errors"
	"math"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("codec")

var (
	// ErrMalformed is returned for numerals and bit strings that cannot be
	// read.
	ErrMalformed = errors.New("malformed input")

	// ErrRange is returned for values that the target cannot represent.
	ErrRange = errors.New("value out of range")
)

// halfPows[i] is 2^-(i+1), the weight of the i-th mantissa bit counted from
// the most significant.
var halfPows [255]float64

func init() {
	for i := range halfPows {
		halfPows[i] = math.Ldexp(1, -(i + 1))
	}
}
