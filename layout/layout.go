package layout

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/zeebo/errs"

	"github.com/calebcase/binfloat/bitfield"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("layout")

// ErrInvalid is returned for layouts that cannot be encoded or decoded.
var ErrInvalid = errors.New("invalid layout")

const (
	// MinExponent is the narrowest exponent field that keeps every landmark
	// value distinct.
	MinExponent = 3
	// MinMantissa is the narrowest mantissa field that can hold a quiet flag
	// and the trailing NaN bit.
	MinMantissa = 2
	// MaxMantissa is the widest mantissa the decoder's power table covers.
	MaxMantissa = 255
)

// Layout describes a binary floating point format. The sign is the most
// significant field and the mantissa the least significant:
//
//  | sign | exponent | mantissa |
//  |------|----------|----------|
//  | MSB                    LSB |
//
// Layouts are immutable values.
type Layout struct {
	sign     int
	exponent int
	mantissa int
	bias     int64
}

// New returns a validated layout.
func New(sign, exponent, mantissa int, bias int64) (l Layout, err error) {
	l = Layout{
		sign:     sign,
		exponent: exponent,
		mantissa: mantissa,
		bias:     bias,
	}

	err = l.Validate()
	if err != nil {
		return Layout{}, err
	}

	return l, nil
}

// DefaultBias returns the IEEE 754 bias for an exponent field of the given
// width: 2^(exponent-1) - 1.
func DefaultBias(exponent int) int64 {
	if exponent <= 0 {
		return 0
	}

	return int64(1)<<(exponent-1) - 1
}

// Validate reports every reason the layout cannot be used.
func (l Layout) Validate() error {
	var result *multierror.Error

	if l.sign < 0 {
		result = multierror.Append(result, fmt.Errorf("sign width %d is negative", l.sign))
	}
	if l.exponent < MinExponent {
		result = multierror.Append(result, fmt.Errorf("exponent width %d is below %d", l.exponent, MinExponent))
	}
	if l.exponent > 62 {
		result = multierror.Append(result, fmt.Errorf("exponent width %d exceeds 62", l.exponent))
	}
	if l.mantissa < MinMantissa {
		result = multierror.Append(result, fmt.Errorf("mantissa width %d is below %d", l.mantissa, MinMantissa))
	}
	if l.mantissa > MaxMantissa {
		result = multierror.Append(result, fmt.Errorf("mantissa width %d exceeds %d", l.mantissa, MaxMantissa))
	}
	if size := l.sign + l.exponent + l.mantissa; size > bitfield.MaxSize {
		result = multierror.Append(result, fmt.Errorf("total width %d exceeds %d", size, bitfield.MaxSize))
	}
	if l.bias < 0 {
		result = multierror.Append(result, fmt.Errorf("bias %d is negative", l.bias))
	}

	if err := result.ErrorOrNil(); err != nil {
		return Error.New("%w: %s: %v", ErrInvalid, l, err)
	}

	return nil
}

// Size returns the total number of bits.
func (l Layout) Size() int {
	return l.sign + l.exponent + l.mantissa
}

// SignWidth returns the number of sign bits.
func (l Layout) SignWidth() int {
	return l.sign
}

// ExponentWidth returns the number of exponent bits.
func (l Layout) ExponentWidth() int {
	return l.exponent
}

// MantissaWidth returns the number of mantissa bits.
func (l Layout) MantissaWidth() int {
	return l.mantissa
}

// Bias returns the exponent bias.
func (l Layout) Bias() int64 {
	return l.bias
}

// Signed reports whether the layout has a sign field.
func (l Layout) Signed() bool {
	return l.sign > 0
}

// Bits returns the range covering the whole pattern.
func (l Layout) Bits() bitfield.Range {
	return bitfield.Range{Start: 0, End: l.Size()}
}

// SignBit returns the bit index holding the sign. The sign is the lowest bit
// of the sign field. Unsigned layouts have no sign bit.
func (l Layout) SignBit() (int, bool) {
	if !l.Signed() {
		return 0, false
	}

	return l.mantissa + l.exponent, true
}

// SignBits returns the bit range of the sign field. It is empty for unsigned
// layouts.
func (l Layout) SignBits() bitfield.Range {
	return bitfield.Range{Start: l.mantissa + l.exponent, End: l.Size()}
}

// ExponentBits returns the bit range of the exponent field.
func (l Layout) ExponentBits() bitfield.Range {
	return bitfield.Range{Start: l.mantissa, End: l.mantissa + l.exponent}
}

// MantissaBits returns the bit range of the mantissa field.
func (l Layout) MantissaBits() bitfield.Range {
	return bitfield.Range{Start: 0, End: l.mantissa}
}

// SignChar returns the character offset of the sign in the textual form.
func (l Layout) SignChar() (int, bool) {
	if !l.Signed() {
		return 0, false
	}

	return l.sign - 1, true
}

// SignChars returns the character range of the sign field in the textual
// form.
func (l Layout) SignChars() bitfield.Range {
	return bitfield.Range{Start: 0, End: l.sign}
}

// ExponentChars returns the character range of the exponent field in the
// textual form.
func (l Layout) ExponentChars() bitfield.Range {
	return bitfield.Range{Start: l.sign, End: l.sign + l.exponent}
}

// MantissaChars returns the character range of the mantissa field in the
// textual form.
func (l Layout) MantissaChars() bitfield.Range {
	return bitfield.Range{Start: l.sign + l.exponent, End: l.Size()}
}

// MaxExponentField returns the all ones exponent field value reserved for
// infinities and NaNs.
func (l Layout) MaxExponentField() int64 {
	return int64(1)<<l.exponent - 1
}

func (l Layout) String() string {
	return fmt.Sprintf("s%de%dm%d/%d", l.sign, l.exponent, l.mantissa, l.bias)
}
