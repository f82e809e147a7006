package decimal

import (
	"errors"
	"math/big"

	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd/v3"
	"github.com/zeebo/errs"

	"github.com/calebcase/binfloat/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// ErrSyntax is returned for text that is not a finite decimal numeral.
var ErrSyntax = errors.New("invalid decimal numeral")

// exact never rounds: a zero precision disables rounding for addition,
// subtraction and multiplication.
var exact = apd.BaseContext

var (
	one = apd.New(1, 0)
	two = apd.New(2, 0)
)

// Parse returns the finite decimal written by text. Exponent notation is
// accepted; NaN and infinity forms are not.
func Parse(text string) (d *apd.Decimal, err error) {
	defer Error.WrapP(&err)

	d, _, err = apd.NewFromString(text)
	if err != nil {
		return nil, Error.New("%w: %q: %v", ErrSyntax, text, oops.Trace(err))
	}

	if d.Form != apd.Finite {
		return nil, Error.New("%w: %q is not finite", ErrSyntax, text)
	}

	return d, nil
}

// Magnitude returns the base 10 exponent of the most significant digit of d,
// i.e. floor(log10(|d|)). It is only meaningful for nonzero d.
func Magnitude(d *apd.Decimal) int64 {
	return d.NumDigits() + int64(d.Exponent) - 1
}

// Split returns the integer and fractional parts of |d|.
func Split(d *apd.Decimal) (whole *big.Int, frac *Fraction, err error) {
	defer Error.WrapP(&err)

	var abs, integ apd.Decimal
	frac = &Fraction{}

	abs.Abs(d)
	abs.Modf(&integ, &frac.d)

	whole, err = integer.Parse(integ.Text('f'))
	if err != nil {
		return nil, nil, err
	}

	return whole, frac, nil
}

// Fraction is a decimal value in [0, 1) that yields its binary digits one at
// a time.
type Fraction struct {
	d apd.Decimal
}

// NewFraction returns the fractional part of |d|.
func NewFraction(d *apd.Decimal) *Fraction {
	var abs, integ apd.Decimal
	f := &Fraction{}

	abs.Abs(d)
	abs.Modf(&integ, &f.d)

	return f
}

// IsZero reports whether no nonzero digits remain.
func (f *Fraction) IsZero() bool {
	return f.d.IsZero()
}

// Next doubles the fraction and returns the binary digit that crossed the
// point.
func (f *Fraction) Next() (bit bool, err error) {
	defer Error.WrapP(&err)

	_, err = exact.Mul(&f.d, &f.d, two)
	if err != nil {
		return false, oops.Trace(err)
	}

	if f.d.Cmp(one) < 0 {
		return false, nil
	}

	_, err = exact.Sub(&f.d, &f.d, one)
	if err != nil {
		return false, oops.Trace(err)
	}

	return true, nil
}

// Shift multiplies the fraction by 2^n in one step, skipping n binary digits
// that the caller knows to be zero. It fails if a skipped digit was one.
func (f *Fraction) Shift(n int64) (err error) {
	defer Error.WrapP(&err)

	if n <= 0 {
		return nil
	}

	var p apd.BigInt
	p.Lsh(p.SetInt64(1), uint(n))

	_, err = exact.Mul(&f.d, &f.d, apd.NewWithBigInt(&p, 0))
	if err != nil {
		return oops.Trace(err)
	}

	if f.d.Cmp(one) >= 0 {
		return Error.New("shift by %d skips a nonzero digit", n)
	}

	return nil
}

// String returns the remaining fraction in plain notation.
func (f *Fraction) String() string {
	return f.d.Text('f')
}
