package special

import (
	"github.com/calebcase/binfloat/bitfield"
	"github.com/calebcase/binfloat/layout"
)

// fields exposes the parts of a pattern to the matchers.
type fields struct {
	f bitfield.Field
	l layout.Layout
}

func (p fields) all(start, end int, v bool) bool {
	return p.f.AllBitsInRangeAre(bitfield.Range{Start: start, End: end}, v)
}

// sign reports whether the sign field holds exactly the given sign. Unsigned
// layouts are always positive.
func (p fields) sign(negative bool) bool {
	bit, ok := p.l.SignBit()
	if !ok {
		return !negative
	}

	return p.f.Get(bit) == negative && p.all(bit+1, p.l.Size(), false)
}

func (p fields) exponent(v bool) bool {
	return p.f.AllBitsInRangeAre(p.l.ExponentBits(), v)
}

func (p fields) mantissa(v bool) bool {
	return p.f.AllBitsInRangeAre(p.l.MantissaBits(), v)
}

// exponentIsOne matches 0...01.
func (p fields) exponentIsOne() bool {
	r := p.l.ExponentBits()
	return p.all(r.Start, r.Start+1, true) && p.all(r.Start+1, r.End, false)
}

// exponentIsMaxFinite matches 1...10.
func (p fields) exponentIsMaxFinite() bool {
	r := p.l.ExponentBits()
	return p.all(r.Start, r.Start+1, false) && p.all(r.Start+1, r.End, true)
}

// exponentIsBias matches 01...1, the biased exponent of 1.
func (p fields) exponentIsBias() bool {
	r := p.l.ExponentBits()
	return p.all(r.Start, r.End-1, true) && p.all(r.End-1, r.End, false)
}

// exponentBelowBias matches 01...10.
func (p fields) exponentBelowBias() bool {
	r := p.l.ExponentBits()
	return p.all(r.Start, r.Start+1, false) &&
		p.all(r.Start+1, r.End-1, true) &&
		p.all(r.End-1, r.End, false)
}

// mantissaIsOne matches 0...01.
func (p fields) mantissaIsOne() bool {
	r := p.l.MantissaBits()
	return p.all(r.Start, r.Start+1, true) && p.all(r.Start+1, r.End, false)
}

func (p fields) quiet() bool {
	return p.f.Get(p.l.MantissaWidth() - 1)
}

// payload returns the NaN payload between the quiet flag and the trailing
// bit.
func (p fields) payload() bitfield.Field {
	return p.f.Sub(bitfield.Range{Start: 1, End: p.l.MantissaWidth() - 1})
}

type pattern struct {
	kind      Kind
	negative  bool
	signaling bool
	match     func(p fields) bool
}

type patterns []pattern

// Match returns the value of the first matching pattern.
func (ps patterns) Match(p fields) (v Value, ok bool) {
	for _, pt := range ps {
		if !pt.match(p) {
			continue
		}

		v = Value{
			Kind:      pt.kind,
			Negative:  pt.negative,
			Signaling: pt.signaling,
		}
		if pt.kind == KindNaN {
			v.Payload = p.payload()
		}

		return v, true
	}

	return Value{}, false
}

// Zeros and infinities are tested before the landmarks since several
// landmark patterns share their exponent or mantissa fields.
var order = patterns{
	{KindZero, true, false, func(p fields) bool {
		return p.sign(true) && p.exponent(false) && p.mantissa(false)
	}},
	{KindZero, false, false, func(p fields) bool {
		return p.sign(false) && p.exponent(false) && p.mantissa(false)
	}},
	{KindInfinity, true, false, func(p fields) bool {
		return p.sign(true) && p.exponent(true) && p.mantissa(false)
	}},
	{KindInfinity, false, false, func(p fields) bool {
		return p.sign(false) && p.exponent(true) && p.mantissa(false)
	}},
	{KindNaN, false, false, func(p fields) bool {
		return p.exponent(true) && p.quiet()
	}},
	{KindNaN, false, true, func(p fields) bool {
		return p.exponent(true) && !p.quiet() && !p.mantissa(false)
	}},
	{KindSmallestSubnormal, false, false, func(p fields) bool {
		return p.sign(false) && p.exponent(false) && p.mantissaIsOne()
	}},
	{KindLargestSubnormal, false, false, func(p fields) bool {
		return p.sign(false) && p.exponent(false) && p.mantissa(true)
	}},
	{KindSmallestNormal, false, false, func(p fields) bool {
		return p.sign(false) && p.exponentIsOne() && p.mantissa(false)
	}},
	{KindLargestNormal, false, false, func(p fields) bool {
		return p.sign(false) && p.exponentIsMaxFinite() && p.mantissa(true)
	}},
	{KindLargestBelowOne, false, false, func(p fields) bool {
		return p.sign(false) && p.exponentBelowBias() && p.mantissa(true)
	}},
	{KindOne, false, false, func(p fields) bool {
		return p.sign(false) && p.exponentIsBias() && p.mantissa(false)
	}},
	{KindSmallestAboveOne, false, false, func(p fields) bool {
		return p.sign(false) && p.exponentIsBias() && p.mantissaIsOne()
	}},
}

// Classify returns the special value that f encodes under l, if any. The
// sign of a NaN is ignored. Bits of f outside the layout are ignored.
func Classify(f bitfield.Field, l layout.Layout) (Value, bool) {
	return order.Match(fields{f: f, l: l})
}

// Is reports whether f is the bit pattern of a special value of kind k.
func Is(f bitfield.Field, l layout.Layout, k Kind) bool {
	v, ok := Classify(f, l)
	return ok && v.Kind == k
}
