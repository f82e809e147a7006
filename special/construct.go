package special

import (
	"github.com/calebcase/binfloat/bitfield"
	"github.com/calebcase/binfloat/layout"
)

func sign(l layout.Layout, negative bool) bitfield.Field {
	var v uint8
	if negative {
		v = 1
	}

	return bitfield.FromUnsigned(v, l.SignWidth())
}

func bit(v bool) bitfield.Field {
	if v {
		return bitfield.AllOne(1)
	}

	return bitfield.AllZero(1)
}

// join concatenates the fields with the first one in the most significant
// position.
func join(fields ...bitfield.Field) bitfield.Field {
	r := bitfield.New(0)
	for _, f := range fields {
		r.ConcatInPlace(f)
	}

	return r
}

// Construct returns the bit pattern of v under l. The layout must be valid.
func Construct(v Value, l layout.Layout) bitfield.Field {
	e := l.ExponentWidth()
	m := l.MantissaWidth()

	switch v.Kind {
	case KindZero:
		return join(sign(l, v.Negative), bitfield.AllZero(e), bitfield.AllZero(m))
	case KindInfinity:
		return join(sign(l, v.Negative), bitfield.AllOne(e), bitfield.AllZero(m))
	case KindNaN:
		payload := v.Payload
		payload.Resize(m-2, bitfield.AffectHighBits)

		// The trailing 1 keeps the mantissa nonzero even for an empty
		// signaling payload.
		return join(sign(l, false), bitfield.AllOne(e), bit(!v.Signaling), payload, bit(true))
	case KindSmallestSubnormal:
		return join(sign(l, false), bitfield.AllZero(e), bitfield.FromUnsigned(uint8(1), m))
	case KindLargestSubnormal:
		return join(sign(l, false), bitfield.AllZero(e), bitfield.AllOne(m))
	case KindSmallestNormal:
		return join(sign(l, false), bitfield.FromUnsigned(uint8(1), e), bitfield.AllZero(m))
	case KindLargestNormal:
		return join(sign(l, false), bitfield.AllOne(e-1), bit(false), bitfield.AllOne(m))
	case KindLargestBelowOne:
		return join(sign(l, false), bit(false), bitfield.AllOne(e-2), bit(false), bitfield.AllOne(m))
	case KindOne:
		return join(sign(l, false), bit(false), bitfield.AllOne(e-1), bitfield.AllZero(m))
	case KindSmallestAboveOne:
		return join(sign(l, false), bit(false), bitfield.AllOne(e-1), bitfield.FromUnsigned(uint8(1), m))
	}

	panic("special: cannot construct " + v.Kind.String())
}
