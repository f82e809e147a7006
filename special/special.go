package special

import (
	"fmt"
	"strings"

	"github.com/zeebo/errs"
	"golang.org/x/text/cases"

	"github.com/calebcase/binfloat/bitfield"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("special")

// Kind identifies a special value.
type Kind int

// Special value kinds in classification order.
const (
	KindNone Kind = iota
	KindZero
	KindInfinity
	KindNaN
	KindSmallestSubnormal
	KindLargestSubnormal
	KindSmallestNormal
	KindLargestNormal
	KindLargestBelowOne
	KindOne
	KindSmallestAboveOne
)

var kindNames = map[Kind]string{
	KindNone:              "none",
	KindZero:              "zero",
	KindInfinity:          "infinity",
	KindNaN:               "nan",
	KindSmallestSubnormal: "smallest-subnormal",
	KindLargestSubnormal:  "largest-subnormal",
	KindSmallestNormal:    "smallest-normal",
	KindLargestNormal:     "largest-normal",
	KindLargestBelowOne:   "largest-below-one",
	KindOne:               "one",
	KindSmallestAboveOne:  "smallest-above-one",
}

// Kinds lists every kind that Construct accepts.
var Kinds = []Kind{
	KindZero,
	KindInfinity,
	KindNaN,
	KindSmallestSubnormal,
	KindLargestSubnormal,
	KindSmallestNormal,
	KindLargestNormal,
	KindLargestBelowOne,
	KindOne,
	KindSmallestAboveOne,
}

// Landmarks lists the seven positive magnitude landmarks.
var Landmarks = Kinds[3:]

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

func fold(name string) string {
	name = cases.Fold().String(strings.TrimSpace(name))

	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, name)
}

// ParseKind returns the kind named by name. Matching ignores case and the
// separators '-', '_' and ' '.
func ParseKind(name string) (Kind, error) {
	want := fold(name)

	for _, k := range Kinds {
		if fold(k.String()) == want {
			return k, nil
		}
	}

	return KindNone, Error.New("unknown special value %q", name)
}

// Value is a special value. Negative applies to zeros and infinities;
// Signaling and Payload apply to NaNs.
type Value struct {
	Kind      Kind
	Negative  bool
	Signaling bool
	Payload   bitfield.Field
}

// Zero returns a signed zero.
func Zero(negative bool) Value {
	return Value{Kind: KindZero, Negative: negative}
}

// Infinity returns a signed infinity.
func Infinity(negative bool) Value {
	return Value{Kind: KindInfinity, Negative: negative}
}

// NaN returns a quiet or signaling NaN carrying payload.
func NaN(signaling bool, payload bitfield.Field) Value {
	return Value{Kind: KindNaN, Signaling: signaling, Payload: payload}
}

// Landmark returns the positive landmark of kind k.
func Landmark(k Kind) Value {
	return Value{Kind: k}
}

func (v Value) String() string {
	switch v.Kind {
	case KindZero, KindInfinity:
		if v.Negative {
			return "-" + v.Kind.String()
		}
		return "+" + v.Kind.String()
	case KindNaN:
		s := "quiet-nan"
		if v.Signaling {
			s = "signaling-nan"
		}
		if v.Payload.Size() > 0 && !v.Payload.AllBitsAre(false) {
			s += "(" + v.Payload.String() + ")"
		}
		return s
	}

	return v.Kind.String()
}
