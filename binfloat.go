package binfloat

import (
	"errors"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/binfloat/bitfield"
	"github.com/calebcase/binfloat/codec"
	"github.com/calebcase/binfloat/layout"
	"github.com/calebcase/binfloat/special"
)

// Error is the error class for this package.
var Error = errs.Class("binfloat")

// ErrUnknownLayout is returned for layout names that are not registered.
var ErrUnknownLayout = errors.New("unknown layout")

// Codec converts between numerals and bit strings for the layouts in its
// registry.
type Codec struct {
	layouts *layout.Registry
}

// New returns a codec resolving layout names with layouts. A nil registry
// holds only the standard layouts.
func New(layouts *layout.Registry) *Codec {
	if layouts == nil {
		layouts = layout.NewRegistry()
	}

	return &Codec{
		layouts: layouts,
	}
}

// Layouts returns the registry the codec resolves names with.
func (c *Codec) Layouts() *layout.Registry {
	return c.layouts
}

// Layout returns the layout registered under name.
func (c *Codec) Layout(name string) (l layout.Layout, err error) {
	l, ok := c.layouts.Lookup(name)
	if !ok {
		return l, Error.New("%w: %q", ErrUnknownLayout, name)
	}

	return l, nil
}

// Encode returns the bit string of the numeral text under the named layout.
func (c *Codec) Encode(text, name string) (bits string, err error) {
	defer Error.WrapP(&err)

	l, err := c.Layout(name)
	if err != nil {
		return "", err
	}

	return codec.Encode(text, l)
}

// EncodeHex is Encode with the pattern written in hexadecimal.
func (c *Codec) EncodeHex(text, name string) (hex string, err error) {
	defer Error.WrapP(&err)

	l, err := c.Layout(name)
	if err != nil {
		return "", err
	}

	f, err := codec.EncodeField(text, l)
	if err != nil {
		return "", err
	}

	return f.Hex(), nil
}

// Decode returns the numeral of the bit string under the named layout with
// at most precision fractional digits.
func (c *Codec) Decode(bits, name string, precision int) (text string, err error) {
	defer Error.WrapP(&err)

	l, err := c.Layout(name)
	if err != nil {
		return "", err
	}

	return codec.Decode(bits, l, precision)
}

// DecodeHex is Decode for a pattern written in hexadecimal.
func (c *Codec) DecodeHex(hex, name string, precision int) (text string, err error) {
	defer Error.WrapP(&err)

	l, err := c.Layout(name)
	if err != nil {
		return "", err
	}

	f, err := bitfield.ParseHex(strings.TrimSpace(hex), l.Size())
	if err != nil {
		return "", Error.New("%w: %v", codec.ErrMalformed, err)
	}

	return codec.DecodeField(f, l, precision)
}

// Inspect reports the fields and value of the bit string under the named
// layout.
func (c *Codec) Inspect(bits, name string, precision int) (info codec.Info, err error) {
	defer Error.WrapP(&err)

	l, err := c.Layout(name)
	if err != nil {
		return info, err
	}

	return codec.Inspect(bits, l, precision)
}

// InspectHex is Inspect for a pattern written in hexadecimal.
func (c *Codec) InspectHex(hex, name string, precision int) (info codec.Info, err error) {
	defer Error.WrapP(&err)

	l, err := c.Layout(name)
	if err != nil {
		return info, err
	}

	f, err := bitfield.ParseHex(strings.TrimSpace(hex), l.Size())
	if err != nil {
		return info, Error.New("%w: %v", codec.ErrMalformed, err)
	}

	return codec.InspectField(f, l, precision)
}

// Construct builds the pattern of v under the named layout and reports it
// like Inspect.
func (c *Codec) Construct(v special.Value, name string, precision int) (info codec.Info, err error) {
	defer Error.WrapP(&err)

	l, err := c.Layout(name)
	if err != nil {
		return info, err
	}

	if v.Negative && !l.Signed() {
		return info, Error.New("%w: %s in unsigned %s", codec.ErrRange, v, l)
	}

	return codec.InspectField(special.Construct(v, l), l, precision)
}

var std = New(nil)

// Encode returns the bit string of the numeral text under the standard
// layout name.
func Encode(text, name string) (string, error) {
	return std.Encode(text, name)
}

// Decode returns the numeral of the bit string under the standard layout
// name.
func Decode(bits, name string, precision int) (string, error) {
	return std.Decode(bits, name, precision)
}

// Inspect reports the fields and value of the bit string under the standard
// layout name.
func Inspect(bits, name string, precision int) (codec.Info, error) {
	return std.Inspect(bits, name, precision)
}
