// Package bitfield provides a fixed capacity ordered sequence of bits.
//
// A Field is a value type. It stores up to MaxSize bits in eight 32 bit
// words and carries a logical size. Bit 0 is the least significant bit. Any
// position at or above the size reads as 0 regardless of what the backing
// words contain:
//
//  | size = 12                                     |
//  |-----------------------------------------------|
//  | 11 | 10 | 9 | 8 | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
//  |  0 |  0 | 1 | 1 | 1 | 1 | 0 | 1 | 1 | 0 | 0 | 1 |  "001111011001"
//  |-----------------------------------------------|
//
// The textual form is most significant bit first, exactly size characters
// long.
//
// Composite patterns are built by concatenation. The receiver of Concat
// becomes the high bits and the argument the low bits:
//
//  sign.Concat(exponent).Concat(mantissa)
//
// Resize
//
// Fields can be resized with one of two policies:
//
//  | Policy         | Grow                              | Shrink                             |
//  |----------------|-----------------------------------|------------------------------------|
//  | AffectLowBits  | shift up, zero fill the low bits  | shift down, discard the low bits   |
//  | AffectHighBits | keep bits, zero fill the high end | keep bits, discard the high end    |
//
// AffectLowBits treats the field as an unsigned magnitude whose most
// significant bits are preserved (fitting a mantissa into its width).
// AffectHighBits treats the field as an unsigned integer whose value is
// preserved modulo the new width (fitting a NaN payload).
//
// Capacity
//
// Requesting a field wider than MaxSize is a programming error and panics.
// Callers that accept widths from users are expected to validate them first.
package bitfield
