// Package layout describes binary floating point formats.
//
// A Layout is the width of the sign, exponent and mantissa fields plus the
// exponent bias. Bit indices count from the least significant bit while
// character offsets count from the left of the textual form:
//
//  float32
//
//  | sign | exponent      | mantissa          |
//  |------|---------------|-------------------|
//  | 31   | 30 .. 23      | 22 .. 0           | bit index
//  | 0    | 1 .. 8        | 9 .. 31           | character offset
//
// Unsigned layouts have a zero width sign field. Every sign query reports
// that no sign exists for them.
//
// The standard layouts are exposed as package variables and by name through
// Lookup. Custom layouts can be registered in a Registry directly or read from
// a YAML document:
//
//  layouts:
//    - name: fp6-e3m2
//      exponent: 3
//      mantissa: 2
package layout
