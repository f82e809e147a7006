// Package decimal provides the exact base 10 arithmetic used to convert
// numerals to and from binary floating point.
//
// A numeral is parsed into an exact decimal and split into its integer part
// and its fraction:
//
//  number = whole + fraction, 0 <= fraction < 1
//
// The integer part is converted to base 2 directly. The fraction yields its
// base 2 digits by repeated doubling: each doubling moves the next binary
// digit across the point, and the digit is removed again when it is 1.
//
// Doubling
//
// 0.1 in binary:
//
//  | Fraction | Doubled | Digit |
//  |----------|---------|-------|
//  | 0.1      | 0.2     | 0     |
//  | 0.2      | 0.4     | 0     |
//  | 0.4      | 0.8     | 0     |
//  | 0.8      | 1.6     | 1     |
//  | 0.6      | 1.2     | 1     |
//  | 0.2      | 0.4     | 0     |
//  | ...      | ...     | ...   |
//  |----------|---------|-------|
//
// The doubling is exact so the digits never drift. A fraction whose binary
// expansion terminates reaches zero; all others repeat forever and the
// caller decides when to stop.
//
// Formatting
//
// Decoded values are float64. Format renders the shortest decimal that reads
// back as the same float64, rounds half to even at the requested number of fractional digits
// and then drops trailing zeros:
//
//  3.140000104904175 @ 4 => 3.1400 => 3.14
//  16777216          @ 4 => 16777216
package decimal
