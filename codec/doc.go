// Package codec converts decimal numerals to binary floating point bit
// patterns and back.
//
// Encoding
//
// A numeral is read exactly and written as 1.digits * 2^exp. The integer
// part supplies its binary digits directly; the fraction supplies the rest by
// doubling. When the integer part is zero the doubling first locates the
// leading 1 and exp is negative. 3.14 under float32:
//
//  integer  3    => 1.1 * 2^1
//  fraction 0.14 => 0010001111010111000010|1...
//  exponent 1 + 127 = 128 => 10000000
//
//  | Sign | Exponent | Mantissa                |
//  |------|----------|-------------------------|
//  | 0    | 10000000 | 10010001111010111000010 |
//  | 0    | 10000000 | 10010001111010111000011 | after rounding
//  |------|----------|-------------------------|
//
// Digits that do not fit the mantissa are dropped and the first dropped
// digit rounds: when it is 1 the exponent and mantissa are incremented as a
// single unsigned number so the carry may spill into the exponent. A carry
// out of the largest normal number produces the infinity.
//
// Biased exponents that reach the all ones field encode the infinity.
// Biased exponents below 1 encode subnormals by moving the leading 1 into
// the mantissa, and values below half the smallest subnormal encode zero.
//
// Decoding
//
// Decoding computes sign * significand * 2^(field - bias) in float64 where
// the significand is 1.mantissa, or 0.mantissa with the exponent of the
// smallest normal when the exponent field is zero. Values beyond the float64
// range are reported as ErrRange.
package codec
