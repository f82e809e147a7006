// Package special builds and recognizes the special values of a layout.
//
// Special values are the signed zeros and infinities, quiet and signaling
// NaNs, and seven positive landmark magnitudes. For float32 they are:
//
//  | Value              | Sign | Exponent | Mantissa                |
//  |--------------------|------|----------|-------------------------|
//  | +zero              | 0    | 00000000 | 00000000000000000000000 |
//  | -zero              | 1    | 00000000 | 00000000000000000000000 |
//  | +infinity          | 0    | 11111111 | 00000000000000000000000 |
//  | -infinity          | 1    | 11111111 | 00000000000000000000000 |
//  | quiet-nan          | 0    | 11111111 | 1 payload.............1 |
//  | signaling-nan      | 0    | 11111111 | 0 payload.............1 |
//  | smallest-subnormal | 0    | 00000000 | 00000000000000000000001 |
//  | largest-subnormal  | 0    | 00000000 | 11111111111111111111111 |
//  | smallest-normal    | 0    | 00000001 | 00000000000000000000000 |
//  | largest-normal     | 0    | 11111110 | 11111111111111111111111 |
//  | largest-below-one  | 0    | 01111110 | 11111111111111111111111 |
//  | one                | 0    | 01111111 | 00000000000000000000000 |
//  | smallest-above-one | 0    | 01111111 | 00000000000000000000001 |
//  |--------------------|------|----------|-------------------------|
//
// A NaN payload is the mantissa less its quiet flag (most significant) and
// its trailing bit (least significant), which Construct always sets so that
// the mantissa of a NaN is never zero.
//
// Classify tests the patterns above from top to bottom and returns the first
// match. Any pattern with an all ones exponent and a nonzero mantissa is a
// NaN regardless of its sign.
package special
