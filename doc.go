// Package binfloat converts decimal numerals to the bit patterns of binary
// floating point layouts and back.
//
// Layouts are named: float16, float32, float64, float128, float256,
// fp8-e4m3, fp8-e5m2, bfloat16 and tensorfloat32 plus their aliases
// (half, single, double, quad, bf16, tf32, ...). Custom layouts are added to
// a layout.Registry and used through a Codec:
//
//  r := layout.NewRegistry()
//  l, _ := layout.New(1, 3, 2, 3)
//  _ = r.Add("fp6-e3m2", l)
//
//  c := binfloat.New(r)
//  bits, _ := c.Encode("1.5", "fp6-e3m2") // 001110
//
// Bit strings are written most significant bit first. Decoding rounds half
// to even to the requested number of fractional digits:
//
//  binfloat.Decode("01000000010010001111010111000011", "float32", 4) // 3.14
package binfloat
