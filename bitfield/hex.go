package bitfield

import (
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// Hex returns the field as upper case hexadecimal digits, most significant
// first. A size that is not a multiple of 4 is padded with leading zero bits.
func (f Field) Hex() string {
	n := (f.size + 3) / 4

	var sb strings.Builder
	sb.Grow(n)

	for d := n - 1; d >= 0; d-- {
		var nibble byte
		for b := 3; b >= 0; b-- {
			nibble <<= 1
			if f.Get(d*4 + b) {
				nibble |= 1
			}
		}

		sb.WriteByte(hexDigits[nibble])
	}

	return sb.String()
}

// ParseHex reads a field of size bits from hexadecimal digits, most
// significant first. An optional 0x prefix is accepted. Digits that set bits
// at or above size are rejected.
func ParseHex(text string, size int) (f Field, err error) {
	defer Error.WrapP(&err)

	if size < 0 || size > MaxSize {
		return f, Error.New("size %d exceeds capacity %d", size, MaxSize)
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	if digits == "" {
		return f, Error.New("empty hexadecimal value %q", text)
	}

	f = New(size)

	for i := 0; i < len(digits); i++ {
		pos := len(digits) - 1 - i

		nibble := strings.IndexByte(hexDigits, upper(digits[pos]))
		if nibble < 0 {
			return Field{}, Error.New("invalid hexadecimal digit %q at offset %d", digits[pos], pos)
		}

		for b := 0; b < 4; b++ {
			if nibble&(1<<b) == 0 {
				continue
			}

			bit := i*4 + b
			if bit >= size {
				return Field{}, Error.New("hexadecimal value %q does not fit in %d bits", text, size)
			}

			f.set(bit, true)
		}
	}

	return f, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 'A'
	}

	return c
}
