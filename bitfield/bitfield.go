package bitfield

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("bitfield")

// ErrOutOfRange is returned when writing a position at or above the size of
// a field.
var ErrOutOfRange = errors.New("position out of range")

const (
	// MaxSize is the largest number of bits a Field can hold.
	MaxSize = 256

	blockSize = 32
	blocks    = MaxSize / blockSize
)

// ResizePolicy selects which end of a field Resize grows or shrinks.
type ResizePolicy int

const (
	// AffectLowBits grows by shifting up and shrinks by shifting down.
	AffectLowBits ResizePolicy = iota
	// AffectHighBits grows and shrinks at the most significant end.
	AffectHighBits
)

func (p ResizePolicy) String() string {
	switch p {
	case AffectLowBits:
		return "AffectLowBits"
	case AffectHighBits:
		return "AffectHighBits"
	}

	return fmt.Sprintf("ResizePolicy(%d)", int(p))
}

// Field is an ordered sequence of at most MaxSize bits.
type Field struct {
	data [blocks]uint32
	size int
}

func checkSize(size int) {
	if size < 0 || size > MaxSize {
		panic(fmt.Sprintf("bitfield: invalid size %d (max %d)", size, MaxSize))
	}
}

// New returns a field of size bits all set to 0.
func New(size int) Field {
	checkSize(size)

	return Field{size: size}
}

// AllZero returns a field of size bits all set to 0.
func AllZero(size int) Field {
	return New(size)
}

// AllOne returns a field of size bits all set to 1.
func AllOne(size int) Field {
	f := New(size)

	full := size / blockSize
	for i := 0; i < full; i++ {
		f.data[i] = ^uint32(0)
	}

	if rest := size % blockSize; rest != 0 {
		f.data[full] = uint32(1)<<rest - 1
	}

	return f
}

// FromUnsigned returns a field of width bits holding v in the low bits. Bits
// of v above width are dropped.
func FromUnsigned[T constraints.Unsigned](v T, width int) Field {
	f := New(width)

	x := uint64(v)
	f.data[0] = uint32(x)
	f.data[1] = uint32(x >> 32)
	f.clearAbove()

	return f
}

// FromUint128 returns a field of width bits holding the 128 bit value hi:lo
// in the low bits.
func FromUint128(hi, lo uint64, width int) Field {
	f := New(width)

	f.data[0] = uint32(lo)
	f.data[1] = uint32(lo >> 32)
	f.data[2] = uint32(hi)
	f.data[3] = uint32(hi >> 32)
	f.clearAbove()

	return f
}

// Size returns the number of bits in the field.
func (f Field) Size() int {
	return f.size
}

// Get returns the bit at pos. Positions outside the field read as false.
func (f Field) Get(pos int) bool {
	if pos < 0 || pos >= f.size {
		return false
	}

	return f.data[pos/blockSize]&(1<<(pos%blockSize)) != 0
}

// Set writes the bit at pos. The field must be resized before writing beyond
// its size.
func (f *Field) Set(pos int, value bool) error {
	if pos < 0 || pos >= f.size {
		return Error.New("%w: pos=%d size=%d", ErrOutOfRange, pos, f.size)
	}

	f.set(pos, value)

	return nil
}

func (f *Field) set(pos int, value bool) {
	if value {
		f.data[pos/blockSize] |= 1 << (pos % blockSize)
	} else {
		f.data[pos/blockSize] &^= 1 << (pos % blockSize)
	}
}

// clearAbove zeroes every backing bit at or above size.
func (f *Field) clearAbove() {
	for i := range f.data {
		lo := i * blockSize
		switch {
		case lo >= f.size:
			f.data[i] = 0
		case lo+blockSize > f.size:
			f.data[i] &= uint32(1)<<(f.size-lo) - 1
		}
	}
}

// Concat returns a new field with f in the high bits and low in the low bits.
func (f Field) Concat(low Field) Field {
	r := New(f.size + low.size)

	l := low
	l.clearAbove()
	r.data = l.data

	for i := 0; i < f.size; i++ {
		if f.Get(i) {
			r.set(low.size+i, true)
		}
	}

	return r
}

// ConcatInPlace replaces f with f.Concat(low).
func (f *Field) ConcatInPlace(low Field) {
	*f = f.Concat(low)
}

// PushLow appends a single bit below the current least significant bit.
func (f *Field) PushLow(bit bool) {
	var b Field
	if bit {
		b = AllOne(1)
	} else {
		b = AllZero(1)
	}

	f.ConcatInPlace(b)
}

// shiftUp moves every bit n positions towards the most significant end.
// Bits pushed past MaxSize are lost.
func (f *Field) shiftUp(n int) {
	if n <= 0 {
		return
	}

	var r [blocks]uint32
	words, rest := n/blockSize, n%blockSize
	for i := blocks - 1; i >= words; i-- {
		r[i] = f.data[i-words] << rest
		if rest != 0 && i-words-1 >= 0 {
			r[i] |= f.data[i-words-1] >> (blockSize - rest)
		}
	}

	f.data = r
}

// shiftDown moves every bit n positions towards the least significant end.
func (f *Field) shiftDown(n int) {
	if n <= 0 {
		return
	}

	var r [blocks]uint32
	words, rest := n/blockSize, n%blockSize
	for i := 0; i+words < blocks; i++ {
		r[i] = f.data[i+words] >> rest
		if rest != 0 && i+words+1 < blocks {
			r[i] |= f.data[i+words+1] << (blockSize - rest)
		}
	}

	f.data = r
}

// Resize changes the size of the field according to policy.
func (f *Field) Resize(size int, policy ResizePolicy) {
	checkSize(size)

	// Stale bits above the logical size must not leak into the result.
	f.clearAbove()

	switch policy {
	case AffectLowBits:
		if size > f.size {
			f.shiftUp(size - f.size)
		} else {
			f.shiftDown(f.size - size)
		}
	case AffectHighBits:
	default:
		panic(fmt.Sprintf("bitfield: unknown resize policy %d", int(policy)))
	}

	f.size = size
	f.clearAbove()
}

// Sub returns the bits in r as a new field of r.Len() bits. Positions of r
// outside f read as 0.
func (f Field) Sub(r Range) Field {
	s := New(r.Len())

	s.data = f.data
	s.size = f.size
	s.clearAbove()
	if r.Start > 0 {
		s.shiftDown(r.Start)
	}

	s.size = r.Len()
	s.clearAbove()

	return s
}

// AllBitsInRangeAre reports whether every bit in r equals value. An empty
// range reports true.
func (f Field) AllBitsInRangeAre(r Range, value bool) bool {
	for i := r.Start; i < r.End; i++ {
		if f.Get(i) != value {
			return false
		}
	}

	return true
}

// AllBitsAre reports whether every bit of the field equals value.
func (f Field) AllBitsAre(value bool) bool {
	return f.AllBitsInRangeAre(Range{0, f.size}, value)
}

// Increment adds one to the unsigned number formed by the bits in r,
// propagating the carry from r.Start upwards. It returns true when the carry
// leaves the top of the range, in which case every bit of r is now 0.
func (f *Field) Increment(r Range) (carry bool) {
	for i := r.Start; i < r.End && i < f.size; i++ {
		if f.Get(i) {
			f.set(i, false)
			continue
		}

		f.set(i, true)

		return false
	}

	return true
}

// Uint64 returns the low 64 bits of the field as an unsigned integer.
func (f Field) Uint64() uint64 {
	c := f
	c.clearAbove()

	return uint64(c.data[1])<<32 | uint64(c.data[0])
}

// OnesCount returns the number of bits set to 1.
func (f Field) OnesCount() (n int) {
	c := f
	c.clearAbove()

	for _, w := range c.data {
		n += bits.OnesCount32(w)
	}

	return n
}

// Equal reports whether f and o have the same size and bits.
func (f Field) Equal(o Field) bool {
	if f.size != o.size {
		return false
	}

	a, b := f, o
	a.clearAbove()
	b.clearAbove()

	return a.data == b.data
}

// String returns the bits most significant first.
func (f Field) String() string {
	var sb strings.Builder
	sb.Grow(f.size)

	for i := f.size - 1; i >= 0; i-- {
		if f.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Parse reads a field from its most significant bit first textual form. The
// field is as wide as the text.
func Parse(text string) (Field, error) {
	return ParseSize(text, len(text))
}

// ParseSize reads a field of size bits from its most significant bit first
// textual form. Text longer than size drops its leading characters; shorter
// text leaves the high bits 0.
func ParseSize(text string, size int) (f Field, err error) {
	defer Error.WrapP(&err)

	if size < 0 || size > MaxSize {
		return f, Error.New("size %d exceeds capacity %d", size, MaxSize)
	}

	f = New(size)

	for i := 0; i < len(text); i++ {
		pos := len(text) - 1 - i

		switch text[pos] {
		case '0':
		case '1':
			if i < size {
				f.set(i, true)
			}
		default:
			return Field{}, Error.New("invalid bit %q at offset %d", text[pos], pos)
		}
	}

	return f, nil
}
