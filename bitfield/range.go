package bitfield

import "fmt"

// Range is the half open interval of bit positions [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of positions in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start
}

// Contains reports whether pos is inside the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
