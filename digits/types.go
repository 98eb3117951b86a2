// Package digits defines constants and sentinel errors for the digit
// primitives of github.com/katalvlaran/digitsum.
package digits

import "errors"

// Base is the size of the digit alphabet. Every digit handled by this
// package lies in the closed range [0, Base-1].
const Base = 10

// Sentinel errors for digit operations.
var (
	// ErrDigitRange indicates an element outside the closed range [0, 9].
	ErrDigitRange = errors.New("digits: element out of digit range 0..9")
	// ErrOverflow indicates a join would exceed the int64 range.
	ErrOverflow = errors.New("digits: joined value exceeds int64 range")
	// ErrNegative indicates a negative value was passed where a
	// non-negative one is required.
	ErrNegative = errors.New("digits: value must be non-negative")
)

// Freq is a fixed-size frequency table: Freq[d] is the number of
// occurrences of digit d. Built once per call by Count and discarded by
// the caller when done; two tables compare equal with == when they hold
// the same counts.
type Freq [Base]int

// Total returns the number of digits recorded in the table.
func (f Freq) Total() int {
	var n int
	for _, c := range f {
		n += c
	}

	return n
}
