// Package maxsum defines the result type for maximum-sum digit partitioning.
package maxsum

// Result holds the outcome of a partition:
//   - A, B:             the two numbers, as plain integers.
//   - DigitsA, DigitsB: the digits assigned to each number, in assignment
//     order (most significant first).
//
// The digit slices are the exact multiset view of the split: together they
// always equal the input multiset, even when leading zeros collapse in the
// numeric fields (input [0,0,0] yields A=0, B=0 but DigitsA=[0 0],
// DigitsB=[0]). Their lengths differ by at most one.
//
// The zero Result is the conventional outcome for degenerate inputs
// (fewer than two digits).
type Result struct {
	A, B             int64
	DigitsA, DigitsB []int
}

// Sum returns A + B.
func (r Result) Sum() int64 {
	return r.A + r.B
}
