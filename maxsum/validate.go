package maxsum

import (
	"github.com/katalvlaran/digitsum/digits"
)

// Validate reports whether res is a well-formed partition of original.
//
// For degenerate originals (fewer than two digits) the only valid result is
// the zero Result, matching the PartitionForMaxSum convention. Otherwise
// Validate checks that:
//   - the multiset of res.DigitsA ∪ res.DigitsB equals the multiset of
//     original (frequency-table comparison);
//   - the two digit slices differ in length by at most one;
//   - A and B equal the joins of their digit slices.
//
// Originals containing out-of-range elements validate false — no result can
// legitimately account for a non-digit.
//
// Complexity: O(n) time, O(1) extra space.
func Validate(original []int, res Result) bool {
	if len(original) < 2 {
		return res.A == 0 && res.B == 0 &&
			len(res.DigitsA) == 0 && len(res.DigitsB) == 0
	}

	want, err := digits.Count(original)
	if err != nil {
		return false
	}
	got, err := digits.Count(res.DigitsA)
	if err != nil {
		return false
	}
	gotB, err := digits.Count(res.DigitsB)
	if err != nil {
		return false
	}
	for d := range got {
		got[d] += gotB[d]
	}
	if want != got {
		return false
	}

	if diff := len(res.DigitsA) - len(res.DigitsB); diff < -1 || diff > 1 {
		return false
	}

	a, err := digits.Join(res.DigitsA)
	if err != nil || a != res.A {
		return false
	}
	b, err := digits.Join(res.DigitsB)
	if err != nil || b != res.B {
		return false
	}

	return true
}
