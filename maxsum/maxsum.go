package maxsum

import (
	"github.com/katalvlaran/digitsum/digits"
)

// PartitionForMaxSum splits seq into two integers whose sum is the maximum
// achievable over all two-way splits of the digit multiset.
//
// Algorithm outline:
//  1. Count frequencies into a fixed 10-bucket table: O(n).
//  2. Walk digit values 9 → 0; assign each occurrence alternately to the
//     first and second output, starting with the first.
//  3. Join each output (most significant digit first) into an int64; an
//     empty output joins to 0.
//
// Degenerate inputs — empty or single-digit — return the zero Result with
// no error, before any element validation. This mirrors the historical
// convention of the reference implementation and is a compatibility choice,
// not an algorithmic necessity: a lone digit could reasonably be treated as
// a valid one-number split, but callers depend on the (0, 0) answer.
//
// Errors:
//   - digits.ErrDigitRange — any element outside [0, 9] (non-degenerate
//     inputs only). No partial result is returned.
//   - digits.ErrOverflow   — either joined number would exceed int64.
//
// Complexity: O(n) time, O(1) extra space beyond the output slices.
func PartitionForMaxSum(seq []int) (Result, error) {
	if len(seq) < 2 {
		return Result{}, nil
	}

	freq, err := digits.Count(seq)
	if err != nil {
		return Result{}, err
	}

	// Greedy alternating placement, largest digit value first. The first
	// output receives the extra digit when the input length is odd.
	da := make([]int, 0, (len(seq)+1)/2)
	db := make([]int, 0, len(seq)/2)
	first := true
	for d := digits.Base - 1; d >= 0; d-- {
		for ; freq[d] > 0; freq[d]-- {
			if first {
				da = append(da, d)
			} else {
				db = append(db, d)
			}
			first = !first
		}
	}

	a, err := digits.Join(da)
	if err != nil {
		return Result{}, err
	}
	b, err := digits.Join(db)
	if err != nil {
		return Result{}, err
	}

	return Result{A: a, B: b, DigitsA: da, DigitsB: db}, nil
}
