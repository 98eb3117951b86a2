// Package maxsum partitions a multiset of decimal digits into two integers
// (A, B) such that A + B is the maximum achievable over all two-way splits.
//
// 🚀 How does it work?
//
//	Classic greedy with a counting table, O(n) time, O(1) extra space:
//	  1. Count digit frequencies into a fixed 10-bucket table (one scan).
//	  2. Walk digit values 9 → 0; hand each occurrence alternately to A
//	     and B, starting with A.
//	  3. Join each hand, most significant digit first, into an integer.
//
// Why this maximizes the sum: larger digits must occupy the most
// significant positions across both numbers, and the two lengths must
// differ by at most one — a longer/shorter split wastes a large digit on a
// low place value. Descending alternation achieves both at once; by the
// greedy exchange argument, no swap of two assigned digits (between
// positions of unequal significance, or between the two numbers at the
// same significance tier) can increase A + B.
//
// Edge-case conventions (preserved for compatibility, see PartitionForMaxSum):
//   - empty input  → (0, 0)
//   - single digit → (0, 0)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/digitsum/maxsum"
//
//	res, err := maxsum.PartitionForMaxSum([]int{4, 6, 2, 5, 9, 8})
//	if err != nil {
//	  // handle digits.ErrDigitRange or digits.ErrOverflow
//	}
//	fmt.Println(res.A, res.B, res.Sum()) // 964 852 1816
//
// Auxiliary helpers:
//   - Validate   — checks a Result against the original digit multiset.
//   - OptimalSum — independent sorted-descending oracle for cross-checks.
//
// Errors are the sentinels of the digits package: ErrDigitRange for any
// element outside [0, 9], ErrOverflow when a joined number would exceed
// int64.
//
// See examples in example_test.go.
package maxsum
