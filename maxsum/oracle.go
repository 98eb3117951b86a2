package maxsum

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/digitsum/digits"
)

// OptimalSum computes the theoretical maximum sum for seq through a
// comparison-sort path deliberately independent of PartitionForMaxSum:
// copy, sort descending, deal digits to two hands by index parity, join,
// sum. Tests and benchmarks use it as a cross-check oracle; it is not part
// of the partitioning fast path (O(n log n) vs O(n)).
//
// Degenerate inputs (fewer than two digits) return 0, aligning with the
// partitioner's (0, 0) convention. Range and overflow errors match
// PartitionForMaxSum.
func OptimalSum(seq []int) (int64, error) {
	if len(seq) < 2 {
		return 0, nil
	}
	for i, d := range seq {
		if d < 0 || d >= digits.Base {
			return 0, fmt.Errorf("%w: got %d at index %d", digits.ErrDigitRange, d, i)
		}
	}

	sorted := make([]int, len(seq))
	copy(sorted, seq)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	da := make([]int, 0, (len(seq)+1)/2)
	db := make([]int, 0, len(seq)/2)
	for i, d := range sorted {
		if i%2 == 0 {
			da = append(da, d)
		} else {
			db = append(db, d)
		}
	}

	a, err := digits.Join(da)
	if err != nil {
		return 0, err
	}
	b, err := digits.Join(db)
	if err != nil {
		return 0, err
	}

	return a + b, nil
}
