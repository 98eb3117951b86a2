package digits

import (
	"fmt"
	"math"
)

// Count builds a Freq table over seq in a single pass.
//
// Every element must lie in [0, Base-1]; the first violation aborts the
// scan and returns ErrDigitRange wrapped with the offending value and its
// index. A nil or empty seq yields the zero table.
//
// Complexity: O(n) time, O(1) extra space (the fixed 10-bucket table).
func Count(seq []int) (Freq, error) {
	var freq Freq
	for i, d := range seq {
		if d < 0 || d >= Base {
			return Freq{}, fmt.Errorf("%w: got %d at index %d", ErrDigitRange, d, i)
		}
		freq[d]++
	}

	return freq, nil
}

// Join folds ds, most significant digit first, into a single int64.
//
//	Join([]int{9, 6, 4}) == 964
//	Join(nil)            == 0
//
// Leading zeros collapse numerically: Join([]int{0, 0, 7}) == 7. Every
// element must lie in [0, Base-1] (ErrDigitRange otherwise). If the
// accumulated value would exceed math.MaxInt64, Join stops before the
// wraparound and returns ErrOverflow.
func Join(ds []int) (int64, error) {
	var v int64
	for i, d := range ds {
		if d < 0 || d >= Base {
			return 0, fmt.Errorf("%w: got %d at index %d", ErrDigitRange, d, i)
		}
		if v > (math.MaxInt64-int64(d))/Base {
			return 0, fmt.Errorf("%w: joining %d digits", ErrOverflow, len(ds))
		}
		v = v*Base + int64(d)
	}

	return v, nil
}

// Of splits a non-negative v into its decimal digits, most significant
// first. Zero splits to a single zero digit:
//
//	Of(964) == []int{9, 6, 4}
//	Of(0)   == []int{0}
//
// Negative values return ErrNegative.
func Of(v int64) ([]int, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegative, v)
	}
	if v == 0 {
		return []int{0}, nil
	}

	// int64 holds at most 19 decimal digits
	ds := make([]int, 0, 19)
	for ; v > 0; v /= Base {
		ds = append(ds, int(v%Base))
	}
	// reverse in-place: digits were produced least significant first
	for l, r := 0, len(ds)-1; l < r; l, r = l+1, r-1 {
		ds[l], ds[r] = ds[r], ds[l]
	}

	return ds, nil
}
