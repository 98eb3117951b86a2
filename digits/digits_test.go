package digits_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/digitsum/digits"
	"github.com/stretchr/testify/assert"
)

// TestCount_Empty verifies that nil and empty inputs yield the zero table.
func TestCount_Empty(t *testing.T) {
	freq, err := digits.Count(nil)
	assert.NoError(t, err, "nil input must not error")
	assert.Equal(t, digits.Freq{}, freq, "nil input must yield zero table")
	assert.Equal(t, 0, freq.Total(), "zero table holds no digits")

	freq, err = digits.Count([]int{})
	assert.NoError(t, err, "empty input must not error")
	assert.Equal(t, digits.Freq{}, freq, "empty input must yield zero table")
}

// TestCount_Frequencies checks bucket counts and Total on a mixed input.
func TestCount_Frequencies(t *testing.T) {
	freq, err := digits.Count([]int{0, 0, 1, 1, 5, 5, 9})
	assert.NoError(t, err)
	assert.Equal(t, digits.Freq{0: 2, 1: 2, 5: 2, 9: 1}, freq, "per-digit counts must match")
	assert.Equal(t, 7, freq.Total(), "Total must equal input length")
}

// TestCount_OutOfRange ensures the first violation aborts with ErrDigitRange.
func TestCount_OutOfRange(t *testing.T) {
	_, err := digits.Count([]int{3, 10, 2})
	assert.ErrorIs(t, err, digits.ErrDigitRange, "element 10 must be rejected")

	_, err = digits.Count([]int{-1, 5})
	assert.ErrorIs(t, err, digits.ErrDigitRange, "element -1 must be rejected")
}

// TestJoin_Basic checks ordinary joins, the empty convention, and collapsing
// leading zeros.
func TestJoin_Basic(t *testing.T) {
	v, err := digits.Join([]int{9, 6, 4})
	assert.NoError(t, err)
	assert.Equal(t, int64(964), v)

	v, err = digits.Join(nil)
	assert.NoError(t, err, "empty join must not error")
	assert.Equal(t, int64(0), v, "empty join is 0 by convention")

	v, err = digits.Join([]int{0, 0, 7})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), v, "leading zeros collapse numerically")
}

// TestJoin_OutOfRange ensures Join validates its elements.
func TestJoin_OutOfRange(t *testing.T) {
	_, err := digits.Join([]int{1, 42})
	assert.ErrorIs(t, err, digits.ErrDigitRange)
}

// TestJoin_Overflow verifies that joins exceeding int64 error instead of
// wrapping around. math.MaxInt64 is 9223372036854775807 (19 digits), so
// nineteen nines must overflow while math.MaxInt64 itself must not.
func TestJoin_Overflow(t *testing.T) {
	nines := make([]int, 19)
	for i := range nines {
		nines[i] = 9
	}
	_, err := digits.Join(nines)
	assert.ErrorIs(t, err, digits.ErrOverflow, "19 nines exceed int64")

	max := []int{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 7}
	v, err := digits.Join(max)
	assert.NoError(t, err, "math.MaxInt64 itself must join cleanly")
	assert.Equal(t, int64(math.MaxInt64), v)
}

// TestOf_Basic checks integer → digit splits including the zero convention.
func TestOf_Basic(t *testing.T) {
	ds, err := digits.Of(964)
	assert.NoError(t, err)
	assert.Equal(t, []int{9, 6, 4}, ds)

	ds, err = digits.Of(0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, ds, "zero splits to a single zero digit")
}

// TestOf_Negative ensures negative values are rejected with ErrNegative.
func TestOf_Negative(t *testing.T) {
	_, err := digits.Of(-7)
	assert.ErrorIs(t, err, digits.ErrNegative)
}

// TestJoinOf_RoundTrip confirms Join(Of(v)) == v over representative values.
func TestJoinOf_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 9, 10, 42, 907, 86420, 97531, math.MaxInt64} {
		ds, err := digits.Of(v)
		assert.NoError(t, err)

		back, err := digits.Join(ds)
		assert.NoError(t, err)
		assert.Equal(t, v, back, "round trip must preserve %d", v)
	}
}
