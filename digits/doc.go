// Package digits provides the shared decimal-digit primitives used across
// github.com/katalvlaran/digitsum: frequency counting over the fixed 0–9
// alphabet, digit-slice → integer joins, and integer → digit-slice splits.
//
// All functions are pure and side-effect free: they never mutate their
// inputs, hold no state between calls, and are safe for concurrent use.
//
// Arithmetic is int64 throughout. Joins that would exceed math.MaxInt64 are
// rejected with ErrOverflow instead of wrapping around — the library targets
// ordinary machine integers, not arbitrary precision.
//
// Errors:
//   - ErrDigitRange — an element lies outside the closed range [0, 9].
//   - ErrOverflow   — a join would exceed the int64 range.
//   - ErrNegative   — Of was given a negative value.
package digits
