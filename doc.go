// Package digitsum is a small in-memory toolkit for splitting a multiset of
// decimal digits into two numbers whose sum is the maximum achievable.
//
// 🚀 What is digitsum?
//
//	A compact, pure-Go library built around one classic greedy algorithm:
//		• maxsum/ — partition a digit sequence into two integers (A, B)
//		  maximizing A+B via a 10-bucket counting table and alternating
//		  greedy placement, in O(n) time and O(1) extra space
//		• digits/ — shared digit primitives: frequency counting,
//		  digit↔integer joins and splits, overflow-safe by construction
//
// ✨ Why choose digitsum?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions, no hidden state, no I/O
//   - Pure Go – no cgo, no hidden deps
//   - Honest arithmetic – int64 overflow is detected and surfaced as an
//     error, never wrapped silently
//
// Quick example:
//
//	res, err := maxsum.PartitionForMaxSum([]int{4, 6, 2, 5, 9, 8})
//	// res.A = 964, res.B = 852, res.Sum() = 1816
//
// Dive into the package docs of maxsum and digits for the algorithm
// walkthrough, the greedy exchange argument, and edge-case conventions.
//
//	go get github.com/katalvlaran/digitsum
package digitsum
