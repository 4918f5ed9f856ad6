// Package perm enumerates permutations with Heap's algorithm.
//
// # Overview
//
// Route evaluation needs every ordering of the intermediate stops. The number
// of orderings grows factorially, so the enumeration is lazy: [Heap] holds a
// single working buffer, performs exactly one swap per step and hands out a
// snapshot of the buffer for each ordering. Nothing is sorted and no ordering
// is materialised before the caller asks for it.
//
//   - [Heap]: lazy, non-restartable iterator over all n! orderings
//   - [Generate]: eager index permutations of [0, n) with an optional limit
//   - [Factorial], [Seq]: combinatorial helpers
//
// # Emission Order
//
// Orderings come out in Heap's order, not lexicographic order. For [0 1 2]:
//
//	[0 1 2] [1 0 2] [2 0 1] [0 2 1] [1 2 0] [2 1 0]
//
// Consumers must not assume the sequence is sorted.
//
// # Basic Usage
//
//	h, err := perm.NewHeap([]string{"OH", "TX", "NE"}, 0)
//	if err != nil {
//	    return err // INVALID_INPUT: too many items
//	}
//	for i, p := range h.All() {
//	    fmt.Println(i, p) // p is a copy; keep it if you need it
//	}
//
// # Size Limits
//
// [NewHeap] rejects inputs longer than the requested bound
// ([DefaultMaxItems] when the bound is zero) and never accepts more than
// [MaxItems]. At 12 items a run already produces 479,001,600 orderings.
package perm
