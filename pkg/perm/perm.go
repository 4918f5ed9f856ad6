package perm

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for initializing permutation arrays or creating index sequences.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// This is the size of the full permutation space, and therefore the number of
// rows a route table for n intermediate stops contains.
// Note that factorials grow extremely fast: 21! overflows int64.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Generate returns permutations of [0, 1, ..., n-1] in Heap's order.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Generate handles edge cases gracefully:
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]] (one single-element permutation)
//
// Unlike [NewHeap], Generate applies no size bound. Above [MaxItems] nothing
// is preallocated, and the number of permutations exceeds billions; always
// use a limit when n is large.
func Generate(n, limit int) [][]int {
	h := newHeap(Seq(n))

	var capacity int
	switch {
	case limit > 0:
		capacity = min(limit, Factorial(min(n, MaxItems)))
	case n <= MaxItems:
		capacity = Factorial(n)
	}
	result := make([][]int, 0, capacity)

	for limit <= 0 || len(result) < limit {
		p, ok := h.Next()
		if !ok {
			break
		}
		result = append(result, p)
	}
	return result
}
