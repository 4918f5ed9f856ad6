package perm

import (
	"iter"
	"slices"

	"github.com/matzehuels/routeperm/pkg/errors"
)

const (
	// DefaultMaxItems is the bound applied when NewHeap is given maxItems <= 0.
	// 10! = 3,628,800 orderings is about as far as an interactive run goes.
	DefaultMaxItems = 10

	// MaxItems is the largest input NewHeap accepts regardless of maxItems.
	MaxItems = 12
)

// Heap lazily enumerates every ordering of a fixed set of items using the
// iterative form of Heap's algorithm.
//
// The generator owns one working buffer and mutates it in place between
// emissions; every ordering it returns is a fresh copy. A Heap is not
// restartable: once exhausted it reports no further orderings, and it is not
// safe for concurrent use.
type Heap[T any] struct {
	buf     []T
	counter []int
	i       int
	emitted int
	started bool
	done    bool
}

// NewHeap returns a generator over the orderings of items.
//
// items is copied; the caller keeps ownership of its slice. NewHeap fails
// with INVALID_INPUT when len(items) exceeds maxItems (DefaultMaxItems when
// maxItems <= 0) or MaxItems.
func NewHeap[T any](items []T, maxItems int) (*Heap[T], error) {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if maxItems > MaxItems {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"permutation bound %d exceeds the maximum of %d items", maxItems, MaxItems)
	}
	if len(items) > maxItems {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"cannot permute %d items: limit is %d (%d! orderings)", len(items), maxItems, maxItems)
	}
	return newHeap(slices.Clone(items)), nil
}

// newHeap takes ownership of buf and applies no size bound.
func newHeap[T any](buf []T) *Heap[T] {
	return &Heap[T]{
		buf:     buf,
		counter: make([]int, len(buf)),
	}
}

// Len returns the number of items being permuted.
func (h *Heap[T]) Len() int { return len(h.buf) }

// Total returns the number of orderings the generator produces in all, n!.
func (h *Heap[T]) Total() int { return Factorial(len(h.buf)) }

// Emitted returns how many orderings have been returned so far.
func (h *Heap[T]) Emitted() int { return h.emitted }

// Next advances the generator and returns a copy of the next ordering.
// It returns false once all n! orderings have been produced.
func (h *Heap[T]) Next() ([]T, bool) {
	if h.done {
		return nil, false
	}
	if !h.started {
		h.started = true
		return h.emit(), true
	}

	n := len(h.buf)
	for h.i < n {
		if h.counter[h.i] < h.i {
			if h.i&1 == 0 {
				h.buf[0], h.buf[h.i] = h.buf[h.i], h.buf[0]
			} else {
				j := h.counter[h.i]
				h.buf[j], h.buf[h.i] = h.buf[h.i], h.buf[j]
			}
			h.counter[h.i]++
			h.i = 0
			return h.emit(), true
		}
		h.counter[h.i] = 0
		h.i++
	}

	h.done = true
	return nil, false
}

// All returns an iterator over the remaining orderings, paired with their
// 1-based sequence numbers. Breaking out of the loop leaves the generator
// positioned after the last ordering yielded.
func (h *Heap[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for {
			p, ok := h.Next()
			if !ok || !yield(h.emitted, p) {
				return
			}
		}
	}
}

func (h *Heap[T]) emit() []T {
	h.emitted++
	return slices.Clone(h.buf)
}
