package heap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/sortkit/internal/order"
)

// Mode selects whether the root of the heap is the smallest or the largest
// element.
type Mode int

const (
	// MinHeap keeps the smallest element at the root.
	MinHeap Mode = iota
	// MaxHeap keeps the largest element at the root.
	MaxHeap
)

// String implements the fmt.Stringer interface.
func (m Mode) String() string {
	switch m {
	case MinHeap:
		return "min"
	case MaxHeap:
		return "max"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

var (
	// ErrEmptyHeap is returned when PeekRoot or ExtractRoot is called on an
	// empty heap.
	ErrEmptyHeap = errors.New("heap is empty")
)

// ErrInvalidMode indicates a heap mode other than MinHeap or MaxHeap.
type ErrInvalidMode struct {
	Mode Mode
}

func (e *ErrInvalidMode) Error() string {
	return fmt.Sprintf("invalid heap mode: %d", int(e.Mode))
}

// BinaryHeap is a binary min/max heap over a resizable backing slice. The
// mode is fixed at construction. After every mutating operation the
// heap-order invariant holds: no element orders before its parent. Ties
// leave relative positions unchanged; no stability is promised.
//
// BinaryHeap is not safe for concurrent use.
type BinaryHeap[T constraints.Ordered] struct {
	mode   Mode
	items  []T
	before func(a, b T) bool
}

// New creates an empty heap with the given mode. It fails with
// ErrInvalidMode when mode is neither MinHeap nor MaxHeap.
func New[T constraints.Ordered](mode Mode) (*BinaryHeap[T], error) {
	return NewFromSlice[T](nil, mode)
}

// NewFromSlice creates a heap seeded with the given items. The slice is
// copied, never aliased, and heap order is established with a bottom-up
// sift-down pass in O(N). It fails with ErrInvalidMode when mode is neither
// MinHeap nor MaxHeap.
func NewFromSlice[T constraints.Ordered](items []T, mode Mode) (*BinaryHeap[T], error) {
	if mode != MinHeap && mode != MaxHeap {
		return nil, &ErrInvalidMode{Mode: mode}
	}

	h := &BinaryHeap[T]{
		mode:   mode,
		items:  append([]T(nil), items...),
		before: order.Before[T](mode == MinHeap),
	}

	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h, nil
}

// Mode returns the mode the heap was constructed with.
func (h *BinaryHeap[T]) Mode() Mode {
	return h.mode
}

// Size returns the number of elements in the heap.
func (h *BinaryHeap[T]) Size() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no elements.
func (h *BinaryHeap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

// Insert adds v to the heap while maintaining the heap invariant.
func (h *BinaryHeap[T]) Insert(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// PeekRoot returns the root element without removing it: the minimum in min
// mode, the maximum in max mode. It fails with ErrEmptyHeap when the heap is
// empty.
func (h *BinaryHeap[T]) PeekRoot() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.items[0], nil
}

// ExtractRoot removes and returns the root element. The last element moves
// to the root position and is sifted down. It fails with ErrEmptyHeap when
// the heap is empty.
func (h *BinaryHeap[T]) ExtractRoot() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	root := h.items[0]
	n := len(h.items) - 1

	h.items[0] = h.items[n]

	var zero T
	h.items[n] = zero // Avoid keeping references alive
	h.items = h.items[:n]

	if n > 0 {
		h.siftDown(0)
	}

	return root, nil
}

// siftUp moves the element at index i up until its parent no longer orders
// after it.
func (h *BinaryHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(h.items[i], h.items[parent]) {
			break
		}

		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown moves the element at index i down, always swapping with the
// better-ordered child, until heap order is restored.
func (h *BinaryHeap[T]) siftDown(i int) {
	n := len(h.items)

	for {
		left := 2*i + 1
		if left >= n {
			break
		}

		best := left
		if right := left + 1; right < n && h.before(h.items[right], h.items[left]) {
			best = right
		}

		if !h.before(h.items[best], h.items[i]) {
			break
		}

		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
