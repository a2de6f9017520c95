package sortkit

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/sortkit/heap"
)

// HeapSort sorts data using a binary heap. O(N log N) always, no auxiliary
// array beyond the heap's backing slice. Not stable.
func HeapSort[T constraints.Ordered](data []T, opts ...Option) ([]T, []int, error) {
	o := applyOptions(opts...)
	r := newRun(data, o)

	if r.index == nil {
		mode := heap.MaxHeap
		if o.ascending {
			mode = heap.MinHeap
		}

		h, err := heap.NewFromSlice(r.data, mode)
		if err != nil {
			return nil, nil, err
		}

		for i := range r.data {
			r.data[i], _ = h.ExtractRoot()
		}

		return r.results()
	}

	// Origin tracking needs value and index to move together, so the buffer
	// is heapified in place instead of going through the heap container.
	// The root is the element that belongs at the end of the range.
	n := len(r.data)
	after := func(a, b T) bool { return r.before(b, a) }

	for i := n/2 - 1; i >= 0; i-- {
		siftDownRange(r, i, n, after)
	}

	for end := n - 1; end > 0; end-- {
		r.swap(0, end)
		siftDownRange(r, 0, end, after)
	}

	return r.results()
}

func siftDownRange[T constraints.Ordered](r run[T], i, n int, after func(a, b T) bool) {
	for {
		left := 2*i + 1
		if left >= n {
			break
		}

		best := left
		if right := left + 1; right < n && after(r.data[right], r.data[left]) {
			best = right
		}

		if !after(r.data[best], r.data[i]) {
			break
		}

		r.swap(i, best)
		i = best
	}
}
