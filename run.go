package sortkit

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/sortkit/internal/order"
)

// run holds the working state of one sort call: the buffer being sorted, the
// origin-tracking index (nil unless requested), and the direction predicate.
// The configuration duality (in-place vs. copy, with vs. without index) is
// resolved here once; the algorithm bodies always operate on a single
// mutable buffer.
type run[T constraints.Ordered] struct {
	data   []T
	index  []int
	before func(a, b T) bool
}

func newRun[T constraints.Ordered](data []T, o *options) run[T] {
	buf := data
	if !o.inPlace {
		buf = append([]T(nil), data...)
	}

	var index []int
	if o.buildIndex {
		index = make([]int, len(buf))
		for i := range index {
			index[i] = i
		}
	}

	return run[T]{
		data:   buf,
		index:  index,
		before: order.Before[T](o.ascending),
	}
}

// swap exchanges positions i and j, keeping the index array in step.
func (r run[T]) swap(i, j int) {
	r.data[i], r.data[j] = r.data[j], r.data[i]
	if r.index != nil {
		r.index[i], r.index[j] = r.index[j], r.index[i]
	}
}

func (r run[T]) results() ([]T, []int, error) {
	return r.data, r.index, nil
}
