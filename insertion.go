package sortkit

import "golang.org/x/exp/constraints"

// InsertionSort sorts data using insertion sort: each element is shifted
// left past all elements ordered after it. O(N^2) worst case, O(N) on
// nearly-sorted input. Stable.
func InsertionSort[T constraints.Ordered](data []T, opts ...Option) ([]T, []int, error) {
	r := newRun(data, applyOptions(opts...))
	insertionPass(r, 1)

	return r.results()
}

// insertionPass performs one gapped insertion pass over the whole buffer,
// covering every residue class of the gap. Gap 1 is plain insertion sort;
// shell sort reuses it with larger gaps.
func insertionPass[T constraints.Ordered](r run[T], gap int) {
	for i := gap; i < len(r.data); i++ {
		value := r.data[i]

		var origin int
		if r.index != nil {
			origin = r.index[i]
		}

		// Shift elements ordered after value one gap to the right. The
		// predicate is strict, so equal elements are never shifted past.
		j := i
		for j >= gap && r.before(value, r.data[j-gap]) {
			r.data[j] = r.data[j-gap]
			if r.index != nil {
				r.index[j] = r.index[j-gap]
			}
			j -= gap
		}

		r.data[j] = value
		if r.index != nil {
			r.index[j] = origin
		}
	}
}
