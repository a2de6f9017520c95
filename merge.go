package sortkit

import "golang.org/x/exp/constraints"

// MergeSort sorts data using top-down merge sort. O(N log N) always, with
// one O(N) auxiliary buffer shared across all merge levels. Stable.
//
// Merge sort always needs the auxiliary space; InPlace only controls whether
// the result lands in the caller's slice or in a fresh copy.
func MergeSort[T constraints.Ordered](data []T, opts ...Option) ([]T, []int, error) {
	r := newRun(data, applyOptions(opts...))

	aux := make([]T, len(r.data))

	var auxIndex []int
	if r.index != nil {
		auxIndex = make([]int, len(r.index))
	}

	mergeRange(r, aux, auxIndex, 0, len(r.data))

	return r.results()
}

// mergeRange sorts data[lo:hi), using aux as scratch for the merge step.
func mergeRange[T constraints.Ordered](r run[T], aux []T, auxIndex []int, lo, hi int) {
	if hi-lo < 2 {
		return
	}

	mid := lo + (hi-lo)/2
	mergeRange(r, aux, auxIndex, lo, mid)
	mergeRange(r, aux, auxIndex, mid, hi)

	copy(aux[lo:hi], r.data[lo:hi])
	if auxIndex != nil {
		copy(auxIndex[lo:hi], r.index[lo:hi])
	}

	i, j := lo, mid

	for k := lo; k < hi; k++ {
		// The left half wins ties, which is what makes the sort stable.
		take := i
		switch {
		case i >= mid:
			take = j
		case j >= hi:
			take = i
		case r.before(aux[j], aux[i]):
			take = j
		}

		r.data[k] = aux[take]
		if auxIndex != nil {
			r.index[k] = auxIndex[take]
		}

		if take == j {
			j++
		} else {
			i++
		}
	}
}
