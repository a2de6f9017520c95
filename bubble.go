package sortkit

import "golang.org/x/exp/constraints"

// BubbleSort sorts data using bubble sort: N-1 passes of adjacent
// compare-and-swap. O(N^2) always. Stable.
func BubbleSort[T constraints.Ordered](data []T, opts ...Option) ([]T, []int, error) {
	r := newRun(data, applyOptions(opts...))
	bubble(r, false)

	return r.results()
}

// ShortBubbleSort sorts data using bubble sort, stopping after any pass that
// performs no swaps. The early exit is a performance optimization only; the
// result is identical to BubbleSort. Stable.
func ShortBubbleSort[T constraints.Ordered](data []T, opts ...Option) ([]T, []int, error) {
	r := newRun(data, applyOptions(opts...))
	bubble(r, true)

	return r.results()
}

func bubble[T constraints.Ordered](r run[T], shortCircuit bool) {
	for pass := len(r.data) - 1; pass > 0; pass-- {
		swapped := false

		for i := 0; i < pass; i++ {
			// Strict predicate: equal elements never swap, so relative
			// input order is preserved.
			if r.before(r.data[i+1], r.data[i]) {
				r.swap(i, i+1)
				swapped = true
			}
		}

		if shortCircuit && !swapped {
			break
		}
	}
}
