package sortkit

import "golang.org/x/exp/constraints"

// SelectionSort sorts data using selection sort: each pass scans the
// unsorted prefix for the element that orders last and swaps it to the end
// of the prefix. O(N^2) always. Not stable.
func SelectionSort[T constraints.Ordered](data []T, opts ...Option) ([]T, []int, error) {
	r := newRun(data, applyOptions(opts...))

	for pass := len(r.data) - 1; pass > 0; pass-- {
		last := 0
		for i := 1; i <= pass; i++ {
			if r.before(r.data[last], r.data[i]) {
				last = i
			}
		}

		r.swap(last, pass)
	}

	return r.results()
}
