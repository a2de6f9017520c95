package sortkit

import "golang.org/x/exp/constraints"

// ShellSort sorts data using shell sort: gapped insertion passes over a
// decreasing gap sequence, ending with gap 1. By default the sequence
// halves from len/2; WithGap seeds it with a caller-chosen initial gap,
// which must be in [1, len] or the sort fails with ErrInvalidGap.
// Complexity is between O(N) and O(N^2) depending on the gap sequence.
// Not stable.
func ShellSort[T constraints.Ordered](data []T, opts ...Option) ([]T, []int, error) {
	o := applyOptions(opts...)

	gap := len(data) / 2
	if o.gap != nil {
		if *o.gap < 1 || *o.gap > len(data) {
			return nil, nil, &ErrInvalidGap{Gap: *o.gap, Len: len(data)}
		}
		gap = *o.gap
	}

	r := newRun(data, o)
	for ; gap > 0; gap /= 2 {
		insertionPass(r, gap)
	}

	return r.results()
}
