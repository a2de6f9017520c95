package sortkit

import "golang.org/x/exp/constraints"

// PivotStrategy selects the quick sort pivot rule. All strategies are
// deterministic.
type PivotStrategy int

const (
	// PivotFirst partitions around the first element of the range. This is
	// the default. Degrades to O(N^2) on already-sorted input.
	PivotFirst PivotStrategy = iota
	// PivotLast partitions around the last element of the range.
	PivotLast
	// PivotMiddle partitions around the middle element of the range.
	PivotMiddle
	// PivotMedianOfThree partitions around the median of the first, middle,
	// and last elements. Avoids the sorted-input worst case.
	PivotMedianOfThree
)

// String implements the fmt.Stringer interface.
func (s PivotStrategy) String() string {
	switch s {
	case PivotFirst:
		return "first"
	case PivotLast:
		return "last"
	case PivotMiddle:
		return "middle"
	case PivotMedianOfThree:
		return "median_of_three"
	default:
		return "unknown"
	}
}

// QuickSort sorts data using quick sort: recursive partitioning around a
// pivot chosen by the configured PivotStrategy. O(N log N) average, O(N^2)
// with adversarial pivots. Not stable. An unsupported strategy fails with
// ErrInvalidPivot.
func QuickSort[T constraints.Ordered](data []T, opts ...Option) ([]T, []int, error) {
	o := applyOptions(opts...)

	switch o.pivot {
	case PivotFirst, PivotLast, PivotMiddle, PivotMedianOfThree:
	default:
		return nil, nil, &ErrInvalidPivot{Strategy: o.pivot}
	}

	r := newRun(data, o)
	quickRange(r, 0, len(r.data)-1, o.pivot)

	return r.results()
}

// quickRange sorts data[lo..hi]. It recurses only into the smaller
// partition and iterates on the larger, keeping the stack depth at O(log N)
// even when the pivots degenerate.
func quickRange[T constraints.Ordered](r run[T], lo, hi int, strategy PivotStrategy) {
	for lo < hi {
		p := partition(r, lo, hi, strategy)

		if p-lo < hi-p {
			quickRange(r, lo, p-1, strategy)
			lo = p + 1
		} else {
			quickRange(r, p+1, hi, strategy)
			hi = p - 1
		}
	}
}

// partition moves the pivot to the front of the range, then walks two marks
// inward, swapping out-of-place pairs. When the marks cross, the right mark
// is the split point and receives the pivot.
func partition[T constraints.Ordered](r run[T], lo, hi int, strategy PivotStrategy) int {
	r.swap(lo, pivotIndex(r, lo, hi, strategy))

	pivot := r.data[lo]
	left, right := lo+1, hi

	for {
		for left <= right && !r.before(pivot, r.data[left]) {
			left++
		}

		for right >= left && !r.before(r.data[right], pivot) {
			right--
		}

		if right < left {
			r.swap(lo, right)
			return right
		}

		r.swap(left, right)
	}
}

func pivotIndex[T constraints.Ordered](r run[T], lo, hi int, strategy PivotStrategy) int {
	switch strategy {
	case PivotLast:
		return hi
	case PivotMiddle:
		return lo + (hi-lo)/2
	case PivotMedianOfThree:
		mid := lo + (hi-lo)/2

		a, b, c := r.data[lo], r.data[mid], r.data[hi]
		if r.before(a, b) {
			switch {
			case r.before(b, c):
				return mid
			case r.before(a, c):
				return hi
			default:
				return lo
			}
		}
		switch {
		case r.before(a, c):
			return lo
		case r.before(b, c):
			return hi
		default:
			return mid
		}
	default:
		return lo
	}
}
