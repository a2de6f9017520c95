package sortkit

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/sortkit/internal/order"
)

// NotFound is returned by the search routines when the target is absent.
// Valid indexes are always >= 0, so NotFound is never ambiguous.
const NotFound = -1

// SequentialSearch scans data left to right and returns the first index
// holding target, or NotFound. The input may be sorted or unsorted. O(N).
func SequentialSearch[T comparable](data []T, target T) int {
	for i, v := range data {
		if v == target {
			return i
		}
	}

	return NotFound
}

// SequentialSearchSorted is SequentialSearch over an ascending-sorted slice:
// the scan stops as soon as it passes the position the target would occupy.
// Still O(N), but early exits on absent targets.
//
// Precondition: data is sorted ascending. Behavior is undefined otherwise.
func SequentialSearchSorted[T constraints.Ordered](data []T, target T) int {
	before := order.Before[T](true)

	for i, v := range data {
		if v == target {
			return i
		}
		if before(target, v) {
			break
		}
	}

	return NotFound
}

// BinarySearch returns an index holding target, or NotFound, by repeatedly
// halving the search interval. When duplicates exist, any one matching index
// may be returned. O(log N).
//
// Precondition: data is sorted ascending. This is deliberately NOT validated
// (validation would cost the O(N) the algorithm exists to avoid); behavior
// on unsorted input is undefined.
func BinarySearch[T constraints.Ordered](data []T, target T) int {
	before := order.Before[T](true)
	lo, hi := 0, len(data)-1

	for lo <= hi {
		mid := lo + (hi-lo)/2

		switch {
		case data[mid] == target:
			return mid
		case before(target, data[mid]):
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}

	return NotFound
}
