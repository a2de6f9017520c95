// Package sortkit provides classic in-memory sorting algorithms, linear and
// binary search routines, and a generic binary heap for slices of ordered
// elements (numbers or strings).
//
// # Quick Start
//
// Call an algorithm directly:
//
//	sorted, _, _ := sortkit.BubbleSort([]int{5, 3, 1, 4, 2})
//	// sorted = [1 2 3 4 5]
//
// Or dispatch by method:
//
//	sorted, index, _ := sortkit.Sort(sortkit.MethodQuick, data,
//	    sortkit.Descending(),
//	    sortkit.BuildIndex(),
//	)
//	// index is the permutation mapping sorted positions back to the input:
//	// sorted[k] == data[index[k]]
//
// # Configuration
//
// Every sort accepts the same functional options:
//
//   - Ascending (default) / Descending select the direction.
//   - InPlace mutates the caller's slice instead of sorting a copy.
//   - BuildIndex returns the origin-index permutation alongside the result.
//   - WithGap seeds the shell sort gap sequence.
//   - WithPivotStrategy selects the quick sort pivot rule.
//
// # Algorithms
//
//	Bubble sort             O(N^2), stable
//	Short bubble sort       O(N^2), stable, stops early on a clean pass
//	Selection sort          O(N^2)
//	Insertion sort          O(N^2) worst, O(N) on nearly-sorted input, stable
//	Shell sort              between O(N) and O(N^2), gap-dependent
//	Heap sort               O(N log N)
//	Quick sort              O(N log N) average, O(N^2) adversarial pivots
//	Merge sort              O(N log N), stable, O(N) auxiliary space
//	Sequential search       O(N), sorted or unsorted input
//	Binary search           O(log N), ascending-sorted input
//
// The binary heap backing heap sort is exposed as the sortkit/heap package
// for use as a standalone min/max priority container.
//
// All operations are synchronous and free of shared state; they are safe for
// concurrent use as long as callers do not share the slices being sorted.
package sortkit
