package sortkit

import "golang.org/x/exp/constraints"

// Sort dispatches to the algorithm identified by method, forwarding the
// shared configuration unchanged, and returns exactly what the algorithm
// returns: the sorted slice and, when BuildIndex is set, the index array.
// It fails with ErrUnknownMethod for a Method outside the supported set.
func Sort[T constraints.Ordered](method Method, data []T, opts ...Option) ([]T, []int, error) {
	o := applyOptions(opts...)
	o.logger.WithMethod(method).WithLen(len(data)).Debug("dispatching sort")

	switch method {
	case MethodBubble:
		return BubbleSort(data, opts...)
	case MethodShortBubble:
		return ShortBubbleSort(data, opts...)
	case MethodSelection:
		return SelectionSort(data, opts...)
	case MethodInsertion:
		return InsertionSort(data, opts...)
	case MethodShell:
		return ShellSort(data, opts...)
	case MethodQuick:
		return QuickSort(data, opts...)
	case MethodHeap:
		return HeapSort(data, opts...)
	case MethodMerge:
		return MergeSort(data, opts...)
	default:
		return nil, nil, &ErrUnknownMethod{Name: method.String()}
	}
}
