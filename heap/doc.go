// Package heap provides a generic binary min/max heap over ordered elements.
//
// The heap owns a resizable backing slice and a mode (MinHeap or MaxHeap)
// fixed at construction. It can be created empty or seeded from an existing
// slice, which is copied and heapified in O(N):
//
//	h, _ := heap.NewFromSlice([]int{5, 3, 1, 4, 2}, heap.MaxHeap)
//	root, _ := h.PeekRoot() // 5
//
//	h.Insert(9)
//	for !h.IsEmpty() {
//	    v, _ := h.ExtractRoot()
//	    fmt.Println(v) // 9, 5, 4, 3, 2, 1
//	}
//
// Package heap is used by sortkit's heap sort and works standalone wherever
// a priority-queue-like container is needed.
package heap
