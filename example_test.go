package sortkit_test

import (
	"fmt"

	"github.com/hupe1980/sortkit"
)

func ExampleBubbleSort() {
	sorted, _, _ := sortkit.BubbleSort([]int{5, 3, 1, 4, 2})

	fmt.Println(sorted)
	// Output: [1 2 3 4 5]
}

func ExampleQuickSort() {
	sorted, _, _ := sortkit.QuickSort([]int{5, 3, 1, 4, 2}, sortkit.Descending())

	fmt.Println(sorted)
	// Output: [5 4 3 2 1]
}

func ExampleSort() {
	data := []int{54, 26, 93, 17, 77, 31, 44, 55, 20}

	sorted, index, _ := sortkit.Sort(sortkit.MethodMerge, data, sortkit.BuildIndex())

	fmt.Println(sorted)
	fmt.Println(index)
	// Output:
	// [17 20 26 31 44 54 55 77 93]
	// [3 8 1 5 6 0 7 4 2]
}

func ExampleParseMethod() {
	method, _ := sortkit.ParseMethod("short_bubble")

	sorted, _, _ := sortkit.Sort(method, []string{"d", "f", "a", "k", "b", "g", "z"})

	fmt.Println(sorted)
	// Output: [a b d f g k z]
}

func ExampleBinarySearch() {
	data := []int{1, 2, 4, 5}

	fmt.Println(sortkit.BinarySearch(data, 4))
	fmt.Println(sortkit.BinarySearch(data, 3) == sortkit.NotFound)
	// Output:
	// 2
	// true
}
