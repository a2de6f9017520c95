package sortkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sortkit/util"
)

func TestHeapSort(t *testing.T) {
	sorted, _, err := HeapSort([]int{54, 26, 93, 17, 77, 31, 44, 55, 20})
	require.NoError(t, err)
	assert.Equal(t, []int{17, 20, 26, 31, 44, 54, 55, 77, 93}, sorted)
}

func TestHeapSortDescending(t *testing.T) {
	sorted, _, err := HeapSort([]string{"d", "f", "a", "k", "b", "g", "z"}, Descending())
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "k", "g", "f", "d", "b", "a"}, sorted)
}

func TestHeapSortIndex(t *testing.T) {
	rng := util.NewRNG(777)
	original := rng.GenerateRandomInts(300, 30)

	sorted, index, err := HeapSort(original, BuildIndex())
	require.NoError(t, err)

	assertSorted(t, sorted, true)
	assert.ElementsMatch(t, original, sorted)
	assertIndex(t, original, sorted, index)
}

func TestHeapSortIndexDescending(t *testing.T) {
	original := []int{5, 3, 1, 4, 2}

	sorted, index, err := HeapSort(original, Descending(), BuildIndex())
	require.NoError(t, err)

	assert.Equal(t, []int{5, 4, 3, 2, 1}, sorted)
	assertIndex(t, original, sorted, index)
}

func TestHeapSortInPlace(t *testing.T) {
	data := []int{9, 7, 5, 3, 1}

	sorted, _, err := HeapSort(data, InPlace())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 5, 7, 9}, data)
	assert.Same(t, &data[0], &sorted[0])
}
