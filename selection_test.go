package sortkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sortkit/util"
)

func TestSelectionSort(t *testing.T) {
	sorted, _, err := SelectionSort([]int{54, 26, 93, 17, 77, 31, 44, 55, 20})
	require.NoError(t, err)
	assert.Equal(t, []int{17, 20, 26, 31, 44, 54, 55, 77, 93}, sorted)
}

func TestSelectionSortDescending(t *testing.T) {
	sorted, _, err := SelectionSort([]string{"d", "f", "a", "k", "b"}, Descending())
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "f", "d", "b", "a"}, sorted)
}

func TestSelectionSortIndex(t *testing.T) {
	rng := util.NewRNG(815)
	original := rng.GenerateRandomInts(100, 25)

	sorted, index, err := SelectionSort(original, BuildIndex())
	require.NoError(t, err)

	assertSorted(t, sorted, true)
	assertIndex(t, original, sorted, index)
}
