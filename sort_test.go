package sortkit

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sortkit/util"
)

var allMethods = []Method{
	MethodBubble,
	MethodShortBubble,
	MethodSelection,
	MethodInsertion,
	MethodShell,
	MethodQuick,
	MethodHeap,
	MethodMerge,
}

func TestSortAllMethods(t *testing.T) {
	original := []int{54, 26, 93, 17, 77, 31, 44, 55, 20}
	want := []int{17, 20, 26, 31, 44, 54, 55, 77, 93}

	for _, method := range allMethods {
		t.Run(method.String(), func(t *testing.T) {
			sorted, index, err := Sort(method, original)
			require.NoError(t, err)

			assert.Equal(t, want, sorted)
			assert.Nil(t, index)

			// Default is copy, not in place
			assert.Equal(t, []int{54, 26, 93, 17, 77, 31, 44, 55, 20}, original)
		})
	}
}

func TestSortDescending(t *testing.T) {
	for _, method := range allMethods {
		t.Run(method.String(), func(t *testing.T) {
			sorted, _, err := Sort(method, []int{5, 3, 1, 4, 2}, Descending())
			require.NoError(t, err)

			assert.Equal(t, []int{5, 4, 3, 2, 1}, sorted)
		})
	}
}

func TestSortRandomized(t *testing.T) {
	rng := util.NewRNG(4711)

	for _, method := range allMethods {
		t.Run(method.String(), func(t *testing.T) {
			original := rng.GenerateRandomInts(257, 50)

			sorted, _, err := Sort(method, original)
			require.NoError(t, err)

			assertSorted(t, sorted, true)
			assert.ElementsMatch(t, original, sorted)
		})
	}
}

func TestSortBuildIndex(t *testing.T) {
	original := []string{"d", "f", "a", "k", "b", "g", "z"}

	for _, method := range allMethods {
		t.Run(method.String(), func(t *testing.T) {
			sorted, index, err := Sort(method, original, BuildIndex())
			require.NoError(t, err)

			assertIndex(t, original, sorted, index)
		})
	}
}

func TestSortInPlace(t *testing.T) {
	for _, method := range allMethods {
		t.Run(method.String(), func(t *testing.T) {
			data := []int{5, 3, 1, 4, 2}

			sorted, _, err := Sort(method, data, InPlace())
			require.NoError(t, err)

			assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, data)
			assert.Same(t, &data[0], &sorted[0])
		})
	}
}

func TestSortBoundaries(t *testing.T) {
	for _, method := range allMethods {
		t.Run(method.String(), func(t *testing.T) {
			empty, index, err := Sort(method, []int{}, BuildIndex())
			require.NoError(t, err)
			assert.Empty(t, empty)
			assert.Empty(t, index)

			single, index, err := Sort(method, []int{42}, BuildIndex())
			require.NoError(t, err)
			assert.Equal(t, []int{42}, single)
			assert.Equal(t, []int{0}, index)

			equal, _, err := Sort(method, []int{7, 7, 7, 7})
			require.NoError(t, err)
			assert.Equal(t, []int{7, 7, 7, 7}, equal)
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	sorted := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for _, method := range allMethods {
		t.Run(method.String(), func(t *testing.T) {
			again, _, err := Sort(method, sorted)
			require.NoError(t, err)

			assert.Equal(t, sorted, again)
		})
	}
}

func TestSortUnknownMethod(t *testing.T) {
	_, _, err := Sort(Method(99), []int{3, 1, 2})
	require.Error(t, err)

	var um *ErrUnknownMethod
	require.ErrorAs(t, err, &um)
	assert.Equal(t, "unknown", um.Name)
}

func TestSortWithLogger(t *testing.T) {
	logger := NewTextLogger(slog.LevelDebug)

	sorted, _, err := Sort(MethodMerge, []int{2, 1}, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, sorted)

	// nil falls back to the noop logger
	sorted, _, err = Sort(MethodMerge, []int{2, 1}, WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, sorted)
}

func TestParseMethod(t *testing.T) {
	for _, method := range allMethods {
		parsed, err := ParseMethod(method.String())
		require.NoError(t, err)
		assert.Equal(t, method, parsed)
	}

	_, err := ParseMethod("bogus")
	require.Error(t, err)

	var um *ErrUnknownMethod
	require.ErrorAs(t, err, &um)
	assert.Equal(t, "bogus", um.Name)
}

// assertSorted checks full ordering per the requested direction.
func assertSorted(t *testing.T, values []int, ascending bool) {
	t.Helper()

	for i := 1; i < len(values); i++ {
		if ascending {
			assert.LessOrEqual(t, values[i-1], values[i])
		} else {
			assert.GreaterOrEqual(t, values[i-1], values[i])
		}
	}
}

// assertIndex checks that index is a bijection on [0, N) and that applying
// it to the original slice reproduces the sorted slice.
func assertIndex[T comparable](t *testing.T, original, sorted []T, index []int) {
	t.Helper()

	require.Equal(t, len(original), len(index))

	seen := make(map[int]bool, len(index))
	for k, origin := range index {
		require.GreaterOrEqual(t, origin, 0)
		require.Less(t, origin, len(original))
		require.False(t, seen[origin], "index %d appears twice", origin)
		seen[origin] = true

		assert.Equal(t, original[origin], sorted[k])
	}
}
