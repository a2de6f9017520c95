package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeforeAscending(t *testing.T) {
	before := Before[int](true)

	assert.True(t, before(1, 2))
	assert.False(t, before(2, 1))
	assert.False(t, before(1, 1))
}

func TestBeforeDescending(t *testing.T) {
	before := Before[string](false)

	assert.True(t, before("b", "a"))
	assert.False(t, before("a", "b"))
	assert.False(t, before("a", "a"))
}
