package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_StackLIFO(t *testing.T) {
	s := NewStack[string]()
	s.Push("a")
	s.Push("b")

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", top)

	got, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	got, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func Test_StackIteration(t *testing.T) {
	s := NewStack[int]()
	for i := 1; i <= 4; i++ {
		s.Push(i)
	}

	assert.Equal(t, []int{4, 3, 2, 1}, s.Values())
	assert.Equal(t, "[top: 4 -> 3 -> 2 -> 1]", s.String())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(5))
	assert.Equal(t, 4, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "Stack(empty)", s.String())
}
