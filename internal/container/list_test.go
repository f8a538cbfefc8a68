package container

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ListEndpoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	l := NewList[int]()
	var want []int

	for step := 0; step < 2000; step++ {
		switch rng.IntN(4) {
		case 0:
			l.AddFirst(step)
			want = append([]int{step}, want...)
		case 1:
			l.AddLast(step)
			want = append(want, step)
		case 2:
			got, err := l.RemoveFirst()
			if len(want) == 0 {
				require.ErrorIs(t, err, ErrEmptyContainer)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, want[0], got)
			want = want[1:]
		case 3:
			got, err := l.RemoveLast()
			if len(want) == 0 {
				require.ErrorIs(t, err, ErrEmptyContainer)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, want[len(want)-1], got)
			want = want[:len(want)-1]
		}
		require.Equal(t, len(want), l.Len(), "step %d", step)
	}
	assert.Equal(t, nonNil(want), nonNil(l.Values()))
}

func nonNil(v []int) []int {
	if len(v) == 0 {
		return nil
	}
	return v
}

func Test_ListFirstLastEmpty(t *testing.T) {
	l := NewList[string]()

	_, err := l.First()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = l.Last()
	assert.ErrorIs(t, err, ErrEmptyContainer)

	l.AddLast("b")
	l.AddFirst("a")
	first, err := l.First()
	require.NoError(t, err)
	last, err := l.Last()
	require.NoError(t, err)
	assert.Equal(t, "a", first)
	assert.Equal(t, "b", last)
}

func Test_ListGetSet(t *testing.T) {
	l := NewList(10, 20, 30)

	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	old, err := l.Set(2, 33)
	require.NoError(t, err)
	assert.Equal(t, 30, old)
	assert.Equal(t, []int{10, 20, 33}, l.Values())

	for _, index := range []int{-1, 3, 100} {
		_, err = l.Get(index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "get %d", index)
		_, err = l.Set(index, 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "set %d", index)
	}
}

func Test_ListInsert(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	l := NewList[int]()
	var want []int

	for step := 0; step < 500; step++ {
		index := rng.IntN(len(want) + 1)
		require.NoError(t, l.Insert(index, step))
		want = slices.Insert(want, index, step)

		got, err := l.Get(index)
		require.NoError(t, err)
		require.Equal(t, step, got)
		require.Equal(t, len(want), l.Len())
	}
	assert.Equal(t, want, l.Values())

	t.Run("insert at len appends", func(t *testing.T) {
		l := NewList(1, 2)
		require.NoError(t, l.Insert(l.Len(), 3))
		last, err := l.Last()
		require.NoError(t, err)
		assert.Equal(t, 3, last)
	})

	t.Run("insert out of range", func(t *testing.T) {
		l := NewList(1, 2)
		assert.ErrorIs(t, l.Insert(3, 9), ErrIndexOutOfRange)
		assert.ErrorIs(t, l.Insert(-1, 9), ErrIndexOutOfRange)
		assert.Equal(t, 2, l.Len())
	})
}

func Test_ListPop(t *testing.T) {
	t.Run("pop positive and negative indices", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		want := make([]int, 300)
		for i := range want {
			want[i] = i
		}
		l := NewList(want...)

		for len(want) > 0 {
			index := rng.IntN(2*len(want)) - len(want)
			resolved := index
			if resolved < 0 {
				resolved += len(want)
			}
			got, err := l.Pop(index)
			require.NoError(t, err)
			require.Equal(t, want[resolved], got)
			want = slices.Delete(want, resolved, resolved+1)
			require.Equal(t, nonNil(want), nonNil(l.Values()))
		}
	})

	t.Run("pop last by default index", func(t *testing.T) {
		l := NewList("a", "b", "c")
		got, err := l.Pop(-1)
		require.NoError(t, err)
		assert.Equal(t, "c", got)
	})

	t.Run("pop empty", func(t *testing.T) {
		l := NewList[int]()
		_, err := l.Pop(-1)
		assert.ErrorIs(t, err, ErrEmptyContainer)
	})

	t.Run("pop out of range", func(t *testing.T) {
		l := NewList(1, 2, 3)
		_, err := l.Pop(3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = l.Pop(-4)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, 3, l.Len())
	})
}

func Test_ListSearch(t *testing.T) {
	l := NewList(4, 5, 4, 6, 4)

	assert.Equal(t, 3, l.Count(4))
	assert.Equal(t, 0, l.Count(9))
	assert.True(t, l.Contains(6))
	assert.False(t, l.Contains(9))

	i, err := l.IndexOf(6)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = l.IndexOf(9)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, l.Remove(4))
	assert.Equal(t, []int{5, 4, 6, 4}, l.Values())
	assert.False(t, l.Remove(9))
	assert.Equal(t, 4, l.Len())
}

func Test_ListRemoveByIdentity(t *testing.T) {
	type entity struct{ id int }
	a, b := &entity{id: 1}, &entity{id: 1}
	l := NewList(a, b)

	assert.True(t, l.Remove(b))
	require.Equal(t, 1, l.Len())
	first, err := l.First()
	require.NoError(t, err)
	assert.Same(t, a, first)
}

func Test_ListReverse(t *testing.T) {
	l := NewList[int]()
	// Wrap the ring so reversal crosses the buffer boundary.
	for i := 0; i < 5; i++ {
		l.AddFirst(i)
	}
	for i := 5; i < 12; i++ {
		l.AddLast(i)
	}
	original := l.Values()

	l.Reverse()
	reversed := slices.Clone(original)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, l.Values())

	l.Reverse()
	assert.Equal(t, original, l.Values())

	var backward []int
	for v := range l.Backward() {
		backward = append(backward, v)
	}
	assert.Equal(t, reversed, backward)
}

func Test_ListIteration(t *testing.T) {
	l := NewList(1, 2, 3, 4)
	seq := l.All()

	var first, second []int
	for v := range seq {
		first = append(first, v)
	}
	for v := range seq {
		second = append(second, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4}, first)
	assert.Equal(t, []int{1, 2}, second)
}

func Test_ListClearAndString(t *testing.T) {
	l := NewList(1, 2, 3)
	assert.Equal(t, "[1 <-> 2 <-> 3]", l.String())

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "[]", l.String())

	l.AddLast(7)
	assert.Equal(t, []int{7}, l.Values())
}

func Test_ListZeroValue(t *testing.T) {
	var l List[int]
	l.AddLast(1)
	l.AddFirst(0)
	assert.Equal(t, []int{0, 1}, l.Values())
}
