package container

import (
	"fmt"
	"iter"
	"strings"
)

// List is an indexed double-ended sequence.
//
// Elements are kept in a growable ring buffer, so both ends are O(1)
// amortised and indexed reads are O(1). Insert and positional removal
// shift the shorter side of the index, O(n) in the worst case.
//
// Equality used by Remove, IndexOf, Count and Contains is Go's ==, which
// for pointer element types means identity.
//
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	r ring[T]
}

// NewList returns a new instance of an empty List holding the given items
// in order.
func NewList[T comparable](items ...T) *List[T] {
	l := &List[T]{}
	for _, item := range items {
		l.AddLast(item)
	}
	return l
}

// AddFirst inserts item at the front of the list.
func (l *List[T]) AddFirst(item T) {
	l.r.pushFront(item)
}

// AddLast inserts item at the back of the list.
func (l *List[T]) AddLast(item T) {
	l.r.pushBack(item)
}

// First returns the element at the front of the list.
func (l *List[T]) First() (T, error) {
	if l.r.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.r.front(), nil
}

// Last returns the element at the back of the list.
func (l *List[T]) Last() (T, error) {
	if l.r.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.r.back(), nil
}

// RemoveFirst unlinks and returns the element at the front of the list.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.r.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.r.popFront(), nil
}

// RemoveLast unlinks and returns the element at the back of the list.
func (l *List[T]) RemoveLast() (T, error) {
	if l.r.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.r.popBack(), nil
}

func (l *List[T]) checkIndex(index int, allowAppend bool) error {
	bound := l.r.n
	if allowAppend {
		bound++
	}
	if index < 0 || index >= bound {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return nil
}

// Get returns the element at index, which must be in [0, Len()).
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index, false); err != nil {
		var zero T
		return zero, err
	}
	return l.r.at(index), nil
}

// Set replaces the element at index and returns the previous one.
func (l *List[T]) Set(index int, item T) (T, error) {
	if err := l.checkIndex(index, false); err != nil {
		var zero T
		return zero, err
	}
	old := l.r.at(index)
	l.r.put(index, item)
	return old, nil
}

// Insert places item at index in [0, Len()]. Inserting at Len() is the
// same as AddLast.
func (l *List[T]) Insert(index int, item T) error {
	if err := l.checkIndex(index, true); err != nil {
		return err
	}
	l.r.insertAt(index, item)
	return nil
}

// Remove deletes the first element equal to item. It returns true if an
// element was removed.
func (l *List[T]) Remove(item T) bool {
	i, err := l.IndexOf(item)
	if err != nil {
		return false
	}
	l.r.removeAt(i)
	return true
}

// Pop removes and returns the element at index. Negative indices count
// from the back, so Pop(-1) removes the last element.
func (l *List[T]) Pop(index int) (T, error) {
	if l.r.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	if index < 0 {
		index += l.r.n
	}
	if err := l.checkIndex(index, false); err != nil {
		var zero T
		return zero, err
	}
	return l.r.removeAt(index), nil
}

// IndexOf returns the position of the first element equal to item.
func (l *List[T]) IndexOf(item T) (int, error) {
	for i := 0; i < l.r.n; i++ {
		if l.r.at(i) == item {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %v", ErrNotFound, item)
}

// Count returns how many elements are equal to item.
func (l *List[T]) Count(item T) int {
	count := 0
	for i := 0; i < l.r.n; i++ {
		if l.r.at(i) == item {
			count++
		}
	}
	return count
}

// Contains reports whether an element equal to item is in the list.
func (l *List[T]) Contains(item T) bool {
	_, err := l.IndexOf(item)
	return err == nil
}

// Reverse reverses the order of the elements in place.
func (l *List[T]) Reverse() {
	l.r.reverse()
}

// Clear empties the list.
func (l *List[T]) Clear() {
	l.r.clear()
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.r.n
}

// IsEmpty returns true if the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.r.n == 0
}

// All iterates the list front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.r.n; i++ {
			if !yield(l.r.at(i)) {
				return
			}
		}
	}
}

// Backward iterates the list back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.r.n - 1; i >= 0; i-- {
			if !yield(l.r.at(i)) {
				return
			}
		}
	}
}

// Values returns the elements front to back in a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.r.n)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

func (l *List[T]) String() string {
	if l.r.n == 0 {
		return "[]"
	}
	return "[" + join(l.All(), " <-> ") + "]"
}

func join[T any](seq iter.Seq[T], sep string) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
