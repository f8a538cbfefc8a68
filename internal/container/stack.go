package container

import "iter"

// Stack is a LIFO container backed by a slice; the top of the stack is
// the end of the slice.
//
// The zero value is an empty stack ready to use.
type Stack[T comparable] struct {
	items []T
}

// NewStack returns a new instance of an empty Stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyContainer
	}
	top := len(s.items) - 1
	item := s.items[top]
	s.items[top] = zero
	s.items = s.items[:top]
	return item, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return s.items[len(s.items)-1], nil
}

// Contains scans the stack for an element equal to item.
func (s *Stack[T]) Contains(item T) bool {
	for _, v := range s.items {
		if v == item {
			return true
		}
	}
	return false
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty returns true if the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear empties the stack.
func (s *Stack[T]) Clear() {
	s.items = nil
}

// All iterates the stack from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Values returns the elements from top to bottom.
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, len(s.items))
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

func (s *Stack[T]) String() string {
	if len(s.items) == 0 {
		return "Stack(empty)"
	}
	return "[top: " + join(s.All(), " -> ") + "]"
}
