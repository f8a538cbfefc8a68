// Package container provides the generic in-memory containers that back
// the repositories: an indexed double-ended List, a FIFO Queue, a LIFO
// Stack and an insertion-ordered Table.
//
// None of the containers are safe for concurrent structural mutation,
// callers must serialise access themselves.
package container

import "iter"

// Assert that the containers implement Sequence.
var (
	_ Sequence[int] = (*List[int])(nil)
	_ Sequence[int] = (*Queue[int])(nil)
	_ Sequence[int] = (*Stack[int])(nil)
)

// Sequence describes the read side shared by List, Queue and Stack.
type Sequence[T comparable] interface {
	// Len returns the number of elements held.
	Len() int
	// IsEmpty returns true when Len is zero.
	IsEmpty() bool
	// Contains reports whether an element equal to item is held.
	// It never fails, an absent element only yields false.
	Contains(item T) bool
	// All returns a lazy, restartable iterator over the elements
	// in the container's natural removal order.
	All() iter.Seq[T]
	// Values copies the elements into a new slice in the order of All.
	Values() []T
	// Clear drops every element.
	Clear()
}
