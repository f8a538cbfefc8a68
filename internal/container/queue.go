package container

import "iter"

// Queue is a FIFO container. Enqueue, Dequeue and Peek are O(1) amortised.
//
// The zero value is an empty queue ready to use.
type Queue[T comparable] struct {
	r ring[T]
}

// NewQueue returns a new instance of an empty Queue.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends item at the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.r.pushBack(item)
}

// Dequeue removes and returns the element at the front of the queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.r.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return q.r.popFront(), nil
}

// Peek returns the element at the front of the queue without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.r.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return q.r.front(), nil
}

// Contains scans the queue for an element equal to item.
func (q *Queue[T]) Contains(item T) bool {
	for v := range q.All() {
		if v == item {
			return true
		}
	}
	return false
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.r.n
}

// IsEmpty returns true if nothing is queued.
func (q *Queue[T]) IsEmpty() bool {
	return q.r.n == 0
}

// Clear empties the queue.
func (q *Queue[T]) Clear() {
	q.r.clear()
}

// All iterates the queue in dequeue order.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.r.n; i++ {
			if !yield(q.r.at(i)) {
				return
			}
		}
	}
}

// Values returns the queued elements in dequeue order.
func (q *Queue[T]) Values() []T {
	values := make([]T, 0, q.r.n)
	for v := range q.All() {
		values = append(values, v)
	}
	return values
}

func (q *Queue[T]) String() string {
	if q.r.n == 0 {
		return "Queue(empty)"
	}
	return "[front: " + join(q.All(), " <- ") + " :back]"
}
