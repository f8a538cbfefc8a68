package container

const minRingCapacity = 8

// ring is a growable circular buffer. Element i lives at
// buf[(head+i)%len(buf)]. The buffer always has at least one free slot
// after grow, so pushes never overwrite a live element.
type ring[T any] struct {
	buf  []T
	head int
	n    int
}

func (r *ring[T]) pos(i int) int {
	return (r.head + i) % len(r.buf)
}

// grow makes room for one more element, doubling the buffer when full.
func (r *ring[T]) grow() {
	if r.n < len(r.buf) {
		return
	}
	size := 2 * len(r.buf)
	if size < minRingCapacity {
		size = minRingCapacity
	}
	buf := make([]T, size)
	for i := 0; i < r.n; i++ {
		buf[i] = r.buf[r.pos(i)]
	}
	r.buf = buf
	r.head = 0
}

func (r *ring[T]) pushBack(v T) {
	r.grow()
	r.buf[r.pos(r.n)] = v
	r.n++
}

func (r *ring[T]) pushFront(v T) {
	r.grow()
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = v
	r.n++
}

// popFront and popBack must only be called on a non-empty ring.
func (r *ring[T]) popFront() T {
	var zero T
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return v
}

func (r *ring[T]) popBack() T {
	var zero T
	p := r.pos(r.n - 1)
	v := r.buf[p]
	r.buf[p] = zero
	r.n--
	return v
}

func (r *ring[T]) front() T { return r.buf[r.head] }

func (r *ring[T]) back() T { return r.buf[r.pos(r.n-1)] }

func (r *ring[T]) at(i int) T { return r.buf[r.pos(i)] }

func (r *ring[T]) put(i int, v T) { r.buf[r.pos(i)] = v }

// insertAt places v at logical index i in [0, n], shifting whichever
// side of i is shorter.
func (r *ring[T]) insertAt(i int, v T) {
	switch i {
	case r.n:
		r.pushBack(v)
		return
	case 0:
		r.pushFront(v)
		return
	}
	r.grow()
	if i < r.n/2 {
		r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
		r.n++
		for j := 0; j < i; j++ {
			r.put(j, r.at(j+1))
		}
	} else {
		r.n++
		for j := r.n - 1; j > i; j-- {
			r.put(j, r.at(j-1))
		}
	}
	r.put(i, v)
}

// removeAt deletes and returns the element at logical index i in [0, n).
func (r *ring[T]) removeAt(i int) T {
	v := r.at(i)
	if i < r.n/2 {
		for j := i; j > 0; j-- {
			r.put(j, r.at(j-1))
		}
		r.popFront()
	} else {
		for j := i; j < r.n-1; j++ {
			r.put(j, r.at(j+1))
		}
		r.popBack()
	}
	return v
}

func (r *ring[T]) reverse() {
	for i, j := 0, r.n-1; i < j; i, j = i+1, j-1 {
		a, b := r.at(i), r.at(j)
		r.put(i, b)
		r.put(j, a)
	}
}

// clear releases the buffer so that held values can be collected.
func (r *ring[T]) clear() {
	r.buf = nil
	r.head = 0
	r.n = 0
}
