package container

import "iter"

type pair[K comparable, V any] struct {
	key K
	val *V
}

// Table maps keys to values and remembers the order in which keys were
// first put.
//
// Values are stored by pointer and nil is the absent marker: Get returns
// nil for a missing key and Put with a nil value deletes the key.
//
// A hash index points into a slice of pairs. Deleted pairs are left as
// tombstones (nil val) and compacted once they outnumber live pairs, so
// Get, Put and Delete are O(1) on average.
//
// The zero value is an empty table ready to use.
type Table[K comparable, V any] struct {
	index map[K]int
	pairs []pair[K, V]
	dead  int
}

// NewTable returns a new instance of an empty Table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		index: make(map[K]int),
	}
}

// Put associates val with key, replacing any previous value. Putting a nil
// val is equivalent to Delete(key).
func (t *Table[K, V]) Put(key K, val *V) {
	if val == nil {
		t.Delete(key)
		return
	}
	if t.index == nil {
		t.index = make(map[K]int)
	}
	if i, ok := t.index[key]; ok {
		t.pairs[i].val = val
		return
	}
	t.index[key] = len(t.pairs)
	t.pairs = append(t.pairs, pair[K, V]{key: key, val: val})
}

// Get returns the value for key, or nil if the key is absent.
func (t *Table[K, V]) Get(key K) *V {
	i, ok := t.index[key]
	if !ok {
		return nil
	}
	return t.pairs[i].val
}

// Delete removes key from the table. Deleting an absent key is a no-op.
func (t *Table[K, V]) Delete(key K) {
	i, ok := t.index[key]
	if !ok {
		return
	}
	delete(t.index, key)
	t.pairs[i] = pair[K, V]{}
	t.dead++
	if t.dead > len(t.index) {
		t.compact()
	}
}

func (t *Table[K, V]) compact() {
	live := make([]pair[K, V], 0, len(t.index))
	for _, p := range t.pairs {
		if p.val == nil {
			continue
		}
		t.index[p.key] = len(live)
		live = append(live, p)
	}
	t.pairs = live
	t.dead = 0
}

// Contains reports whether key has a value.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.index[key]
	return ok
}

// Len returns the number of keys in the table.
func (t *Table[K, V]) Len() int {
	return len(t.index)
}

// IsEmpty returns true if the table has no keys.
func (t *Table[K, V]) IsEmpty() bool {
	return len(t.index) == 0
}

// Keys returns all keys in insertion order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.index))
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates the key/value pairs in insertion order.
func (t *Table[K, V]) All() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for _, p := range t.pairs {
			if p.val == nil {
				continue
			}
			if !yield(p.key, p.val) {
				return
			}
		}
	}
}
