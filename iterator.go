package skiplist

import (
	"cmp"
	"iter"
)

// Iterator is a bidirectional cursor over a map's entries in key order.
// Iterators are small values: copy them freely and compare them with ==.
// A cursor stays valid until the entry it points at is erased; erasing other
// entries does not disturb it.
type Iterator[K cmp.Ordered, V any] struct {
	m *Map[K, V]
	n *node[K, V]
}

// Begin returns a cursor at the smallest entry, or End when the map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m: m, n: m.head.next()}
}

// End returns the past-the-end cursor.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m, n: m.tail}
}

// Last returns a cursor at the largest entry, or End when the map is empty.
// Walking Prev from Last visits the entries in descending order.
func (m *Map[K, V]) Last() Iterator[K, V] {
	if m.length == 0 {
		return m.End()
	}
	return Iterator[K, V]{m: m, n: m.tail.backward}
}

// Valid reports whether the cursor points at an entry, i.e. is not End.
func (it Iterator[K, V]) Valid() bool {
	return it.m != nil && it.n != it.m.tail
}

// Key returns the key at the cursor. The cursor must not be End.
func (it Iterator[K, V]) Key() K {
	invariant(it.Valid(), "Key on End iterator")
	return it.n.key
}

// Value returns the value at the cursor. The cursor must not be End.
func (it Iterator[K, V]) Value() V {
	invariant(it.Valid(), "Value on End iterator")
	return it.n.val
}

// Set replaces the value at the cursor. The cursor must not be End.
func (it Iterator[K, V]) Set(val V) {
	invariant(it.Valid(), "Set on End iterator")
	it.n.val = val
}

// Next advances the cursor to its successor. Advancing past End is a
// programmer error.
func (it *Iterator[K, V]) Next() {
	invariant(it.n != it.m.tail, "Next on End iterator")
	it.n = it.n.next()
}

// Prev retreats the cursor to its predecessor. Prev on End lands on the last
// entry; retreating past Begin is a programmer error.
func (it *Iterator[K, V]) Prev() {
	invariant(it.n.backward != it.m.head, "Prev on Begin iterator")
	it.n = it.n.backward
}

// All yields the entries in ascending key order. The map must not be mutated
// during the walk.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.head.next(); n != m.tail; n = n.next() {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// Backward yields the entries in descending key order. The map must not be
// mutated during the walk.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.tail.backward; n != m.head; n = n.backward {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}
