// Package skiplist implements an in-memory ordered map backed by a
// probabilistic skip list.
//
// A Map keeps its entries in ascending key order and supports expected
// O(log n) point lookup, ordered range access via LowerBound/UpperBound,
// insert and erase, and bidirectional iteration. Keys are ordered by their
// natural less-than relation (cmp.Ordered); there are no custom comparators.
//
// The container is single-threaded: it performs no internal synchronisation,
// and callers that share a Map across goroutines must serialise access
// themselves. Node heights come from a deterministic per-map generator, so
// two maps fed the same operation sequence have identical internal shape.
package skiplist

import "cmp"

// Map is an ordered map from K to V. Use New to create one; the zero value
// is not usable. A Map must not be copied after first use.
type Map[K cmp.Ordered, V any] struct {
	head   *node[K, V]
	tail   *node[K, V]
	length int
	rng    heightSource
	free   freeList[K, V]
	stats  Stats
	// prevs is the search scratch filled by findGE with the per-level
	// predecessors of the most recent target key.
	prevs [MaxHeight]*node[K, V]
}

// New returns an empty map.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	head, tail := newSentinels[K, V]()
	return &Map[K, V]{
		head: head,
		tail: tail,
		rng:  newHeightSource(defaultSeed),
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.length }

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.length == 0 }

// Get returns the value stored under key.
// The boolean is true if the key exists, false otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	p := m.findGE(key)
	if p != m.tail && p.key == key {
		return p.val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	p := m.findGE(key)
	return p != m.tail && p.key == key
}

// Find returns a cursor at key, or End when the key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	it := m.LowerBound(key)
	if it.n != m.tail && it.n.key == key {
		return it
	}
	return m.End()
}

// LowerBound returns a cursor at the first entry whose key is >= key, or End
// when every key is smaller.
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{m: m, n: m.findGE(key)}
}

// UpperBound returns a cursor at the first entry whose key is > key, or End
// when every key is smaller or equal.
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	it := m.LowerBound(key)
	if it.n != m.tail && it.n.key == key {
		it.n = it.n.next()
	}
	return it
}
