package skiplist

// Insert adds key with value val. When the key is already present the stored
// entry is left untouched and a cursor to it is returned with ok == false.
func (m *Map[K, V]) Insert(key K, val V) (it Iterator[K, V], ok bool) {
	p := m.findGE(key)
	if p != m.tail && p.key == key {
		return Iterator[K, V]{m: m, n: p}, false
	}

	// The duplicate check precedes the height draw: a rejected insert must
	// not advance the generator, or identical operation sequences would stop
	// producing identical shapes.
	n := m.free.acquire(key, val, m.rng.randomHeight())

	n.backward = m.prevs[0]
	m.prevs[0].next().backward = n
	for i := range n.forward {
		n.forward[i] = m.prevs[i].forward[i]
		m.prevs[i].forward[i] = n
	}

	m.length++
	m.stats.Inserts++
	return Iterator[K, V]{m: m, n: n}, true
}

// GetOrInsert returns a pointer to the value stored under key, first
// inserting the zero value when the key is absent. The pointer is valid for
// in-place mutation until the entry is erased.
func (m *Map[K, V]) GetOrInsert(key K) *V {
	var zero V
	it, _ := m.Insert(key, zero)
	return &it.n.val
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) {
	p := m.findGE(key)
	if p == m.tail || p.key != key {
		return
	}

	p.next().backward = p.backward
	for i := range p.forward {
		m.prevs[i].forward[i] = p.forward[i]
	}

	m.length--
	m.stats.Deletes++
	m.free.release(p)
}

// DeleteAt erases the entry under it and returns a cursor to its successor,
// which is safe to continue traversal from. The cursor must belong to this
// map and must not be End.
func (m *Map[K, V]) DeleteAt(it Iterator[K, V]) Iterator[K, V] {
	invariant(it.m == m, "DeleteAt: iterator belongs to a different map")
	invariant(it.n != m.tail, "DeleteAt: iterator at End")

	// Capture the successor before unlinking; afterwards the erased node's
	// links are gone.
	succ := it.n.next()
	m.Delete(it.n.key)
	return Iterator[K, V]{m: m, n: succ}
}

// Clear detaches every entry and resets the sentinels. The map is empty and
// reusable afterwards; clearing an empty map is a no-op.
func (m *Map[K, V]) Clear() {
	for p := m.head.next(); p != m.tail; {
		next := p.next()
		m.free.release(p)
		p = next
	}
	for i := range m.head.forward {
		m.head.forward[i] = m.tail
	}
	m.tail.backward = m.head
	m.length = 0
}
