package skiplist

import "cmp"

// findGE returns the first live node whose key is greater than or equal to
// key, or tail when no such node exists. As a side effect it fills m.prevs
// with the rightmost node strictly before key at every level (head when no
// such node exists on that level).
//
// This is the single hot path: every lookup and mutation routes through it.
// The scratch prevs array lives on the map, so the pass does not allocate.
// The container is single-threaded by contract, which makes the shared
// scratch safe.
func (m *Map[K, V]) findGE(key K) *node[K, V] {
	m.stats.Searches++
	x := m.head
	for i := MaxHeight - 1; i >= 0; i-- {
		for next := x.forward[i]; next != m.tail && cmp.Less(next.key, key); next = x.forward[i] {
			x = next
			m.stats.Steps++
		}
		m.prevs[i] = x
	}
	return m.prevs[0].next()
}
