package skiplist

// maxFree bounds the free list so a burst of erases does not pin memory
// forever; nodes beyond the bound are left to the garbage collector.
const maxFree = 512

// freeList recycles detached nodes so steady-state insert/erase churn
// allocates rarely. The container is single-threaded, so a plain slice
// suffices.
type freeList[K, V any] struct {
	nodes []*node[K, V]
}

func (f *freeList[K, V]) acquire(key K, val V, height int) *node[K, V] {
	if len(f.nodes) == 0 {
		return newNode(key, val, height)
	}

	n := f.nodes[len(f.nodes)-1]
	f.nodes = f.nodes[:len(f.nodes)-1]

	if cap(n.forward) < height {
		n.forward = make([]*node[K, V], height)
	} else {
		n.forward = n.forward[:height]
		for i := range n.forward {
			n.forward[i] = nil
		}
	}
	n.key = key
	n.val = val
	return n
}

// release clears the node's fields before pooling it, both to drop references
// the collector could not otherwise reclaim and so that a stale cursor into
// the node cannot silently walk a detached chain.
func (f *freeList[K, V]) release(n *node[K, V]) {
	var zeroK K
	var zeroV V
	n.key = zeroK
	n.val = zeroV
	n.backward = nil
	for i := range n.forward {
		n.forward[i] = nil
	}
	if len(f.nodes) < maxFree {
		f.nodes = append(f.nodes, n)
	}
}
