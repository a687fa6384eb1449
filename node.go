package skiplist

const (
	// MaxHeight is the height of the two sentinels and the number of levels
	// a search descends through. Live nodes draw heights in [1, MaxHeight-1];
	// the top slot belongs to the sentinels alone. See randomHeight.
	MaxHeight = 20

	// branching is the reciprocal promotion probability: roughly one node in
	// four that appears on level i also appears on level i+1.
	branching = 4

	// defaultSeed seeds every new map's height generator. The fixed seed is
	// part of the contract so that the list shape is reproducible.
	defaultSeed = 0xDEADBEEF
)

// node holds a key/value pair, its per-level forward links and the level-0
// backward link. The height is fixed at construction: len(forward).
type node[K, V any] struct {
	key K
	val V
	// forward[i] is the next node at level i, or the tail sentinel.
	forward []*node[K, V]
	// backward is the level-0 predecessor. It is head for the first live
	// node and maintained for tail, so reverse traversal needs no nil checks.
	backward *node[K, V]
}

func newNode[K, V any](key K, val V, height int) *node[K, V] {
	return &node[K, V]{key: key, val: val, forward: make([]*node[K, V], height)}
}

func (n *node[K, V]) height() int { return len(n.forward) }

// next returns the node's level-0 successor.
func (n *node[K, V]) next() *node[K, V] { return n.forward[0] }

// newSentinels builds the begin and end sentinels at full height, with head
// linked to tail on every level and tail's backward link set to head. The
// sentinels' key/value slots are never observed.
func newSentinels[K, V any]() (head, tail *node[K, V]) {
	head = &node[K, V]{forward: make([]*node[K, V], MaxHeight)}
	tail = &node[K, V]{forward: make([]*node[K, V], MaxHeight)}
	for i := range head.forward {
		head.forward[i] = tail
	}
	tail.backward = head
	return head, tail
}
