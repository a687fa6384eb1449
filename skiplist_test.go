package skiplist

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectKeys walks the map front to back and returns the keys in order.
func collectKeys[K cmp.Ordered, V any](m *Map[K, V]) []K {
	var keys []K
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// collectKeysBackward walks the map back to front.
func collectKeysBackward[K cmp.Ordered, V any](m *Map[K, V]) []K {
	var keys []K
	for k := range m.Backward() {
		keys = append(keys, k)
	}
	return keys
}

// nodeHeights exposes the internal shape: the height of every live node in
// key order.
func nodeHeights[K cmp.Ordered, V any](m *Map[K, V]) []int {
	var heights []int
	for n := m.head.next(); n != m.tail; n = n.next() {
		heights = append(heights, n.height())
	}
	return heights
}

// insertPiDigits feeds the scenario sequence {3,1,4,1,5,9,2,6} with the
// insertion index as value and returns the number of successful inserts.
func insertPiDigits(m *Map[int, int]) int {
	inserted := 0
	for i, k := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		if _, ok := m.Insert(k, i); ok {
			inserted++
		}
	}
	return inserted
}

func TestEmptyMap(t *testing.T) {
	m := New[int, string]()

	assert.Equal(t, 0, m.Len())
	assert.True(t, m.Empty())
	assert.Equal(t, m.End(), m.Begin())
	assert.Equal(t, m.End(), m.Last())
	assert.Equal(t, m.End(), m.Find(42))
	assert.False(t, m.Contains(42))

	_, ok := m.Get(42)
	assert.False(t, ok)

	m.Delete(42) // no-op
	m.Clear()    // no-op
	assert.Equal(t, 0, m.Len())
}

func TestInsertPiDigits(t *testing.T) {
	m := New[int, int]()

	inserted := insertPiDigits(m)
	assert.Equal(t, 7, inserted)
	assert.Equal(t, 7, m.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 9}, collectKeys(m))
}

func TestInsertDuplicateKeepsFirstValue(t *testing.T) {
	m := New[string, int]()

	first, ok := m.Insert("k", 1)
	require.True(t, ok)

	second, ok := m.Insert("k", 2)
	assert.False(t, ok)
	assert.Equal(t, first, second, "duplicate insert must return the existing cursor")
	assert.Equal(t, 1, m.Len())

	v, found := m.Get("k")
	require.True(t, found)
	assert.Equal(t, 1, v, "first writer wins")
}

func TestDeleteScenario(t *testing.T) {
	m := New[int, int]()
	insertPiDigits(m)

	m.Delete(4)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 9}, collectKeys(m))
	assert.Equal(t, 6, m.Len())

	m.Delete(4) // second erase is a no-op
	assert.Equal(t, 6, m.Len())
}

func TestGetOrInsert(t *testing.T) {
	m := New[string, int]()

	p := m.GetOrInsert("x")
	require.NotNil(t, p)
	assert.Equal(t, 0, *p, "fresh entry holds the zero value")
	assert.Equal(t, 1, m.Len())

	*m.GetOrInsert("x") = 7
	assert.Equal(t, 1, m.Len())

	v, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestBounds(t *testing.T) {
	m := New[int, int]()
	insertPiDigits(m) // keys 1 2 3 4 5 6 9

	assert.Equal(t, 3, m.LowerBound(3).Key())
	assert.Equal(t, 4, m.UpperBound(3).Key())
	assert.Equal(t, 9, m.LowerBound(7).Key())
	assert.Equal(t, m.End(), m.UpperBound(9))
	assert.Equal(t, 1, m.LowerBound(0).Key())
	assert.Equal(t, m.End(), m.LowerBound(10))
}

func TestBoundsContract(t *testing.T) {
	m := New[int, int]()
	rng := rand.New(rand.NewPCG(7, 7))

	var oracle []int
	for i := 0; i < 300; i++ {
		k := int(rng.Uint64() % 500)
		if _, ok := m.Insert(k, i); ok {
			oracle = append(oracle, k)
		}
	}
	sort.Ints(oracle)
	require.Equal(t, oracle, collectKeys(m))

	for probe := -1; probe <= 501; probe += 13 {
		lb := m.LowerBound(probe)
		ub := m.UpperBound(probe)

		i := sort.SearchInts(oracle, probe)
		if i == len(oracle) {
			assert.Equal(t, m.End(), lb)
		} else {
			assert.Equal(t, oracle[i], lb.Key())
		}

		j := sort.Search(len(oracle), func(n int) bool { return oracle[n] > probe })
		if j == len(oracle) {
			assert.Equal(t, m.End(), ub)
		} else {
			assert.Equal(t, oracle[j], ub.Key())
		}
	}
}

func TestSizeLaw(t *testing.T) {
	m := New[int, int]()
	rng := rand.New(rand.NewPCG(11, 11))

	inserts, deletes := 0, 0
	for i := 0; i < 2000; i++ {
		k := int(rng.Uint64() % 200)
		if rng.Uint64()%3 == 0 {
			if m.Contains(k) {
				deletes++
			}
			m.Delete(k)
		} else {
			if _, ok := m.Insert(k, i); ok {
				inserts++
			}
		}
	}

	assert.Equal(t, inserts-deletes, m.Len())
	assert.True(t, slices.IsSortedFunc(collectKeys(m), cmp.Compare), "forward walk must stay sorted")
}

func TestDeleteRestoresState(t *testing.T) {
	m := New[int, string]()
	m.Insert(1, "a")
	m.Insert(5, "b")
	m.Insert(9, "c")

	before := collectKeys(m)
	beforeLen := m.Len()

	_, ok := m.Insert(7, "d")
	require.True(t, ok)
	m.Delete(7)

	assert.Equal(t, beforeLen, m.Len())
	assert.Equal(t, before, collectKeys(m))
	for k, want := range map[int]string{1: "a", 5: "b", 9: "c"} {
		v, found := m.Get(k)
		require.True(t, found)
		assert.Equal(t, want, v)
	}
}

func TestClear(t *testing.T) {
	m := New[int, int]()
	insertPiDigits(m)

	m.Clear()
	assert.True(t, m.Empty())
	assert.Equal(t, m.End(), m.Begin())
	assert.Equal(t, m.head, m.tail.backward)

	m.Clear() // idempotent

	// The map stays usable after Clear.
	_, ok := m.Insert(10, 1)
	require.True(t, ok)
	assert.Equal(t, []int{10}, collectKeys(m))
}

func TestDeterministicShape(t *testing.T) {
	run := func() *Map[int, int] {
		m := New[int, int]()
		rng := rand.New(rand.NewPCG(3, 3))
		for i := 0; i < 1000; i++ {
			k := int(rng.Uint64() % 700)
			switch rng.Uint64() % 4 {
			case 0:
				m.Delete(k)
			default:
				m.Insert(k, i)
			}
		}
		return m
	}

	a, b := run(), run()
	assert.Equal(t, a.Len(), b.Len())
	assert.Equal(t, collectKeys(a), collectKeys(b))
	assert.Equal(t, nodeHeights(a), nodeHeights(b),
		"same seed and same operations must produce the same topology")

	for probe := 0; probe < 700; probe += 37 {
		av, aok := a.Get(probe)
		bv, bok := b.Get(probe)
		assert.Equal(t, aok, bok)
		assert.Equal(t, av, bv)
	}
}

func TestFailedInsertDoesNotAdvanceGenerator(t *testing.T) {
	withDup := New[int, int]()
	withDup.Insert(1, 0)
	withDup.Insert(1, 0) // rejected; must not draw a height
	withDup.Insert(2, 0)
	withDup.Insert(3, 0)

	plain := New[int, int]()
	plain.Insert(1, 0)
	plain.Insert(2, 0)
	plain.Insert(3, 0)

	assert.Equal(t, nodeHeights(plain), nodeHeights(withDup))
}

func TestStatsCounters(t *testing.T) {
	m := New[int, int]()
	insertPiDigits(m)
	m.Get(5)
	m.Delete(5)

	s := m.Stats()
	assert.Equal(t, uint64(7), s.Inserts)
	assert.Equal(t, uint64(1), s.Deletes)
	// 8 insert probes + 1 lookup + 1 erase probe.
	assert.Equal(t, uint64(10), s.Searches)
}

func TestHeightHistogram(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 500; i++ {
		m.Insert(i, i)
	}

	hist := m.HeightHistogram()
	require.Len(t, hist, MaxHeight-1)

	total := 0
	for _, c := range hist {
		total += c
	}
	assert.Equal(t, m.Len(), total)
	assert.Greater(t, hist[0], hist[2], "height 1 must dominate height 3 under branching 4")
}

func TestLevelZeroInvariants(t *testing.T) {
	m := New[int, int]()
	rng := rand.New(rand.NewPCG(5, 5))
	for i := 0; i < 400; i++ {
		m.Insert(int(rng.Uint64()%1000), i)
	}
	for i := 0; i < 100; i++ {
		m.Delete(int(rng.Uint64() % 1000))
	}

	// Every node's level-0 successor points back at it, and each level is
	// strictly ascending up to tail.
	count := 0
	for n := m.head.next(); n != m.tail; n = n.next() {
		count++
		require.Same(t, n, n.next().backward)
		if n.next() != m.tail {
			require.Less(t, n.key, n.next().key)
		}
	}
	require.Equal(t, m.Len(), count)
	require.Same(t, m.head, m.head.next().backward)

	for i := 0; i < MaxHeight; i++ {
		prev := m.head
		for n := m.head.forward[i]; n != m.tail; n = n.forward[i] {
			require.True(t, i < n.height())
			if prev != m.head {
				require.Less(t, prev.key, n.key)
			}
			prev = n
		}
	}
}
