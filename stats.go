package skiplist

// Stats carries cumulative operation counters. Steps counts node advances
// inside the search pass, so Steps/Searches approximates the cost of a point
// query on the current shape. The counters enable workload analysis in
// benchmarks and tooling; they are not reset by Clear.
type Stats struct {
	Searches uint64
	Steps    uint64
	Inserts  uint64
	Deletes  uint64
}

// Stats returns a snapshot of the map's counters.
func (m *Map[K, V]) Stats() Stats { return m.stats }

// HeightHistogram reports how many live nodes carry each height: index i
// holds the count of nodes with height i+1. The slice has MaxHeight-1
// entries, the tallest height a live node can draw.
func (m *Map[K, V]) HeightHistogram() []int {
	hist := make([]int, MaxHeight-1)
	for n := m.head.next(); n != m.tail; n = n.next() {
		hist[n.height()-1]++
	}
	return hist
}
