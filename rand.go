package skiplist

import "math/rand/v2"

// heightSource draws node heights with a geometric distribution: a node is
// promoted to the next level with probability 1/branching. Each map owns one
// source, so the sequence of heights depends only on the seed and the number
// of successful inserts.
type heightSource struct {
	src *rand.PCG
}

func newHeightSource(seed uint64) heightSource {
	return heightSource{src: rand.NewPCG(seed, seed)}
}

// randomHeight returns a height in [1, MaxHeight-1]. MaxHeight itself is
// unreachable: it is reserved for the sentinels, whose forward arrays must
// always extend one level above the tallest live node.
func (h heightSource) randomHeight() int {
	height := 1
	for height+1 < MaxHeight && h.src.Uint64()%branching == 0 {
		height++
	}
	return height
}
