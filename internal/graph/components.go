package graph

import "github.com/RoaringBitmap/roaring/v2"

// Labels maps every node handle to its connected component id.
type Labels struct {
	ByNode []uint32 // component id per handle, indexed by Node
	Count  int      // number of components
}

// Label partitions the graph into connected components. Handles are
// scanned in ascending order and each unvisited one floods its component
// with a breadth-first walk over the neighbor sets, so component ids are
// zero-based and increase with the smallest handle in each component.
// The walk uses an explicit queue and a roaring visited set; every node
// and adjacency entry is touched at most once.
func Label(adj *Adjacency) *Labels {
	n := adj.Index.Len()
	byNode := make([]uint32, n)
	visited := roaring.New()
	var next uint32

	for start := 0; start < n; start++ {
		if visited.Contains(uint32(start)) {
			continue
		}
		visited.Add(uint32(start))
		queue := []Node{Node(start)}
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			byNode[u] = next
			for _, v := range adj.Neighbors[u] {
				if !visited.Contains(uint32(v)) {
					visited.Add(uint32(v))
					queue = append(queue, v)
				}
			}
		}
		next++
	}
	return &Labels{ByNode: byNode, Count: int(next)}
}

// Sizes returns the member count of every component, indexed by
// component id.
func (l *Labels) Sizes() []int {
	sizes := make([]int, l.Count)
	for _, id := range l.ByNode {
		sizes[id]++
	}
	return sizes
}
