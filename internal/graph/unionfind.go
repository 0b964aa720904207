package graph

// UnionFind implements union-find with path compression and union by rank
// over dense node handles.
type UnionFind struct {
	parent []Node
	rank   []uint8
	size   []int
}

// NewUnionFind creates a new UnionFind where each of the n handles is its
// own component.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]Node, n),
		rank:   make([]uint8, n),
		size:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = Node(i)
		uf.size[i] = 1
	}
	return uf
}

// Find returns the root of the component containing id, with path
// compression. Iterative path halving keeps the walk shallow even on
// long chains.
func (uf *UnionFind) Find(id Node) Node {
	for uf.parent[id] != id {
		uf.parent[id] = uf.parent[uf.parent[id]]
		id = uf.parent[id]
	}
	return id
}

// Union merges the components containing a and b. Returns true if they
// were separate.
func (uf *UnionFind) Union(a, b Node) bool {
	rootA := uf.Find(a)
	rootB := uf.Find(b)
	if rootA == rootB {
		return false
	}

	rankA := uf.rank[rootA]
	rankB := uf.rank[rootB]
	sizeA := uf.size[rootA]
	sizeB := uf.size[rootB]

	if rankA < rankB {
		uf.parent[rootA] = rootB
		uf.size[rootB] = sizeA + sizeB
	} else if rankA > rankB {
		uf.parent[rootB] = rootA
		uf.size[rootA] = sizeA + sizeB
	} else {
		uf.parent[rootB] = rootA
		uf.size[rootA] = sizeA + sizeB
		uf.rank[rootA]++
	}
	return true
}

// Size returns the member count of the component containing id.
func (uf *UnionFind) Size(id Node) int {
	return uf.size[uf.Find(id)]
}

// Components returns all connected components as slices of handles, each
// slice in ascending handle order.
func (uf *UnionFind) Components() [][]Node {
	groups := make(map[Node][]Node)
	for i := range uf.parent {
		root := uf.Find(Node(i))
		groups[root] = append(groups[root], Node(i))
	}
	result := make([][]Node, 0, len(groups))
	for _, members := range groups {
		result = append(result, members)
	}
	return result
}
