package graph

// Edge is one input row: an ordered pair of raw identifiers.
type Edge struct {
	Left  string
	Right string
}

// Adjacency holds the symmetric one-hop relation over dense handles.
// Neighbor slices are sets: repeated input rows are dropped at insert
// time, so multiplicity never reaches the traversal.
type Adjacency struct {
	Index     *NodeIndex
	Neighbors [][]Node
	EdgeCount int // distinct undirected edges, self-edges included
}

// Build interns every identifier in edges (left before right, row by row,
// preserving first-seen order) and records the symmetric closure of each
// pair. Self-edges are kept as a single self-neighbor entry.
func Build(edges []Edge) (*Adjacency, error) {
	adj := &Adjacency{Index: NewNodeIndex()}
	seen := make(map[[2]Node]struct{}, len(edges))

	for _, e := range edges {
		u, err := adj.Index.Intern(e.Left)
		if err != nil {
			return nil, err
		}
		v, err := adj.Index.Intern(e.Right)
		if err != nil {
			return nil, err
		}
		for len(adj.Neighbors) < adj.Index.Len() {
			adj.Neighbors = append(adj.Neighbors, nil)
		}

		key := [2]Node{u, v}
		if u > v {
			key = [2]Node{v, u}
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		adj.EdgeCount++

		adj.Neighbors[u] = append(adj.Neighbors[u], v)
		if u != v {
			adj.Neighbors[v] = append(adj.Neighbors[v], u)
		}
	}
	return adj, nil
}

// Degree returns the number of distinct neighbors of n.
func (a *Adjacency) Degree(n Node) int {
	return len(a.Neighbors[n])
}
