package graph

import (
	"errors"
	"math"
)

// Node is a dense handle identifying one distinct raw identifier within a run.
type Node uint32

// ErrCapacity is returned when the node handle space is exhausted.
var ErrCapacity = errors.New("graph: node handle space exhausted")

// NodeIndex assigns dense handles to raw identifiers in first-seen order.
// Handle 0 goes to the first identifier encountered, and so on.
type NodeIndex struct {
	byRaw  map[string]Node
	byNode []string
}

// NewNodeIndex creates an empty index.
func NewNodeIndex() *NodeIndex {
	return &NodeIndex{byRaw: make(map[string]Node)}
}

// Intern returns the handle for raw, allocating the next handle if raw
// has not been seen before. Fails with ErrCapacity instead of wrapping
// past the uint32 handle space.
func (ix *NodeIndex) Intern(raw string) (Node, error) {
	if n, ok := ix.byRaw[raw]; ok {
		return n, nil
	}
	if uint64(len(ix.byNode)) > math.MaxUint32 {
		return 0, ErrCapacity
	}
	n := Node(len(ix.byNode))
	ix.byRaw[raw] = n
	ix.byNode = append(ix.byNode, raw)
	return n, nil
}

// Resolve returns the raw identifier behind a handle.
func (ix *NodeIndex) Resolve(n Node) string {
	return ix.byNode[n]
}

// Len reports the number of distinct identifiers interned so far.
func (ix *NodeIndex) Len() int {
	return len(ix.byNode)
}
