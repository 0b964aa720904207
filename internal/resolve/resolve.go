// Package resolve runs the full identifier resolution pipeline: intern
// raw identifier pairs, build the symmetric adjacency, label connected
// components, and assemble one output record per distinct identifier.
package resolve

import (
	"fmt"
	"time"

	"entlink/unify/internal/graph"
	"entlink/unify/internal/ident"
)

// Record is one output row: a node's component id, its parsed identifier,
// and the batch timestamp.
type Record struct {
	ComponentID uint32    `json:"id_unique"`
	Source      string    `json:"source"`
	LocalID     string    `json:"idi"`
	ProcessedAt time.Time `json:"tim_processed"`
}

// Result is the outcome of one run.
type Result struct {
	Records        []Record      `json:"records"`
	NodeCount      int           `json:"node_count"`
	EdgeCount      int           `json:"edge_count"` // distinct undirected edges
	ComponentCount int           `json:"component_count"`
	ProcessedAt    time.Time     `json:"processed_at"`
	Elapsed        time.Duration `json:"-"`
}

// Run executes the pipeline on an in-memory edge list. The whole batch
// either succeeds or fails; there is no partial output. ProcessedAt is a
// single microsecond-precision timestamp shared by every record.
func Run(edges []graph.Edge) (*Result, error) {
	start := time.Now()

	adj, err := graph.Build(edges)
	if err != nil {
		return nil, fmt.Errorf("building graph: %w", err)
	}
	labels := graph.Label(adj)

	processedAt := time.Now().Truncate(time.Microsecond)
	return &Result{
		Records:        assemble(adj, labels, processedAt),
		NodeCount:      adj.Index.Len(),
		EdgeCount:      adj.EdgeCount,
		ComponentCount: labels.Count,
		ProcessedAt:    processedAt,
		Elapsed:        time.Since(start),
	}, nil
}

// assemble groups handles by component id, each component's members in
// first-seen order, and resolves every handle back through the codec.
// Component ids already ascend with their smallest member handle, so the
// bucketed walk yields the output order: by component id, then by handle.
func assemble(adj *graph.Adjacency, labels *graph.Labels, processedAt time.Time) []Record {
	members := make([][]graph.Node, labels.Count)
	for n := 0; n < adj.Index.Len(); n++ {
		id := labels.ByNode[n]
		members[id] = append(members[id], graph.Node(n))
	}

	records := make([]Record, 0, adj.Index.Len())
	for id, nodes := range members {
		for _, n := range nodes {
			source, localID := ident.Parse(adj.Index.Resolve(n))
			records = append(records, Record{
				ComponentID: uint32(id),
				Source:      source,
				LocalID:     localID,
				ProcessedAt: processedAt,
			})
		}
	}
	return records
}
