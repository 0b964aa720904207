package graph

import "sort"

// HubNode is a node with high connectivity.
type HubNode struct {
	ID     string `json:"id"`
	Degree int    `json:"degree"`
}

// DegreeBucket is one bucket in the degree histogram.
type DegreeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Report summarizes graph shape: components, degree distribution, hubs.
type Report struct {
	TotalNodes        int            `json:"total_nodes"`
	TotalEdges        int            `json:"total_edges"`
	NumComponents     int            `json:"num_components"`
	LargestComponent  int            `json:"largest_component"`
	SmallestComponent int            `json:"smallest_component"`
	DegreeHistogram   []DegreeBucket `json:"degree_histogram"`
	Hubs              []HubNode      `json:"hubs"`
}

// ReportConfig holds reporting parameters.
type ReportConfig struct {
	HubThreshold int
	TopN         int
}

// DefaultReportConfig returns sensible defaults.
func DefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		HubThreshold: 10,
		TopN:         20,
	}
}

// ComputeReport analyzes the adjacency structure. Components are counted
// with union-find rather than a full labeling pass since only sizes
// matter here.
func ComputeReport(adj *Adjacency, config *ReportConfig) *Report {
	totalNodes := adj.Index.Len()
	if totalNodes == 0 {
		return &Report{
			DegreeHistogram: defaultHistogram(),
		}
	}

	uf := NewUnionFind(totalNodes)
	for u, nbrs := range adj.Neighbors {
		for _, v := range nbrs {
			uf.Union(Node(u), v)
		}
	}

	components := uf.Components()
	numComponents := len(components)
	largest, smallest := 0, totalNodes
	for _, c := range components {
		if len(c) > largest {
			largest = len(c)
		}
		if len(c) < smallest {
			smallest = len(c)
		}
	}

	// Degree histogram (log-scale buckets)
	buckets := [7]int{}
	for n := 0; n < totalNodes; n++ {
		buckets[degreeBucket(adj.Degree(Node(n)))]++
	}
	histogram := defaultHistogram()
	for i := range histogram {
		histogram[i].Count = buckets[i]
	}

	// Hubs: degree > threshold
	var hubs []HubNode
	for n := 0; n < totalNodes; n++ {
		degree := adj.Degree(Node(n))
		if degree > config.HubThreshold {
			hubs = append(hubs, HubNode{
				ID:     adj.Index.Resolve(Node(n)),
				Degree: degree,
			})
		}
	}
	sort.Slice(hubs, func(i, j int) bool { return hubs[i].Degree > hubs[j].Degree })
	if len(hubs) > config.TopN {
		hubs = hubs[:config.TopN]
	}

	return &Report{
		TotalNodes:        totalNodes,
		TotalEdges:        adj.EdgeCount,
		NumComponents:     numComponents,
		LargestComponent:  largest,
		SmallestComponent: smallest,
		DegreeHistogram:   histogram,
		Hubs:              hubs,
	}
}

func defaultHistogram() []DegreeBucket {
	return []DegreeBucket{
		{Label: "0"}, {Label: "1"}, {Label: "2-3"},
		{Label: "4-7"}, {Label: "8-15"}, {Label: "16-31"}, {Label: "32+"},
	}
}

func degreeBucket(degree int) int {
	switch {
	case degree == 0:
		return 0
	case degree == 1:
		return 1
	case degree <= 3:
		return 2
	case degree <= 7:
		return 3
	case degree <= 15:
		return 4
	case degree <= 31:
		return 5
	default:
		return 6
	}
}
