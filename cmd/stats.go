package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"entlink/unify/internal/csvio"
	"entlink/unify/internal/graph"
)

var (
	statsJSON         bool
	statsTopN         int
	statsHubThreshold int
)

var statsCmd = &cobra.Command{
	Use:   "stats <input>",
	Short: "Report graph shape: components, degree distribution, hubs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, err := csvio.ReadEdges(args[0])
		if err != nil {
			return err
		}
		adj, err := graph.Build(edges)
		if err != nil {
			return fmt.Errorf("building graph: %w", err)
		}

		config := graph.DefaultReportConfig()
		config.HubThreshold = statsHubThreshold
		config.TopN = statsTopN
		report := graph.ComputeReport(adj, config)

		if statsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		printReport(report)
		return nil
	},
}

func init() {
	defaults := graph.DefaultReportConfig()
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	statsCmd.Flags().IntVar(&statsTopN, "top-n", defaults.TopN, "Number of hubs to show")
	statsCmd.Flags().IntVar(&statsHubThreshold, "hub-threshold", defaults.HubThreshold, "Minimum degree to consider a node a hub")
	rootCmd.AddCommand(statsCmd)
}

func printReport(r *graph.Report) {
	fmt.Println("\n  GRAPH")
	fmt.Println("  ────────────────────────────────────────")
	fmt.Printf("  Nodes: %d  Edges: %d  Components: %d\n", r.TotalNodes, r.TotalEdges, r.NumComponents)
	if r.NumComponents > 0 {
		fmt.Printf("  Largest component: %d  Smallest: %d\n", r.LargestComponent, r.SmallestComponent)
	}

	fmt.Println("\n  Degree distribution:")
	for _, b := range r.DegreeHistogram {
		if b.Count > 0 {
			barWidth := int(math.Log2(float64(b.Count))) + 2
			if barWidth < 1 {
				barWidth = 1
			}
			fmt.Printf("    %5s: %4d  %s\n", b.Label, b.Count, strings.Repeat("=", barWidth))
		}
	}

	if len(r.Hubs) > 0 {
		fmt.Println("\n  Top hubs (degree > threshold):")
		for _, hub := range r.Hubs {
			fmt.Printf("    %s degree=%d\n", hub.ID, hub.Degree)
		}
	}
	fmt.Println()
}
