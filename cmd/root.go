package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unify",
	Short: "Group related entity identifiers into connected components",
	Long: `unify reads pairs of related entity identifiers, builds the implied
undirected graph, and emits one row per distinct identifier annotated
with its connected component id for entity resolution and deduplication.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
