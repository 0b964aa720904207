package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"entlink/unify/internal/csvio"
	"entlink/unify/internal/db"
)

var importDB string

var importCmd = &cobra.Command{
	Use:   "import <input.csv>",
	Short: "Load identifier pairs from a CSV file into a SQLite edges table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, err := csvio.ReadEdges(args[0])
		if err != nil {
			return err
		}

		d, err := db.OpenDB(importDB)
		if err != nil {
			return err
		}
		defer d.Close()
		if err := d.InitSchema(); err != nil {
			return err
		}
		if err := d.InsertEdges(edges); err != nil {
			return fmt.Errorf("importing edges: %w", err)
		}

		fmt.Printf("Imported %d edges into %s\n", len(edges), importDB)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importDB, "db", "unify.db", "SQLite database to import into")
	rootCmd.AddCommand(importCmd)
}
