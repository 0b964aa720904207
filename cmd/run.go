package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"entlink/unify/internal/csvio"
	"entlink/unify/internal/db"
	"entlink/unify/internal/graph"
	"entlink/unify/internal/resolve"
)

var (
	runOutput string
	runFromDB bool
	runSaveDB string
	runQuiet  bool
)

var runCmd = &cobra.Command{
	Use:   "run <input>",
	Short: "Resolve identifier pairs into components and write output rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		var edges []graph.Edge
		if runFromDB {
			d, err := db.OpenDB(input)
			if err != nil {
				return err
			}
			defer d.Close()
			if !runQuiet {
				fmt.Printf("Reading input data from %s\n", input)
			}
			edges, err = d.ImportEdges()
			if err != nil {
				return err
			}
		} else {
			if !runQuiet {
				fmt.Printf("Reading input data from %s\n", input)
			}
			var err error
			edges, err = csvio.ReadEdges(input)
			if err != nil {
				return err
			}
		}

		if !runQuiet {
			fmt.Println("Finding connected components...")
		}
		result, err := resolve.Run(edges)
		if err != nil {
			return err
		}
		if !runQuiet {
			fmt.Printf("Elapsed time finding connected components: %.2f seconds\n", result.Elapsed.Seconds())
			fmt.Printf("Found %d connected components\n", result.ComponentCount)
		}

		if err := csvio.WriteRecords(runOutput, result.Records); err != nil {
			return err
		}
		if !runQuiet {
			fmt.Printf("Output saved to %s\n", runOutput)
		}

		if runSaveDB != "" {
			d, err := db.OpenDB(runSaveDB)
			if err != nil {
				return err
			}
			defer d.Close()
			if err := d.InitSchema(); err != nil {
				return err
			}
			runID, err := d.SaveRun(result)
			if err != nil {
				return fmt.Errorf("saving run: %w", err)
			}
			if !runQuiet {
				fmt.Printf("Run %d saved to %s\n", runID, runSaveDB)
			}
		}

		if !runQuiet {
			fmt.Println("Connected components processing completed successfully")
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "connected_components_output.csv", "Output CSV file path")
	runCmd.Flags().BoolVar(&runFromDB, "from-db", false, "Treat <input> as a SQLite database and read its edges table")
	runCmd.Flags().StringVar(&runSaveDB, "save-db", "", "Also persist the run and its records to this SQLite database")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.AddCommand(runCmd)
}
