package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/meltforce/setlog/internal/archive"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <db-path>",
	Short: "Export the log to a SQLite archive",
	Long: `Export the current log into a SQLite database for ad-hoc querying.
Each export is a new batch; previous batches stay queryable.

Example:
  setlog export workouts.db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := archive.Open(args[0])
		if err != nil {
			return err
		}
		defer db.Close()

		records := workout.All()
		res, err := db.Export(records)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if verify, _ := cmd.Flags().GetBool("verify"); verify {
			back, err := db.LatestBatch()
			if err != nil {
				return fmt.Errorf("verify failed: %w", err)
			}
			if len(back) != len(records) {
				return fmt.Errorf("verify failed: archive holds %d set(s), log has %d", len(back), len(records))
			}
			for i := range records {
				if back[i] != records[i] {
					return fmt.Errorf("verify failed: set #%d differs in archive", i)
				}
			}
		}

		color.Green("✓ Exported %d set(s) to %s", res.Inserted, args[0])
		fmt.Printf("  batch %s\n", res.BatchID)
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("verify", false, "read the batch back and compare it to the log")
	rootCmd.AddCommand(exportCmd)
}
