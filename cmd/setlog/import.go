package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/meltforce/setlog/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <csv-path>",
	Short: "Append sets from another log file",
	Long: `Read another workout log in the same CSV format and append its
sets to the end of this log. Malformed rows in the source are skipped.

Example:
  setlog import old_log.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, skipped, err := store.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		imported := 0
		for _, rec := range src.All() {
			if _, err := workout.Add(rec); err != nil {
				return err
			}
			imported++
		}
		if imported > 0 {
			needSave = true
		}

		color.Green("✓ Imported %d set(s) from %s", imported, args[0])
		if skipped > 0 {
			color.Yellow("! Skipped %d malformed row(s)", skipped)
		}
		fmt.Printf("  Total sets logged: %d\n", workout.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
