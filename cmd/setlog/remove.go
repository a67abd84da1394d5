package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm <index>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete the set at a position",
	Long: `Delete the set at the given position. Every later entry shifts
down one position, so re-check indices with 'setlog list' before
deleting again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}

		rec, err := workout.Get(index)
		if err != nil {
			return err
		}
		if err := workout.Delete(index); err != nil {
			return err
		}
		needSave = true

		color.Green("✓ Deleted set #%d (%s %d×%d @ %.2f kg)", index, rec.Exercise, rec.Sets, rec.Reps, rec.Weight)
		fmt.Printf("  %d set(s) remain\n", workout.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
