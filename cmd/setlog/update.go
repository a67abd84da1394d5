package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/meltforce/setlog/internal/models"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:     "update <index> <exercise> <sets> <reps> <weight>",
	Aliases: []string{"up"},
	Short:   "Replace the set at a position",
	Long: `Replace the set at the given position, keeping its position.
The date is kept unless --date is given.

Example:
  setlog update 2 "Bench Press" 3 8 62.5`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			current, err := workout.Get(index)
			if err != nil {
				return err
			}
			date = current.Date
		}

		rec, err := models.ParseRecord(date, args[1], args[2], args[3], args[4])
		if err != nil {
			return err
		}

		if err := workout.Update(index, rec); err != nil {
			return err
		}
		needSave = true

		color.Green("✓ Updated set #%d", index)
		fmt.Printf("  %s  %s  %d×%d @ %.2f kg\n", rec.Date, rec.Exercise, rec.Sets, rec.Reps, rec.Weight)
		return nil
	},
}

func init() {
	updateCmd.Flags().String("date", "", "calendar date YYYY-MM-DD (defaults to the existing date)")
	rootCmd.AddCommand(updateCmd)
}
