package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/meltforce/setlog/internal/models"
	"github.com/meltforce/setlog/internal/stats"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add <exercise> <sets> <reps> <weight>",
	Aliases: []string{"a", "log"},
	Short:   "Log a workout set",
	Long: `Log a new workout set at the end of the log.

Examples:
  setlog add "Bench Press" 3 10 60
  setlog add Squat 3 5 100 --date 2024-01-01`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		rec, err := models.ParseRecord(date, args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}

		index, err := workout.Add(rec)
		if err != nil {
			return err
		}
		needSave = true

		color.Green("✓ Logged %s", rec.Exercise)
		fmt.Printf("  #%d  %s  %d×%d @ %.2f kg\n", index, rec.Date, rec.Sets, rec.Reps, rec.Weight)
		fmt.Printf("  Total sets logged: %d, total volume: %.2f kg\n",
			workout.Size(), stats.TotalVolume(workout.All()))
		return nil
	},
}

func init() {
	addCmd.Flags().String("date", "", "calendar date YYYY-MM-DD (defaults to today)")
	rootCmd.AddCommand(addCmd)
}
