package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/meltforce/setlog/internal/stats"
	"github.com/spf13/cobra"
)

var volumeCmd = &cobra.Command{
	Use:     "volume",
	Aliases: []string{"vol", "summary"},
	Short:   "Show the performance summary",
	Long:    `Show total training volume (sets × reps × weight) with per-exercise and per-date breakdowns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records := workout.All()
		s := stats.Summarize(records)

		color.Green("Total volume: %.2f kg", s.TotalVolume)
		color.Yellow("Total sets logged: %d", s.TotalSets)
		fmt.Printf("Total reps: %d across %d exercise(s)\n", s.TotalReps, s.Exercises)

		if len(records) == 0 {
			return nil
		}

		fmt.Println("\nBy exercise:")
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, b := range stats.VolumeByExercise(records) {
			fmt.Fprintf(w, "  %s\t%d set(s)\t%.2f kg\n", b.Key, b.Sets, b.Volume)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		byDate, _ := cmd.Flags().GetBool("by-date")
		if byDate {
			fmt.Println("\nBy date:")
			w = tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			for _, b := range stats.VolumeByDate(records) {
				fmt.Fprintf(w, "  %s\t%d set(s)\t%.2f kg\n", b.Key, b.Sets, b.Volume)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	volumeCmd.Flags().Bool("by-date", false, "also break volume down per calendar date")
	rootCmd.AddCommand(volumeCmd)
}
