package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/meltforce/setlog/internal/stats"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the full set history",
	RunE: func(cmd *cobra.Command, args []string) error {
		records := workout.All()
		if len(records) == 0 {
			fmt.Println("No sets logged yet. Use 'setlog add' to log one.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tDATE\tEXERCISE\tSETS\tREPS\tWEIGHT (KG)")
		for i, r := range records {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%.2f\n", i, r.Date, r.Exercise, r.Sets, r.Reps, r.Weight)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		s := stats.Summarize(records)
		fmt.Println()
		color.Green("Total volume: %.2f kg", s.TotalVolume)
		color.Yellow("Total sets logged: %d", s.TotalSets)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
