package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/meltforce/setlog/internal/store"
	"github.com/spf13/cobra"
)

var (
	logPath  string
	workout  *store.Store
	needSave bool
)

var rootCmd = &cobra.Command{
	Use:   "setlog",
	Short: "Personal strength & volume log",
	Long: `Log workout sets and track total training volume.

Each entry records date, exercise, sets, reps, and weight; volume is
sets × reps × weight summed across the log. Entries are addressed by
their position in the log (see 'setlog list').

Examples:
  setlog add "Bench Press" 3 10 60
  setlog add Squat 3 5 100 --date 2024-01-01
  setlog list
  setlog volume
  setlog update 2 "Bench Press" 3 8 62.5
  setlog rm 2`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if env := os.Getenv("SETLOG_LOG_PATH"); env != "" && !cmd.Flags().Changed("log") {
			logPath = env
		}
		var skipped int
		var err error
		workout, skipped, err = store.Load(logPath)
		if err != nil {
			return fmt.Errorf("failed to load workout log: %w", err)
		}
		if skipped > 0 {
			color.Yellow("! Skipped %d malformed row(s) in %s", skipped, logPath)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if !needSave {
			return nil
		}
		if err := store.Save(workout, logPath); err != nil {
			return fmt.Errorf("failed to save workout log: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "workout_log.csv", "path to the workout log CSV file")
}
