// ABOUTME: CLI command for personal bests.
// ABOUTME: Shows the max recorded value per bodyweight exercise.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
)

var bestCmd = &cobra.Command{
	Use:   "best [exercise]",
	Short: "Show personal bests",
	Long: `Show the best single set recorded for each bodyweight exercise, or
for one exercise if named.

For running the best is the longest distance; for hang the longest
duration; others use the rep or floor count.

EXAMPLES:

  ironlog best           # All exercises
  ironlog best pushup    # One exercise`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		types := models.AllExerciseTypes
		if len(args) == 1 {
			if !models.IsValidExerciseType(args[0]) {
				return fmt.Errorf("unknown exercise type: %s", args[0])
			}
			types = []models.ExerciseType{models.ExerciseType(args[0])}
		}

		faint := color.New(color.Faint)
		for _, t := range types {
			best, err := repo.MaxValue(t)
			if err != nil {
				return fmt.Errorf("failed to load best for %s: %w", t, err)
			}

			cfg := t.Config()
			if best == nil {
				fmt.Printf("%s  %s\n", padRight(cfg.Name, 20), faint.Sprint("no sets recorded"))
				continue
			}
			fmt.Printf("%s  %s\n", padRight(cfg.Name, 20), color.GreenString("%.4g %s", *best, cfg.Unit))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bestCmd)
}
