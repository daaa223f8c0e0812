// ABOUTME: CLI command for deleting a day's sets.
// ABOUTME: Removes all sets of one exercise type for a date.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
)

var deleteDate string

var deleteCmd = &cobra.Command{
	Use:   "delete <exercise>",
	Short: "Delete a day's sets for an exercise",
	Long: `Delete every set of one bodyweight exercise recorded on a day.

Deleting a day that has no sets is not an error.

EXAMPLES:

  ironlog delete pushup                     # Clear today's pushups
  ironlog delete hang --date 2024-01-10     # Clear a past day`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidExerciseType(args[0]) {
			return fmt.Errorf("unknown exercise type: %s", args[0])
		}
		exerciseType := models.ExerciseType(args[0])

		date, err := resolveDateFlag(deleteDate)
		if err != nil {
			return err
		}

		day := loader.DeleteExercise(cmd.Context(), date, exerciseType)
		if day.Err != "" {
			return fmt.Errorf("failed to delete sets: %s", day.Err)
		}

		color.Green("✓ Deleted %s sets for %s", exerciseType, date)
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteDate, "date", "d", "", "day to clear (YYYY-MM-DD, defaults to today)")
	rootCmd.AddCommand(deleteCmd)
}
