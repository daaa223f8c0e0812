// ABOUTME: CLI command for the exercise catalog.
// ABOUTME: Lists seeded gym exercises and routine assignments.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
)

var exercisesRoutine string

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the gym exercise catalog",
	Long: `List the seeded gym exercises, or the exercises of one routine in
their prescribed order.

EXAMPLES:

  ironlog exercises               # Whole catalog, by slug
  ironlog exercises --routine A   # Routine A in position order`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var exercises []*models.Exercise
		var err error

		if exercisesRoutine != "" {
			if !models.IsValidRoutineCode(exercisesRoutine) {
				return fmt.Errorf("unknown routine: %s (use A, B, C or REST)", exercisesRoutine)
			}
			exercises, err = repo.RoutineExercises(models.RoutineCode(exercisesRoutine))
		} else {
			exercises, err = repo.ListExercises()
		}
		if err != nil {
			return fmt.Errorf("failed to load exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ex := range exercises {
			fmt.Printf("%s  %s  %s\n",
				padRight(ex.Slug, 22),
				padRight(ex.MuscleGroup, 12),
				faint.Sprintf("+%.4g kg", ex.DefaultIncrement))
		}
		return nil
	},
}

func init() {
	exercisesCmd.Flags().StringVarP(&exercisesRoutine, "routine", "r", "", "show one routine's exercises in order")
	rootCmd.AddCommand(exercisesCmd)
}
