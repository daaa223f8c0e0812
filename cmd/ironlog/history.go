// ABOUTME: CLI command for browsing set history.
// ABOUTME: Prints date-grouped pages of sets for one exercise type.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
)

var (
	historyLimit  int
	historyOffset int
)

var historyCmd = &cobra.Command{
	Use:   "history <exercise>",
	Short: "Show set history for an exercise",
	Long: `Show recorded sets for one bodyweight exercise, newest day first.

Paging is by individual set rows, so a day sitting on a page boundary may
be split across two pages.

EXAMPLES:

  ironlog history pushup                # Last 20 sets
  ironlog history hang --limit 50       # More rows
  ironlog history stairs --offset 20    # Next page`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidExerciseType(args[0]) {
			return fmt.Errorf("unknown exercise type: %s", args[0])
		}
		exerciseType := models.ExerciseType(args[0])

		entries, err := repo.History(exerciseType, historyLimit, historyOffset)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(entries) == 0 {
			fmt.Printf("No %s sets recorded.\n", exerciseType)
			return nil
		}

		cfg := exerciseType.Config()
		fmt.Printf("%s (%s)\n\n", color.New(color.Bold).Sprint(cfg.Name), cfg.Unit)
		for _, entry := range entries {
			fmt.Printf("  %s  %s\n", entry.Date, joinSets(entry.Sets))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of set rows")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "number of set rows to skip")
	rootCmd.AddCommand(historyCmd)
}
