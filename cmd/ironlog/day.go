// ABOUTME: CLI command for the per-day composite view.
// ABOUTME: Shows today's sets, last session, and personal best per exercise.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/dayview"
	"github.com/harperreed/ironlog/internal/models"
)

var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show the workout view for a day",
	Long: `Show the full view for one day: for every tracked exercise, the sets
recorded that day, the most recent prior session, and the personal best.

EXAMPLES:

  ironlog day               # Today
  ironlog day 2024-01-10    # A specific day`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := ""
		if len(args) == 1 {
			date = args[0]
		}
		resolved, err := resolveDateFlag(date)
		if err != nil {
			return err
		}

		day := loader.Load(cmd.Context(), resolved)
		if day.Err != "" {
			return fmt.Errorf("failed to load day: %s", day.Err)
		}

		fmt.Printf("%s\n\n", color.New(color.Bold).Sprint(resolved))
		printDay(day)
		return nil
	},
}

func printDay(day *dayview.Day) {
	faint := color.New(color.Faint)
	for _, ex := range day.Exercises {
		header := fmt.Sprintf("%s (%s)", ex.Config.Name, ex.Config.Unit)
		if ex.Err != "" {
			fmt.Printf("%s  %s\n", padRight(header, 26), color.RedString("error: %s", ex.Err))
			continue
		}

		sets := "-"
		if len(ex.Sets) > 0 {
			sets = joinSets(ex.Sets)
		}

		extra := ""
		if ex.Best != nil {
			extra = faint.Sprintf("  best %.4g %s", *ex.Best, ex.Config.Unit)
		}
		if ex.LastSession != nil && !ex.HasSavedToday {
			extra += faint.Sprintf("  last %s", ex.LastSession.Date)
		}

		fmt.Printf("%s  %s%s\n", padRight(header, 26), sets, extra)
	}
}

// joinSets renders measures as a comma-separated list, "-" for a set whose
// metric column held no value.
func joinSets(sets []models.BodyweightSet) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		if s.Measure == nil {
			parts = append(parts, "-")
			continue
		}
		parts = append(parts, s.Measure.String())
	}
	return strings.Join(parts, ", ")
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.AddCommand(dayCmd)
}
