// ABOUTME: CLI command for logging bodyweight sets.
// ABOUTME: Parses per-category set arguments and replaces the day's sets.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
)

var logDate string

var logCmd = &cobra.Command{
	Use:   "log <exercise> <set>...",
	Short: "Log bodyweight sets for a day",
	Long: `Log all sets of one bodyweight exercise for a day.

Saving REPLACES everything previously recorded for that day and exercise,
atomically: re-run the command with the full set list to correct a typo.

SET FORMAT (per exercise):

  stairs            floors per set:          ironlog log stairs 12 10
  pushup            reps per set:            ironlog log pushup 10 12 8
  handstand_pushup  reps per set:            ironlog log handstand_pushup 3 3
  hang              seconds or M:SS:         ironlog log hang 45 1:10
  running           km/time per run:         ironlog log running 5.2/28:30

EXAMPLES:

  ironlog log pushup 10 12 8
  ironlog log hang 45 60 --date 2024-01-10
  ironlog log running 5.2/28:30 3.0/16:45`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidExerciseType(args[0]) {
			return fmt.Errorf("unknown exercise type: %s", args[0])
		}
		exerciseType := models.ExerciseType(args[0])

		date, err := resolveDateFlag(logDate)
		if err != nil {
			return err
		}

		measures, err := parseMeasures(exerciseType, args[1:])
		if err != nil {
			return err
		}

		day := loader.SaveExercise(cmd.Context(), date, exerciseType, measures)
		if day.Err != "" {
			return fmt.Errorf("failed to save sets: %s", day.Err)
		}

		color.Green("✓ Logged %d %s sets for %s", len(measures), exerciseType, date)
		printDay(day)
		return nil
	},
}

// parseMeasures parses the set arguments for one exercise category.
func parseMeasures(t models.ExerciseType, args []string) ([]models.Measure, error) {
	measures := make([]models.Measure, 0, len(args))
	for i, arg := range args {
		m, err := parseMeasure(t, arg)
		if err != nil {
			return nil, fmt.Errorf("set %d: %w", i+1, err)
		}
		measures = append(measures, m)
	}
	return measures, nil
}

func parseMeasure(t models.ExerciseType, arg string) (models.Measure, error) {
	switch t {
	case models.ExerciseStairs:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid floor count %q", arg)
		}
		return models.FloorCount{Floors: n}, nil
	case models.ExercisePushup, models.ExerciseHandstandPushup:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid rep count %q", arg)
		}
		return models.RepCount{Reps: n}, nil
	case models.ExerciseHang:
		secs, err := parseSeconds(arg)
		if err != nil {
			return nil, err
		}
		return models.Duration{Seconds: secs}, nil
	case models.ExerciseRunning:
		return parseRun(arg)
	default:
		return nil, fmt.Errorf("unknown exercise type: %s", t)
	}
}

// parseSeconds accepts plain seconds ("45") or minutes:seconds ("1:30").
func parseSeconds(arg string) (int, error) {
	if mins, secs, ok := strings.Cut(arg, ":"); ok {
		m, err1 := strconv.Atoi(mins)
		s, err2 := strconv.Atoi(secs)
		if err1 != nil || err2 != nil || s < 0 || s > 59 {
			return 0, fmt.Errorf("invalid time %q (want seconds or M:SS)", arg)
		}
		return m*60 + s, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (want seconds or M:SS)", arg)
	}
	return n, nil
}

// parseRun accepts "km/time", e.g. "5.2/28:30" or "5.2/1710".
func parseRun(arg string) (models.Measure, error) {
	dist, elapsed, ok := strings.Cut(arg, "/")
	if !ok {
		return nil, fmt.Errorf("invalid run %q (want km/time, e.g. 5.2/28:30)", arg)
	}
	km, err := strconv.ParseFloat(dist, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid distance %q", dist)
	}
	secs, err := parseSeconds(elapsed)
	if err != nil {
		return nil, err
	}
	return models.Run{DistanceKm: km, TimeSeconds: secs}, nil
}

// resolveDateFlag normalizes a --date value, defaulting to today.
func resolveDateFlag(date string) (string, error) {
	if date == "" {
		return models.DateKey(time.Now()), nil
	}
	return models.ParseDateKey(date)
}

func init() {
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "day to log (YYYY-MM-DD, defaults to today)")
	rootCmd.AddCommand(logCmd)
}
