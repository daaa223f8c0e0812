// ABOUTME: CLI commands for gym sessions.
// ABOUTME: Logs weighted sets, shows sessions, and browses per-exercise history.
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

var (
	sessionDate    string
	sessionRoutine string
	sessionLimit   int
	sessionOffset  int
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage gym sessions",
	Long: `Log and inspect gym sessions.

A session is one gym visit: a date plus a routine code (A, B, C or REST).
The weekly schedule maps Monday to A, Wednesday to B and Friday to C;
logging on another day records a REST session unless --routine is given.`,
}

var sessionLogCmd = &cobra.Command{
	Use:   "log <exercise> <set>...",
	Short: "Log weighted sets for a session",
	Long: `Log all sets of one gym exercise for a session.

Saving REPLACES everything previously recorded for that session and
exercise, atomically.

SET FORMAT:

  WEIGHTxREPS    80x5 means 80 kg for 5 reps

EXAMPLES:

  ironlog session log squat 80x5 80x5 82.5x3
  ironlog session log deadlift 120x5 --date 2024-01-10
  ironlog session log bench_press 60x8 --routine B`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise, err := repo.ExerciseBySlug(args[0])
		if err != nil {
			return err
		}

		date, err := resolveDateFlag(sessionDate)
		if err != nil {
			return err
		}

		code, err := resolveRoutine(date, sessionRoutine)
		if err != nil {
			return err
		}

		sets := make([]models.GymSetInput, 0, len(args)-1)
		for i, arg := range args[1:] {
			set, err := parseGymSet(arg)
			if err != nil {
				return fmt.Errorf("set %d: %w", i+1, err)
			}
			sets = append(sets, set)
		}

		session, err := repo.GetOrCreateSession(date, code)
		if err != nil {
			return fmt.Errorf("failed to open session: %w", err)
		}
		if err := repo.ReplaceSessionEntries(session.ID, exercise.ID, sets); err != nil {
			return fmt.Errorf("failed to save sets: %w", err)
		}

		color.Green("✓ Logged %d %s sets for %s (routine %s)", len(sets), exercise.Slug, date, code)
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a session's sets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := ""
		if len(args) == 1 {
			date = args[0]
		}
		resolved, err := resolveDateFlag(date)
		if err != nil {
			return err
		}

		session, err := repo.SessionForDate(resolved)
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if session == nil {
			fmt.Printf("No session for %s.\n", resolved)
			return nil
		}

		entries, err := repo.EntriesForSession(session.ID)
		if err != nil {
			return fmt.Errorf("failed to load sets: %w", err)
		}

		fmt.Printf("%s  routine %s\n\n", color.New(color.Bold).Sprint(resolved), session.RoutineCode)
		printGymSets(entries)
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <exercise>",
	Short: "Delete a session's sets for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise, err := repo.ExerciseBySlug(args[0])
		if err != nil {
			return err
		}

		date, err := resolveDateFlag(sessionDate)
		if err != nil {
			return err
		}

		session, err := repo.SessionForDate(date)
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if session == nil {
			fmt.Printf("No session for %s.\n", date)
			return nil
		}

		if err := repo.DeleteSessionEntries(session.ID, exercise.ID); err != nil {
			return fmt.Errorf("failed to delete sets: %w", err)
		}

		color.Green("✓ Deleted %s sets for %s", exercise.Slug, date)
		return nil
	},
}

var sessionHistoryCmd = &cobra.Command{
	Use:   "history <exercise>",
	Short: "Show weighted-set history for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise, err := repo.ExerciseBySlug(args[0])
		if err != nil {
			return err
		}

		entries, err := repo.ExerciseHistory(exercise.ID, sessionLimit, sessionOffset)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No %s sets recorded.\n", exercise.Slug)
			return nil
		}

		best, err := repo.MaxWeight(exercise.ID)
		if err != nil {
			return fmt.Errorf("failed to load best: %w", err)
		}

		fmt.Printf("%s", color.New(color.Bold).Sprint(exercise.Name))
		if best != nil {
			fmt.Printf("  %s", color.New(color.Faint).Sprintf("best %.4g kg", *best))
		}
		fmt.Printf("\n\n")

		for _, entry := range entries {
			fmt.Printf("  %s  %s\n", entry.Date, joinGymSets(entry.Sets))
		}
		return nil
	},
}

// parseGymSet parses "WEIGHTxREPS", e.g. "80x5" or "82.5x3".
func parseGymSet(arg string) (models.GymSetInput, error) {
	weight, reps, ok := strings.Cut(arg, "x")
	if !ok {
		return models.GymSetInput{}, fmt.Errorf("invalid set %q (want WEIGHTxREPS, e.g. 80x5)", arg)
	}
	w, err := strconv.ParseFloat(weight, 64)
	if err != nil || w < 0 {
		return models.GymSetInput{}, fmt.Errorf("invalid weight %q", weight)
	}
	r, err := strconv.Atoi(reps)
	if err != nil || r <= 0 {
		return models.GymSetInput{}, fmt.Errorf("invalid rep count %q", reps)
	}
	return models.GymSetInput{Weight: &w, Reps: &r}, nil
}

// resolveRoutine picks the routine code for a date: an explicit flag wins,
// otherwise the weekly schedule decides.
func resolveRoutine(date, flag string) (models.RoutineCode, error) {
	if flag != "" {
		upper := strings.ToUpper(flag)
		if !models.IsValidRoutineCode(upper) {
			return "", fmt.Errorf("unknown routine: %s (use A, B, C or REST)", flag)
		}
		return models.RoutineCode(upper), nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date: %s", date)
	}
	return models.RoutineForDate(t).Normalize(), nil
}

func printGymSets(sets []models.GymSet) {
	grouped := make(map[string][]models.GymSet)
	order := []string{}
	names := map[string]string{}
	for _, s := range sets {
		key := s.ExerciseID.String()
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
			names[key] = s.ExerciseName
		}
		grouped[key] = append(grouped[key], s)
	}

	if len(order) == 0 {
		fmt.Println("  no sets recorded")
		return
	}
	for _, key := range order {
		fmt.Printf("  %s  %s\n", padRight(names[key], 22), joinGymSets(grouped[key]))
	}
}

func joinGymSets(sets []models.GymSet) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		switch {
		case s.Weight != nil && s.Reps != nil:
			parts = append(parts, fmt.Sprintf("%.4gx%d", *s.Weight, *s.Reps))
		case s.Reps != nil:
			parts = append(parts, fmt.Sprintf("x%d", *s.Reps))
		default:
			parts = append(parts, "-")
		}
	}
	return strings.Join(parts, " ")
}

func init() {
	sessionLogCmd.Flags().StringVarP(&sessionDate, "date", "d", "", "session date (YYYY-MM-DD, defaults to today)")
	sessionLogCmd.Flags().StringVarP(&sessionRoutine, "routine", "r", "", "routine code (A, B, C or REST)")
	sessionDeleteCmd.Flags().StringVarP(&sessionDate, "date", "d", "", "session date (YYYY-MM-DD, defaults to today)")
	sessionHistoryCmd.Flags().IntVar(&sessionLimit, "limit", 20, "maximum number of set rows")
	sessionHistoryCmd.Flags().IntVar(&sessionOffset, "offset", 0, "number of set rows to skip")

	sessionCmd.AddCommand(sessionLogCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	sessionCmd.AddCommand(sessionHistoryCmd)
	rootCmd.AddCommand(sessionCmd)
}
