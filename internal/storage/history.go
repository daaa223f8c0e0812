// ABOUTME: History aggregation: date-grouped pages and personal bests.
// ABOUTME: Pagination is row-based; grouping happens after the page is cut.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/ironlog/internal/models"
)

// metricColumn is the static mapping from exercise type to the column its
// aggregates read. Not configurable per call.
func metricColumn(t models.ExerciseType) (string, error) {
	switch t {
	case models.ExerciseHang:
		return "duration_seconds", nil
	case models.ExercisePushup, models.ExerciseHandstandPushup:
		return "reps", nil
	case models.ExerciseStairs:
		return "floors", nil
	case models.ExerciseRunning:
		return "distance_km", nil
	default:
		return "", fmt.Errorf("unknown exercise type: %s", t)
	}
}

// History returns date-grouped entries for one exercise type, most recent
// date first, set_index ascending within each date.
//
// The limit/offset cursor counts ROWS, not dates: the Nth page is the Nth
// block of `limit` rows, grouped afterwards. A page boundary can therefore
// fall mid-date, leaving the last date of a page incomplete until the next
// page is fetched and merged. Callers needing date-aligned pages must request
// a limit that is a multiple of their sets-per-day. This is a documented
// contract, not a bug.
func (d *DB) History(t models.ExerciseType, limit, offset int) ([]models.HistoryEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bodyweight_workout_entries
		WHERE exercise_type = ?
		ORDER BY date DESC, set_index ASC
		LIMIT ? OFFSET ?`, bodyweightColumns)

	rows, err := d.db.Query(query, string(t), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	defer rows.Close()

	sets, err := scanBodyweightSets(rows)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	return groupByDate(sets), nil
}

// Latest returns the most recent history entry for the type, or nil when no
// sets have been recorded. Equivalent to History(t, 1, 0): the entry carries
// only the first row of its date (the row-pagination contract above).
func (d *DB) Latest(t models.ExerciseType) (*models.HistoryEntry, error) {
	entries, err := d.History(t, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// MaxValue returns the largest recorded value of the type's metric column
// across all history, or nil when no row carries a value.
func (d *DB) MaxValue(t models.ExerciseType) (*float64, error) {
	col, err := metricColumn(t)
	if err != nil {
		return nil, err
	}

	// col comes from the static mapping above, never from input.
	query := fmt.Sprintf(`
		SELECT MAX(%s) FROM bodyweight_workout_entries
		WHERE exercise_type = ? AND %s IS NOT NULL`, col, col)

	var max sql.NullFloat64
	if err := d.db.QueryRow(query, string(t)).Scan(&max); err != nil {
		return nil, fmt.Errorf("max value: %w", err)
	}
	if !max.Valid {
		return nil, nil
	}
	return &max.Float64, nil
}

// groupByDate folds flat rows into per-date entries, preserving the
// encounter order of distinct dates and of rows within each date.
func groupByDate(sets []models.BodyweightSet) []models.HistoryEntry {
	var entries []models.HistoryEntry
	index := make(map[string]int)

	for _, s := range sets {
		i, ok := index[s.Date]
		if !ok {
			i = len(entries)
			index[s.Date] = i
			entries = append(entries, models.HistoryEntry{Date: s.Date})
		}
		entries[i].Sets = append(entries[i].Sets, s)
	}

	return entries
}

// ExerciseHistory is the gym mirror of History: date-grouped pages of sets
// for one catalog exercise, joined through its sessions. The same row-based
// pagination contract applies.
func (d *DB) ExerciseHistory(exerciseID uuid.UUID, limit, offset int) ([]models.SessionHistoryEntry, error) {
	rows, err := d.db.Query(`
		SELECT e.id, e.session_id, e.exercise_id, e.set_index, e.weight, e.reps, e.created_at, s.date
		FROM workout_entries e
		JOIN workout_sessions s ON s.id = e.session_id
		WHERE e.exercise_id = ?
		ORDER BY s.date DESC, e.set_index ASC
		LIMIT ? OFFSET ?`, exerciseID.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("exercise history: %w", err)
	}
	defer rows.Close()

	var entries []models.SessionHistoryEntry
	index := make(map[string]int)

	for rows.Next() {
		var set models.GymSet
		var date string
		set, date, err = scanGymSetWithDate(rows)
		if err != nil {
			return nil, fmt.Errorf("exercise history: %w", err)
		}

		i, ok := index[date]
		if !ok {
			i = len(entries)
			index[date] = i
			entries = append(entries, models.SessionHistoryEntry{Date: date})
		}
		entries[i].Sets = append(entries[i].Sets, set)
	}

	return entries, rows.Err()
}

// MaxWeight returns the heaviest recorded weight for one catalog exercise
// across all sessions, or nil when no set carries a weight.
func (d *DB) MaxWeight(exerciseID uuid.UUID) (*float64, error) {
	var max sql.NullFloat64
	err := d.db.QueryRow(`
		SELECT MAX(weight) FROM workout_entries
		WHERE exercise_id = ? AND weight IS NOT NULL`, exerciseID.String()).Scan(&max)
	if err != nil {
		return nil, fmt.Errorf("max weight: %w", err)
	}
	if !max.Valid {
		return nil, nil
	}
	return &max.Float64, nil
}
