// ABOUTME: Bodyweight set CRUD with atomic replace-all writes.
// ABOUTME: Maps the Measure variant onto metric columns and back.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/harperreed/ironlog/internal/models"
)

// typeOrderCase builds the fixed exercise-type precedence used by day reads:
// stairs, pushup, handstand_pushup, hang, running. Derived from
// models.AllExerciseTypes so the two never drift apart.
func typeOrderCase() string {
	expr := "CASE exercise_type"
	for i, t := range models.AllExerciseTypes {
		expr += fmt.Sprintf(" WHEN '%s' THEN %d", t, i)
	}
	return expr + " ELSE 99 END"
}

const bodyweightColumns = "id, date, exercise_type, set_index, duration_seconds, reps, floors, distance_km, time_seconds, created_at"

// EntriesForDate retrieves all sets recorded on one day, across exercise
// types, in fixed type precedence then set_index order.
func (d *DB) EntriesForDate(date string) ([]models.BodyweightSet, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bodyweight_workout_entries
		WHERE date = ?
		ORDER BY %s, set_index ASC`, bodyweightColumns, typeOrderCase())

	rows, err := d.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("entries for date: %w", err)
	}
	defer rows.Close()

	return scanBodyweightSets(rows)
}

// ReplaceEntries atomically replaces all sets for (date, exercise type):
// prior sets are deleted and the new ones inserted inside one transaction,
// so a concurrent reader observes either the old complete list or the new
// one, never a mixture. Set indexes are assigned from slice position,
// 1-based. Passing an empty slice is equivalent to DeleteEntries.
func (d *DB) ReplaceEntries(date string, t models.ExerciseType, measures []models.Measure) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("replace entries: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		"DELETE FROM bodyweight_workout_entries WHERE date = ? AND exercise_type = ?",
		date, string(t)); err != nil {
		log.Error().Err(err).Str("date", date).Str("type", string(t)).Msg("replace entries: delete failed")
		return fmt.Errorf("replace entries: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bodyweight_workout_entries
			(id, date, exercise_type, set_index, duration_seconds, reps, floors, distance_km, time_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("replace entries: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
	for i, m := range measures {
		cols, err := measureColumns(m)
		if err != nil {
			log.Error().Err(err).Str("date", date).Str("type", string(t)).Int("set", i+1).Msg("replace entries rolled back")
			return fmt.Errorf("replace entries: set %d: %w", i+1, err)
		}
		_, err = stmt.Exec(
			uuid.New().String(), date, string(t), i+1,
			cols.durationSeconds, cols.reps, cols.floors, cols.distanceKm, cols.timeSeconds,
			now)
		if err != nil {
			log.Error().Err(err).Str("date", date).Str("type", string(t)).Int("set", i+1).Msg("replace entries rolled back")
			return fmt.Errorf("replace entries: set %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// DeleteEntries removes all sets for (date, exercise type). Deleting an
// absent key succeeds with zero rows affected.
func (d *DB) DeleteEntries(date string, t models.ExerciseType) error {
	_, err := d.db.Exec(
		"DELETE FROM bodyweight_workout_entries WHERE date = ? AND exercise_type = ?",
		date, string(t))
	if err != nil {
		log.Error().Err(err).Str("date", date).Str("type", string(t)).Msg("delete entries failed")
		return fmt.Errorf("delete entries: %w", err)
	}
	return nil
}

// metricRow is the flat nullable-column shape of one bodyweight entry.
type metricRow struct {
	durationSeconds sql.NullInt64
	reps            sql.NullInt64
	floors          sql.NullInt64
	distanceKm      sql.NullFloat64
	timeSeconds     sql.NullInt64
}

// measureColumns maps a Measure variant onto metric columns. Exactly the
// columns belonging to the variant's kind are populated; the rest stay NULL.
func measureColumns(m models.Measure) (metricRow, error) {
	var row metricRow
	switch v := m.(type) {
	case models.Duration:
		row.durationSeconds = sql.NullInt64{Int64: int64(v.Seconds), Valid: true}
	case models.RepCount:
		row.reps = sql.NullInt64{Int64: int64(v.Reps), Valid: true}
	case models.FloorCount:
		row.floors = sql.NullInt64{Int64: int64(v.Floors), Valid: true}
	case models.Run:
		row.distanceKm = sql.NullFloat64{Float64: v.DistanceKm, Valid: true}
		row.timeSeconds = sql.NullInt64{Int64: int64(v.TimeSeconds), Valid: true}
	case nil:
		return row, fmt.Errorf("nil measure")
	default:
		return row, fmt.Errorf("unknown measure kind %T", m)
	}
	return row, nil
}

// rowMeasure reconstructs the Measure variant from the stored columns,
// dispatching on the exercise type. Returns nil when the type's metric
// column holds no value.
func rowMeasure(t models.ExerciseType, row metricRow) models.Measure {
	switch t {
	case models.ExerciseHang:
		if row.durationSeconds.Valid {
			return models.Duration{Seconds: int(row.durationSeconds.Int64)}
		}
	case models.ExercisePushup, models.ExerciseHandstandPushup:
		if row.reps.Valid {
			return models.RepCount{Reps: int(row.reps.Int64)}
		}
	case models.ExerciseStairs:
		if row.floors.Valid {
			return models.FloorCount{Floors: int(row.floors.Int64)}
		}
	case models.ExerciseRunning:
		if row.distanceKm.Valid {
			r := models.Run{DistanceKm: row.distanceKm.Float64}
			if row.timeSeconds.Valid {
				r.TimeSeconds = int(row.timeSeconds.Int64)
			}
			return r
		}
	}
	return nil
}

// scanBodyweightSets scans rows selected with bodyweightColumns.
func scanBodyweightSets(rows *sql.Rows) ([]models.BodyweightSet, error) {
	var sets []models.BodyweightSet

	for rows.Next() {
		var s models.BodyweightSet
		var idStr, typeStr, createdAt string
		var row metricRow

		err := rows.Scan(&idStr, &s.Date, &typeStr, &s.SetIndex,
			&row.durationSeconds, &row.reps, &row.floors, &row.distanceKm, &row.timeSeconds,
			&createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan bodyweight set: %w", err)
		}

		s.ID, _ = uuid.Parse(idStr)
		s.Type = models.ExerciseType(typeStr)
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		s.Measure = rowMeasure(s.Type, row)

		sets = append(sets, s)
	}

	return sets, rows.Err()
}
