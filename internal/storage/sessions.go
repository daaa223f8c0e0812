// ABOUTME: Gym workout session and entry CRUD with atomic replace-all writes.
// ABOUTME: Sessions are unique per (date, routine_code); entries belong to one session.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/harperreed/ironlog/internal/models"
)

// GetOrCreateSession returns the session for (date, routine code), creating
// it when absent. The code must already be normalized; the schedule label
// WEEKEND never reaches storage.
func (d *DB) GetOrCreateSession(date string, code models.RoutineCode) (*models.Session, error) {
	s, err := d.sessionByKey(date, code)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	session := &models.Session{
		ID:          uuid.New(),
		Date:        date,
		RoutineCode: code,
		CreatedAt:   time.Now(),
	}
	_, err = d.db.Exec(`
		INSERT INTO workout_sessions (id, date, routine_code, created_at)
		VALUES (?, ?, ?, ?)`,
		session.ID.String(), date, string(code), session.CreatedAt.Format(time.RFC3339))
	if err != nil {
		log.Error().Err(err).Str("date", date).Str("routine", string(code)).Msg("create session failed")
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// SessionForDate returns the session recorded for a day, or nil when none
// exists. A routine-code override can leave a date with more than one
// session; the most recently created one wins, with insertion order breaking
// created_at ties.
func (d *DB) SessionForDate(date string) (*models.Session, error) {
	row := d.db.QueryRow(`
		SELECT id, date, routine_code, created_at
		FROM workout_sessions WHERE date = ?
		ORDER BY created_at DESC, rowid DESC LIMIT 1`, date)
	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

func (d *DB) sessionByKey(date string, code models.RoutineCode) (*models.Session, error) {
	row := d.db.QueryRow(`
		SELECT id, date, routine_code, created_at
		FROM workout_sessions WHERE date = ? AND routine_code = ?`,
		date, string(code))
	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

// EntriesForSession retrieves all sets of a session, ordered by the routine's
// exercise position then set_index. Exercises outside the routine mapping
// sort last.
func (d *DB) EntriesForSession(sessionID uuid.UUID) ([]models.GymSet, error) {
	rows, err := d.db.Query(`
		SELECT e.id, e.session_id, e.exercise_id, ex.name, e.set_index, e.weight, e.reps, e.created_at
		FROM workout_entries e
		JOIN workout_sessions s ON s.id = e.session_id
		JOIN exercises ex ON ex.id = e.exercise_id
		LEFT JOIN routines r ON r.code = s.routine_code
		LEFT JOIN routine_exercises re ON re.routine_id = r.id AND re.exercise_id = e.exercise_id
		WHERE e.session_id = ?
		ORDER BY COALESCE(re.position, 99) ASC, e.set_index ASC`,
		sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("entries for session: %w", err)
	}
	defer rows.Close()

	var sets []models.GymSet
	for rows.Next() {
		set, err := scanGymSet(rows)
		if err != nil {
			return nil, fmt.Errorf("entries for session: %w", err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// ReplaceSessionEntries atomically replaces all sets of one exercise within a
// session: delete-then-insert inside a single transaction, same guarantee as
// the bodyweight ReplaceEntries. Set indexes are assigned from slice
// position, 1-based.
func (d *DB) ReplaceSessionEntries(sessionID, exerciseID uuid.UUID, sets []models.GymSetInput) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("replace session entries: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		"DELETE FROM workout_entries WHERE session_id = ? AND exercise_id = ?",
		sessionID.String(), exerciseID.String()); err != nil {
		log.Error().Err(err).Str("session", sessionID.String()).Str("exercise", exerciseID.String()).Msg("replace session entries: delete failed")
		return fmt.Errorf("replace session entries: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO workout_entries (id, session_id, exercise_id, set_index, weight, reps, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("replace session entries: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
	for i, set := range sets {
		_, err := stmt.Exec(
			uuid.New().String(), sessionID.String(), exerciseID.String(), i+1,
			set.Weight, set.Reps, now)
		if err != nil {
			log.Error().Err(err).Str("session", sessionID.String()).Str("exercise", exerciseID.String()).Int("set", i+1).Msg("replace session entries rolled back")
			return fmt.Errorf("replace session entries: set %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// DeleteSessionEntries removes all sets of one exercise within a session.
// Idempotent: an absent key succeeds with zero rows affected.
func (d *DB) DeleteSessionEntries(sessionID, exerciseID uuid.UUID) error {
	_, err := d.db.Exec(
		"DELETE FROM workout_entries WHERE session_id = ? AND exercise_id = ?",
		sessionID.String(), exerciseID.String())
	if err != nil {
		log.Error().Err(err).Str("session", sessionID.String()).Str("exercise", exerciseID.String()).Msg("delete session entries failed")
		return fmt.Errorf("delete session entries: %w", err)
	}
	return nil
}

func scanSession(row *sql.Row) (*models.Session, error) {
	var s models.Session
	var idStr, codeStr, createdAt string

	err := row.Scan(&idStr, &s.Date, &codeStr, &createdAt)
	if err != nil {
		return nil, err
	}

	s.ID, _ = uuid.Parse(idStr)
	s.RoutineCode = models.RoutineCode(codeStr)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &s, nil
}

func scanGymSet(rows *sql.Rows) (models.GymSet, error) {
	var set models.GymSet
	var idStr, sessionStr, exerciseStr, createdAt string
	var weight sql.NullFloat64
	var reps sql.NullInt64

	err := rows.Scan(&idStr, &sessionStr, &exerciseStr, &set.ExerciseName, &set.SetIndex, &weight, &reps, &createdAt)
	if err != nil {
		return set, err
	}

	set.ID, _ = uuid.Parse(idStr)
	set.SessionID, _ = uuid.Parse(sessionStr)
	set.ExerciseID, _ = uuid.Parse(exerciseStr)
	set.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if weight.Valid {
		set.Weight = &weight.Float64
	}
	if reps.Valid {
		r := int(reps.Int64)
		set.Reps = &r
	}
	return set, nil
}

func scanGymSetWithDate(rows *sql.Rows) (models.GymSet, string, error) {
	var set models.GymSet
	var idStr, sessionStr, exerciseStr, createdAt, date string
	var weight sql.NullFloat64
	var reps sql.NullInt64

	err := rows.Scan(&idStr, &sessionStr, &exerciseStr, &set.SetIndex, &weight, &reps, &createdAt, &date)
	if err != nil {
		return set, "", err
	}

	set.ID, _ = uuid.Parse(idStr)
	set.SessionID, _ = uuid.Parse(sessionStr)
	set.ExerciseID, _ = uuid.Parse(exerciseStr)
	set.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if weight.Valid {
		set.Weight = &weight.Float64
	}
	if reps.Valid {
		r := int(reps.Int64)
		set.Reps = &r
	}
	return set, date, nil
}
