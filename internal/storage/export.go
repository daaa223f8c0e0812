// ABOUTME: Export and import functionality for workout data.
// ABOUTME: Supports JSON and YAML, portable across databases via exercise slugs.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/ironlog/internal/models"
)

// ExportData represents the full export format for workout data. Gym sets
// reference exercises by slug rather than row ID so an export can be
// imported into a database whose seeded catalog carries different IDs.
type ExportData struct {
	Version        string                  `json:"version" yaml:"version"`
	ExportedAt     time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool           string                  `json:"tool" yaml:"tool"`
	Exercises      []ExportedExercise      `json:"exercises" yaml:"exercises"`
	Sessions       []ExportedSession       `json:"sessions" yaml:"sessions"`
	BodyweightSets []ExportedBodyweightSet `json:"bodyweight_sets" yaml:"bodyweight_sets"`
}

// ExportedExercise is a catalog row snapshot.
type ExportedExercise struct {
	Slug             string  `json:"slug" yaml:"slug"`
	Name             string  `json:"name" yaml:"name"`
	MuscleGroup      string  `json:"muscle_group" yaml:"muscle_group"`
	DefaultIncrement float64 `json:"default_increment" yaml:"default_increment"`
}

// ExportedSession is one gym session with its sets.
type ExportedSession struct {
	Date        string           `json:"date" yaml:"date"`
	RoutineCode string           `json:"routine_code" yaml:"routine_code"`
	Sets        []ExportedGymSet `json:"sets" yaml:"sets"`
}

// ExportedGymSet is one gym set, referencing its exercise by slug.
type ExportedGymSet struct {
	Exercise string   `json:"exercise" yaml:"exercise"`
	SetIndex int      `json:"set_index" yaml:"set_index"`
	Weight   *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Reps     *int     `json:"reps,omitempty" yaml:"reps,omitempty"`
}

// ExportedBodyweightSet is one bodyweight set in flat column form.
type ExportedBodyweightSet struct {
	Date            string   `json:"date" yaml:"date"`
	ExerciseType    string   `json:"exercise_type" yaml:"exercise_type"`
	SetIndex        int      `json:"set_index" yaml:"set_index"`
	DurationSeconds *int     `json:"duration_seconds,omitempty" yaml:"duration_seconds,omitempty"`
	Reps            *int     `json:"reps,omitempty" yaml:"reps,omitempty"`
	Floors          *int     `json:"floors,omitempty" yaml:"floors,omitempty"`
	DistanceKm      *float64 `json:"distance_km,omitempty" yaml:"distance_km,omitempty"`
	TimeSeconds     *int     `json:"time_seconds,omitempty" yaml:"time_seconds,omitempty"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	exercises, err := d.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}

	sessions, err := d.exportSessions()
	if err != nil {
		return nil, err
	}

	bodyweight, err := d.exportBodyweightSets()
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		Version:        "1.0",
		ExportedAt:     time.Now(),
		Tool:           "ironlog",
		Sessions:       sessions,
		BodyweightSets: bodyweight,
	}
	for _, e := range exercises {
		data.Exercises = append(data.Exercises, ExportedExercise{
			Slug:             e.Slug,
			Name:             e.Name,
			MuscleGroup:      e.MuscleGroup,
			DefaultIncrement: e.DefaultIncrement,
		})
	}
	return data, nil
}

func (d *DB) exportSessions() ([]ExportedSession, error) {
	rows, err := d.db.Query(`
		SELECT s.date, s.routine_code, e.slug, w.set_index, w.weight, w.reps
		FROM workout_sessions s
		LEFT JOIN workout_entries w ON w.session_id = s.id
		LEFT JOIN exercises e ON e.id = w.exercise_id
		ORDER BY s.date ASC, w.set_index ASC`)
	if err != nil {
		return nil, fmt.Errorf("export sessions: %w", err)
	}
	defer rows.Close()

	var sessions []ExportedSession
	index := make(map[string]int)

	for rows.Next() {
		var date, code string
		var slug sql.NullString
		var setIndex sql.NullInt64
		var weight sql.NullFloat64
		var reps sql.NullInt64
		if err := rows.Scan(&date, &code, &slug, &setIndex, &weight, &reps); err != nil {
			return nil, fmt.Errorf("export sessions: %w", err)
		}

		key := date + "/" + code
		i, ok := index[key]
		if !ok {
			i = len(sessions)
			index[key] = i
			sessions = append(sessions, ExportedSession{Date: date, RoutineCode: code})
		}

		if !slug.Valid {
			continue // session without entries
		}
		set := ExportedGymSet{Exercise: slug.String, SetIndex: int(setIndex.Int64)}
		if weight.Valid {
			set.Weight = &weight.Float64
		}
		if reps.Valid {
			r := int(reps.Int64)
			set.Reps = &r
		}
		sessions[i].Sets = append(sessions[i].Sets, set)
	}

	return sessions, rows.Err()
}

func (d *DB) exportBodyweightSets() ([]ExportedBodyweightSet, error) {
	rows, err := d.db.Query(`
		SELECT date, exercise_type, set_index, duration_seconds, reps, floors, distance_km, time_seconds
		FROM bodyweight_workout_entries
		ORDER BY date ASC, exercise_type ASC, set_index ASC`)
	if err != nil {
		return nil, fmt.Errorf("export bodyweight sets: %w", err)
	}
	defer rows.Close()

	var sets []ExportedBodyweightSet
	for rows.Next() {
		var s ExportedBodyweightSet
		var row metricRow
		if err := rows.Scan(&s.Date, &s.ExerciseType, &s.SetIndex,
			&row.durationSeconds, &row.reps, &row.floors, &row.distanceKm, &row.timeSeconds); err != nil {
			return nil, fmt.Errorf("export bodyweight sets: %w", err)
		}
		if row.durationSeconds.Valid {
			v := int(row.durationSeconds.Int64)
			s.DurationSeconds = &v
		}
		if row.reps.Valid {
			v := int(row.reps.Int64)
			s.Reps = &v
		}
		if row.floors.Valid {
			v := int(row.floors.Int64)
			s.Floors = &v
		}
		if row.distanceKm.Valid {
			s.DistanceKm = &row.distanceKm.Float64
		}
		if row.timeSeconds.Valid {
			v := int(row.timeSeconds.Int64)
			s.TimeSeconds = &v
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// ImportData imports data from an export file. Catalog rows are matched by
// slug; unknown slugs are added to the catalog. Sets are written through the
// same replace-all path as live saves, so all uniqueness and atomicity
// guarantees hold.
func (d *DB) ImportData(data *ExportData) error {
	for _, e := range data.Exercises {
		if _, err := d.ExerciseBySlug(e.Slug); err == nil {
			continue
		}
		if err := d.insertExercise(e); err != nil {
			return fmt.Errorf("import exercise %s: %w", e.Slug, err)
		}
	}

	for _, s := range data.Sessions {
		if err := d.importSession(s); err != nil {
			return fmt.Errorf("import session %s/%s: %w", s.Date, s.RoutineCode, err)
		}
	}

	byKey := make(map[[2]string][]models.Measure)
	var keys [][2]string
	for _, s := range data.BodyweightSets {
		m := measureFromExported(s)
		if m == nil {
			continue // row carried no value
		}
		k := [2]string{s.Date, s.ExerciseType}
		if _, ok := byKey[k]; !ok {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], m)
	}
	for _, k := range keys {
		if err := d.ReplaceEntries(k[0], models.ExerciseType(k[1]), byKey[k]); err != nil {
			return fmt.Errorf("import bodyweight sets %s/%s: %w", k[0], k[1], err)
		}
	}

	return nil
}

func (d *DB) insertExercise(e ExportedExercise) error {
	_, err := d.db.Exec(`
		INSERT INTO exercises (id, slug, name, muscle_group, default_increment)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), e.Slug, e.Name, e.MuscleGroup, e.DefaultIncrement)
	return err
}

func (d *DB) importSession(s ExportedSession) error {
	session, err := d.GetOrCreateSession(s.Date, models.RoutineCode(s.RoutineCode))
	if err != nil {
		return err
	}

	bySlug := make(map[string][]models.GymSetInput)
	var slugs []string
	for _, set := range s.Sets {
		if _, ok := bySlug[set.Exercise]; !ok {
			slugs = append(slugs, set.Exercise)
		}
		bySlug[set.Exercise] = append(bySlug[set.Exercise], models.GymSetInput{
			Weight: set.Weight,
			Reps:   set.Reps,
		})
	}

	for _, slug := range slugs {
		exercise, err := d.ExerciseBySlug(slug)
		if err != nil {
			return err
		}
		if err := d.ReplaceSessionEntries(session.ID, exercise.ID, bySlug[slug]); err != nil {
			return err
		}
	}
	return nil
}

func measureFromExported(s ExportedBodyweightSet) models.Measure {
	var row metricRow
	if s.DurationSeconds != nil {
		row.durationSeconds = sql.NullInt64{Int64: int64(*s.DurationSeconds), Valid: true}
	}
	if s.Reps != nil {
		row.reps = sql.NullInt64{Int64: int64(*s.Reps), Valid: true}
	}
	if s.Floors != nil {
		row.floors = sql.NullInt64{Int64: int64(*s.Floors), Valid: true}
	}
	if s.DistanceKm != nil {
		row.distanceKm = sql.NullFloat64{Float64: *s.DistanceKm, Valid: true}
	}
	if s.TimeSeconds != nil {
		row.timeSeconds = sql.NullInt64{Int64: int64(*s.TimeSeconds), Valid: true}
	}
	return rowMeasure(models.ExerciseType(s.ExerciseType), row)
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from a JSON export produced by ExportJSON.
func (d *DB) ImportJSON(data []byte) error {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return fmt.Errorf("invalid export file: %w", err)
	}
	return d.ImportData(&export)
}
