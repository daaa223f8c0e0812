// ABOUTME: One-time seeding of the exercise and routine catalogs.
// ABOUTME: Empty-table detection, no version flag; safe to call on every open.
package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/ironlog/internal/models"
)

type seedExercise struct {
	slug        string
	name        string
	muscleGroup string
	increment   float64
}

type seedRoutine struct {
	code      models.RoutineCode
	name      string
	exercises []string // slugs, in position order
}

var catalogExercises = []seedExercise{
	{"squat", "Back Squat", "legs", 2.5},
	{"bench_press", "Bench Press", "chest", 2.5},
	{"barbell_row", "Barbell Row", "back", 2.5},
	{"deadlift", "Deadlift", "back", 5.0},
	{"overhead_press", "Overhead Press", "shoulders", 1.25},
	{"pull_up", "Pull-up", "back", 2.5},
	{"front_squat", "Front Squat", "legs", 2.5},
	{"incline_bench_press", "Incline Bench Press", "chest", 2.5},
	{"barbell_curl", "Barbell Curl", "arms", 1.25},
}

var catalogRoutines = []seedRoutine{
	{models.RoutineA, "Squat Day", []string{"squat", "bench_press", "barbell_row"}},
	{models.RoutineB, "Deadlift Day", []string{"deadlift", "overhead_press", "pull_up"}},
	{models.RoutineC, "Volume Day", []string{"front_squat", "incline_bench_press", "barbell_curl"}},
	{models.RoutineRest, "Rest Day", nil},
}

// seedCatalog populates the exercise and routine catalogs when they are
// empty. Presence is detected by row count, not a version flag, so a
// populated catalog is never touched again.
func (d *DB) seedCatalog() error {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM exercises").Scan(&count); err != nil {
		return fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exerciseIDs := make(map[string]string, len(catalogExercises))
	for _, e := range catalogExercises {
		id := uuid.New().String()
		exerciseIDs[e.slug] = id
		_, err := tx.Exec(`
			INSERT INTO exercises (id, slug, name, muscle_group, default_increment)
			VALUES (?, ?, ?, ?, ?)`,
			id, e.slug, e.name, e.muscleGroup, e.increment)
		if err != nil {
			return fmt.Errorf("seed exercise %s: %w", e.slug, err)
		}
	}

	for _, r := range catalogRoutines {
		routineID := uuid.New().String()
		_, err := tx.Exec(`
			INSERT INTO routines (id, code, name) VALUES (?, ?, ?)`,
			routineID, string(r.code), r.name)
		if err != nil {
			return fmt.Errorf("seed routine %s: %w", r.code, err)
		}
		for pos, slug := range r.exercises {
			_, err := tx.Exec(`
				INSERT INTO routine_exercises (routine_id, exercise_id, position)
				VALUES (?, ?, ?)`,
				routineID, exerciseIDs[slug], pos+1)
			if err != nil {
				return fmt.Errorf("seed routine exercise %s/%s: %w", r.code, slug, err)
			}
		}
	}

	return tx.Commit()
}
