// ABOUTME: Read-only accessors over the seeded exercise and routine catalogs.
// ABOUTME: The engine never mutates catalog rows after seeding.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/ironlog/internal/models"
)

const exerciseColumns = "id, slug, name, muscle_group, default_increment"

// ListExercises returns the full exercise catalog, ordered by slug.
func (d *DB) ListExercises() ([]*models.Exercise, error) {
	rows, err := d.db.Query(fmt.Sprintf(
		"SELECT %s FROM exercises ORDER BY slug ASC", exerciseColumns))
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// ExerciseBySlug returns the catalog exercise with the given stable key.
func (d *DB) ExerciseBySlug(slug string) (*models.Exercise, error) {
	row := d.db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM exercises WHERE slug = ?", exerciseColumns), slug)

	e, err := scanExercise(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("unknown exercise: %s", slug)
		}
		return nil, fmt.Errorf("exercise by slug: %w", err)
	}
	return e, nil
}

// RoutineExercises returns the exercises of one routine in position order.
// A routine without exercises (REST) yields an empty list.
func (d *DB) RoutineExercises(code models.RoutineCode) ([]*models.Exercise, error) {
	rows, err := d.db.Query(`
		SELECT e.id, e.slug, e.name, e.muscle_group, e.default_increment
		FROM routine_exercises re
		JOIN routines r ON r.id = re.routine_id
		JOIN exercises e ON e.id = re.exercise_id
		WHERE r.code = ?
		ORDER BY re.position ASC`, string(code))
	if err != nil {
		return nil, fmt.Errorf("routine exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

func scanExercise(row *sql.Row) (*models.Exercise, error) {
	var e models.Exercise
	var idStr string
	if err := row.Scan(&idStr, &e.Slug, &e.Name, &e.MuscleGroup, &e.DefaultIncrement); err != nil {
		return nil, err
	}
	e.ID, _ = uuid.Parse(idStr)
	return &e, nil
}

func scanExercises(rows *sql.Rows) ([]*models.Exercise, error) {
	var exercises []*models.Exercise
	for rows.Next() {
		var e models.Exercise
		var idStr string
		if err := rows.Scan(&idStr, &e.Slug, &e.Name, &e.MuscleGroup, &e.DefaultIncrement); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		e.ID, _ = uuid.Parse(idStr)
		exercises = append(exercises, &e)
	}
	return exercises, rows.Err()
}
