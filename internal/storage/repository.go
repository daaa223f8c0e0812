// ABOUTME: Repository interface for the workout persistence engine.
// ABOUTME: Defines contract for set storage, history aggregation, and catalog reads.
package storage

import (
	"github.com/google/uuid"

	"github.com/harperreed/ironlog/internal/models"
)

// Repository defines the storage interface for workout data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Bodyweight set operations (keyed by date + exercise type)
	EntriesForDate(date string) ([]models.BodyweightSet, error)
	ReplaceEntries(date string, t models.ExerciseType, measures []models.Measure) error
	DeleteEntries(date string, t models.ExerciseType) error

	// History aggregation
	History(t models.ExerciseType, limit, offset int) ([]models.HistoryEntry, error)
	Latest(t models.ExerciseType) (*models.HistoryEntry, error)
	MaxValue(t models.ExerciseType) (*float64, error)

	// Exercise catalog (read-only, seeded at open)
	ListExercises() ([]*models.Exercise, error)
	ExerciseBySlug(slug string) (*models.Exercise, error)
	RoutineExercises(code models.RoutineCode) ([]*models.Exercise, error)

	// Gym sessions and entries
	GetOrCreateSession(date string, code models.RoutineCode) (*models.Session, error)
	SessionForDate(date string) (*models.Session, error)
	EntriesForSession(sessionID uuid.UUID) ([]models.GymSet, error)
	ReplaceSessionEntries(sessionID, exerciseID uuid.UUID, sets []models.GymSetInput) error
	DeleteSessionEntries(sessionID, exerciseID uuid.UUID) error
	ExerciseHistory(exerciseID uuid.UUID, limit, offset int) ([]models.SessionHistoryEntry, error)
	MaxWeight(exerciseID uuid.UUID) (*float64, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ImportJSON(data []byte) error

	// Lifecycle
	Close() error
}
