// ABOUTME: Exercise catalog and workout session models for gym tracking.
// ABOUTME: Catalog rows are seeded once and never mutated by the engine.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is one gym exercise definition from the seeded catalog.
type Exercise struct {
	ID               uuid.UUID
	Slug             string
	Name             string
	MuscleGroup      string
	DefaultIncrement float64 // kg added when progressing
}

// Routine is one seeded day-type (A/B/C/REST) with a display name.
type Routine struct {
	ID   uuid.UUID
	Code RoutineCode
	Name string
}

// Session is one day's gym routine instance. The pair (Date, RoutineCode)
// is unique; all gym sets recorded that day belong to it.
type Session struct {
	ID          uuid.UUID
	Date        string // YYYY-MM-DD
	RoutineCode RoutineCode
	CreatedAt   time.Time
}

// HistoryEntry is a derived, date-grouped view of the bodyweight sets
// recorded on one day for one exercise. Sets keep their stored set-index
// order. Not persisted.
type HistoryEntry struct {
	Date string
	Sets []BodyweightSet
}

// SessionHistoryEntry is the gym mirror of HistoryEntry: one session date
// with the ordered sets recorded for one exercise.
type SessionHistoryEntry struct {
	Date string
	Sets []GymSet
}
