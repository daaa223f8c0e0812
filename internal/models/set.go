// ABOUTME: BodyweightSet model and the Measure tagged variant.
// ABOUTME: Each set carries exactly one measure kind for its exercise category.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Measure is the recorded value of one set. Exactly one concrete kind applies
// per exercise category: Duration for hang, RepCount for pushup and handstand
// pushup, FloorCount for stairs, Run for running. The interface is sealed so
// the storage layer can map each kind onto its metric columns exhaustively.
type Measure interface {
	isMeasure()
	// String renders the measure for display.
	String() string
}

// Duration is a time-under-tension measure in whole seconds.
type Duration struct {
	Seconds int
}

// RepCount is a repetition-count measure.
type RepCount struct {
	Reps int
}

// FloorCount is a floors-climbed measure.
type FloorCount struct {
	Floors int
}

// Run is a distance measure with an elapsed time.
type Run struct {
	DistanceKm  float64
	TimeSeconds int
}

func (Duration) isMeasure()   {}
func (RepCount) isMeasure()   {}
func (FloorCount) isMeasure() {}
func (Run) isMeasure()        {}

func (m Duration) String() string   { return fmt.Sprintf("%ds", m.Seconds) }
func (m RepCount) String() string   { return fmt.Sprintf("%d reps", m.Reps) }
func (m FloorCount) String() string { return fmt.Sprintf("%d floors", m.Floors) }

func (m Run) String() string {
	return fmt.Sprintf("%.2f km in %d:%02d", m.DistanceKm, m.TimeSeconds/60, m.TimeSeconds%60)
}

// BodyweightSet is one recorded set of a bodyweight exercise. The triple
// (Date, Type, SetIndex) is unique; SetIndex is the 1-based position of the
// set within that day and exercise. Measure is nil when the row carries no
// value for the type's metric column.
type BodyweightSet struct {
	ID        uuid.UUID
	Date      string // YYYY-MM-DD
	Type      ExerciseType
	SetIndex  int
	Measure   Measure
	CreatedAt time.Time
}

// GymSet is one recorded set inside a gym workout session. Weight and Reps
// are independently nullable; absent means the value was not recorded.
type GymSet struct {
	ID           uuid.UUID
	SessionID    uuid.UUID
	ExerciseID   uuid.UUID
	ExerciseName string
	SetIndex     int
	Weight       *float64
	Reps         *int
	CreatedAt    time.Time
}

// GymSetInput is the caller-supplied shape for one gym set in a replace-all
// write. Set indexes are assigned by the repository from slice position.
type GymSetInput struct {
	Weight *float64
	Reps   *int
}

// DateKey formats a time as the canonical YYYY-MM-DD storage key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey validates and normalizes a YYYY-MM-DD date key.
func ParseDateKey(s string) (string, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return DateKey(t), nil
}
