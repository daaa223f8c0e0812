// ABOUTME: ExerciseType enum and per-type display configuration.
// ABOUTME: Defines the five tracked bodyweight exercise categories.
package models

// ExerciseType identifies one of the tracked bodyweight exercises.
type ExerciseType string

const (
	ExerciseStairs          ExerciseType = "stairs"
	ExercisePushup          ExerciseType = "pushup"
	ExerciseHandstandPushup ExerciseType = "handstand_pushup"
	ExerciseHang            ExerciseType = "hang"
	ExerciseRunning         ExerciseType = "running"
)

// AllExerciseTypes lists every tracked type in display precedence order.
// Day views and EntriesForDate render exercises in exactly this order,
// regardless of insertion order.
var AllExerciseTypes = []ExerciseType{
	ExerciseStairs,
	ExercisePushup,
	ExerciseHandstandPushup,
	ExerciseHang,
	ExerciseRunning,
}

// IsValidExerciseType checks if a string is a valid exercise type.
func IsValidExerciseType(s string) bool {
	for _, t := range AllExerciseTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// TypeConfig holds the static display configuration for an exercise type.
type TypeConfig struct {
	Name        string
	Unit        string
	Description string
}

// TypeConfigs maps exercise types to their display configuration.
var TypeConfigs = map[ExerciseType]TypeConfig{
	ExerciseStairs: {
		Name:        "Stairs",
		Unit:        "floors",
		Description: "Flights of stairs climbed in one go",
	},
	ExercisePushup: {
		Name:        "Pushups",
		Unit:        "reps",
		Description: "Standard pushups, full range of motion",
	},
	ExerciseHandstandPushup: {
		Name:        "Handstand Pushups",
		Unit:        "reps",
		Description: "Wall-supported handstand pushups",
	},
	ExerciseHang: {
		Name:        "Dead Hang",
		Unit:        "seconds",
		Description: "Passive hang from a pull-up bar",
	},
	ExerciseRunning: {
		Name:        "Running",
		Unit:        "km",
		Description: "Outdoor run, distance and time",
	},
}

// Config returns the display configuration for the type.
func (t ExerciseType) Config() TypeConfig {
	return TypeConfigs[t]
}
