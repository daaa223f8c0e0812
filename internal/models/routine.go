// ABOUTME: RoutineCode enum and the calendar-date routine schedule.
// ABOUTME: The schedule is caller-side configuration, not engine data.
package models

import "time"

// RoutineCode labels which day-type a gym session belongs to.
type RoutineCode string

const (
	RoutineA       RoutineCode = "A"
	RoutineB       RoutineCode = "B"
	RoutineC       RoutineCode = "C"
	RoutineRest    RoutineCode = "REST"
	RoutineWeekend RoutineCode = "WEEKEND"
)

// AllRoutineCodes lists the codes stored in the routine catalog. WEEKEND is
// a schedule-only label and is normalized away before it reaches storage.
var AllRoutineCodes = []RoutineCode{RoutineA, RoutineB, RoutineC, RoutineRest}

// IsValidRoutineCode checks if a string is a storable routine code.
func IsValidRoutineCode(s string) bool {
	for _, c := range AllRoutineCodes {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Normalize maps the schedule-only WEEKEND label to REST. The storage layer
// only ever sees normalized codes.
func (c RoutineCode) Normalize() RoutineCode {
	if c == RoutineWeekend {
		return RoutineRest
	}
	return c
}

// RoutineForDate returns the scheduled routine for a calendar date:
// Monday A, Wednesday B, Friday C, Saturday/Sunday WEEKEND, otherwise REST.
// This is a pure function of the date; the engine consumes its (normalized)
// result as an input and never computes it itself.
func RoutineForDate(t time.Time) RoutineCode {
	switch t.Weekday() {
	case time.Monday:
		return RoutineA
	case time.Wednesday:
		return RoutineB
	case time.Friday:
		return RoutineC
	case time.Saturday, time.Sunday:
		return RoutineWeekend
	default:
		return RoutineRest
	}
}
