// ABOUTME: Tests for exercise types, measures, routine schedule, and date keys.
// ABOUTME: Verifies enum validation, display formatting, and the weekly mapping.
package models

import (
	"testing"
	"time"
)

func TestIsValidExerciseType(t *testing.T) {
	for _, et := range AllExerciseTypes {
		if !IsValidExerciseType(string(et)) {
			t.Errorf("Expected %s to be valid", et)
		}
	}

	invalid := []string{"", "squats", "PUSHUP", "pull_up"}
	for _, s := range invalid {
		if IsValidExerciseType(s) {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}

func TestExerciseTypeOrder(t *testing.T) {
	want := []ExerciseType{
		ExerciseStairs,
		ExercisePushup,
		ExerciseHandstandPushup,
		ExerciseHang,
		ExerciseRunning,
	}
	if len(AllExerciseTypes) != len(want) {
		t.Fatalf("Expected %d types, got %d", len(want), len(AllExerciseTypes))
	}
	for i, et := range want {
		if AllExerciseTypes[i] != et {
			t.Errorf("Position %d: got %s, want %s", i, AllExerciseTypes[i], et)
		}
	}
}

func TestTypeConfigs(t *testing.T) {
	for _, et := range AllExerciseTypes {
		cfg := et.Config()
		if cfg.Name == "" {
			t.Errorf("%s: missing name", et)
		}
		if cfg.Unit == "" {
			t.Errorf("%s: missing unit", et)
		}
	}

	if ExerciseHang.Config().Unit != "seconds" {
		t.Errorf("hang unit: got %s, want seconds", ExerciseHang.Config().Unit)
	}
	if ExerciseRunning.Config().Unit != "km" {
		t.Errorf("running unit: got %s, want km", ExerciseRunning.Config().Unit)
	}
}

func TestMeasureString(t *testing.T) {
	tests := []struct {
		m    Measure
		want string
	}{
		{Duration{Seconds: 45}, "45s"},
		{RepCount{Reps: 12}, "12 reps"},
		{FloorCount{Floors: 8}, "8 floors"},
		{Run{DistanceKm: 5.2, TimeSeconds: 1710}, "5.20 km in 28:30"},
		{Run{DistanceKm: 3, TimeSeconds: 65}, "3.00 km in 1:05"},
	}

	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String(): got %q, want %q", got, tt.want)
		}
	}
}

func TestRoutineForDate(t *testing.T) {
	// 2024-01-01 was a Monday
	tests := []struct {
		date string
		want RoutineCode
	}{
		{"2024-01-01", RoutineA},       // Monday
		{"2024-01-02", RoutineRest},    // Tuesday
		{"2024-01-03", RoutineB},       // Wednesday
		{"2024-01-04", RoutineRest},    // Thursday
		{"2024-01-05", RoutineC},       // Friday
		{"2024-01-06", RoutineWeekend}, // Saturday
		{"2024-01-07", RoutineWeekend}, // Sunday
	}

	for _, tt := range tests {
		day, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", tt.date, err)
		}
		if got := RoutineForDate(day); got != tt.want {
			t.Errorf("RoutineForDate(%s): got %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestRoutineNormalize(t *testing.T) {
	if RoutineWeekend.Normalize() != RoutineRest {
		t.Error("Expected WEEKEND to normalize to REST")
	}
	for _, c := range AllRoutineCodes {
		if c.Normalize() != c {
			t.Errorf("Expected %s to normalize to itself", c)
		}
	}
}

func TestIsValidRoutineCode(t *testing.T) {
	for _, c := range AllRoutineCodes {
		if !IsValidRoutineCode(string(c)) {
			t.Errorf("Expected %s to be valid", c)
		}
	}
	// WEEKEND is a schedule label, never stored
	if IsValidRoutineCode("WEEKEND") {
		t.Error("Expected WEEKEND to be invalid as a stored code")
	}
	if IsValidRoutineCode("a") {
		t.Error("Expected lowercase code to be invalid")
	}
}

func TestDateKey(t *testing.T) {
	day := time.Date(2024, 3, 7, 15, 30, 0, 0, time.UTC)
	if got := DateKey(day); got != "2024-03-07" {
		t.Errorf("DateKey: got %s, want 2024-03-07", got)
	}
}

func TestParseDateKey(t *testing.T) {
	got, err := ParseDateKey("2024-01-10")
	if err != nil {
		t.Fatalf("ParseDateKey failed: %v", err)
	}
	if got != "2024-01-10" {
		t.Errorf("ParseDateKey: got %s, want 2024-01-10", got)
	}

	invalid := []string{"", "2024-1-5", "01/10/2024", "2024-13-01", "yesterday"}
	for _, s := range invalid {
		if _, err := ParseDateKey(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
}
