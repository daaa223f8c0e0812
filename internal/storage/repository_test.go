// ABOUTME: Tests for bodyweight set storage with atomic replace-all writes.
// ABOUTME: Verifies replace semantics, ordering, idempotent deletes, and rollback.
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/ironlog/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "ironlog-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "ironlog.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestReplaceAndReadEntries(t *testing.T) {
	db := setupTestDB(t)

	measures := []models.Measure{
		models.RepCount{Reps: 10},
		models.RepCount{Reps: 12},
		models.RepCount{Reps: 8},
	}
	if err := db.ReplaceEntries("2024-01-10", models.ExercisePushup, measures); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	sets, err := db.EntriesForDate("2024-01-10")
	if err != nil {
		t.Fatalf("EntriesForDate failed: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("Expected 3 sets, got %d", len(sets))
	}

	for i, want := range []int{10, 12, 8} {
		if sets[i].SetIndex != i+1 {
			t.Errorf("Set %d: index got %d, want %d", i, sets[i].SetIndex, i+1)
		}
		rc, ok := sets[i].Measure.(models.RepCount)
		if !ok {
			t.Fatalf("Set %d: measure kind got %T, want RepCount", i, sets[i].Measure)
		}
		if rc.Reps != want {
			t.Errorf("Set %d: reps got %d, want %d", i, rc.Reps, want)
		}
	}
}

// The defining save pattern: log three pushup sets, correct them to two,
// and verify both the set list and the personal best track the replacement.
func TestReplaceOverwritesPriorSets(t *testing.T) {
	db := setupTestDB(t)

	first := []models.Measure{
		models.RepCount{Reps: 10},
		models.RepCount{Reps: 12},
		models.RepCount{Reps: 8},
	}
	if err := db.ReplaceEntries("2024-01-10", models.ExercisePushup, first); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	best, err := db.MaxValue(models.ExercisePushup)
	if err != nil {
		t.Fatalf("MaxValue failed: %v", err)
	}
	if best == nil || *best != 12 {
		t.Fatalf("Best after first save: got %v, want 12", best)
	}

	second := []models.Measure{
		models.RepCount{Reps: 15},
		models.RepCount{Reps: 9},
	}
	if err := db.ReplaceEntries("2024-01-10", models.ExercisePushup, second); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	sets, err := db.EntriesForDate("2024-01-10")
	if err != nil {
		t.Fatalf("EntriesForDate failed: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("Expected 2 sets after replace, got %d", len(sets))
	}

	best, err = db.MaxValue(models.ExercisePushup)
	if err != nil {
		t.Fatalf("MaxValue failed: %v", err)
	}
	if best == nil || *best != 15 {
		t.Errorf("Best after replace: got %v, want 15", best)
	}
}

func TestReplaceEmptyEqualsDelete(t *testing.T) {
	db := setupTestDB(t)

	if err := db.ReplaceEntries("2024-01-10", models.ExerciseHang, []models.Measure{
		models.Duration{Seconds: 45},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	if err := db.ReplaceEntries("2024-01-10", models.ExerciseHang, nil); err != nil {
		t.Fatalf("ReplaceEntries with empty slice failed: %v", err)
	}

	sets, err := db.EntriesForDate("2024-01-10")
	if err != nil {
		t.Fatalf("EntriesForDate failed: %v", err)
	}
	if len(sets) != 0 {
		t.Errorf("Expected no sets, got %d", len(sets))
	}
}

func TestReplaceIsScopedToKey(t *testing.T) {
	db := setupTestDB(t)

	if err := db.ReplaceEntries("2024-01-10", models.ExercisePushup, []models.Measure{
		models.RepCount{Reps: 10},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}
	if err := db.ReplaceEntries("2024-01-10", models.ExerciseHang, []models.Measure{
		models.Duration{Seconds: 45},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}
	if err := db.ReplaceEntries("2024-01-11", models.ExercisePushup, []models.Measure{
		models.RepCount{Reps: 20},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	// Replacing one key must not touch the other day or the other type
	if err := db.ReplaceEntries("2024-01-10", models.ExercisePushup, []models.Measure{
		models.RepCount{Reps: 11},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	day1, _ := db.EntriesForDate("2024-01-10")
	if len(day1) != 2 {
		t.Errorf("Day 1: expected 2 sets (pushup + hang), got %d", len(day1))
	}
	day2, _ := db.EntriesForDate("2024-01-11")
	if len(day2) != 1 {
		t.Errorf("Day 2: expected 1 set, got %d", len(day2))
	}
}

func TestEntriesForDateTypeOrder(t *testing.T) {
	db := setupTestDB(t)

	// Insert in reverse precedence order; the read must come back in
	// stairs, pushup, handstand_pushup, hang, running order.
	if err := db.ReplaceEntries("2024-01-10", models.ExerciseRunning, []models.Measure{
		models.Run{DistanceKm: 5, TimeSeconds: 1500},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}
	if err := db.ReplaceEntries("2024-01-10", models.ExerciseHang, []models.Measure{
		models.Duration{Seconds: 60},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}
	if err := db.ReplaceEntries("2024-01-10", models.ExerciseStairs, []models.Measure{
		models.FloorCount{Floors: 10},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	sets, err := db.EntriesForDate("2024-01-10")
	if err != nil {
		t.Fatalf("EntriesForDate failed: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("Expected 3 sets, got %d", len(sets))
	}

	want := []models.ExerciseType{models.ExerciseStairs, models.ExerciseHang, models.ExerciseRunning}
	for i, et := range want {
		if sets[i].Type != et {
			t.Errorf("Position %d: got %s, want %s", i, sets[i].Type, et)
		}
	}
}

func TestReplaceRollbackOnBadMeasure(t *testing.T) {
	db := setupTestDB(t)

	original := []models.Measure{
		models.RepCount{Reps: 10},
		models.RepCount{Reps: 12},
	}
	if err := db.ReplaceEntries("2024-01-10", models.ExercisePushup, original); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	// A nil measure mid-slice fails after the delete and first insert have
	// run inside the transaction; the whole write must roll back.
	bad := []models.Measure{
		models.RepCount{Reps: 20},
		nil,
		models.RepCount{Reps: 5},
	}
	if err := db.ReplaceEntries("2024-01-10", models.ExercisePushup, bad); err == nil {
		t.Fatal("Expected error for nil measure, got nil")
	}

	sets, err := db.EntriesForDate("2024-01-10")
	if err != nil {
		t.Fatalf("EntriesForDate failed: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("Expected original 2 sets after rollback, got %d", len(sets))
	}
	rc, ok := sets[0].Measure.(models.RepCount)
	if !ok || rc.Reps != 10 {
		t.Errorf("First set after rollback: got %v, want 10 reps", sets[0].Measure)
	}
}

// The (date, exercise_type, set_index) key is unique at the schema level:
// a duplicate insert must be rejected even when it bypasses ReplaceEntries.
func TestDuplicateSetIndexRejected(t *testing.T) {
	db := setupTestDB(t)

	if err := db.ReplaceEntries("2024-01-10", models.ExercisePushup, []models.Measure{
		models.RepCount{Reps: 10},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	_, err := db.db.Exec(`
		INSERT INTO bodyweight_workout_entries (id, date, exercise_type, set_index, reps)
		VALUES (?, ?, ?, ?, ?)`,
		"duplicate-row", "2024-01-10", "pushup", 1, 12)
	if err == nil {
		t.Fatal("Expected duplicate (date, exercise_type, set_index) insert to be rejected")
	}

	sets, err := db.EntriesForDate("2024-01-10")
	if err != nil {
		t.Fatalf("EntriesForDate failed: %v", err)
	}
	if len(sets) != 1 {
		t.Errorf("Expected 1 set after rejected insert, got %d", len(sets))
	}
}

func TestDuplicateGymSetIndexRejected(t *testing.T) {
	db := setupTestDB(t)

	squat, err := db.ExerciseBySlug("squat")
	if err != nil {
		t.Fatalf("ExerciseBySlug failed: %v", err)
	}
	session, err := db.GetOrCreateSession("2024-01-08", models.RoutineA)
	if err != nil {
		t.Fatalf("GetOrCreateSession failed: %v", err)
	}
	w := 80.0
	r := 5
	if err := db.ReplaceSessionEntries(session.ID, squat.ID, []models.GymSetInput{
		{Weight: &w, Reps: &r},
	}); err != nil {
		t.Fatalf("ReplaceSessionEntries failed: %v", err)
	}

	_, err = db.db.Exec(`
		INSERT INTO workout_entries (id, session_id, exercise_id, set_index, weight, reps)
		VALUES (?, ?, ?, ?, ?, ?)`,
		"duplicate-row", session.ID.String(), squat.ID.String(), 1, 82.5, 3)
	if err == nil {
		t.Fatal("Expected duplicate (session_id, exercise_id, set_index) insert to be rejected")
	}
}

func TestDeleteEntries(t *testing.T) {
	db := setupTestDB(t)

	if err := db.ReplaceEntries("2024-01-10", models.ExerciseStairs, []models.Measure{
		models.FloorCount{Floors: 12},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	if err := db.DeleteEntries("2024-01-10", models.ExerciseStairs); err != nil {
		t.Fatalf("DeleteEntries failed: %v", err)
	}

	sets, _ := db.EntriesForDate("2024-01-10")
	if len(sets) != 0 {
		t.Errorf("Expected no sets after delete, got %d", len(sets))
	}
}

func TestDeleteEntriesIdempotent(t *testing.T) {
	db := setupTestDB(t)

	// Deleting a key that was never written succeeds
	if err := db.DeleteEntries("2024-01-10", models.ExercisePushup); err != nil {
		t.Errorf("Expected idempotent delete, got %v", err)
	}
	if err := db.DeleteEntries("2024-01-10", models.ExercisePushup); err != nil {
		t.Errorf("Expected repeated delete to succeed, got %v", err)
	}
}

func TestRunMeasureRoundtrip(t *testing.T) {
	db := setupTestDB(t)

	if err := db.ReplaceEntries("2024-01-10", models.ExerciseRunning, []models.Measure{
		models.Run{DistanceKm: 5.2, TimeSeconds: 1710},
	}); err != nil {
		t.Fatalf("ReplaceEntries failed: %v", err)
	}

	sets, err := db.EntriesForDate("2024-01-10")
	if err != nil {
		t.Fatalf("EntriesForDate failed: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("Expected 1 set, got %d", len(sets))
	}

	run, ok := sets[0].Measure.(models.Run)
	if !ok {
		t.Fatalf("Measure kind: got %T, want Run", sets[0].Measure)
	}
	if run.DistanceKm != 5.2 {
		t.Errorf("Distance: got %v, want 5.2", run.DistanceKm)
	}
	if run.TimeSeconds != 1710 {
		t.Errorf("Time: got %v, want 1710", run.TimeSeconds)
	}
}

func TestDBClose(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestDBCloseNilDB(t *testing.T) {
	d := &DB{}
	if err := d.Close(); err != nil {
		t.Errorf("Close on zero DB failed: %v", err)
	}
}
