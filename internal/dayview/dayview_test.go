// ABOUTME: Tests for the per-date composite day view.
// ABOUTME: Verifies load state, reload-after-save consistency, and error capture.
package dayview

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/storage"
)

func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "ironlog-dayview-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "ironlog.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func findState(t *testing.T, day *Day, et models.ExerciseType) *ExerciseState {
	t.Helper()
	for i := range day.Exercises {
		if day.Exercises[i].Type == et {
			return &day.Exercises[i]
		}
	}
	t.Fatalf("No state for %s", et)
	return nil
}

func TestLoadEmptyDay(t *testing.T) {
	db := setupTestDB(t)
	loader := NewLoader(db)

	day := loader.Load(context.Background(), "2024-01-10")
	if day.Err != "" {
		t.Fatalf("Unexpected day error: %s", day.Err)
	}
	if day.Date != "2024-01-10" {
		t.Errorf("Date: got %s, want 2024-01-10", day.Date)
	}
	if len(day.Exercises) != len(models.AllExerciseTypes) {
		t.Fatalf("Expected %d exercise states, got %d", len(models.AllExerciseTypes), len(day.Exercises))
	}

	// States come back in fixed type precedence order
	for i, et := range models.AllExerciseTypes {
		state := day.Exercises[i]
		if state.Type != et {
			t.Errorf("Position %d: got %s, want %s", i, state.Type, et)
		}
		if state.HasSavedToday {
			t.Errorf("%s: expected HasSavedToday false on empty day", et)
		}
		if state.Best != nil {
			t.Errorf("%s: expected nil best on empty day", et)
		}
		if state.LastSession != nil {
			t.Errorf("%s: expected nil last session on empty day", et)
		}
		if state.Err != "" {
			t.Errorf("%s: unexpected error %s", et, state.Err)
		}
	}
}

func TestSaveExerciseReloadsView(t *testing.T) {
	db := setupTestDB(t)
	loader := NewLoader(db)

	measures := []models.Measure{
		models.RepCount{Reps: 10},
		models.RepCount{Reps: 12},
		models.RepCount{Reps: 8},
	}
	day := loader.SaveExercise(context.Background(), "2024-01-10", models.ExercisePushup, measures)
	if day.Err != "" {
		t.Fatalf("Unexpected day error: %s", day.Err)
	}

	pushup := findState(t, day, models.ExercisePushup)
	if !pushup.HasSavedToday {
		t.Error("Expected HasSavedToday after save")
	}
	if len(pushup.Sets) != 3 {
		t.Errorf("Sets: got %d, want 3", len(pushup.Sets))
	}
	// The reloaded view already reflects the new best
	if pushup.Best == nil || *pushup.Best != 12 {
		t.Errorf("Best: got %v, want 12", pushup.Best)
	}

	// Other exercises stay untouched
	hang := findState(t, day, models.ExerciseHang)
	if hang.HasSavedToday || len(hang.Sets) != 0 {
		t.Error("Expected hang state to stay empty")
	}
}

func TestSaveThenCorrectKeepsViewConsistent(t *testing.T) {
	db := setupTestDB(t)
	loader := NewLoader(db)
	ctx := context.Background()

	loader.SaveExercise(ctx, "2024-01-10", models.ExercisePushup, []models.Measure{
		models.RepCount{Reps: 10},
		models.RepCount{Reps: 12},
		models.RepCount{Reps: 8},
	})
	day := loader.SaveExercise(ctx, "2024-01-10", models.ExercisePushup, []models.Measure{
		models.RepCount{Reps: 15},
		models.RepCount{Reps: 9},
	})

	pushup := findState(t, day, models.ExercisePushup)
	if len(pushup.Sets) != 2 {
		t.Errorf("Sets after correction: got %d, want 2", len(pushup.Sets))
	}
	if pushup.Best == nil || *pushup.Best != 15 {
		t.Errorf("Best after correction: got %v, want 15", pushup.Best)
	}
}

func TestLastSessionFromPriorDay(t *testing.T) {
	db := setupTestDB(t)
	loader := NewLoader(db)
	ctx := context.Background()

	loader.SaveExercise(ctx, "2024-01-08", models.ExerciseHang, []models.Measure{
		models.Duration{Seconds: 45},
		models.Duration{Seconds: 60},
	})

	day := loader.Load(ctx, "2024-01-10")
	hang := findState(t, day, models.ExerciseHang)
	if hang.HasSavedToday {
		t.Error("Expected HasSavedToday false for a different day")
	}
	if hang.LastSession == nil {
		t.Fatal("Expected last session from prior day")
	}
	if hang.LastSession.Date != "2024-01-08" {
		t.Errorf("Last session date: got %s, want 2024-01-08", hang.LastSession.Date)
	}
	if hang.Best == nil || *hang.Best != 60 {
		t.Errorf("Best: got %v, want 60", hang.Best)
	}
}

func TestDeleteExerciseReloadsView(t *testing.T) {
	db := setupTestDB(t)
	loader := NewLoader(db)
	ctx := context.Background()

	loader.SaveExercise(ctx, "2024-01-10", models.ExerciseStairs, []models.Measure{
		models.FloorCount{Floors: 12},
	})

	day := loader.DeleteExercise(ctx, "2024-01-10", models.ExerciseStairs)
	if day.Err != "" {
		t.Fatalf("Unexpected day error: %s", day.Err)
	}

	stairs := findState(t, day, models.ExerciseStairs)
	if stairs.HasSavedToday || len(stairs.Sets) != 0 {
		t.Error("Expected stairs state cleared after delete")
	}
}

func TestSaveFailureKeepsPriorSets(t *testing.T) {
	db := setupTestDB(t)
	loader := NewLoader(db)
	ctx := context.Background()

	loader.SaveExercise(ctx, "2024-01-10", models.ExercisePushup, []models.Measure{
		models.RepCount{Reps: 10},
	})

	// A nil measure aborts the replace; the view reports the failure but
	// still shows the untouched prior sets.
	day := loader.SaveExercise(ctx, "2024-01-10", models.ExercisePushup, []models.Measure{
		models.RepCount{Reps: 20},
		nil,
	})
	if day.Err == "" {
		t.Fatal("Expected day error after failed save")
	}

	pushup := findState(t, day, models.ExercisePushup)
	if len(pushup.Sets) != 1 {
		t.Fatalf("Expected prior set preserved, got %d sets", len(pushup.Sets))
	}
	rc, ok := pushup.Sets[0].Measure.(models.RepCount)
	if !ok || rc.Reps != 10 {
		t.Errorf("Preserved set: got %v, want 10 reps", pushup.Sets[0].Measure)
	}
}

func TestLoadErrorCapture(t *testing.T) {
	db := setupTestDB(t)
	loader := NewLoader(db)

	// A closed datastore fails every read; the failures must land in the
	// Err fields rather than panicking or propagating.
	db.Close()

	day := loader.Load(context.Background(), "2024-01-10")
	if day.Err == "" {
		t.Error("Expected day-wide error from closed datastore")
	}
	for _, state := range day.Exercises {
		if state.Err == "" {
			t.Errorf("%s: expected per-exercise error from closed datastore", state.Type)
		}
	}
}

func TestRefresh(t *testing.T) {
	db := setupTestDB(t)
	loader := NewLoader(db)
	ctx := context.Background()

	loader.SaveExercise(ctx, "2024-01-10", models.ExercisePushup, []models.Measure{
		models.RepCount{Reps: 10},
	})

	day := loader.Refresh(ctx, "2024-01-10")
	pushup := findState(t, day, models.ExercisePushup)
	if !pushup.HasSavedToday {
		t.Error("Expected refreshed view to include the saved sets")
	}
}
