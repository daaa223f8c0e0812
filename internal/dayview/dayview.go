// ABOUTME: Per-date composite read model over the set repository and aggregator.
// ABOUTME: Loads today's sets, last session, and personal best for every exercise.
package dayview

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/storage"
)

// ExerciseState is the per-exercise slice of a day view.
type ExerciseState struct {
	Type          models.ExerciseType
	Config        models.TypeConfig
	Sets          []models.BodyweightSet
	HasSavedToday bool
	Best          *float64
	LastSession   *models.HistoryEntry
	// Err carries a read failure for this exercise only; the rest of the
	// view stays usable.
	Err string
}

// Day is the composite state for one target date.
type Day struct {
	Date      string
	Exercises []ExerciseState
	// Err is set when the day-wide read failed; per-exercise failures go
	// into ExerciseState.Err instead.
	Err string
}

// Loader builds Day views and applies save/delete operations. After a
// successful write it always reloads the full view rather than patching it,
// so the sets list, personal best, and last session can never disagree.
//
// Loader does not guard against overlapping saves; callers are expected to
// serialize writes (e.g. by disabling the triggering control while one is in
// flight).
type Loader struct {
	repo storage.Repository
}

// NewLoader creates a Loader over the given repository.
func NewLoader(repo storage.Repository) *Loader {
	return &Loader{repo: repo}
}

// Load assembles the view for a date. The today's-entries read and the
// latest/best reads for every tracked exercise type are issued in parallel.
// Repository failures never propagate as errors: they land in the Err fields
// so one failing exercise cannot take down the whole view.
func (l *Loader) Load(ctx context.Context, date string) *Day {
	day := &Day{Date: date}
	states := make([]ExerciseState, len(models.AllExerciseTypes))

	var todaySets []models.BodyweightSet
	var todayErr error

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		todaySets, todayErr = l.repo.EntriesForDate(date)
		return nil
	})

	for i, t := range models.AllExerciseTypes {
		states[i] = ExerciseState{Type: t, Config: t.Config()}
		state := &states[i]
		exerciseType := t

		g.Go(func() error {
			latest, err := l.repo.Latest(exerciseType)
			if err != nil {
				state.Err = err.Error()
				return nil
			}
			state.LastSession = latest

			best, err := l.repo.MaxValue(exerciseType)
			if err != nil {
				state.Err = err.Error()
				return nil
			}
			state.Best = best
			return nil
		})
	}

	_ = g.Wait() // goroutines report through state, never through errors

	if todayErr != nil {
		day.Err = todayErr.Error()
	} else {
		byType := make(map[models.ExerciseType][]models.BodyweightSet)
		for _, s := range todaySets {
			byType[s.Type] = append(byType[s.Type], s)
		}
		for i := range states {
			states[i].Sets = byType[states[i].Type]
			states[i].HasSavedToday = len(states[i].Sets) > 0
		}
	}

	day.Exercises = states
	return day
}

// SaveExercise replaces all sets for (date, type) and reloads the full view.
// A write failure is surfaced through the returned view's Err field; the
// datastore keeps the prior sets untouched (the replace is atomic).
func (l *Loader) SaveExercise(ctx context.Context, date string, t models.ExerciseType, measures []models.Measure) *Day {
	if err := l.repo.ReplaceEntries(date, t, measures); err != nil {
		day := l.Load(ctx, date)
		day.Err = err.Error()
		return day
	}
	return l.Load(ctx, date)
}

// DeleteExercise removes all sets for (date, type) and reloads the view.
func (l *Loader) DeleteExercise(ctx context.Context, date string, t models.ExerciseType) *Day {
	if err := l.repo.DeleteEntries(date, t); err != nil {
		day := l.Load(ctx, date)
		day.Err = err.Error()
		return day
	}
	return l.Load(ctx, date)
}

// Refresh re-runs the load for a date. Provided for callers that kept a
// stale view around; identical to Load.
func (l *Loader) Refresh(ctx context.Context, date string) *Day {
	return l.Load(ctx, date)
}
