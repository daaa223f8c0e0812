// ABOUTME: MCP tool implementations for the workout engine.
// ABOUTME: Exposes set logging, day views, history pages, and personal bests.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/ironlog/internal/dayview"
	"github.com/harperreed/ironlog/internal/models"
)

func (s *Server) registerTools() {
	// log_sets
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_sets",
		Description: "Replace all recorded sets for a bodyweight exercise on one day",
	}, s.handleLogSets)

	// delete_sets
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_sets",
		Description: "Delete all recorded sets for a bodyweight exercise on one day",
	}, s.handleDeleteSets)

	// get_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get the full day view: today's sets, last session, and personal best per exercise",
	}, s.handleGetDay)

	// get_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_history",
		Description: "Get paginated date-grouped history for a bodyweight exercise",
	}, s.handleGetHistory)

	// get_best
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_best",
		Description: "Get the personal best for one or all bodyweight exercises",
	}, s.handleGetBest)

	// log_gym_sets
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_gym_sets",
		Description: "Replace all sets of one gym exercise in a day's workout session",
	}, s.handleLogGymSets)

	// get_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_session",
		Description: "Get the gym workout session recorded for a day",
	}, s.handleGetSession)
}

// Tool input/output types

type bwSetInput struct {
	DurationSeconds *int     `json:"duration_seconds,omitempty" jsonschema:"Seconds held (hang)"`
	Reps            *int     `json:"reps,omitempty" jsonschema:"Repetitions (pushup, handstand_pushup)"`
	Floors          *int     `json:"floors,omitempty" jsonschema:"Floors climbed (stairs)"`
	DistanceKm      *float64 `json:"distance_km,omitempty" jsonschema:"Distance in km (running)"`
	TimeSeconds     *int     `json:"time_seconds,omitempty" jsonschema:"Elapsed seconds (running)"`
}

type logSetsInput struct {
	Date         string       `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
	ExerciseType string       `json:"exercise_type" jsonschema:"One of stairs, pushup, handstand_pushup, hang, running"`
	Sets         []bwSetInput `json:"sets" jsonschema:"Ordered sets; replaces everything recorded for that day and exercise"`
}

type deleteSetsInput struct {
	Date         string `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
	ExerciseType string `json:"exercise_type" jsonschema:"Exercise type"`
}

type getDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
}

type getHistoryInput struct {
	ExerciseType string `json:"exercise_type" jsonschema:"Exercise type"`
	Limit        int    `json:"limit,omitempty" jsonschema:"Max rows per page (default 20); pages are cut by row, not by date"`
	Offset       int    `json:"offset,omitempty" jsonschema:"Rows to skip"`
}

type getBestInput struct {
	ExerciseType string `json:"exercise_type,omitempty" jsonschema:"Exercise type; omit for all"`
}

type gymSetInput struct {
	Weight *float64 `json:"weight,omitempty" jsonschema:"Weight in kg"`
	Reps   *int     `json:"reps,omitempty" jsonschema:"Repetitions"`
}

type logGymSetsInput struct {
	Date        string        `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
	RoutineCode string        `json:"routine_code,omitempty" jsonschema:"A, B, C or REST; defaults to the scheduled routine for the date"`
	Exercise    string        `json:"exercise" jsonschema:"Catalog exercise slug (e.g. squat)"`
	Sets        []gymSetInput `json:"sets" jsonschema:"Ordered sets; replaces everything recorded for that session and exercise"`
}

type getSessionInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type exerciseStateOutput struct {
	ExerciseType  string   `json:"exercise_type"`
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	Sets          []string `json:"sets,omitempty"`
	HasSavedToday bool     `json:"has_saved_today"`
	Best          *float64 `json:"best,omitempty"`
	LastDate      string   `json:"last_date,omitempty"`
	LastSets      []string `json:"last_sets,omitempty"`
	Error         string   `json:"error,omitempty"`
}

type dayOutput struct {
	Date      string                `json:"date"`
	Exercises []exerciseStateOutput `json:"exercises"`
	Error     string                `json:"error,omitempty"`
}

type historyEntryOutput struct {
	Date string   `json:"date"`
	Sets []string `json:"sets"`
}

type sessionSetOutput struct {
	Exercise string   `json:"exercise"`
	SetIndex int      `json:"set_index"`
	Weight   *float64 `json:"weight,omitempty"`
	Reps     *int     `json:"reps,omitempty"`
}

type sessionOutput struct {
	Date        string             `json:"date"`
	RoutineCode string             `json:"routine_code"`
	Sets        []sessionSetOutput `json:"sets"`
}

// Tool handlers

func (s *Server) handleLogSets(ctx context.Context, req *mcp.CallToolRequest, input logSetsInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, t, err := resolveDateAndType(input.Date, input.ExerciseType)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	measures := make([]models.Measure, 0, len(input.Sets))
	for i, set := range input.Sets {
		m, err := measureFromInput(t, set)
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("set %d: %w", i+1, err)
		}
		measures = append(measures, m)
	}

	if err := s.repo.ReplaceEntries(date, t, measures); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log sets: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %d %s sets for %s", len(measures), t, date),
	}, nil
}

func (s *Server) handleDeleteSets(ctx context.Context, req *mcp.CallToolRequest, input deleteSetsInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, t, err := resolveDateAndType(input.Date, input.ExerciseType)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.DeleteEntries(date, t); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete sets: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s sets for %s", t, date),
	}, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, dayOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, dayOutput{}, err
	}

	day := s.loader.Load(ctx, date)
	return nil, dayToOutput(day), nil
}

func (s *Server) handleGetHistory(ctx context.Context, req *mcp.CallToolRequest, input getHistoryInput) (*mcp.CallToolResult, any, error) {
	if !models.IsValidExerciseType(input.ExerciseType) {
		return nil, nil, fmt.Errorf("unknown exercise type: %s", input.ExerciseType)
	}
	if input.Limit <= 0 {
		input.Limit = 20
	}

	entries, err := s.repo.History(models.ExerciseType(input.ExerciseType), input.Limit, input.Offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get history: %w", err)
	}

	if len(entries) == 0 {
		return nil, map[string]any{"message": "No history found."}, nil
	}

	out := make([]historyEntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryOutput{Date: e.Date, Sets: formatSets(e.Sets)})
	}
	return nil, out, nil
}

func (s *Server) handleGetBest(ctx context.Context, req *mcp.CallToolRequest, input getBestInput) (*mcp.CallToolResult, any, error) {
	types := models.AllExerciseTypes
	if input.ExerciseType != "" {
		if !models.IsValidExerciseType(input.ExerciseType) {
			return nil, nil, fmt.Errorf("unknown exercise type: %s", input.ExerciseType)
		}
		types = []models.ExerciseType{models.ExerciseType(input.ExerciseType)}
	}

	out := make(map[string]any, len(types))
	for _, t := range types {
		best, err := s.repo.MaxValue(t)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get best for %s: %w", t, err)
		}
		if best == nil {
			out[string(t)] = nil
			continue
		}
		out[string(t)] = map[string]any{"value": *best, "unit": t.Config().Unit}
	}
	return nil, out, nil
}

func (s *Server) handleLogGymSets(ctx context.Context, req *mcp.CallToolRequest, input logGymSetsInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	code := models.RoutineCode(input.RoutineCode)
	if input.RoutineCode == "" {
		day, _ := time.Parse("2006-01-02", date)
		code = models.RoutineForDate(day)
	}
	code = code.Normalize()
	if !models.IsValidRoutineCode(string(code)) {
		return nil, simpleOutput{}, fmt.Errorf("unknown routine code: %s", input.RoutineCode)
	}

	exercise, err := s.repo.ExerciseBySlug(input.Exercise)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	session, err := s.repo.GetOrCreateSession(date, code)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to open session: %w", err)
	}

	sets := make([]models.GymSetInput, 0, len(input.Sets))
	for _, set := range input.Sets {
		sets = append(sets, models.GymSetInput{Weight: set.Weight, Reps: set.Reps})
	}

	if err := s.repo.ReplaceSessionEntries(session.ID, exercise.ID, sets); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log gym sets: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %d %s sets in session %s (%s)", len(sets), exercise.Slug, date, code),
	}, nil
}

func (s *Server) handleGetSession(ctx context.Context, req *mcp.CallToolRequest, input getSessionInput) (*mcp.CallToolResult, any, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.repo.SessionForDate(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, map[string]any{"message": "No session recorded for " + date}, nil
	}

	sets, err := s.repo.EntriesForSession(session.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get session entries: %w", err)
	}

	slugs, err := s.exerciseSlugs()
	if err != nil {
		return nil, nil, err
	}

	out := sessionOutput{Date: session.Date, RoutineCode: string(session.RoutineCode)}
	for _, set := range sets {
		out.Sets = append(out.Sets, sessionSetOutput{
			Exercise: slugs[set.ExerciseID.String()],
			SetIndex: set.SetIndex,
			Weight:   set.Weight,
			Reps:     set.Reps,
		})
	}
	return nil, out, nil
}

// Helpers

func resolveDate(date string) (string, error) {
	if date == "" {
		return models.DateKey(time.Now()), nil
	}
	return models.ParseDateKey(date)
}

func resolveDateAndType(date, exerciseType string) (string, models.ExerciseType, error) {
	d, err := resolveDate(date)
	if err != nil {
		return "", "", err
	}
	if !models.IsValidExerciseType(exerciseType) {
		return "", "", fmt.Errorf("unknown exercise type: %s", exerciseType)
	}
	return d, models.ExerciseType(exerciseType), nil
}

// measureFromInput builds the Measure variant the exercise type expects,
// rejecting inputs that miss the type's metric.
func measureFromInput(t models.ExerciseType, set bwSetInput) (models.Measure, error) {
	switch t {
	case models.ExerciseHang:
		if set.DurationSeconds == nil {
			return nil, fmt.Errorf("hang sets need duration_seconds")
		}
		return models.Duration{Seconds: *set.DurationSeconds}, nil
	case models.ExercisePushup, models.ExerciseHandstandPushup:
		if set.Reps == nil {
			return nil, fmt.Errorf("%s sets need reps", t)
		}
		return models.RepCount{Reps: *set.Reps}, nil
	case models.ExerciseStairs:
		if set.Floors == nil {
			return nil, fmt.Errorf("stairs sets need floors")
		}
		return models.FloorCount{Floors: *set.Floors}, nil
	case models.ExerciseRunning:
		if set.DistanceKm == nil {
			return nil, fmt.Errorf("running sets need distance_km")
		}
		r := models.Run{DistanceKm: *set.DistanceKm}
		if set.TimeSeconds != nil {
			r.TimeSeconds = *set.TimeSeconds
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown exercise type: %s", t)
	}
}

func formatSets(sets []models.BodyweightSet) []string {
	out := make([]string, 0, len(sets))
	for _, s := range sets {
		if s.Measure == nil {
			out = append(out, "-")
			continue
		}
		out = append(out, s.Measure.String())
	}
	return out
}

func dayToOutput(day *dayview.Day) dayOutput {
	out := dayOutput{Date: day.Date, Error: day.Err}
	for _, ex := range day.Exercises {
		state := exerciseStateOutput{
			ExerciseType:  string(ex.Type),
			Name:          ex.Config.Name,
			Unit:          ex.Config.Unit,
			Sets:          formatSets(ex.Sets),
			HasSavedToday: ex.HasSavedToday,
			Best:          ex.Best,
			Error:         ex.Err,
		}
		if ex.LastSession != nil {
			state.LastDate = ex.LastSession.Date
			state.LastSets = formatSets(ex.LastSession.Sets)
		}
		out.Exercises = append(out.Exercises, state)
	}
	return out
}

func (s *Server) exerciseSlugs() (map[string]string, error) {
	exercises, err := s.repo.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	slugs := make(map[string]string, len(exercises))
	for _, e := range exercises {
		slugs[e.ID.String()] = e.Slug
	}
	return slugs, nil
}
