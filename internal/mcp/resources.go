// ABOUTME: MCP resource implementations for the workout engine.
// ABOUTME: Provides ironlog://today and ironlog://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/ironlog/internal/models"
)

func (s *Server) registerResources() {
	// ironlog://today - Full day view for today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://today",
		Name:        "Today's Workout",
		Description: "Today's sets, last session, and personal best per exercise",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// ironlog://summary - Personal bests plus today's gym session
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://summary",
		Name:        "Workout Summary",
		Description: "Personal best for every exercise plus the current gym session",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	date := models.DateKey(time.Now())
	day := s.loader.Load(ctx, date)

	data, err := json.MarshalIndent(dayToOutput(day), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal day view: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "ironlog://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	bests := make(map[string]any, len(models.AllExerciseTypes))
	for _, t := range models.AllExerciseTypes {
		best, err := s.repo.MaxValue(t)
		if err != nil {
			return nil, fmt.Errorf("failed to get best for %s: %w", t, err)
		}
		if best == nil {
			bests[string(t)] = nil
			continue
		}
		bests[string(t)] = map[string]any{"value": *best, "unit": t.Config().Unit}
	}

	result := map[string]any{"personal_bests": bests}

	date := models.DateKey(time.Now())
	session, err := s.repo.SessionForDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session != nil {
		sets, err := s.repo.EntriesForSession(session.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get session entries: %w", err)
		}
		slugs, err := s.exerciseSlugs()
		if err != nil {
			return nil, err
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
		result["session"] = out
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "ironlog://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
