// Package mcp exposes the workout log to MCP clients: CRUD tools over
// the set table plus volume-summary tooling and log resources.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/setlog/internal/stats"
	"github.com/meltforce/setlog/internal/store"
)

// New creates an MCP server with all tools and resources registered.
// logPath is the CSV file targeted by the save_log tool.
func New(st *store.Store, logPath, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("SetLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("SetLog workout log server. Log, edit, and delete workout sets, and query total training volume. Sets are addressed by their position in the log; positions shift down after a delete."),
	)

	h := &handlers{store: st, logPath: logPath, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolLogSet, Handler: h.logSet},
		server.ServerTool{Tool: toolGetSets, Handler: h.getSets},
		server.ServerTool{Tool: toolUpdateSet, Handler: h.updateSet},
		server.ServerTool{Tool: toolDeleteSet, Handler: h.deleteSet},
		server.ServerTool{Tool: toolGetVolumeSummary, Handler: h.getVolumeSummary},
		server.ServerTool{Tool: toolSaveLog, Handler: h.saveLog},
	)

	s.AddResources(
		server.ServerResource{Resource: resWorkoutLog, Handler: h.workoutLog},
		server.ServerResource{Resource: resSummary, Handler: h.summary},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store   *store.Store
	logPath string
	log     *slog.Logger
}

// --- Resource definitions ---

var resWorkoutLog = mcp.NewResource(
	"setlog://workout_log",
	"Workout Log",
	mcp.WithResourceDescription("The full ordered workout log: every set with date, exercise, sets, reps, and weight"),
	mcp.WithMIMEType("application/json"),
)

var resSummary = mcp.NewResource(
	"setlog://summary",
	"Volume Summary",
	mcp.WithResourceDescription("Aggregate training volume: headline totals plus per-exercise and per-date rollups"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) workoutLog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(h.store.All())
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) summary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	records := h.store.All()
	data, err := json.Marshal(map[string]any{
		"summary":     stats.Summarize(records),
		"by_exercise": stats.VolumeByExercise(records),
		"by_date":     stats.VolumeByDate(records),
	})
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
