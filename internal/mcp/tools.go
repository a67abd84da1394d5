package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/setlog/internal/models"
	"github.com/meltforce/setlog/internal/stats"
	"github.com/meltforce/setlog/internal/store"
)

// --- Tool definitions ---

// Set fields arrive as strings: tool input is user input, and it goes
// through the same parse/validate path as every other surface.

var toolLogSet = mcp.NewTool("log_set",
	mcp.WithDescription("Log a new workout set. Appends to the end of the log and returns the new entry's position."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (e.g. 'Bench Press'), max 30 characters")),
	mcp.WithString("sets", mcp.Required(), mcp.Description("Number of sets performed (integer > 0)")),
	mcp.WithString("reps", mcp.Required(), mcp.Description("Reps per set (integer > 0)")),
	mcp.WithString("weight", mcp.Required(), mcp.Description("Weight in kg (number >= 0)")),
	mcp.WithString("date", mcp.Description("Calendar date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetSets = mcp.NewTool("get_sets",
	mcp.WithDescription("Return the full ordered workout log. Each entry's position is its current index; indices shift down after a delete."),
)

var toolUpdateSet = mcp.NewTool("update_set",
	mcp.WithDescription("Replace the set at a given position, keeping its position."),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("Position of the set to update (0-based)")),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name, max 30 characters")),
	mcp.WithString("sets", mcp.Required(), mcp.Description("Number of sets performed (integer > 0)")),
	mcp.WithString("reps", mcp.Required(), mcp.Description("Reps per set (integer > 0)")),
	mcp.WithString("weight", mcp.Required(), mcp.Description("Weight in kg (number >= 0)")),
	mcp.WithString("date", mcp.Description("Calendar date (YYYY-MM-DD). Defaults to today.")),
)

var toolDeleteSet = mcp.NewTool("delete_set",
	mcp.WithDescription("Delete the set at a given position. Later entries shift down one position."),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("Position of the set to delete (0-based)")),
)

var toolGetVolumeSummary = mcp.NewTool("get_volume_summary",
	mcp.WithDescription("Aggregate training volume (sets × reps × weight summed) with per-exercise and per-date rollups."),
)

var toolSaveLog = mcp.NewTool("save_log",
	mcp.WithDescription("Persist the current log to the CSV file now."),
)

// --- Tool handlers ---

func recordFromRequest(req mcp.CallToolRequest) (models.Record, error) {
	date := req.GetString("date", "")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return models.ParseRecord(
		date,
		req.GetString("exercise", ""),
		req.GetString("sets", ""),
		req.GetString("reps", ""),
		req.GetString("weight", ""),
	)
}

func (h *handlers) logSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := recordFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	index, err := h.store.Add(rec)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	h.log.Info("mcp log_set", "exercise", rec.Exercise, "index", index)

	result, err := mcp.NewToolResultJSON(map[string]any{"index": index, "set": rec, "total_sets": h.store.Size()})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.store.All())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) updateSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := req.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("index parameter is required"), nil
	}

	rec, err := recordFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.store.Update(index, rec); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"index": index, "set": rec})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) deleteSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := req.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("index parameter is required"), nil
	}

	if err := h.store.Delete(index); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"deleted": index, "total_sets": h.store.Size()})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getVolumeSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records := h.store.All()
	result, err := mcp.NewToolResultJSON(map[string]any{
		"summary":     stats.Summarize(records),
		"by_exercise": stats.VolumeByExercise(records),
		"by_date":     stats.VolumeByDate(records),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) saveLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := store.Save(h.store, h.logPath); err != nil {
		h.log.Error("mcp save_log", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText("log saved"), nil
}
