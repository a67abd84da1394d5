package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/setlog/internal/models"
	"github.com/meltforce/setlog/internal/stats"
	"github.com/meltforce/setlog/internal/store"
)

// setInput carries the raw string fields of one set as entered by the
// user. Parsing and validation happen in models.ParseRecord; the API
// never builds a record from unvalidated input.
type setInput struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
	Sets     string `json:"sets"`
	Reps     string `json:"reps"`
	Weight   string `json:"weight"`
}

func (s *Server) handleListSets(w http.ResponseWriter, r *http.Request) {
	records := s.store.All()
	writeJSON(w, http.StatusOK, map[string]any{
		"sets":  records,
		"count": len(records),
	})
}

func (s *Server) handleGetSet(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}
	rec, err := s.store.Get(index)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleAddSet(w http.ResponseWriter, r *http.Request) {
	var in setInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	rec, err := models.ParseRecord(in.Date, in.Exercise, in.Sets, in.Reps, in.Weight)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	index, err := s.store.Add(rec)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	s.log.Info("set logged", "exercise", rec.Exercise, "index", index)
	writeJSON(w, http.StatusCreated, map[string]any{"index": index, "set": rec})
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var in setInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	rec, err := models.ParseRecord(in.Date, in.Exercise, in.Sets, in.Reps, in.Weight)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if err := s.store.Update(index, rec); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"index": index, "set": rec})
}

func (s *Server) handleDeleteSet(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(index); err != nil {
		writeStoreError(w, err)
		return
	}
	// Indices after the deleted row have shifted; clients must
	// re-resolve any selection they were holding.
	writeJSON(w, http.StatusOK, map[string]any{"deleted": index, "count": s.store.Size()})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	records := s.store.All()
	writeJSON(w, http.StatusOK, map[string]any{
		"summary":     stats.Summarize(records),
		"by_exercise": stats.VolumeByExercise(records),
		"by_date":     stats.VolumeByDate(records),
	})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := store.Save(s.store, s.logPath); err != nil {
		s.log.Error("save failed", "path", s.logPath, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"saved": s.store.Size(), "path": s.logPath})
}

// parseIndex reads the {index} URL parameter. On failure it writes a
// 400 response and returns ok=false.
func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	idxStr := chi.URLParam(r, "index")
	index, err := strconv.Atoi(idxStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set index"})
		return 0, false
	}
	return index, true
}

// writeStoreError maps core error types onto HTTP statuses: validation
// failures are the client's input (400), unresolved indices are stale
// selections (404), anything else is a server fault (500).
func writeStoreError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Error(), "field": vErr.Field})
		return
	}
	var iErr *store.IndexError
	if errors.As(err, &iErr) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": iErr.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
