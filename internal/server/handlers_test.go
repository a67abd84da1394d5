package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/meltforce/setlog/internal/models"
	"github.com/meltforce/setlog/internal/store"
)

const testKey = "test-key"

func newTestServer(t *testing.T) (*Server, *store.Store, string) {
	t.Helper()
	st := store.New()
	logPath := filepath.Join(t.TempDir(), "workout_log.csv")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(st, logPath, testKey, log), st, logPath
}

func seed(t *testing.T, st *store.Store, records ...models.Record) {
	t.Helper()
	for _, r := range records {
		if _, err := st.Add(r); err != nil {
			t.Fatal(err)
		}
	}
}

func doJSON(t *testing.T, s *Server, method, path string, body any, withKey bool) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, rd)
	if withKey {
		req.Header.Set("X-API-Key", testKey)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

var benchInput = map[string]string{
	"date": "2024-01-01", "exercise": "Bench Press", "sets": "3", "reps": "10", "weight": "60",
}

// TestAddSet verifies POST creates a set and returns its position.
func TestAddSet(t *testing.T) {
	s, st, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/sets", benchInput, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Index int           `json:"index"`
		Set   models.Record `json:"set"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Index != 0 {
		t.Errorf("index = %d, want 0", resp.Index)
	}
	if resp.Set.Exercise != "Bench Press" || resp.Set.Weight != 60 {
		t.Errorf("set = %+v", resp.Set)
	}
	if st.Size() != 1 {
		t.Errorf("store size = %d, want 1", st.Size())
	}
}

// TestAddSetValidation verifies invalid input gets a 400 naming the field.
func TestAddSetValidation(t *testing.T) {
	s, st, _ := newTestServer(t)

	bad := map[string]string{
		"date": "2024-01-01", "exercise": "Squat", "sets": "0", "reps": "5", "weight": "100",
	}
	rec := doJSON(t, s, http.MethodPost, "/api/v1/sets", bad, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["field"] != "sets" {
		t.Errorf("field = %q, want %q", resp["field"], "sets")
	}
	if st.Size() != 0 {
		t.Errorf("store size = %d, want 0", st.Size())
	}
}

// TestListSets verifies the snapshot endpoint.
func TestListSets(t *testing.T) {
	s, st, _ := newTestServer(t)
	seed(t, st,
		models.Record{Date: "2024-01-01", Exercise: "Bench Press", Sets: 3, Reps: 10, Weight: 60},
		models.Record{Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: 100},
	)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/sets", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Sets  []models.Record `json:"sets"`
		Count int             `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Count != 2 || len(resp.Sets) != 2 {
		t.Fatalf("count = %d len = %d, want 2/2", resp.Count, len(resp.Sets))
	}
	if resp.Sets[1].Exercise != "Squat" {
		t.Errorf("sets[1].exercise = %q, want %q", resp.Sets[1].Exercise, "Squat")
	}
}

// TestGetSetNotFound verifies stale indices get a 404.
func TestGetSetNotFound(t *testing.T) {
	s, _, _ := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/sets/5", nil, false)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/sets/abc", nil, false)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestUpdateSet verifies PUT replaces a set in place.
func TestUpdateSet(t *testing.T) {
	s, st, _ := newTestServer(t)
	seed(t, st, models.Record{Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: 100})

	in := map[string]string{
		"date": "2024-01-01", "exercise": "Squat", "sets": "3", "reps": "8", "weight": "100",
	}
	rec := doJSON(t, s, http.MethodPut, "/api/v1/sets/0", in, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	got, err := st.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Reps != 8 {
		t.Errorf("reps = %d, want 8", got.Reps)
	}
}

// TestDeleteSetShifts verifies DELETE removes the row and later indices
// shift down.
func TestDeleteSetShifts(t *testing.T) {
	s, st, _ := newTestServer(t)
	seed(t, st,
		models.Record{Date: "2024-01-01", Exercise: "Bench Press", Sets: 3, Reps: 10, Weight: 60},
		models.Record{Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: 100},
	)

	rec := doJSON(t, s, http.MethodDelete, "/api/v1/sets/0", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	got, err := st.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Exercise != "Squat" {
		t.Errorf("Get(0).exercise = %q, want %q", got.Exercise, "Squat")
	}

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/sets/1", nil, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// TestSummaryEndpoint verifies the aggregate readout.
func TestSummaryEndpoint(t *testing.T) {
	s, st, _ := newTestServer(t)
	seed(t, st, models.Record{Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: 100})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/summary", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Summary struct {
			TotalVolume float64 `json:"total_volume"`
			TotalSets   int     `json:"total_sets"`
		} `json:"summary"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Summary.TotalVolume != 1500.0 {
		t.Errorf("total_volume = %v, want 1500.0", resp.Summary.TotalVolume)
	}
	if resp.Summary.TotalSets != 1 {
		t.Errorf("total_sets = %d, want 1", resp.Summary.TotalSets)
	}
}

// TestSaveEndpoint verifies the explicit save writes the CSV file.
func TestSaveEndpoint(t *testing.T) {
	s, st, logPath := newTestServer(t)
	seed(t, st, models.Record{Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: 100})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/save", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	loaded, _, err := store.Load(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Size() != 1 {
		t.Errorf("saved log size = %d, want 1", loaded.Size())
	}
}

// TestAPIKeyRequired verifies mutating routes reject missing and wrong
// keys while reads stay open.
func TestAPIKeyRequired(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/sets", benchInput, false)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sets", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("X-API-Key", "wrong")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("wrong key: status = %d, want 403", w.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/sets", nil, false)
	if rec.Code != http.StatusOK {
		t.Errorf("read without key: status = %d, want 200", rec.Code)
	}
}
