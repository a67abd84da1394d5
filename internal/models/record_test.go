package models

import (
	"errors"
	"strings"
	"testing"
)

// TestParseRecordValid verifies a well-formed raw input becomes a Record
// with all fields parsed.
func TestParseRecordValid(t *testing.T) {
	r, err := ParseRecord("2024-01-01", "Bench Press", "3", "10", "60")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Date != "2024-01-01" {
		t.Errorf("date = %q, want %q", r.Date, "2024-01-01")
	}
	if r.Exercise != "Bench Press" {
		t.Errorf("exercise = %q, want %q", r.Exercise, "Bench Press")
	}
	if r.Sets != 3 || r.Reps != 10 {
		t.Errorf("sets/reps = %d/%d, want 3/10", r.Sets, r.Reps)
	}
	if r.Weight != 60 {
		t.Errorf("weight = %v, want 60", r.Weight)
	}
}

// TestParseRecordTrimsInput verifies surrounding whitespace in raw
// fields is not stored.
func TestParseRecordTrimsInput(t *testing.T) {
	r, err := ParseRecord(" 2024-01-01 ", "  Squat ", " 3 ", " 5 ", " 100.5 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Exercise != "Squat" {
		t.Errorf("exercise = %q, want %q", r.Exercise, "Squat")
	}
	if r.Weight != 100.5 {
		t.Errorf("weight = %v, want 100.5", r.Weight)
	}
}

// TestParseRecordRejections covers the boundary constraints: zero sets,
// negative weight, empty exercise, oversized names, and unparseable
// numbers all fail with a ValidationError naming the field.
func TestParseRecordRejections(t *testing.T) {
	cases := []struct {
		name                               string
		date, exercise, sets, reps, weight string
		wantField                          string
	}{
		{"zero sets", "2024-01-01", "Squat", "0", "5", "100", "sets"},
		{"negative reps", "2024-01-01", "Squat", "3", "-1", "100", "reps"},
		{"negative weight", "2024-01-01", "Squat", "3", "5", "-0.01", "weight"},
		{"empty exercise", "2024-01-01", "", "3", "5", "100", "exercise"},
		{"whitespace exercise", "2024-01-01", "   ", "3", "5", "100", "exercise"},
		{"long exercise", "2024-01-01", strings.Repeat("x", MaxExerciseLen+1), "3", "5", "100", "exercise"},
		{"non-numeric sets", "2024-01-01", "Squat", "abc", "5", "100", "sets"},
		{"non-numeric reps", "2024-01-01", "Squat", "3", "five", "100", "reps"},
		{"non-numeric weight", "2024-01-01", "Squat", "3", "5", "heavy", "weight"},
		{"float sets", "2024-01-01", "Squat", "3.5", "5", "100", "sets"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRecord(tc.date, tc.exercise, tc.sets, tc.reps, tc.weight)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if vErr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", vErr.Field, tc.wantField)
			}
		})
	}
}

// TestZeroWeightAllowed verifies bodyweight entries (weight 0) are valid.
func TestZeroWeightAllowed(t *testing.T) {
	r, err := ParseRecord("2024-01-01", "Pull Up", "3", "12", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Weight != 0 {
		t.Errorf("weight = %v, want 0", r.Weight)
	}
	if r.Volume() != 0 {
		t.Errorf("volume = %v, want 0", r.Volume())
	}
}

// TestVolume verifies the per-record volume formula.
func TestVolume(t *testing.T) {
	r := Record{Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: 100}
	if got := r.Volume(); got != 1500 {
		t.Errorf("volume = %v, want 1500", got)
	}
}

// TestValidateTypedInput verifies Validate catches invariant violations
// on records built from typed values, not just parsed text.
func TestValidateTypedInput(t *testing.T) {
	r := Record{Date: "2024-01-01", Exercise: "Squat", Sets: 3, Reps: 5, Weight: 100}
	if err := r.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	r.Sets = 0
	if err := r.Validate(); err == nil {
		t.Error("expected error for sets = 0")
	}
}
