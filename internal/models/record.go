package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxExerciseLen is the longest accepted exercise name. The legacy log
// format allotted 30 characters per name; longer input is rejected
// rather than truncated so the stored value always matches what the
// user typed.
const MaxExerciseLen = 30

// Record is one logged workout set entry.
type Record struct {
	Date     string  `json:"date"`
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
}

// Volume returns the training volume of this entry (sets × reps × weight).
func (r Record) Volume() float64 {
	return float64(r.Sets) * float64(r.Reps) * r.Weight
}

// ValidationError reports a field value that violates a Record constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks the Record invariants on already-typed values.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Exercise) == "" {
		return &ValidationError{Field: "exercise", Message: "name is required"}
	}
	if len(r.Exercise) > MaxExerciseLen {
		return &ValidationError{Field: "exercise", Message: fmt.Sprintf("name too long (max %d characters)", MaxExerciseLen)}
	}
	if r.Sets <= 0 {
		return &ValidationError{Field: "sets", Message: "must be greater than 0"}
	}
	if r.Reps <= 0 {
		return &ValidationError{Field: "reps", Message: "must be greater than 0"}
	}
	if r.Weight < 0 {
		return &ValidationError{Field: "weight", Message: "must be 0 or positive"}
	}
	return nil
}

// ParseRecord builds a validated Record from raw textual input, the form
// every user-facing surface (CLI, HTTP, MCP) collects. It returns a
// *ValidationError naming the first field that fails; no partially
// constructed Record is ever returned.
func ParseRecord(date, exercise, sets, reps, weight string) (Record, error) {
	setsN, err := strconv.Atoi(strings.TrimSpace(sets))
	if err != nil {
		return Record{}, &ValidationError{Field: "sets", Message: "must be a whole number"}
	}
	repsN, err := strconv.Atoi(strings.TrimSpace(reps))
	if err != nil {
		return Record{}, &ValidationError{Field: "reps", Message: "must be a whole number"}
	}
	weightN, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil {
		return Record{}, &ValidationError{Field: "weight", Message: "must be a number"}
	}

	r := Record{
		Date:     strings.TrimSpace(date),
		Exercise: strings.TrimSpace(exercise),
		Sets:     setsN,
		Reps:     repsN,
		Weight:   weightN,
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}
