package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/meltforce/setlog/internal/models"
)

// csvHeader is the fixed header row of the persisted log. Field order
// and spelling are part of the on-disk contract.
var csvHeader = []string{"date", "exercise", "sets", "reps", "weight"}

// ErrMalformedRow marks a persisted row that could not be decoded into
// a valid record (wrong field count, non-numeric fields, or values that
// violate the record invariants).
var ErrMalformedRow = errors.New("malformed row")

// Load reads the workout log at path. A missing file yields an empty
// store. Malformed rows are skipped rather than aborting the load; the
// skip count is returned so callers can warn. On an unreadable file the
// returned store is empty and the error is reported — Load never leaves
// the table undefined.
func Load(path string) (*Store, int, error) {
	s := New()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, 0, nil
		}
		return s, 0, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// First row is the fixed header; the legacy reader discarded it
	// without inspection and so do we.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return s, 0, nil
		}
		return s, 0, fmt.Errorf("reading log header: %w", err)
	}

	var records []models.Record
	skipped := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return New(), 0, fmt.Errorf("reading log file: %w", err)
		}

		rec, err := decodeRow(row)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	s.replaceAll(records)
	return s, skipped, nil
}

func decodeRow(row []string) (models.Record, error) {
	if len(row) != len(csvHeader) {
		return models.Record{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRow, len(row), len(csvHeader))
	}
	sets, err := strconv.Atoi(row[2])
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: sets %q: %v", ErrMalformedRow, row[2], err)
	}
	reps, err := strconv.Atoi(row[3])
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: reps %q: %v", ErrMalformedRow, row[3], err)
	}
	weight, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: weight %q: %v", ErrMalformedRow, row[4], err)
	}

	rec := models.Record{Date: row[0], Exercise: row[1], Sets: sets, Reps: reps, Weight: weight}
	if err := rec.Validate(); err != nil {
		return models.Record{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	return rec, nil
}

// Save writes the current table to path: header row then one row per
// record in store order, weight rendered with exactly two decimals. The
// data is written to a temporary file in the same directory and renamed
// over the target, so a failed save never corrupts the previous log.
func Save(s *Store, path string) error {
	records := s.All()

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp log file: %w", err)
	}
	tmpName := tmp.Name()

	if err := writeCSV(tmp, records); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing log file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing log file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing log file: %w", err)
	}
	return nil
}

func writeCSV(f *os.File, records []models.Record) error {
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Date,
			rec.Exercise,
			strconv.Itoa(rec.Sets),
			strconv.Itoa(rec.Reps),
			strconv.FormatFloat(rec.Weight, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}
