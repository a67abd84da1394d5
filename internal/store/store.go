// Package store holds the in-memory workout log: an ordered table of
// validated set records with positional CRUD, plus the CSV codec that
// persists it in the legacy row format.
package store

import (
	"fmt"
	"sync"

	"github.com/meltforce/setlog/internal/models"
)

// IndexError reports an operation that referenced a record position
// outside the current table.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("record index %d out of range (log has %d entries)", e.Index, e.Size)
}

// Store is the ordered in-memory workout log. Insertion order is the
// canonical iteration order; indices shift down after a delete.
//
// The logical model is a single session, but the HTTP and MCP surfaces
// share one Store, so access is serialized with a read-write mutex.
type Store struct {
	mu      sync.RWMutex
	records []models.Record
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Add appends a record and returns its position. The record is
// re-validated on entry so the table can never hold an invalid entry,
// whatever the caller did.
func (s *Store) Add(r models.Record) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return len(s.records) - 1, nil
}

// Get returns a copy of the record at index.
func (s *Store) Get(index int) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.records) {
		return models.Record{}, &IndexError{Index: index, Size: len(s.records)}
	}
	return s.records[index], nil
}

// Update replaces the record at index in place, preserving its position.
func (s *Store) Update(index int, r models.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return &IndexError{Index: index, Size: len(s.records)}
	}
	s.records[index] = r
	return nil
}

// Delete removes the record at index. Every subsequent record shifts
// down one position, so callers must re-resolve any cached index.
func (s *Store) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return &IndexError{Index: index, Size: len(s.records)}
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	return nil
}

// All returns a snapshot copy of the table in insertion order.
func (s *Store) All() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Size returns the number of logged entries ("Total Sets Logged").
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// replaceAll swaps in a freshly loaded table. Used by the CSV loader.
func (s *Store) replaceAll(records []models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}
