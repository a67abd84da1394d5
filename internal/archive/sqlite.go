// Package archive exports workout log snapshots into a local SQLite
// database for ad-hoc querying. The CSV file stays the canonical
// store; the archive is derived data and can be rebuilt at any time.
package archive

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/meltforce/setlog/internal/models"
	_ "modernc.org/sqlite"
)

// DB is an open archive database.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the archive database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS export_log (
		batch_id    TEXT PRIMARY KEY,
		set_count   INTEGER NOT NULL,
		exported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating export_log table: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS workout_sets (
		batch_id  TEXT NOT NULL,
		position  INTEGER NOT NULL,
		date      TEXT NOT NULL,
		exercise  TEXT NOT NULL,
		sets      INTEGER NOT NULL,
		reps      INTEGER NOT NULL,
		weight_kg REAL NOT NULL,
		PRIMARY KEY (batch_id, position)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating workout_sets table: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the archive database.
func (a *DB) Close() error {
	return a.db.Close()
}

// ExportResult describes one completed export batch.
type ExportResult struct {
	BatchID  uuid.UUID
	Inserted int
}

// Export writes a full log snapshot as a new batch. Each batch gets a
// fresh ID and an export_log row, so earlier exports stay queryable.
// The batch is written in one transaction; a failed export leaves no
// partial batch behind.
func (a *DB) Export(records []models.Record) (ExportResult, error) {
	batchID := uuid.New()

	tx, err := a.db.Begin()
	if err != nil {
		return ExportResult{}, fmt.Errorf("starting export: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO workout_sets
		(batch_id, position, date, exercise, sets, reps, weight_kg)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return ExportResult{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(batchID.String(), i, r.Date, r.Exercise, r.Sets, r.Reps, r.Weight); err != nil {
			return ExportResult{}, fmt.Errorf("inserting set %d: %w", i, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO export_log (batch_id, set_count) VALUES (?, ?)`,
		batchID.String(), len(records)); err != nil {
		return ExportResult{}, fmt.Errorf("logging export batch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ExportResult{}, fmt.Errorf("committing export: %w", err)
	}
	return ExportResult{BatchID: batchID, Inserted: len(records)}, nil
}

// LatestBatch returns the records of the most recent export batch in
// their original log order. Used by tests and by `setlog export --verify`.
func (a *DB) LatestBatch() ([]models.Record, error) {
	var batchID string
	err := a.db.QueryRow(
		`SELECT batch_id FROM export_log ORDER BY exported_at DESC, rowid DESC LIMIT 1`,
	).Scan(&batchID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest batch: %w", err)
	}

	rows, err := a.db.Query(
		`SELECT date, exercise, sets, reps, weight_kg FROM workout_sets
		 WHERE batch_id = ? ORDER BY position ASC`, batchID)
	if err != nil {
		return nil, fmt.Errorf("querying batch sets: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(&r.Date, &r.Exercise, &r.Sets, &r.Reps, &r.Weight); err != nil {
			return nil, fmt.Errorf("scanning archived set: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
