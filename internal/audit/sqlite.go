package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite. The default backend for
// single-node deployments; the file and schema are created on first open.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) a SQLite audit store at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS consults (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		correlation_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		subject TEXT NOT NULL,
		params TEXT DEFAULT '',
		outcome TEXT DEFAULT '',
		step_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_consults_subject ON consults(subject);
	CREATE INDEX IF NOT EXISTS idx_consults_created_at ON consults(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// scanner is an interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*ConsultRecord, error) {
	r := &ConsultRecord{}
	var kind string
	err := s.Scan(&r.ID, &r.CorrelationID, &kind, &r.Subject,
		&r.Params, &r.Outcome, &r.StepCount, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.Kind = RecordKind(kind)
	return r, nil
}

// Save appends a consult record.
func (s *SQLiteStore) Save(ctx context.Context, record *ConsultRecord) error {
	now := time.Now()
	record.CreatedAt = now

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO consults (
			correlation_id, kind, subject, params, outcome, step_count, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		record.CorrelationID,
		string(record.Kind),
		record.Subject,
		record.Params,
		record.Outcome,
		record.StepCount,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert ID: %w", err)
	}
	record.ID = id

	return nil
}

// List returns records newest first.
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*ConsultRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, correlation_id, kind, subject, params, outcome, step_count, created_at
		FROM consults
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var result []*ConsultRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// Count returns the total number of records.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM consults").Scan(&count)
	return count, err
}

// maxExportLimit caps how many records one export pulls.
const maxExportLimit = 1000000

// ExportJSON writes every record to the writer as indented JSON.
func (s *SQLiteStore) ExportJSON(ctx context.Context, w io.Writer) error {
	all, err := s.List(ctx, maxExportLimit, 0)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	export := &Export{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Count:      len(all),
		Records:    all,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
