package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL, for deployments where
// several instances share one audit trail. The schema must already exist.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an existing connection.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromURL opens a pooled connection from a URL.
func NewPostgresStoreFromURL(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Save appends a consult record.
func (s *PostgresStore) Save(ctx context.Context, record *ConsultRecord) error {
	now := time.Now()

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO consults (
			correlation_id, kind, subject, params, outcome, step_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		record.CorrelationID,
		string(record.Kind),
		record.Subject,
		record.Params,
		record.Outcome,
		record.StepCount,
		now,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	record.CreatedAt = now
	return nil
}

// List returns records newest first.
func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]*ConsultRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, correlation_id, kind, subject, params, outcome, step_count, created_at
		FROM consults
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
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
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM consults").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// ExportJSON writes every record to the writer as indented JSON.
func (s *PostgresStore) ExportJSON(ctx context.Context, w io.Writer) error {
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

// Close closes the underlying connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

var _ Store = (*PostgresStore)(nil)
var _ Store = (*SQLiteStore)(nil)
var _ Store = Nop{}
