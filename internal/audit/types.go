// Package audit records every consult served by the API: which score or
// plan was requested, with what inputs, and what came out. Records support
// retrospective review of the advice the service gave; they are
// append-only and never feed back into plan construction.
package audit

import (
	"context"
	"io"
	"time"
)

// RecordKind distinguishes scoring consults from plan consults.
type RecordKind string

const (
	KindScore RecordKind = "score"
	KindPlan  RecordKind = "plan"
)

// ConsultRecord is one served consult.
type ConsultRecord struct {
	ID            int64      `json:"id,omitempty"`
	CorrelationID string     `json:"correlation_id"`
	Kind          RecordKind `json:"kind"`
	Subject       string     `json:"subject"` // score name or condition slug
	Params        string     `json:"params"`  // request parameters as JSON
	Outcome       string     `json:"outcome"` // classification or plan condition name
	StepCount     int        `json:"step_count,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Store is the persistence interface for consult records.
type Store interface {
	// Save appends a consult record, filling in ID and CreatedAt.
	Save(ctx context.Context, record *ConsultRecord) error

	// List returns records newest first, with pagination.
	List(ctx context.Context, limit, offset int) ([]*ConsultRecord, error)

	// Count returns the total number of records.
	Count(ctx context.Context) (int64, error)

	// ExportJSON writes every record to the writer as indented JSON.
	ExportJSON(ctx context.Context, w io.Writer) error

	// Close releases the underlying resources.
	Close() error
}

// Export is the JSON export envelope.
type Export struct {
	Version    string           `json:"version"`
	ExportedAt time.Time        `json:"exported_at"`
	Count      int              `json:"count"`
	Records    []*ConsultRecord `json:"records"`
}

// Nop is a Store that records nothing, used when auditing is disabled.
type Nop struct{}

func (Nop) Save(context.Context, *ConsultRecord) error { return nil }
func (Nop) List(context.Context, int, int) ([]*ConsultRecord, error) {
	return nil, nil
}
func (Nop) Count(context.Context) (int64, error)        { return 0, nil }
func (Nop) ExportJSON(context.Context, io.Writer) error { return nil }
func (Nop) Close() error                                { return nil }
