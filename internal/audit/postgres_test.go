package audit

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresStore{db: db}, mock
}

func TestNewPostgresStore_NilDB(t *testing.T) {
	store, err := NewPostgresStore(nil)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestPostgresStore_Save(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`INSERT INTO consults`).
		WithArgs("e4a2c1d0-0000-0000-0000-000000000010", "SCORE", "wells_pe",
			`{"heart_rate":110}`, "PE_LIKELY_HIGH", 0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	record := &ConsultRecord{
		CorrelationID: "e4a2c1d0-0000-0000-0000-000000000010",
		Kind:          KindScore,
		Subject:       "wells_pe",
		Params:        `{"heart_rate":110}`,
		Outcome:       "PE_LIKELY_HIGH",
	}

	err := store.Save(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, int64(42), record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Save_QueryError(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`INSERT INTO consults`).
		WillReturnError(assert.AnError)

	err := store.Save(context.Background(), &ConsultRecord{
		Kind:    KindPlan,
		Subject: "dka",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save record")
}

func TestPostgresStore_List(t *testing.T) {
	store, mock := setupMockStore(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "correlation_id", "kind", "subject", "params", "outcome", "step_count", "created_at",
	}).
		AddRow(int64(2), "e4a2c1d0-0000-0000-0000-000000000011", "PLAN", "stroke", "{}", "", 9, now).
		AddRow(int64(1), "e4a2c1d0-0000-0000-0000-000000000011", "SCORE", "killip", "{}", "CLASS_II", 0, now.Add(-time.Minute))

	mock.ExpectQuery(`SELECT (.+) FROM consults`).
		WithArgs(10, 0).
		WillReturnRows(rows)

	records, err := store.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].ID)
	assert.Equal(t, KindPlan, records[0].Kind)
	assert.Equal(t, "stroke", records[0].Subject)
	assert.Equal(t, 9, records[0].StepCount)
	assert.Equal(t, "CLASS_II", records[1].Outcome)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Count(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM consults`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
