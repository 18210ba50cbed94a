package postgres_test

import (
	"context"
	"errors"
	"testing"

	"cleanrate/infras/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConn(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return postgres.NewFromDB(sqlxDB, sqlxDB), mock
}

func TestWithTransaction_Commit(t *testing.T) {
	conn, mock := newConn(t)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").WithArgs("rating:e1:r1:2024-05-01").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		return postgres.AdvisoryLock(context.Background(), tx, "rating:e1:r1:2024-05-01")
	})

	assert.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	conn, mock := newConn(t)
	wantErr := errors.New("write failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_BeginError(t *testing.T) {
	conn, mock := newConn(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
		called = true

		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, postgres.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, postgres.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, postgres.IsUniqueViolation(errors.New("plain")))
}
