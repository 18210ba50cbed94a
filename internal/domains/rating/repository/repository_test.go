package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanrate/infras/otel/mocks"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/rating/model"
	"cleanrate/internal/domains/rating/repository"
)

const (
	employeeID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	roomID     = "9b2f0c1e-5a0d-4c4e-9a53-0e1f6a2b7c11"
)

func newRepo(t *testing.T) (repository.Rating, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(postgres.NewFromDB(sqlxDB, sqlxDB), mocks.NewOtel()), sqlxDB, mock
}

func begin(t *testing.T, db *sqlx.DB, mock sqlmock.Sqlmock) *sqlx.Tx {
	t.Helper()

	mock.ExpectBegin()

	tx, err := db.Beginx()
	require.NoError(t, err)

	return tx
}

func TestRating_LockTx(t *testing.T) {
	repo, db, mock := newRepo(t)
	tx := begin(t, db, mock)

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("ratings:e:r:2025-01-06").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.LockTx(context.Background(), tx, "ratings:e:r:2025-01-06"))

	mock.ExpectExec("pg_advisory_xact_lock").WillReturnError(errors.New("canceled"))
	assert.Error(t, repo.LockTx(context.Background(), tx, "k"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRating_TargetTx(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, db, mock := newRepo(t)
		tx := begin(t, db, mock)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM "users" CROSS JOIN "rooms" WHERE (("users"."id" = $1) AND ("users"."user_type" = $2) AND ("users"."is_active" IS TRUE) AND ("rooms"."id" = $3)`)).
			WithArgs(employeeID, "employee", roomID).
			WillReturnRows(sqlmock.NewRows([]string{"employee_name", "room_name"}).AddRow("Alice", "301"))

		target, err := repo.TargetTx(context.Background(), tx, employeeID, roomID)
		require.NoError(t, err)
		assert.Equal(t, model.Target{EmployeeName: "Alice", RoomName: "301"}, target)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, db, mock := newRepo(t)
		tx := begin(t, db, mock)

		mock.ExpectQuery(`CROSS JOIN "rooms"`).
			WillReturnRows(sqlmock.NewRows([]string{"employee_name", "room_name"}))

		target, err := repo.TargetTx(context.Background(), tx, employeeID, roomID)
		require.NoError(t, err)
		assert.Empty(t, target.EmployeeName)
	})
}

func TestRating_List(t *testing.T) {
	repo, _, mock := newRepo(t)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	ratedAt := time.Date(2025, 1, 6, 9, 30, 0, 0, time.UTC)
	ratedOn := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	columns := []string{
		"id", "employee_id", "room_id", "rating", "notes", "rated_by", "rated_at", "rated_on",
		"employee_name", "room_name", "floor_name", "building_name", "rated_by_name",
	}

	mock.ExpectQuery(`FROM "ratings" INNER JOIN "users" .+ LEFT JOIN "users" AS "raters" .+ WHERE \(\("ratings"\."employee_id" IN \(\$1, \$2\)\) AND \("ratings"\."rated_on" >= \$3\) AND \("ratings"\."rated_on" <= \$4\)\) ORDER BY "ratings"\."rated_at" DESC`).
		WithArgs(employeeID, "other", "2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("r1", employeeID, roomID, 7, "ok", "admin", ratedAt, ratedOn, "Alice", "301", "3F", "Tower A", "Admin"))

	rows, err := repo.List(context.Background(), model.ListFilter{
		EmployeeIDs: []string{employeeID, "other"},
		From:        &from,
		To:          &to,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 7, rows[0].Rating)
	assert.Equal(t, "Tower A", rows[0].BuildingName)
	assert.Equal(t, "Admin", *rows[0].RatedByName)
	assert.Equal(t, ratedOn, rows[0].RatedOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRating_List_Error(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`FROM "ratings"`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), model.ListFilter{})
	assert.ErrorContains(t, err, "failed to list ratings")
}
