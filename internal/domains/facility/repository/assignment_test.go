package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanrate/infras/otel/mocks"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/facility/model"
	"cleanrate/internal/domains/facility/repository"
)

const employeeID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func newAssignment(t *testing.T) (repository.Assignment, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.NewAssignment(postgres.NewFromDB(sqlxDB, sqlxDB), mocks.NewOtel()), sqlxDB, mock
}

func begin(t *testing.T, db *sqlx.DB, mock sqlmock.Sqlmock) *sqlx.Tx {
	t.Helper()

	mock.ExpectBegin()

	tx, err := db.Beginx()
	require.NoError(t, err)

	return tx
}

var assignmentColumns = []string{
	"floor_id", "floor_name", "floor_number", "building_id", "building_name",
	"employee_id", "employee_name", "employee_email", "assigned_at",
}

func TestAssignment_Scan(t *testing.T) {
	repo, _, mock := newAssignment(t)

	assignedAt := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM "floors" INNER JOIN "buildings" .+ LEFT JOIN "employee_floors" .+ LEFT JOIN "users" .+ ORDER BY`).
		WithArgs("Tower A", "3F", "2F").
		WillReturnRows(sqlmock.NewRows(assignmentColumns).
			AddRow("f3", "3F", 3, "b1", "Tower A", employeeID, "Alice", "alice@example.com", assignedAt).
			AddRow("f2", "2F", 2, "b1", "Tower A", nil, nil, nil, nil))

	rows, err := repo.Scan(context.Background(), model.AssignmentFilter{BuildingName: "Tower A", FloorNames: []string{"3F", "2F"}})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].HeldBy(employeeID))
	assert.Equal(t, "Alice", *rows[0].EmployeeName)
	assert.Equal(t, assignedAt, *rows[0].AssignedAt)
	assert.False(t, rows[1].IsHeld())
	assert.Nil(t, rows[1].AssignedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignment_Scan_HeldOnlyByEmployee(t *testing.T) {
	repo, _, mock := newAssignment(t)

	mock.ExpectQuery(`"users"\."id" IN \(\$1\)\) AND \("users"\."id" IS NOT NULL\)`).
		WithArgs(employeeID).
		WillReturnRows(sqlmock.NewRows(assignmentColumns))

	rows, err := repo.Scan(context.Background(), model.AssignmentFilter{EmployeeIDs: []string{employeeID}, HeldOnly: true})
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignment_AssigneeTx(t *testing.T) {
	t.Run("active employee", func(t *testing.T) {
		repo, db, mock := newAssignment(t)
		tx := begin(t, db, mock)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id", "name", "email", "assigned_building" FROM "users"`)).
			WithArgs(employeeID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "assigned_building"}).
				AddRow(employeeID, "Alice", "alice@example.com", "Tower A"))

		res, err := repo.AssigneeTx(context.Background(), tx, employeeID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", res.Name)
		require.NotNil(t, res.AssignedBuilding)
		assert.Equal(t, "Tower A", *res.AssignedBuilding)
	})

	t.Run("missing employee", func(t *testing.T) {
		repo, db, mock := newAssignment(t)
		tx := begin(t, db, mock)

		mock.ExpectQuery(`FROM "users"`).
			WithArgs(employeeID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "assigned_building"}))

		res, err := repo.AssigneeTx(context.Background(), tx, employeeID)
		require.NoError(t, err)
		assert.Empty(t, res.ID)
	})
}

func TestAssignment_InsertTx(t *testing.T) {
	repo, db, mock := newAssignment(t)
	tx := begin(t, db, mock)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "employee_floors" ("assigned_at", "employee_id", "floor_id") VALUES ($1, $2, $3), ($4, $5, $6)`)).
		WithArgs(sqlmock.AnyArg(), employeeID, "f3", sqlmock.AnyArg(), employeeID, "f2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.InsertTx(context.Background(), tx, employeeID, "f3", "f2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignment_InsertTx_Empty(t *testing.T) {
	repo, db, mock := newAssignment(t)
	tx := begin(t, db, mock)

	require.NoError(t, repo.InsertTx(context.Background(), tx, employeeID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignment_DeleteTx(t *testing.T) {
	t.Run("single floor", func(t *testing.T) {
		repo, db, mock := newAssignment(t)
		tx := begin(t, db, mock)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "employee_floors" WHERE (("employee_id" = $1) AND ("floor_id" IN ($2)))`)).
			WithArgs(employeeID, "f3").
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.DeleteTx(context.Background(), tx, employeeID, "f3")
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("every floor", func(t *testing.T) {
		repo, db, mock := newAssignment(t)
		tx := begin(t, db, mock)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "employee_floors" WHERE ("employee_id" = $1)`)).
			WithArgs(employeeID).
			WillReturnResult(sqlmock.NewResult(0, 3))

		affected, err := repo.DeleteTx(context.Background(), tx, employeeID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), affected)
	})
}

func TestAssignment_MoveBuildingTx(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		repo, db, mock := newAssignment(t)
		tx := begin(t, db, mock)

		renamed := "Tower B"

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "assigned_building"=$1,"modified_at"=$2,"modified_by"=$3 WHERE ("assigned_building" = $4)`)).
			WithArgs(renamed, sqlmock.AnyArg(), "admin-1", "Tower A").
			WillReturnResult(sqlmock.NewResult(0, 4))

		require.NoError(t, repo.MoveBuildingTx(context.Background(), tx, "Tower A", &renamed, "admin-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clear", func(t *testing.T) {
		repo, db, mock := newAssignment(t)
		tx := begin(t, db, mock)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "assigned_building"=$1,"modified_at"=$2,"modified_by"=$3 WHERE ("assigned_building" = $4)`)).
			WithArgs(nil, sqlmock.AnyArg(), "admin-1", "Tower A").
			WillReturnResult(sqlmock.NewResult(0, 4))

		require.NoError(t, repo.MoveBuildingTx(context.Background(), tx, "Tower A", nil, "admin-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
