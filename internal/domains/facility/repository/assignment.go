package repository

//go:generate go run go.uber.org/mock/mockgen -source=./assignment.go -destination=../mocks/assignment_mock.go -package=mocks -mock_names=Assignment=MockAssignmentRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/facility/model"
	"cleanrate/shared/constant"
	"cleanrate/shared/logger"
	"cleanrate/shared/timezone"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // postgres dialect
	"github.com/jmoiron/sqlx"
)

// Assignment reads and writes employee_floors. Scans only ever see active
// floors of active buildings, and only active employees count as holders.
type Assignment interface {
	Scan(ctx context.Context, filter model.AssignmentFilter) ([]model.FloorAssignment, error)
	ScanTx(ctx context.Context, tx *sqlx.Tx, filter model.AssignmentFilter) ([]model.FloorAssignment, error)
	AssigneeTx(ctx context.Context, tx *sqlx.Tx, employeeID string) (model.Assignee, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, employeeID string, floorIDs ...string) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, employeeID string, floorIDs ...string) (int64, error)
	SetBuildingTx(ctx context.Context, tx *sqlx.Tx, employeeID string, building *string, user string) error
	// MoveBuildingTx points every employee assigned to building "from" at "to", or clears it when to is nil.
	MoveBuildingTx(ctx context.Context, tx *sqlx.Tx, from string, to *string, user string) error
}

type assignmentImpl struct {
	db      *postgres.Connection
	otel    otel.Otel
	dialect goqu.DialectWrapper
}

func NewAssignment(db *postgres.Connection, otel otel.Otel) Assignment {
	return &assignmentImpl{
		db:      db,
		otel:    otel,
		dialect: goqu.Dialect("postgres"),
	}
}

func (repo *assignmentImpl) scanQuery(filter model.AssignmentFilter) (string, []any, error) {
	where := []goqu.Expression{
		goqu.I("floors.is_active").IsTrue(),
		goqu.I("buildings.is_active").IsTrue(),
	}

	if filter.BuildingName != "" {
		where = append(where, goqu.I("buildings.name").Eq(filter.BuildingName))
	}

	if len(filter.FloorNames) > 0 {
		where = append(where, goqu.I("floors.floor_name").In(filter.FloorNames))
	}

	if filter.FloorID != "" {
		where = append(where, goqu.I("floors.id").Eq(filter.FloorID))
	}

	if len(filter.EmployeeIDs) > 0 {
		where = append(where, goqu.I("users.id").In(filter.EmployeeIDs))
	}

	if filter.HeldOnly {
		where = append(where, goqu.I("users.id").IsNotNull())
	}

	query, args, err := repo.dialect.
		From(model.TableFloor).
		Prepared(true).
		Select(
			goqu.I("floors.id").As("floor_id"),
			goqu.I("floors.floor_name"),
			goqu.I("floors.floor_number"),
			goqu.I("buildings.id").As("building_id"),
			goqu.I("buildings.name").As("building_name"),
			goqu.I("users.id").As("employee_id"),
			goqu.I("users.name").As("employee_name"),
			goqu.I("users.email").As("employee_email"),
			goqu.I("employee_floors.assigned_at"),
		).
		Join(goqu.T(model.TableBuilding), goqu.On(goqu.I("buildings.id").Eq(goqu.I("floors.building_id")))).
		LeftJoin(goqu.T(model.TableEmployeeFloor), goqu.On(goqu.I("employee_floors.floor_id").Eq(goqu.I("floors.id")))).
		LeftJoin(goqu.T(model.TableUser), goqu.On(
			goqu.I("users.id").Eq(goqu.I("employee_floors.employee_id")),
			goqu.I("users.is_active").IsTrue(),
		)).
		Where(where...).
		Order(
			goqu.I("buildings.name").Asc(),
			goqu.I("floors.floor_number").Desc(),
			goqu.I("floors.floor_name").Asc(),
			goqu.I("employee_floors.assigned_at").Asc().NullsLast(),
		).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build floor assignment query: %w", err)
	}

	return query, args, nil
}

func (repo *assignmentImpl) scan(ctx context.Context, db sqlx.QueryerContext, filter model.AssignmentFilter) ([]model.FloorAssignment, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".assignment.scan")
	defer scope.End()

	query, args, err := repo.scanQuery(filter)
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []model.FloorAssignment{}

	if err = sqlx.SelectContext(ctx, db, &models, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to scan floor assignments: %w", err)
	}

	return models, nil
}

func (repo *assignmentImpl) Scan(ctx context.Context, filter model.AssignmentFilter) ([]model.FloorAssignment, error) {
	return repo.scan(ctx, repo.db.Read, filter)
}

func (repo *assignmentImpl) ScanTx(ctx context.Context, tx *sqlx.Tx, filter model.AssignmentFilter) ([]model.FloorAssignment, error) {
	return repo.scan(ctx, tx, filter)
}

func (repo *assignmentImpl) AssigneeTx(ctx context.Context, tx *sqlx.Tx, employeeID string) (res model.Assignee, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".assignment.AssigneeTx")
	defer scope.End()

	query, args, err := repo.dialect.
		From(model.TableUser).
		Prepared(true).
		Select(model.FieldID, model.FieldName, model.FieldEmail, model.FieldBuilding).
		Where(goqu.C(model.FieldID).Eq(employeeID), goqu.C(model.FieldIsActive).IsTrue()).
		ToSQL()
	if err != nil {
		return res, fmt.Errorf("failed to build assignee query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &res, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Assignee{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get assignee: %w", err)
	}

	return res, nil
}

func (repo *assignmentImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, employeeID string, floorIDs ...string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".assignment.InsertTx")
	defer scope.End()

	if len(floorIDs) == 0 {
		return nil
	}

	now := timezone.Now()
	rows := make([]any, len(floorIDs))

	for i, floorID := range floorIDs {
		rows[i] = goqu.Record{
			model.FieldEmployeeID: employeeID,
			model.FieldFloorID:    floorID,
			model.FieldAssignedAt: now,
		}
	}

	query, args, err := repo.dialect.Insert(model.TableEmployeeFloor).Prepared(true).Rows(rows...).ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build floor assignment insert: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert floor assignments: %w", err)
	}

	return nil
}

// DeleteTx removes the given floors from the employee, or every floor when none are given.
func (repo *assignmentImpl) DeleteTx(ctx context.Context, tx *sqlx.Tx, employeeID string, floorIDs ...string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".assignment.DeleteTx")
	defer scope.End()

	where := goqu.Ex{model.FieldEmployeeID: employeeID}
	if len(floorIDs) > 0 {
		where[model.FieldFloorID] = floorIDs
	}

	query, args, err := repo.dialect.Delete(model.TableEmployeeFloor).Prepared(true).Where(where).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build floor assignment delete: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete floor assignments: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted floor assignments: %w", err)
	}

	return affected, nil
}

func (repo *assignmentImpl) SetBuildingTx(ctx context.Context, tx *sqlx.Tx, employeeID string, building *string, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".assignment.SetBuildingTx")
	defer scope.End()

	return repo.updateBuilding(ctx, tx, goqu.C(model.FieldID).Eq(employeeID), building, user)
}

func (repo *assignmentImpl) MoveBuildingTx(ctx context.Context, tx *sqlx.Tx, from string, to *string, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".assignment.MoveBuildingTx")
	defer scope.End()

	return repo.updateBuilding(ctx, tx, goqu.C(model.FieldBuilding).Eq(from), to, user)
}

func (repo *assignmentImpl) updateBuilding(ctx context.Context, tx *sqlx.Tx, where goqu.Expression, building *string, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".assignment.updateBuilding")
	defer scope.End()

	var value any
	if building != nil {
		value = *building
	}

	query, args, err := repo.dialect.
		Update(model.TableUser).
		Prepared(true).
		Set(goqu.Record{
			model.FieldBuilding:   value,
			model.FieldModifiedAt: timezone.Now(),
			model.FieldModifiedBy: user,
		}).
		Where(where).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build assigned building update: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update assigned building: %w", err)
	}

	return nil
}
