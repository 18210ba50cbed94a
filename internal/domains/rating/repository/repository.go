package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Rating=MockRatingRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/rating/model"
	"cleanrate/shared/constant"
	gDto "cleanrate/shared/dto"
	"cleanrate/shared/logger"
	gRepo "cleanrate/shared/repository"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // postgres dialect
	"github.com/jmoiron/sqlx"
)

type Rating interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Rating) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rating, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Rating, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	// LockTx serializes writers of the same key until the transaction ends.
	LockTx(ctx context.Context, sqltx *sqlx.Tx, key string) error
	// TargetTx resolves an active employee and an active room, zero value when either is missing.
	TargetTx(ctx context.Context, sqltx *sqlx.Tx, employeeID, roomID string) (model.Target, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Rating, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rating]
	db      *postgres.Connection
	otel    otel.Otel
	dialect goqu.DialectWrapper
}

func New(db *postgres.Connection, otel otel.Otel) Rating {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rating](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
		dialect:    goqu.Dialect("postgres"),
	}
}

func (repo *repositoryImpl) LockTx(ctx context.Context, sqltx *sqlx.Tx, key string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rating.LockTx")
	defer scope.End()

	if err := postgres.AdvisoryLock(ctx, sqltx, key); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

func (repo *repositoryImpl) TargetTx(ctx context.Context, sqltx *sqlx.Tx, employeeID, roomID string) (res model.Target, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rating.TargetTx")
	defer scope.End()

	query, args, err := repo.dialect.
		From(goqu.T("users")).
		Prepared(true).
		CrossJoin(goqu.T("rooms")).
		Select(
			goqu.I("users.name").As("employee_name"),
			goqu.I("rooms.room_name"),
		).
		Where(
			goqu.I("users.id").Eq(employeeID),
			goqu.I("users.user_type").Eq(constant.UserTypeEmployee),
			goqu.I("users.is_active").IsTrue(),
			goqu.I("rooms.id").Eq(roomID),
			goqu.I("rooms.is_active").IsTrue(),
		).
		ToSQL()
	if err != nil {
		return res, fmt.Errorf("failed to build rating target query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = sqltx.GetContext(ctx, &res, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Target{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get rating target: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) listQuery(filter model.ListFilter) (string, []any, error) {
	where := []goqu.Expression{}

	if len(filter.EmployeeIDs) > 0 {
		where = append(where, goqu.I("ratings.employee_id").In(filter.EmployeeIDs))
	}

	if filter.From != nil {
		where = append(where, goqu.I("ratings.rated_on").Gte(filter.From.Format(constant.DayFormat)))
	}

	if filter.To != nil {
		where = append(where, goqu.I("ratings.rated_on").Lte(filter.To.Format(constant.DayFormat)))
	}

	query, args, err := repo.dialect.
		From(model.TableName).
		Prepared(true).
		Select(
			goqu.I("ratings.id"),
			goqu.I("ratings.employee_id"),
			goqu.I("ratings.room_id"),
			goqu.I("ratings.rating"),
			goqu.I("ratings.notes"),
			goqu.I("ratings.rated_by"),
			goqu.I("ratings.rated_at"),
			goqu.I("ratings.rated_on"),
			goqu.I("users.name").As("employee_name"),
			goqu.I("rooms.room_name"),
			goqu.I("floors.floor_name"),
			goqu.I("buildings.name").As("building_name"),
			goqu.I("raters.name").As("rated_by_name"),
		).
		Join(goqu.T("users"), goqu.On(goqu.I("users.id").Eq(goqu.I("ratings.employee_id")))).
		Join(goqu.T("rooms"), goqu.On(goqu.I("rooms.id").Eq(goqu.I("ratings.room_id")))).
		Join(goqu.T("floors"), goqu.On(goqu.I("floors.id").Eq(goqu.I("rooms.floor_id")))).
		Join(goqu.T("buildings"), goqu.On(goqu.I("buildings.id").Eq(goqu.I("floors.building_id")))).
		LeftJoin(goqu.T("users").As("raters"), goqu.On(goqu.I("raters.id").Eq(goqu.I("ratings.rated_by")))).
		Where(where...).
		Order(goqu.I("ratings.rated_at").Desc()).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build rating list query: %w", err)
	}

	return query, args, nil
}

func (repo *repositoryImpl) List(ctx context.Context, filter model.ListFilter) ([]model.Rating, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rating.List")
	defer scope.End()

	query, args, err := repo.listQuery(filter)
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []model.Rating{}

	if err = sqlx.SelectContext(ctx, repo.db.Read, &models, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}

	return models, nil
}
