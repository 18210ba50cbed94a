package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Dashboard=MockDashboardRepository

import (
	"context"
	"fmt"

	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/dashboard/model"
	"cleanrate/shared/constant"
	"cleanrate/shared/logger"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // postgres dialect
	"github.com/jmoiron/sqlx"
)

var (
	lastRating = goqu.L(`(SELECT "r"."rating" FROM "ratings" AS "r" WHERE "r"."room_id" = "rooms"."id" ORDER BY "r"."rated_at" DESC LIMIT 1)`)
	lastRated  = goqu.L(`(SELECT "r"."rated_at" FROM "ratings" AS "r" WHERE "r"."room_id" = "rooms"."id" ORDER BY "r"."rated_at" DESC LIMIT 1)`)
)

// Dashboard runs the read only rollups. Days are YYYY-MM-DD strings compared against ratings.rated_on.
type Dashboard interface {
	Stats(ctx context.Context, since string) (model.Stats, error)
	TopPerformers(ctx context.Context, since string, limit int) ([]model.Performer, error)
	CompletedTasks(ctx context.Context, day string) ([]model.Task, error)
	PendingTasks(ctx context.Context, day string) ([]model.Task, error)
}

type repositoryImpl struct {
	db      *postgres.Connection
	otel    otel.Otel
	dialect goqu.DialectWrapper
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:      db,
		otel:    otel,
		dialect: goqu.Dialect("postgres"),
	}
}

func activeEmployee() []goqu.Expression {
	return []goqu.Expression{
		goqu.I("users.user_type").Eq(constant.UserTypeEmployee),
		goqu.I("users.is_active").IsTrue(),
	}
}

func (repo *repositoryImpl) get(ctx context.Context, scope otel.Scope, dest any, ds *goqu.SelectDataset) error {
	query, args, err := ds.ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build dashboard query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = sqlx.GetContext(ctx, repo.db.Read, dest, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to query dashboard: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) selectAll(ctx context.Context, scope otel.Scope, dest any, ds *goqu.SelectDataset) error {
	query, args, err := ds.ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build dashboard query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = sqlx.SelectContext(ctx, repo.db.Read, dest, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to query dashboard: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Stats(ctx context.Context, since string) (res model.Stats, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Stats")
	defer scope.End()

	employees := repo.dialect.From("users").Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		Where(activeEmployee()...)
	if err = repo.get(ctx, scope, &res.TotalEmployees, employees); err != nil {
		return res, err
	}

	buildings := repo.dialect.From("buildings").Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.I("buildings.is_active").IsTrue())
	if err = repo.get(ctx, scope, &res.TotalBuildings, buildings); err != nil {
		return res, err
	}

	average := repo.dialect.From("ratings").Prepared(true).
		Select(goqu.AVG(goqu.I("ratings.rating"))).
		Where(goqu.I("ratings.rated_on").Gte(since))
	if err = repo.get(ctx, scope, &res.AverageRating, average); err != nil {
		return res, err
	}

	return res, nil
}

func (repo *repositoryImpl) TopPerformers(ctx context.Context, since string, limit int) ([]model.Performer, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.TopPerformers")
	defer scope.End()

	ds := repo.dialect.From("users").Prepared(true).
		Select(
			goqu.I("users.id"),
			goqu.I("users.name"),
			goqu.I("users.email"),
			goqu.I("users.profile_picture"),
			goqu.AVG(goqu.I("ratings.rating")).As("average_rating"),
			goqu.COUNT(goqu.I("ratings.id")).As("total_ratings"),
		).
		Join(goqu.T("ratings"), goqu.On(goqu.I("ratings.employee_id").Eq(goqu.I("users.id")))).
		Where(append(activeEmployee(), goqu.I("ratings.rated_on").Gte(since))...).
		GroupBy(goqu.I("users.id"), goqu.I("users.name"), goqu.I("users.email"), goqu.I("users.profile_picture")).
		Order(goqu.I("average_rating").Desc(), goqu.I("total_ratings").Desc(), goqu.I("users.name").Asc()).
		Limit(uint(limit)) //nolint:gosec

	res := []model.Performer{}
	if err := repo.selectAll(ctx, scope, &res, ds); err != nil {
		return nil, err
	}

	return res, nil
}

func (repo *repositoryImpl) CompletedTasks(ctx context.Context, day string) ([]model.Task, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.CompletedTasks")
	defer scope.End()

	ds := repo.dialect.From("ratings").Prepared(true).
		Select(
			goqu.I("ratings.room_id"),
			goqu.I("buildings.name").As("building_name"),
			goqu.I("floors.floor_name"),
			goqu.I("rooms.room_name"),
			goqu.I("ratings.employee_id"),
			goqu.I("users.name").As("employee_name"),
			goqu.I("ratings.rating").As("last_rating"),
			goqu.I("ratings.rated_at").As("last_rating_date"),
		).
		Join(goqu.T("rooms"), goqu.On(goqu.I("rooms.id").Eq(goqu.I("ratings.room_id")))).
		Join(goqu.T("floors"), goqu.On(goqu.I("floors.id").Eq(goqu.I("rooms.floor_id")))).
		Join(goqu.T("buildings"), goqu.On(goqu.I("buildings.id").Eq(goqu.I("floors.building_id")))).
		Join(goqu.T("users"), goqu.On(goqu.I("users.id").Eq(goqu.I("ratings.employee_id")))).
		Where(append(activeEmployee(), goqu.I("ratings.rated_on").Eq(day))...).
		Order(goqu.I("ratings.rated_at").Desc())

	res := []model.Task{}
	if err := repo.selectAll(ctx, scope, &res, ds); err != nil {
		return nil, err
	}

	return res, nil
}

// PendingTasks lists the active rooms on assigned floors that nobody rated on day.
func (repo *repositoryImpl) PendingTasks(ctx context.Context, day string) ([]model.Task, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.PendingTasks")
	defer scope.End()

	where := append(activeEmployee(),
		goqu.I("buildings.is_active").IsTrue(),
		goqu.I("floors.is_active").IsTrue(),
		goqu.I("rooms.is_active").IsTrue(),
		goqu.L(`NOT EXISTS (SELECT 1 FROM "ratings" AS "r" WHERE "r"."room_id" = "rooms"."id" AND "r"."rated_on" = ?)`, day),
	)

	ds := repo.dialect.From("rooms").Prepared(true).
		Select(
			goqu.I("rooms.id").As("room_id"),
			goqu.I("buildings.name").As("building_name"),
			goqu.I("floors.floor_name"),
			goqu.I("rooms.room_name"),
			goqu.I("users.id").As("employee_id"),
			goqu.I("users.name").As("employee_name"),
			lastRating.As("last_rating"),
			lastRated.As("last_rating_date"),
		).
		Join(goqu.T("floors"), goqu.On(goqu.I("floors.id").Eq(goqu.I("rooms.floor_id")))).
		Join(goqu.T("buildings"), goqu.On(goqu.I("buildings.id").Eq(goqu.I("floors.building_id")))).
		Join(goqu.T("employee_floors"), goqu.On(goqu.I("employee_floors.floor_id").Eq(goqu.I("floors.id")))).
		Join(goqu.T("users"), goqu.On(goqu.I("users.id").Eq(goqu.I("employee_floors.employee_id")))).
		Where(where...).
		Order(goqu.I("buildings.name").Asc(), goqu.I("floors.floor_name").Asc(), goqu.I("rooms.room_name").Asc())

	res := []model.Task{}
	if err := repo.selectAll(ctx, scope, &res, ds); err != nil {
		return nil, err
	}

	return res, nil
}
