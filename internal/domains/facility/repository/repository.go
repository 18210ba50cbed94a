package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Building=MockBuildingRepository,Floor=MockFloorRepository,Room=MockRoomRepository

import (
	"context"

	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/facility/model"
	gDto "cleanrate/shared/dto"
	gRepo "cleanrate/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Building interface {
	Insert(ctx context.Context, model model.Building) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Building, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Building, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type Floor interface {
	Insert(ctx context.Context, model model.Floor) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Floor, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Floor, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type buildingImpl struct {
	gRepo.Repository[model.Building]
}

func NewBuilding(db *postgres.Connection, otel otel.Otel) Building {
	return &buildingImpl{
		Repository: gRepo.NewRepository[model.Building](model.EntityBuilding, model.TableBuilding, model.FieldID, db, otel),
	}
}

type floorImpl struct {
	gRepo.Repository[model.Floor]
}

func NewFloor(db *postgres.Connection, otel otel.Otel) Floor {
	return &floorImpl{
		Repository: gRepo.NewRepository[model.Floor](model.EntityFloor, model.TableFloor, model.FieldID, db, otel),
	}
}

type roomImpl struct {
	gRepo.Repository[model.Room]
}

func NewRoom(db *postgres.Connection, otel otel.Otel) Room {
	return &roomImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityRoom, model.TableRoom, model.FieldID, db, otel),
	}
}
