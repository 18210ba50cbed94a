package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=History=MockHistoryRepository

import (
	"context"

	"cleanrate/infras/otel"
	"cleanrate/infras/postgres"
	"cleanrate/internal/domains/history/model"
	gDto "cleanrate/shared/dto"
	gRepo "cleanrate/shared/repository"
)

type History interface {
	Insert(ctx context.Context, model model.History) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.History, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.History]
}

func New(db *postgres.Connection, otel otel.Otel) History {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.History](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
