package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/establishment/model"
	gDto "courtside/shared/dto"
	gRepo "courtside/shared/repository"
)

type Establishment interface {
	Insert(ctx context.Context, model model.Establishment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Establishment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Establishment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Establishment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Establishment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Establishment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
