package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/consumption/model"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	gRepo "courtside/shared/repository"
)

type Consumption interface {
	Insert(ctx context.Context, model model.Consumption) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Consumption) error
	ExistsForBooking(ctx context.Context, bookingID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Consumption]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Consumption {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Consumption](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) ExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consumption.ExistsForBooking")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.Exist(ctx, filter) //nolint:wrapcheck
}
