package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/resource/model"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	gRepo "courtside/shared/repository"
)

type Resource interface {
	Insert(ctx context.Context, model model.Resource) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Resource, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Resource, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetHours(ctx context.Context, resourceID string) ([]model.Hours, error)
	GetHoursForWeekday(ctx context.Context, resourceID string, weekday int) (model.Hours, error)
	GetPrices(ctx context.Context, resourceID string) ([]model.Price, error)
	GetAlternatives(ctx context.Context, establishmentID, sport, excludeResourceID string) ([]model.Resource, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Resource]
	hoursRepo gRepo.Repository[model.Hours]
	priceRepo gRepo.Repository[model.Price]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Resource {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Resource](model.EntityName, model.TableName, model.FieldID, db, otel),
		hoursRepo:  gRepo.NewRepository[model.Hours](model.HoursEntityName, model.HoursTableName, model.FieldID, db, otel),
		priceRepo:  gRepo.NewRepository[model.Price](model.PriceEntityName, model.PriceTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetHours(ctx context.Context, resourceID string) ([]model.Hours, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resource.GetHours")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  model.FieldHoursWeekday,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHoursResourceID,
				Value:    resourceID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HoursTableName,
			},
		},
	}

	return repo.hoursRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetHoursForWeekday(ctx context.Context, resourceID string, weekday int) (model.Hours, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resource.GetHoursForWeekday")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHoursResourceID,
				Value:    resourceID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HoursTableName,
			},
			gDto.Filter{
				Field:    model.FieldHoursWeekday,
				Value:    weekday,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HoursTableName,
			},
		},
	}

	return repo.hoursRepo.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetPrices(ctx context.Context, resourceID string) ([]model.Price, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resource.GetPrices")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  model.FieldPriceDuration,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPriceResourceID,
				Value:    resourceID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.PriceTableName,
			},
		},
	}

	return repo.priceRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// GetAlternatives lists the active resources of the same sport at the same
// establishment, excluding the resource being checked.
func (repo *repositoryImpl) GetAlternatives(ctx context.Context, establishmentID, sport, excludeResourceID string) ([]model.Resource, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".resource.GetAlternatives")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEstablishmentID,
				Value:    establishmentID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldSport,
				Value:    sport,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "exclude_id",
				Field:    model.FieldID,
				Value:    excludeResourceID,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}
