package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/booking/model"
	consumptionModel "courtside/internal/domains/consumption/model"
	consumptionRepo "courtside/internal/domains/consumption/repository"
	ledgerModel "courtside/internal/domains/ledger/model"
	ledgerRepo "courtside/internal/domains/ledger/repository"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
	gRepo "courtside/shared/repository"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ListActiveByResourceDate(ctx context.Context, resourceID, date, excludeID string) ([]model.Booking, error)
	Create(ctx context.Context, booking model.Booking, entry *ledgerModel.Entry) error
	Move(ctx context.Context, id string, fields map[string]any, destResourceID, destDate, destStart string) error
	UpdateStatus(ctx context.Context, id string, fields map[string]any, companion *consumptionModel.Consumption) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	ledgerRepo      ledgerRepo.Ledger
	consumptionRepo consumptionRepo.Consumption
	db              *postgres.Connection
	otel            otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel, ledgerRepo ledgerRepo.Ledger, consumptionRepo consumptionRepo.Consumption) Booking {
	return &repositoryImpl{
		Repository:      gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		ledgerRepo:      ledgerRepo,
		consumptionRepo: consumptionRepo,
		db:              db,
		otel:            otel,
	}
}

// ListActiveByResourceDate loads the bookings that hold exclusivity for a
// resource and date, optionally excluding one booking (for edits).
func (repo *repositoryImpl) ListActiveByResourceDate(ctx context.Context, resourceID, date, excludeID string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListActiveByResourceDate")
	defer scope.End()

	filters := []any{
		gDto.Filter{
			Field:    model.FieldResourceID,
			Value:    resourceID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldBookingDate,
			Value:    date,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.ActiveStatuses(),
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, gDto.FilterGroup{Filters: filters}) //nolint:wrapcheck
}

// Create inserts the booking and its optional deposit ledger entry in one
// transaction, purging any cancelled booking that still occupies the exact
// destination slot. A unique violation at commit time surfaces as Conflict.
func (repo *repositoryImpl) Create(ctx context.Context, booking model.Booking, entry *ledgerModel.Entry) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()

	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.purgeExactCancelledSlot(ctx, tx, booking.ResourceID, booking.BookingDate, booking.StartTime); err != nil {
			return err
		}

		if err := repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		if entry != nil {
			if err := repo.ledgerRepo.InsertTx(ctx, tx, *entry); err != nil {
				return err
			}
		}

		return nil
	})

	return mapSlotConflict(err)
}

// Move updates the booking's schedule fields in one transaction, purging any
// cancelled booking that still occupies the destination slot.
func (repo *repositoryImpl) Move(ctx context.Context, id string, fields map[string]any, destResourceID, destDate, destStart string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Move")
	defer scope.End()

	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.purgeExactCancelledSlot(ctx, tx, destResourceID, destDate, destStart); err != nil {
			return err
		}

		return repo.UpdateTx(ctx, tx, fields, filterByID(id))
	})

	return mapSlotConflict(err)
}

// UpdateStatus applies a status transition's field stamps and, when the
// transition opens a consumption record, inserts it in the same transaction.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id string, fields map[string]any, companion *consumptionModel.Consumption) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()

	return repo.db.WithTx(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		if err := repo.UpdateTx(ctx, tx, fields, filterByID(id)); err != nil {
			return err
		}

		if companion != nil {
			if err := repo.consumptionRepo.InsertTx(ctx, tx, *companion); err != nil {
				return err
			}
		}

		return nil
	})
}

// purgeExactCancelledSlot deletes any cancelled booking sitting on the exact
// destination tuple. Cancelled bookings hold no exclusivity and must not trip
// the partial unique index on insert.
func (repo *repositoryImpl) purgeExactCancelledSlot(ctx context.Context, tx *sqlx.Tx, resourceID, date, startTime string) error {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldResourceID,
				Value:    resourceID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartTime,
				Value:    startTime,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.BookingStatusCancelled,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.DeleteTx(ctx, tx, filter) //nolint:wrapcheck
}

func filterByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func mapSlotConflict(err error) error {
	if err == nil {
		return nil
	}

	if postgres.IsUniqueViolation(err) {
		return failure.Conflict("slot already booked") //nolint:wrapcheck
	}

	return err
}
