package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	bookingModel "courtside/internal/domains/booking/model"
	ledgerModel "courtside/internal/domains/ledger/model"
	ledgerRepo "courtside/internal/domains/ledger/repository"
	"courtside/internal/domains/recurring/model"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
	gRepo "courtside/shared/repository"
	"courtside/shared/timezone"
)

const (
	// Guarded on the pending payment status so a concurrent payment of the
	// same occurrence updates zero rows instead of double counting.
	markOccurrencePaidQuery = `UPDATE bookings
		SET recurring_payment_status = :paid_status,
			payment_status = :payment_status,
			paid_amount = paid_amount + :amount,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :id
			AND status <> :cancelled_status
			AND recurring_payment_status = :pending_status`

	addGroupPaymentQuery = `UPDATE recurring_groups
		SET paid_bookings_count = paid_bookings_count + 1,
			total_paid = total_paid + :amount,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :id`

	cancelOccurrencesQuery = `UPDATE bookings
		SET status = :cancelled_status,
			cancelled_at = :modified_at,
			cancellation_reason = :reason,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id IN (:ids)
			AND status IN (:cancellable_statuses)`

	addGroupCancellationsQuery = `UPDATE recurring_groups
		SET cancelled_occurrences = cancelled_occurrences + :count,
			status = :status,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :id`
)

type Recurring interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Group, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ListBookings(ctx context.Context, groupID string) ([]bookingModel.Booking, error)
	CreateGroup(ctx context.Context, group model.Group, bookings []bookingModel.Booking, entry *ledgerModel.Entry) error
	PayOccurrence(ctx context.Context, bookingID, groupID string, amount float64, modifiedBy string, entry ledgerModel.Entry) error
	CancelOccurrences(ctx context.Context, bookingIDs []string, groupID, groupStatus, reason, modifiedBy string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Group]
	bookingRepo gRepo.Repository[bookingModel.Booking]
	ledgerRepo  ledgerRepo.Ledger
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel, ledgerRepo ledgerRepo.Ledger) Recurring {
	return &repositoryImpl{
		Repository:  gRepo.NewRepository[model.Group](model.EntityName, model.TableName, model.FieldID, db, otel),
		bookingRepo: gRepo.NewRepository[bookingModel.Booking](bookingModel.EntityName, bookingModel.TableName, bookingModel.FieldID, db, otel),
		ledgerRepo:  ledgerRepo,
		db:          db,
		otel:        otel,
	}
}

// ListBookings loads the group's child bookings ordered by sequence.
func (repo *repositoryImpl) ListBookings(ctx context.Context, groupID string) ([]bookingModel.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".recurring.ListBookings")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  bookingModel.FieldRecurringSequence,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldRecurringGroupID,
				Value:    groupID,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
		},
	}

	return repo.bookingRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// CreateGroup inserts the group row, every occurrence booking and the
// optional first-occurrence payment in a single transaction. Any failure
// rolls the whole series back; a partially created series would break the
// group's totalOccurrences invariant.
func (repo *repositoryImpl) CreateGroup(ctx context.Context, group model.Group, bookings []bookingModel.Booking, entry *ledgerModel.Entry) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".recurring.CreateGroup")
	defer scope.End()

	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.InsertTx(ctx, tx, group); err != nil {
			return err
		}

		if err := repo.bookingRepo.InsertBulkTx(ctx, tx, bookings); err != nil {
			return err
		}

		if entry != nil {
			if err := repo.ledgerRepo.InsertTx(ctx, tx, *entry); err != nil {
				return err
			}
		}

		return nil
	})

	if postgres.IsUniqueViolation(err) {
		return failure.Conflict("slot already booked") //nolint:wrapcheck
	}

	return err
}

// PayOccurrence marks one occurrence paid and moves the group counters and
// the ledger in the same transaction, so the counters never drift from their
// child aggregates. Both counter moves are SQL increments applied against the
// committed row, never absolute values computed from an earlier read. When
// the occurrence is no longer pending (a concurrent payment won) the guarded
// update touches zero rows and the whole transaction rolls back as NotFound.
func (repo *repositoryImpl) PayOccurrence(ctx context.Context, bookingID, groupID string, amount float64, modifiedBy string, entry ledgerModel.Entry) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".recurring.PayOccurrence")
	defer scope.End()

	now := timezone.Now()

	return repo.db.WithTx(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		result, err := tx.NamedExecContext(ctx, markOccurrencePaidQuery, map[string]any{
			"id":               bookingID,
			"amount":           amount,
			"paid_status":      constant.RecurringPaymentPaid,
			"payment_status":   constant.PaymentStatusPaid,
			"pending_status":   constant.RecurringPaymentPending,
			"cancelled_status": constant.BookingStatusCancelled,
			"modified_at":      now,
			"modified_by":      modifiedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to mark occurrence paid: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}

		if affected == 0 {
			return failure.NotFound("no pending occurrence to pay") //nolint:wrapcheck
		}

		if _, err = tx.NamedExecContext(ctx, addGroupPaymentQuery, map[string]any{
			"id":          groupID,
			"amount":      amount,
			"modified_at": now,
			"modified_by": modifiedBy,
		}); err != nil {
			return fmt.Errorf("failed to move group payment counters: %w", err)
		}

		return repo.ledgerRepo.InsertTx(ctx, tx, entry)
	})
}

// CancelOccurrences cancels the given occurrence bookings and moves the group
// counter (and possibly its terminal status) in one transaction, returning how
// many rows were actually cancelled. The booking update is guarded on the
// cancellable statuses and the counter increments by the guarded update's own
// row count, so occurrences a concurrent writer already cancelled or completed
// are never counted twice. Zero cancelled rows rolls back as NotFound.
func (repo *repositoryImpl) CancelOccurrences(ctx context.Context, bookingIDs []string, groupID, groupStatus, reason, modifiedBy string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".recurring.CancelOccurrences")
	defer scope.End()

	now := timezone.Now()
	cancelled := 0

	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := sqlx.Named(cancelOccurrencesQuery, map[string]any{
			"ids":                  bookingIDs,
			"reason":               reason,
			"cancelled_status":     constant.BookingStatusCancelled,
			"cancellable_statuses": []string{constant.BookingStatusPending, constant.BookingStatusConfirmed},
			"modified_at":          now,
			"modified_by":          modifiedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to bind cancellation query: %w", err)
		}

		query, args, err = sqlx.In(query, args...)
		if err != nil {
			return fmt.Errorf("failed to expand cancellation query: %w", err)
		}

		result, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
		if err != nil {
			return fmt.Errorf("failed to cancel occurrences: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}

		if affected == 0 {
			return failure.NotFound("no active occurrences to cancel") //nolint:wrapcheck
		}

		cancelled = int(affected)

		if _, err = tx.NamedExecContext(ctx, addGroupCancellationsQuery, map[string]any{
			"id":          groupID,
			"count":       cancelled,
			"status":      groupStatus,
			"modified_at": now,
			"modified_by": modifiedBy,
		}); err != nil {
			return fmt.Errorf("failed to move group cancellation counter: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return cancelled, nil
}
