package repository_test

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"courtside/infras/otel/mocks"
	"courtside/infras/postgres"
	"courtside/internal/domains/booking/model"
	"courtside/internal/domains/booking/repository"
	consumptionRepo "courtside/internal/domains/consumption/repository"
	ledgerRepo "courtside/internal/domains/ledger/repository"
	"courtside/shared/constant"
	"courtside/shared/failure"
	gModel "courtside/shared/model"
)

func newBookingRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}
	otl := mocks.NewOtel()

	return repository.New(conn, otl, ledgerRepo.New(conn, otl), consumptionRepo.New(conn, otl)), mock
}

func pendingBooking() model.Booking {
	return model.Booking{
		ID:              "booking-id",
		ResourceID:      "court-1",
		ClientID:        "client-id",
		BookingDate:     "2025-03-03",
		StartTime:       "19:00",
		EndTime:         "20:00",
		DurationMinutes: 60,
		Status:          constant.BookingStatusPending,
		PaymentStatus:   constant.PaymentStatusUnpaid,
		TotalAmount:     150000,
		Metadata: gModel.Metadata{
			CreatedBy:  "client-id",
			ModifiedBy: "client-id",
		},
	}
}

func TestBookingRepository_Create(t *testing.T) {
	t.Run("purges the cancelled occupant before inserting", func(t *testing.T) {
		repo, mock := newBookingRepository(t)

		mock.ExpectBegin()
		// A cancelled booking still sits on the destination tuple.
		mock.ExpectExec("DELETE FROM bookings").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), pendingBooking(), nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("free slot needs no purge", func(t *testing.T) {
		repo, mock := newBookingRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM bookings").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), pendingBooking(), nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation at insert surfaces as conflict", func(t *testing.T) {
		repo, mock := newBookingRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM bookings").
			WillReturnResult(sqlmock.NewResult(0, 0))
		// A concurrent insert won the slot between the conflict check and
		// commit; the partial unique index rejects ours.
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
		mock.ExpectRollback()

		err := repo.Create(context.Background(), pendingBooking(), nil)

		assert.Error(t, err)
		assert.True(t, failure.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
