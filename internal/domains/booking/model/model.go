package model

import (
	"time"

	"courtside/shared/constant"
	"courtside/shared/model"
	"courtside/shared/timeslot"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                     = "id"
	FieldResourceID             = "resource_id"
	FieldClientID               = "client_id"
	FieldBookingDate            = "booking_date"
	FieldStartTime              = "start_time"
	FieldEndTime                = "end_time"
	FieldDurationMinutes        = "duration_minutes"
	FieldStatus                 = "status"
	FieldPaymentStatus          = "payment_status"
	FieldTotalAmount            = "total_amount"
	FieldPaidAmount             = "paid_amount"
	FieldRecurringGroupID       = "recurring_group_id"
	FieldRecurringSequence      = "recurring_sequence"
	FieldRecurringPaymentStatus = "recurring_payment_status"
	FieldCheckInCodeHash        = "check_in_code_hash"
	FieldReviewToken            = "review_token"
	FieldConfirmedAt            = "confirmed_at"
	FieldStartedAt              = "started_at"
	FieldCompletedAt            = "completed_at"
	FieldCancelledAt            = "cancelled_at"
	FieldCancellationReason     = "cancellation_reason"
)

// Booking is one reservation of a resource for a date and interval.
// Dates are "2006-01-02" and times "15:04"; interval math happens in
// minute-of-day coordinates via the timeslot package.
type Booking struct {
	ID                     string     `db:"id"`
	ResourceID             string     `db:"resource_id"`
	ClientID               string     `db:"client_id"`
	BookingDate            string     `db:"booking_date"`
	StartTime              string     `db:"start_time"`
	EndTime                string     `db:"end_time"`
	DurationMinutes        int        `db:"duration_minutes"`
	Status                 string     `db:"status"`
	PaymentStatus          string     `db:"payment_status"`
	TotalAmount            float64    `db:"total_amount"`
	PaidAmount             float64    `db:"paid_amount"`
	RecurringGroupID       *string    `db:"recurring_group_id"`
	RecurringSequence      *int       `db:"recurring_sequence"`
	RecurringPaymentStatus *string    `db:"recurring_payment_status"`
	CheckInCodeHash        *string    `db:"check_in_code_hash"`
	ReviewToken            *string    `db:"review_token"`
	ConfirmedAt            *time.Time `db:"confirmed_at"`
	StartedAt              *time.Time `db:"started_at"`
	CompletedAt            *time.Time `db:"completed_at"`
	CancelledAt            *time.Time `db:"cancelled_at"`
	CancellationReason     *string    `db:"cancellation_reason"`
	model.Metadata
}

// Interval returns the booking's start and end in raw minute-of-day
// coordinates. The end falls back to start plus duration when no end
// time was recorded.
func (b *Booking) Interval() (start, end int, err error) {
	start, err = timeslot.ToMinutes(b.StartTime)
	if err != nil {
		return 0, 0, err
	}

	if b.EndTime != constant.Empty {
		end, err = timeslot.ToMinutes(b.EndTime)
		if err != nil {
			return 0, 0, err
		}

		if end <= start {
			end += constant.MinutesPerDay
		}

		return start, end, nil
	}

	return start, start + b.DurationMinutes, nil
}

// ActiveStatuses are the statuses that hold exclusivity over a slot.
func ActiveStatuses() []string {
	return []string{
		constant.BookingStatusPending,
		constant.BookingStatusConfirmed,
		constant.BookingStatusInProgress,
	}
}

// CanTransition reports whether the lifecycle allows moving from one
// status to another. Completed and cancelled are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case constant.BookingStatusPending:
		return to == constant.BookingStatusConfirmed || to == constant.BookingStatusCancelled
	case constant.BookingStatusConfirmed:
		return to == constant.BookingStatusInProgress || to == constant.BookingStatusCancelled
	case constant.BookingStatusInProgress:
		return to == constant.BookingStatusCompleted
	default:
		return false
	}
}
