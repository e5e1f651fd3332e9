package model

import (
	"courtside/shared/model"
)

const (
	TableName  = "recurring_groups"
	EntityName = "recurring_group"

	FieldID                   = "id"
	FieldResourceID           = "resource_id"
	FieldClientID             = "client_id"
	FieldSport                = "sport"
	FieldDayOfWeek            = "day_of_week"
	FieldStartTime            = "start_time"
	FieldEndTime              = "end_time"
	FieldDurationMinutes      = "duration_minutes"
	FieldTotalOccurrences     = "total_occurrences"
	FieldPricePerBooking      = "price_per_booking"
	FieldPaidBookingsCount    = "paid_bookings_count"
	FieldTotalPaid            = "total_paid"
	FieldCancelledOccurrences = "cancelled_occurrences"
	FieldStatus               = "status"
)

// Group is a planned weekly booking series. Its counters are always
// recomputable as aggregates over the child bookings and must never
// drift from them; every counter update happens in the same
// transaction as the child mutation it reflects.
type Group struct {
	ID                   string  `db:"id"`
	ResourceID           string  `db:"resource_id"`
	ClientID             string  `db:"client_id"`
	Sport                string  `db:"sport"`
	DayOfWeek            int     `db:"day_of_week"`
	StartTime            string  `db:"start_time"`
	EndTime              string  `db:"end_time"`
	DurationMinutes      int     `db:"duration_minutes"`
	TotalOccurrences     int     `db:"total_occurrences"`
	PricePerBooking      float64 `db:"price_per_booking"`
	PaidBookingsCount    int     `db:"paid_bookings_count"`
	TotalPaid            float64 `db:"total_paid"`
	CancelledOccurrences int     `db:"cancelled_occurrences"`
	Status               string  `db:"status"`
	model.Metadata
}
