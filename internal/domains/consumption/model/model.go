package model

import (
	"courtside/shared/model"
)

const (
	TableName  = "consumptions"
	EntityName = "consumption"

	FieldID        = "id"
	FieldBookingID = "booking_id"
)

// Consumption is the companion record opened when a booking goes
// in progress. It stores only the booking reference; the booking's
// status stays the single source of truth and any display status is a
// read-time projection over it.
type Consumption struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	model.Metadata
}
