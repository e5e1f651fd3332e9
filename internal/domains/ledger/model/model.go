package model

import (
	"courtside/shared/model"
)

const (
	TableName  = "ledger_entries"
	EntityName = "ledger_entry"

	FieldID               = "id"
	FieldBookingID        = "booking_id"
	FieldRecurringGroupID = "recurring_group_id"
	FieldAmount           = "amount"
	FieldMethod           = "method"
	FieldDirection        = "direction"
	FieldDescription      = "description"
)

const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Entry is one cash-register movement. It is written in the same
// transaction as the booking or group mutation it pays for.
type Entry struct {
	ID               string  `db:"id"`
	BookingID        *string `db:"booking_id"`
	RecurringGroupID *string `db:"recurring_group_id"`
	Amount           float64 `db:"amount"`
	Method           string  `db:"method"`
	Direction        string  `db:"direction"`
	Description      string  `db:"description"`
	model.Metadata
}
