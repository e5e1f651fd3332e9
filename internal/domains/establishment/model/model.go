package model

import (
	"courtside/shared/model"
)

const (
	TableName  = "establishments"
	EntityName = "establishment"

	FieldID                    = "id"
	FieldName                  = "name"
	FieldAddress               = "address"
	FieldPhone                 = "phone"
	FieldCancellationPolicy    = "cancellation_policy"
	FieldRefundPercentage      = "refund_percentage"
	FieldMinNoticeHours        = "min_notice_hours"
	FieldRecurringRefundPolicy = "recurring_refund_policy"
)

// Establishment owns bookable resources and carries the typed
// cancellation and refund policy applied to its bookings.
type Establishment struct {
	ID                    string  `db:"id"`
	Name                  string  `db:"name"`
	Address               string  `db:"address"`
	Phone                 string  `db:"phone"`
	CancellationPolicy    string  `db:"cancellation_policy"`
	RefundPercentage      float64 `db:"refund_percentage"`
	MinNoticeHours        int     `db:"min_notice_hours"`
	RecurringRefundPolicy string  `db:"recurring_refund_policy"`
	model.Metadata
}
