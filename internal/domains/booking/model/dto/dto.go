package dto

import (
	"time"

	"github.com/google/uuid"

	"courtside/internal/domains/booking/model"
	"courtside/shared"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"
)

type CreateBookingRequest struct {
	ResourceID    string  `json:"resource_id"    validate:"required"`
	BookingDate   string  `json:"booking_date"   validate:"required,dateonly"`
	StartTime     string  `json:"start_time"     validate:"required,clock"`
	Duration      int     `json:"duration"       validate:"required,gt=0"`
	DepositAmount float64 `json:"deposit_amount" validate:"omitempty,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,max=30"`
}

// ToModel builds the booking row. The check-in code hash is attached by the
// service after generating the plain code.
func (c *CreateBookingRequest) ToModel(user string, endTime string, totalAmount float64) model.Booking {
	paymentStatus := constant.PaymentStatusUnpaid
	if c.DepositAmount > 0 {
		paymentStatus = constant.PaymentStatusDeposit
	}

	return model.Booking{
		ID:              uuid.NewString(),
		ResourceID:      c.ResourceID,
		ClientID:        user,
		BookingDate:     c.BookingDate,
		StartTime:       c.StartTime,
		EndTime:         endTime,
		DurationMinutes: c.Duration,
		Status:          constant.BookingStatusPending,
		PaymentStatus:   paymentStatus,
		TotalAmount:     totalAmount,
		PaidAmount:      c.DepositAmount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TransitionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed in_progress completed cancelled"`
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type ReassignRequest struct {
	ResourceID  string `json:"resource_id"  validate:"omitempty"`
	BookingDate string `json:"booking_date" validate:"omitempty,dateonly"`
	StartTime   string `json:"start_time"   validate:"omitempty,clock"`
}

type CheckInRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}

type BookingResponse struct {
	ID                     string     `json:"id"`
	ResourceID             string     `json:"resource_id"`
	ClientID               string     `json:"client_id"`
	BookingDate            string     `json:"booking_date"`
	StartTime              string     `json:"start_time"`
	EndTime                string     `json:"end_time"`
	Duration               int        `json:"duration"`
	Status                 string     `json:"status"`
	PaymentStatus          string     `json:"payment_status"`
	TotalAmount            float64    `json:"total_amount"`
	PaidAmount             float64    `json:"paid_amount"`
	RecurringGroupID       *string    `json:"recurring_group_id,omitempty"`
	RecurringSequence      *int       `json:"recurring_sequence,omitempty"`
	RecurringPaymentStatus *string    `json:"recurring_payment_status,omitempty"`
	ReviewToken            *string    `json:"review_token,omitempty"`
	ConfirmedAt            *time.Time `json:"confirmed_at,omitempty"`
	StartedAt              *time.Time `json:"started_at,omitempty"`
	CompletedAt            *time.Time `json:"completed_at,omitempty"`
	CancelledAt            *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason     *string    `json:"cancellation_reason,omitempty"`
	CheckInCode            string     `json:"check_in_code,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ResourceID = model.ResourceID
	r.ClientID = model.ClientID
	r.BookingDate = model.BookingDate
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Duration = model.DurationMinutes
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.TotalAmount = model.TotalAmount
	r.PaidAmount = model.PaidAmount
	r.RecurringGroupID = model.RecurringGroupID
	r.RecurringSequence = model.RecurringSequence
	r.RecurringPaymentStatus = model.RecurringPaymentStatus
	r.ReviewToken = model.ReviewToken
	r.ConfirmedAt = model.ConfirmedAt
	r.StartedAt = model.StartedAt
	r.CompletedAt = model.CompletedAt
	r.CancelledAt = model.CancelledAt
	r.CancellationReason = model.CancellationReason
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilitySlot struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	IsBooked bool   `json:"is_booked"`
}

type AvailabilityResponse struct {
	ResourceID string             `json:"resource_id"`
	Date       string             `json:"date"`
	Duration   int                `json:"duration"`
	Slots      []AvailabilitySlot `json:"slots"`
}
