package dto

import (
	"github.com/google/uuid"

	bookingDto "courtside/internal/domains/booking/model/dto"
	"courtside/internal/domains/recurring/model"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"
)

type CheckAvailabilityRequest struct {
	ResourceID string   `json:"resource_id" validate:"required"`
	StartDate  string   `json:"start_date"  validate:"required_without=Dates,omitempty,dateonly"`
	TotalWeeks int      `json:"total_weeks" validate:"required_without=Dates,omitempty,gt=0,lte=52"`
	Dates      []string `json:"dates"       validate:"omitempty,dive,dateonly"`
	StartTime  string   `json:"start_time"  validate:"required,clock"`
	Duration   int      `json:"duration"    validate:"required,gt=0"`
}

type AlternativeOption struct {
	ResourceID string `json:"resource_id"`
	Name       string `json:"name"`
	Available  bool   `json:"available"`
}

// DateReport is the availability verdict for one planned date. An
// unresolved date has no free resource and is skipped at creation time
// unless the caller overrides it.
type DateReport struct {
	Date               string              `json:"date"`
	Available          bool                `json:"available"`
	SelectedResourceID string              `json:"selected_resource_id,omitempty"`
	Unresolved         bool                `json:"unresolved"`
	Alternatives       []AlternativeOption `json:"alternatives,omitempty"`
}

type CheckAvailabilityResponse struct {
	ResourceID string       `json:"resource_id"`
	StartTime  string       `json:"start_time"`
	Duration   int          `json:"duration"`
	Dates      []DateReport `json:"dates"`
}

type DateConfiguration struct {
	Date       string `json:"date"        validate:"required,dateonly"`
	ResourceID string `json:"resource_id" validate:"omitempty"`
	Skip       bool   `json:"skip"`
}

type CreateGroupRequest struct {
	ResourceID         string              `json:"resource_id"         validate:"required"`
	StartDate          string              `json:"start_date"          validate:"required,dateonly"`
	TotalWeeks         int                 `json:"total_weeks"         validate:"required,gt=0,lte=52"`
	StartTime          string              `json:"start_time"          validate:"required,clock"`
	Duration           int                 `json:"duration"            validate:"required,gt=0"`
	InitialPayment     float64             `json:"initial_payment"     validate:"omitempty,gt=0"`
	PaymentMethod      string              `json:"payment_method"      validate:"omitempty,max=30"`
	DateConfigurations []DateConfiguration `json:"date_configurations" validate:"omitempty,dive"`
}

func (c *CreateGroupRequest) ToModel(user, endTime, sport string, dayOfWeek, totalOccurrences int, pricePerBooking float64) model.Group {
	return model.Group{
		ID:               uuid.NewString(),
		ResourceID:       c.ResourceID,
		ClientID:         user,
		Sport:            sport,
		DayOfWeek:        dayOfWeek,
		StartTime:        c.StartTime,
		EndTime:          endTime,
		DurationMinutes:  c.Duration,
		TotalOccurrences: totalOccurrences,
		PricePerBooking:  pricePerBooking,
		Status:           constant.GroupStatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PayOccurrenceRequest struct {
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	Method    string  `json:"method"     validate:"required,max=30"`
	BookingID string  `json:"booking_id" validate:"omitempty"`
}

type CancelGroupRequest struct {
	Mode      string `json:"mode"      validate:"required,oneof=single from_date all_pending"`
	Reference string `json:"reference" validate:"required_unless=Mode all_pending"`
	Reason    string `json:"reason"    validate:"required,max=255"`
}

type RefundEstimate struct {
	Amount float64 `json:"amount"`
	Policy string  `json:"policy"`
}

type GroupResponse struct {
	ID                   string  `json:"id"`
	ResourceID           string  `json:"resource_id"`
	ClientID             string  `json:"client_id"`
	Sport                string  `json:"sport"`
	DayOfWeek            int     `json:"day_of_week"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	Duration             int     `json:"duration"`
	TotalOccurrences     int     `json:"total_occurrences"`
	PricePerBooking      float64 `json:"price_per_booking"`
	PaidBookingsCount    int     `json:"paid_bookings_count"`
	TotalPaid            float64 `json:"total_paid"`
	CancelledOccurrences int     `json:"cancelled_occurrences"`
	Status               string  `json:"status"`
	gDto.Metadata
}

func (r *GroupResponse) FromModel(model model.Group) {
	r.ID = model.ID
	r.ResourceID = model.ResourceID
	r.ClientID = model.ClientID
	r.Sport = model.Sport
	r.DayOfWeek = model.DayOfWeek
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Duration = model.DurationMinutes
	r.TotalOccurrences = model.TotalOccurrences
	r.PricePerBooking = model.PricePerBooking
	r.PaidBookingsCount = model.PaidBookingsCount
	r.TotalPaid = model.TotalPaid
	r.CancelledOccurrences = model.CancelledOccurrences
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type CreateGroupResponse struct {
	Group    GroupResponse                `json:"group"`
	Bookings []bookingDto.BookingResponse `json:"bookings"`
}

type GetGroupResponse struct {
	Group    GroupResponse                `json:"group"`
	Bookings []bookingDto.BookingResponse `json:"bookings"`
}

type CancelGroupResponse struct {
	Group             GroupResponse  `json:"group"`
	CancelledBookings []string       `json:"cancelled_bookings"`
	RefundEstimate    RefundEstimate `json:"refund_estimate"`
}
