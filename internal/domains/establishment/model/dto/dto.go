package dto

import (
	"courtside/internal/domains/establishment/model"
	gDto "courtside/shared/dto"
)

type EstablishmentResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Address               string  `json:"address"`
	Phone                 string  `json:"phone"`
	CancellationPolicy    string  `json:"cancellation_policy"`
	RefundPercentage      float64 `json:"refund_percentage"`
	MinNoticeHours        int     `json:"min_notice_hours"`
	RecurringRefundPolicy string  `json:"recurring_refund_policy"`
	gDto.Metadata
}

func (r *EstablishmentResponse) FromModel(model model.Establishment) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Phone = model.Phone
	r.CancellationPolicy = model.CancellationPolicy
	r.RefundPercentage = model.RefundPercentage
	r.MinNoticeHours = model.MinNoticeHours
	r.RecurringRefundPolicy = model.RecurringRefundPolicy
	r.Metadata.FromModel(model.Metadata)
}
