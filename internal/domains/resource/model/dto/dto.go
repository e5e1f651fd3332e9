package dto

import (
	"mime/multipart"

	"courtside/internal/domains/resource/model"
	"courtside/shared"
	gDto "courtside/shared/dto"
)

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	PhotoFile multipart.File        `json:"-"`
}

type HoursResponse struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type PriceResponse struct {
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

type ResourceResponse struct {
	ID              string          `json:"id"`
	EstablishmentID string          `json:"establishment_id"`
	Name            string          `json:"name"`
	Kind            string          `json:"kind"`
	Sport           string          `json:"sport"`
	Description     string          `json:"description"`
	PhotoURL        string          `json:"photo_url"`
	Active          bool            `json:"active"`
	Hours           []HoursResponse `json:"hours,omitempty"`
	Prices          []PriceResponse `json:"prices,omitempty"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(model model.Resource) {
	r.ID = model.ID
	r.EstablishmentID = model.EstablishmentID
	r.Name = model.Name
	r.Kind = model.Kind
	r.Sport = model.Sport
	r.Description = model.Description
	r.PhotoURL = model.PhotoURL
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

func (r *ResourceResponse) AttachHours(hours []model.Hours) {
	r.Hours = make([]HoursResponse, len(hours))
	for i, h := range hours {
		r.Hours[i] = HoursResponse{
			Weekday:   h.Weekday,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		}
	}
}

func (r *ResourceResponse) AttachPrices(prices []model.Price) {
	r.Prices = make([]PriceResponse, len(prices))
	for i, p := range prices {
		r.Prices[i] = PriceResponse{
			DurationMinutes: p.DurationMinutes,
			Price:           p.Amount,
		}
	}
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Resources = make([]ResourceResponse, len(models))
	for i, mod := range models {
		r.Resources[i].FromModel(mod)
	}
}

type UploadPhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}
