package model

import (
	"courtside/shared/model"
)

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID              = "id"
	FieldEstablishmentID = "establishment_id"
	FieldName            = "name"
	FieldKind            = "kind"
	FieldSport           = "sport"
	FieldDescription     = "description"
	FieldPhotoURL        = "photo_url"
	FieldActive          = "active"
)

const (
	HoursTableName  = "resource_hours"
	HoursEntityName = "resource_hours"

	FieldHoursResourceID = "resource_id"
	FieldHoursWeekday    = "weekday"
	FieldHoursOpenTime   = "open_time"
	FieldHoursCloseTime  = "close_time"
)

const (
	PriceTableName  = "resource_prices"
	PriceEntityName = "resource_price"

	FieldPriceResourceID = "resource_id"
	FieldPriceDuration   = "duration_minutes"
	FieldPriceAmount     = "price"
)

// Resource is a bookable court or amenity owned by an establishment.
type Resource struct {
	ID              string `db:"id"`
	EstablishmentID string `db:"establishment_id"`
	Name            string `db:"name"`
	Kind            string `db:"kind"`
	Sport           string `db:"sport"`
	Description     string `db:"description"`
	PhotoURL        string `db:"photo_url"`
	Active          bool   `db:"active"`
	model.Metadata
}

// Hours is one weekday row of a resource's weekly schedule. Open and
// close are "HH:MM"; a close numerically at or before the open means
// the window runs past local midnight.
type Hours struct {
	ID         string `db:"id"`
	ResourceID string `db:"resource_id"`
	Weekday    int    `db:"weekday"`
	OpenTime   string `db:"open_time"`
	CloseTime  string `db:"close_time"`
	model.Metadata
}

// Price is one duration-based price tier for a resource.
type Price struct {
	ID              string  `db:"id"`
	ResourceID      string  `db:"resource_id"`
	DurationMinutes int     `db:"duration_minutes"`
	Amount          float64 `db:"price"`
	model.Metadata
}
