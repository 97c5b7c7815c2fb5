package models

import (
	"github.com/shopspring/decimal"

	"rental-backend/internal/domain"
)

const (
	PropertyApartment = "apartment"
	PropertyHouse     = "house"
	PropertyVilla     = "villa"
	PropertyStudio    = "studio"
	PropertyRoom      = "room"
)

// Property is a rentable unit. Archived properties stay in the table and are
// hidden from searches unless includeDeleted is set.
type Property struct {
	domain.Base
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	Address       string          `db:"address"`
	City          string          `db:"city"`
	Country       string          `db:"country"`
	PropertyType  string          `db:"property_type"`
	Bedrooms      int             `db:"bedrooms"`
	Bathrooms     int             `db:"bathrooms"`
	MaxGuests     int             `db:"max_guests"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	IsAvailable   bool            `db:"is_available"`
	IsArchived    bool            `db:"is_archived"`
}

type PropertySearch struct {
	domain.Search
	Q            string           `form:"q"`
	City         string           `form:"city"`
	Country      string           `form:"country"`
	PropertyType string           `form:"propertyType" binding:"omitempty,oneof=apartment house villa studio room"`
	MinPrice     *decimal.Decimal `form:"minPrice"`
	MaxPrice     *decimal.Decimal `form:"maxPrice"`
	MinBedrooms  *int             `form:"minBedrooms" binding:"omitempty,min=0"`
	Available    *bool            `form:"available"`
}

type PropertyInsert struct {
	Title         string          `json:"title" binding:"required,max=200"`
	Description   string          `json:"description" binding:"max=4000"`
	Address       string          `json:"address" binding:"required,max=255"`
	City          string          `json:"city" binding:"required,max=100"`
	Country       string          `json:"country" binding:"required,max=100"`
	PropertyType  string          `json:"propertyType" binding:"required,oneof=apartment house villa studio room"`
	Bedrooms      int             `json:"bedrooms" binding:"min=0,max=50"`
	Bathrooms     int             `json:"bathrooms" binding:"min=0,max=50"`
	MaxGuests     int             `json:"maxGuests" binding:"required,min=1,max=100"`
	PricePerNight decimal.Decimal `json:"pricePerNight" binding:"required,decimalGreaterThan=0"`
	IsAvailable   *bool           `json:"isAvailable"`
}

// PropertyUpdate is a partial update; nil fields keep the stored value.
type PropertyUpdate struct {
	Title         *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=4000"`
	Address       *string          `json:"address" binding:"omitempty,min=1,max=255"`
	City          *string          `json:"city" binding:"omitempty,min=1,max=100"`
	Country       *string          `json:"country" binding:"omitempty,min=1,max=100"`
	PropertyType  *string          `json:"propertyType" binding:"omitempty,oneof=apartment house villa studio room"`
	Bedrooms      *int             `json:"bedrooms" binding:"omitempty,min=0,max=50"`
	Bathrooms     *int             `json:"bathrooms" binding:"omitempty,min=0,max=50"`
	MaxGuests     *int             `json:"maxGuests" binding:"omitempty,min=1,max=100"`
	PricePerNight *decimal.Decimal `json:"pricePerNight" binding:"omitempty,decimalGreaterThan=0"`
	IsAvailable   *bool            `json:"isAvailable"`
	IsArchived    *bool            `json:"isArchived"`
}

type PropertyResponse struct {
	Audit
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Country       string          `json:"country"`
	PropertyType  string          `json:"propertyType"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	MaxGuests     int             `json:"maxGuests"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	IsAvailable   bool            `json:"isAvailable"`
	IsArchived    bool            `json:"isArchived"`
}
