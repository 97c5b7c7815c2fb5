package models

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-backend/internal/domain"
	"rental-backend/internal/utils"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking reserves a property for a tenant between CheckIn (inclusive) and
// CheckOut (exclusive). TotalAmount is fixed when the booking is created.
type Booking struct {
	domain.Base
	PropertyID  domain.ID       `db:"property_id"`
	TenantID    domain.ID       `db:"tenant_id"`
	CheckIn     time.Time       `db:"check_in"`
	CheckOut    time.Time       `db:"check_out"`
	Guests      int             `db:"guests"`
	Status      string          `db:"status"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Notes       string          `db:"notes"`
}

// Nights counts calendar nights between check-in and check-out.
func (b Booking) Nights() int {
	n := int(utils.DateOnly(b.CheckOut).Sub(utils.DateOnly(b.CheckIn)).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

type BookingSearch struct {
	domain.Search
	PropertyID *domain.ID `form:"propertyId"`
	TenantID   *domain.ID `form:"tenantId"`
	Status     string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
}

type BookingInsert struct {
	PropertyID domain.ID `json:"propertyId" binding:"required,min=1"`
	TenantID   domain.ID `json:"tenantId" binding:"required,min=1"`
	CheckIn    time.Time `json:"checkIn" binding:"required"`
	CheckOut   time.Time `json:"checkOut" binding:"required,gtfield=CheckIn"`
	Guests     int       `json:"guests" binding:"required,min=1,max=100"`
	Notes      string    `json:"notes" binding:"max=2000"`
}

// BookingUpdate leaves dates and amount alone; a date change is a cancel and rebook.
type BookingUpdate struct {
	Guests *int    `json:"guests" binding:"omitempty,min=1,max=100"`
	Status *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes  *string `json:"notes" binding:"omitempty,max=2000"`
}

type BookingResponse struct {
	Audit
	PropertyID  domain.ID       `json:"propertyId"`
	TenantID    domain.ID       `json:"tenantId"`
	CheckIn     time.Time       `json:"checkIn"`
	CheckOut    time.Time       `json:"checkOut"`
	Nights      int             `json:"nights"`
	Guests      int             `json:"guests"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Notes       string          `json:"notes"`
}
