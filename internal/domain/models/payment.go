package models

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-backend/internal/domain"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

const (
	MethodCash     = "cash"
	MethodCard     = "card"
	MethodTransfer = "transfer"
)

type Payment struct {
	domain.Base
	BookingID domain.ID       `db:"booking_id"`
	Amount    decimal.Decimal `db:"amount"`
	Method    string          `db:"method"`
	Status    string          `db:"status"`
	Reference string          `db:"reference"`
	PaidAt    *time.Time      `db:"paid_at"`
}

type PaymentSearch struct {
	domain.Search
	BookingID *domain.ID `form:"bookingId"`
	Status    string     `form:"status" binding:"omitempty,oneof=pending paid failed refunded"`
	Method    string     `form:"method" binding:"omitempty,oneof=cash card transfer"`
}

type PaymentInsert struct {
	BookingID domain.ID       `json:"bookingId" binding:"required,min=1"`
	Amount    decimal.Decimal `json:"amount" binding:"required,decimalGreaterThan=0"`
	Method    string          `json:"method" binding:"required,oneof=cash card transfer"`
	Reference string          `json:"reference" binding:"max=100"`
}

type PaymentUpdate struct {
	Status    *string    `json:"status" binding:"omitempty,oneof=pending paid failed refunded"`
	Reference *string    `json:"reference" binding:"omitempty,max=100"`
	PaidAt    *time.Time `json:"paidAt"`
}

type PaymentResponse struct {
	Audit
	BookingID domain.ID       `json:"bookingId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	PaidAt    *time.Time      `json:"paidAt,omitempty"`
}

// Receipt is a rendered payment document.
type Receipt struct {
	FileName    string
	ContentType string
	Content     []byte
}
