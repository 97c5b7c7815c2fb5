package services

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
	"rental-backend/internal/mapper"
	"rental-backend/internal/repositories"
	"rental-backend/internal/utils"
)

type paymentCrud = CrudService[models.PaymentResponse, models.Payment, models.PaymentSearch, models.PaymentInsert, models.PaymentUpdate]

type PaymentService struct {
	*paymentCrud
	payments   repositories.Repository[models.Payment]
	bookings   repositories.Repository[models.Booking]
	properties repositories.Repository[models.Property]
	tenants    repositories.Repository[models.Tenant]
	docs       DocsService
}

func NewPaymentService(
	payments repositories.Repository[models.Payment],
	bookings repositories.Repository[models.Booking],
	properties repositories.Repository[models.Property],
	tenants repositories.Repository[models.Tenant],
	docs DocsService,
) (*PaymentService, error) {
	if bookings == nil || properties == nil || tenants == nil {
		return nil, domain.Misconfigured("payment", "related repository")
	}
	s := &PaymentService{payments: payments, bookings: bookings, properties: properties, tenants: tenants, docs: docs}

	crud, err := NewCrudService("payment", payments,
		Projection[models.PaymentResponse, models.Payment, models.PaymentInsert, models.PaymentUpdate]{
			ToResponse:  mapper.PaymentResponse,
			FromInsert:  mapper.PaymentFromInsert,
			MergeUpdate: mapper.MergePaymentUpdate,
		},
		QueryOptions[models.PaymentSearch]{
			Filter: paymentFilter,
			Sortable: map[string]string{
				"amount":    "amount",
				"status":    "status",
				"paidAt":    "paid_at",
				"createdAt": "created_at",
			},
		},
		s.beforeInsert,
	)
	if err != nil {
		return nil, err
	}
	s.paymentCrud = crud
	return s, nil
}

func paymentFilter(s models.PaymentSearch) []sq.Sqlizer {
	preds := []sq.Sqlizer{}
	if s.BookingID != nil {
		preds = append(preds, sq.Eq{"booking_id": *s.BookingID})
	}
	if s.Status != "" {
		preds = append(preds, sq.Eq{"status": s.Status})
	}
	if s.Method != "" {
		preds = append(preds, sq.Eq{"method": s.Method})
	}
	return preds
}

func (s *PaymentService) beforeInsert(ctx context.Context, req models.PaymentInsert, e *models.Payment) error {
	booking, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return domain.ValidationError{Field: "bookingId", Msg: "booking not found"}
	}
	if booking.Status == models.BookingCancelled {
		return domain.ConflictError{Resource: "payment", Msg: "booking is cancelled"}
	}
	e.Status = models.PaymentPending
	e.PaidAt = nil
	return nil
}

// Receipt renders the PDF receipt of a payment, or nil when the payment does
// not exist.
func (s *PaymentService) Receipt(ctx context.Context, id domain.ID) (*models.Receipt, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil || payment == nil {
		return nil, err
	}

	data := receiptData{Payment: *payment}
	if data.Booking, err = s.bookings.GetByID(ctx, payment.BookingID); err != nil {
		return nil, err
	}
	if data.Booking != nil {
		if data.Property, err = s.properties.GetByID(ctx, data.Booking.PropertyID); err != nil {
			return nil, err
		}
		if data.Tenant, err = s.tenants.GetByID(ctx, data.Booking.TenantID); err != nil {
			return nil, err
		}
	}

	receipt, err := s.docs.RenderReceipt(data)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to render receipt", Err: err}
	}
	utils.LogEvent(domain.RequestIDFrom(ctx), "payment", "receipt", fmt.Sprintf("payment_id=%d bytes=%d", id, len(receipt.Content)))
	return receipt, nil
}
