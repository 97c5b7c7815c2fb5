package mapper

import "rental-backend/internal/domain/models"

func PaymentResponse(e *models.Payment) models.PaymentResponse {
	return models.PaymentResponse{
		Audit:     models.AuditOf(e.Base),
		BookingID: e.BookingID,
		Amount:    e.Amount,
		Method:    e.Method,
		Status:    e.Status,
		Reference: e.Reference,
		PaidAt:    e.PaidAt,
	}
}

func PaymentFromInsert(req models.PaymentInsert) models.Payment {
	return models.Payment{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
	}
}

func MergePaymentUpdate(req models.PaymentUpdate, e *models.Payment) {
	overlay(&e.Status, req.Status)
	overlay(&e.Reference, req.Reference)
	if req.PaidAt != nil {
		paid := req.PaidAt.UTC()
		e.PaidAt = &paid
	}
}
