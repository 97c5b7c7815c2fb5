package mapper

import "rental-backend/internal/domain/models"

func BookingResponse(e *models.Booking) models.BookingResponse {
	return models.BookingResponse{
		Audit:       models.AuditOf(e.Base),
		PropertyID:  e.PropertyID,
		TenantID:    e.TenantID,
		CheckIn:     e.CheckIn,
		CheckOut:    e.CheckOut,
		Nights:      e.Nights(),
		Guests:      e.Guests,
		Status:      e.Status,
		TotalAmount: e.TotalAmount,
		Notes:       e.Notes,
	}
}

// BookingFromInsert leaves Status and TotalAmount to the insert hook.
func BookingFromInsert(req models.BookingInsert) models.Booking {
	return models.Booking{
		PropertyID: req.PropertyID,
		TenantID:   req.TenantID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		Notes:      req.Notes,
	}
}

func MergeBookingUpdate(req models.BookingUpdate, e *models.Booking) {
	overlay(&e.Guests, req.Guests)
	overlay(&e.Status, req.Status)
	overlay(&e.Notes, req.Notes)
}
