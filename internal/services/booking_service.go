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

type bookingCrud = CrudService[models.BookingResponse, models.Booking, models.BookingSearch, models.BookingInsert, models.BookingUpdate]

// activeBookingStatuses block the dates they cover.
var activeBookingStatuses = []string{models.BookingPending, models.BookingConfirmed}

// BookingService prices and validates stays against the booked property.
type BookingService struct {
	*bookingCrud
	bookings   repositories.Repository[models.Booking]
	properties repositories.Repository[models.Property]
	tenants    repositories.Repository[models.Tenant]
}

func NewBookingService(
	bookings repositories.Repository[models.Booking],
	properties repositories.Repository[models.Property],
	tenants repositories.Repository[models.Tenant],
) (*BookingService, error) {
	if properties == nil {
		return nil, domain.Misconfigured("booking", "property repository")
	}
	if tenants == nil {
		return nil, domain.Misconfigured("booking", "tenant repository")
	}
	s := &BookingService{bookings: bookings, properties: properties, tenants: tenants}

	crud, err := NewCrudService("booking", bookings,
		Projection[models.BookingResponse, models.Booking, models.BookingInsert, models.BookingUpdate]{
			ToResponse:  mapper.BookingResponse,
			FromInsert:  mapper.BookingFromInsert,
			MergeUpdate: mapper.MergeBookingUpdate,
		},
		QueryOptions[models.BookingSearch]{
			Filter: bookingFilter,
			Sortable: map[string]string{
				"checkIn":     "check_in",
				"checkOut":    "check_out",
				"status":      "status",
				"totalAmount": "total_amount",
				"createdAt":   "created_at",
			},
		},
		s.beforeInsert,
	)
	if err != nil {
		return nil, err
	}
	s.bookingCrud = crud
	return s, nil
}

func bookingFilter(s models.BookingSearch) []sq.Sqlizer {
	preds := []sq.Sqlizer{}
	if s.PropertyID != nil {
		preds = append(preds, sq.Eq{"property_id": *s.PropertyID})
	}
	if s.TenantID != nil {
		preds = append(preds, sq.Eq{"tenant_id": *s.TenantID})
	}
	if s.Status != "" {
		preds = append(preds, sq.Eq{"status": s.Status})
	}
	if s.From != nil {
		preds = append(preds, sq.GtOrEq{"check_in": utils.DateOnly(*s.From)})
	}
	if s.To != nil {
		preds = append(preds, sq.LtOrEq{"check_in": utils.DateOnly(*s.To)})
	}
	return preds
}

// beforeInsert checks the property and tenant, rejects overlapping stays and
// fixes status and total.
func (s *BookingService) beforeInsert(ctx context.Context, req models.BookingInsert, e *models.Booking) error {
	e.CheckIn = utils.DateOnly(req.CheckIn)
	e.CheckOut = utils.DateOnly(req.CheckOut)
	if !e.CheckOut.After(e.CheckIn) {
		return domain.ValidationError{Field: "checkOut", Msg: "must be at least one day after checkIn"}
	}

	property, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return err
	}
	if property == nil || property.IsArchived {
		return domain.ValidationError{Field: "propertyId", Msg: "property not found"}
	}
	if !property.IsAvailable {
		return domain.ValidationError{Field: "propertyId", Msg: "property is not available for booking"}
	}
	if req.Guests > property.MaxGuests {
		return domain.ValidationError{Field: "guests", Msg: fmt.Sprintf("property allows at most %d guests", property.MaxGuests)}
	}

	tenant, err := s.tenants.GetByID(ctx, req.TenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return domain.ValidationError{Field: "tenantId", Msg: "tenant not found"}
	}

	overlapping, err := s.bookings.Count(ctx, []sq.Sqlizer{
		sq.Eq{"property_id": req.PropertyID},
		sq.Eq{"status": activeBookingStatuses},
		sq.Lt{"check_in": e.CheckOut},
		sq.Gt{"check_out": e.CheckIn},
	})
	if err != nil {
		return err
	}
	if overlapping > 0 {
		return domain.ConflictError{Resource: "booking", Msg: "property is already booked for these dates"}
	}

	e.Status = models.BookingPending
	e.TotalAmount = utils.StayTotal(e.Nights(), property.PricePerNight)
	utils.LogEvent(domain.RequestIDFrom(ctx), "booking", "price", fmt.Sprintf("property_id=%d nights=%d total=%s", req.PropertyID, e.Nights(), e.TotalAmount))
	return nil
}

// Update holds partial edits to the rules insert and Cancel apply: guests
// stay within the property's capacity and cancelled or completed bookings
// keep their status. Reopening a cancelled stay would skip the overlap check,
// so it is a new booking instead.
func (s *BookingService) Update(ctx context.Context, id domain.ID, req models.BookingUpdate) (*models.BookingResponse, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != current.Status && bookingClosed(current.Status) {
		return nil, domain.ConflictError{Resource: "booking", Msg: fmt.Sprintf("%s bookings cannot change status", current.Status)}
	}
	if req.Guests != nil && *req.Guests != current.Guests {
		property, err := s.properties.GetByID(ctx, current.PropertyID)
		if err != nil {
			return nil, err
		}
		if property != nil && *req.Guests > property.MaxGuests {
			return nil, domain.ValidationError{Field: "guests", Msg: fmt.Sprintf("property allows at most %d guests", property.MaxGuests)}
		}
	}
	return s.bookingCrud.Update(ctx, id, req)
}

func bookingClosed(status string) bool {
	return status == models.BookingCancelled || status == models.BookingCompleted
}

// Cancel marks the booking cancelled. Cancelling a cancelled booking returns
// it unchanged; completed bookings cannot be cancelled.
func (s *BookingService) Cancel(ctx context.Context, id domain.ID) (*models.BookingResponse, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}
	switch current.Status {
	case models.BookingCancelled:
		resp := mapper.BookingResponse(current)
		return &resp, nil
	case models.BookingCompleted:
		return nil, domain.ConflictError{Resource: "booking", Msg: "completed bookings cannot be cancelled"}
	}

	status := models.BookingCancelled
	resp, err := s.Update(ctx, id, models.BookingUpdate{Status: &status})
	if err == nil && resp != nil {
		utils.LogEvent(domain.RequestIDFrom(ctx), "booking", "cancel", fmt.Sprintf("id=%d", id))
	}
	return resp, err
}
