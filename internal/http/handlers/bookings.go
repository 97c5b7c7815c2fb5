package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
)

type BookingCanceller interface {
	Cancel(ctx context.Context, id domain.ID) (*models.BookingResponse, error)
}

// POST /api/bookings/:id/cancel
func CancelBooking(svc BookingCanceller) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		res, err := svc.Cancel(c.Request.Context(), id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		if res == nil {
			respondNotFound(c, "booking", id)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
