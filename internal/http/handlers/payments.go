package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
)

type ReceiptRenderer interface {
	Receipt(ctx context.Context, id domain.ID) (*models.Receipt, error)
}

// GET /api/payments/:id/receipt returns the PDF inline; ?download=1 asks the
// browser to save it.
func PaymentReceipt(svc ReceiptRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		receipt, err := svc.Receipt(c.Request.Context(), id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		if receipt == nil {
			respondNotFound(c, "payment", id)
			return
		}

		disposition := "inline"
		if c.Query("download") != "" {
			disposition = "attachment"
		}
		c.Header("Content-Disposition", disposition+`; filename="`+receipt.FileName+`"`)
		c.Data(http.StatusOK, receipt.ContentType, receipt.Content)
	}
}
