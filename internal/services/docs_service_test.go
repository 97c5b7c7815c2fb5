package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
)

func TestDocsServiceRenderReceipt(t *testing.T) {
	paid := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)
	svc := DocsService{Currency: "EUR", Now: func() time.Time { return paid }}

	receipt, err := svc.RenderReceipt(receiptData{
		Payment: models.Payment{
			Base:      domain.Base{ID: 12},
			BookingID: 4,
			Amount:    decimal.RequireFromString("361.50"),
			Method:    models.MethodCard,
			Status:    models.PaymentPaid,
			Reference: "TX-991",
			PaidAt:    &paid,
		},
		Booking: &models.Booking{
			Base:     domain.Base{ID: 4},
			CheckIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
			Guests:   2,
		},
		Property: &models.Property{Title: "Sea view flat", City: "Lisbon", Country: "PT"},
		Tenant:   &models.Tenant{FullName: "Ana Lima", Email: "ana@example.com"},
	})
	if err != nil {
		t.Fatalf("RenderReceipt returned error: %v", err)
	}
	if !bytes.HasPrefix(receipt.Content, []byte("%PDF")) {
		t.Fatalf("content is not a PDF")
	}
	if receipt.FileName != "RECEIPT_12_Ana_Lima.pdf" {
		t.Fatalf("unexpected file name %q", receipt.FileName)
	}
	if receipt.ContentType != "application/pdf" {
		t.Fatalf("unexpected content type %q", receipt.ContentType)
	}
}

func TestDocsServiceRenderReceiptWithoutRelations(t *testing.T) {
	receipt, err := DocsService{}.RenderReceipt(receiptData{
		Payment: models.Payment{Base: domain.Base{ID: 3}, BookingID: 8, Amount: decimal.NewFromInt(10), Status: models.PaymentPending},
	})
	if err != nil {
		t.Fatalf("RenderReceipt returned error: %v", err)
	}
	if len(receipt.Content) == 0 || !strings.HasSuffix(receipt.FileName, "_NA.pdf") {
		t.Fatalf("unexpected receipt %q (%d bytes)", receipt.FileName, len(receipt.Content))
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart(`a/b:c*d`); got != "a_b_c_d" {
		t.Fatalf("got %q", got)
	}
	if got := safeFilenamePart(strings.Repeat("x", 60)); len(got) != 40 {
		t.Fatalf("not truncated: %d", len(got))
	}
}
