package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"rental-backend/internal/domain/models"
	"rental-backend/internal/utils"
)

// DocsService renders printable documents.
type DocsService struct {
	Currency string
	Now      func() time.Time
}

// receiptData is everything printed on a payment receipt. Property and tenant
// may be missing when the rows were removed after payment.
type receiptData struct {
	Payment  models.Payment
	Booking  *models.Booking
	Property *models.Property
	Tenant   *models.Tenant
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// RenderReceipt builds the PDF receipt for one payment.
func (s DocsService) RenderReceipt(d receiptData) (*models.Receipt, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	receiptNo := fmt.Sprintf("RCPT-%06d", d.Payment.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Receipt No : "+receiptNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+utils.FormatDateTime(s.now()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	name, email := "-", "-"
	if d.Tenant != nil {
		name, email = safe(d.Tenant.FullName, "-"), safe(d.Tenant.Email, "-")
	}
	pdf.Cell(0, 7, "Name  : "+name)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email : "+email)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range stayLines(d) {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Method    : "+safe(d.Payment.Method, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status    : "+strings.ToUpper(safe(d.Payment.Status, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Reference : "+safe(d.Payment.Reference, "-"))
	pdf.Ln(6)
	if d.Payment.PaidAt != nil {
		pdf.Cell(0, 6, "Paid at   : "+utils.FormatDateTime(*d.Payment.PaidAt))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Amount: "+utils.FormatMoney(d.Payment.Amount, s.Currency))
	pdf.Ln(12)

	if d.Payment.Status != models.PaymentPaid {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "This payment has not been settled yet; the receipt is informational only.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return &models.Receipt{
		FileName:    fmt.Sprintf("RECEIPT_%d_%s.pdf", d.Payment.ID, safeFilenamePart(name)),
		ContentType: "application/pdf",
		Content:     buf.Bytes(),
	}, nil
}

func stayLines(d receiptData) []string {
	lines := []string{}
	if d.Property != nil {
		lines = append(lines,
			"Property  : "+safe(d.Property.Title, "-"),
			"Address   : "+safe(strings.Join(nonEmpty(d.Property.Address, d.Property.City, d.Property.Country), ", "), "-"),
		)
	}
	if d.Booking != nil {
		lines = append(lines,
			fmt.Sprintf("Booking   : #%d", d.Booking.ID),
			fmt.Sprintf("Dates     : %s to %s (%d nights)", utils.FormatDate(d.Booking.CheckIn), utils.FormatDate(d.Booking.CheckOut), d.Booking.Nights()),
			fmt.Sprintf("Guests    : %d", d.Booking.Guests),
		)
	} else {
		lines = append(lines, fmt.Sprintf("Booking   : #%d", d.Payment.BookingID))
	}
	return lines
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
