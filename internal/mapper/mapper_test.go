package mapper

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
)

func ptr[T any](v T) *T { return &v }

func TestMergePropertyUpdate(t *testing.T) {
	stored := models.Property{
		Base:          domain.Base{ID: 9, CreatedBy: "alice", UpdatedBy: "alice"},
		Title:         "Sea view flat",
		City:          "Lisbon",
		Bedrooms:      2,
		PricePerNight: decimal.RequireFromString("120.00"),
		IsAvailable:   true,
	}

	tests := []struct {
		name   string
		req    models.PropertyUpdate
		mutate func(p *models.Property)
	}{
		{
			name:   "empty request leaves everything",
			req:    models.PropertyUpdate{},
			mutate: func(p *models.Property) {},
		},
		{
			name: "present fields overwrite",
			req: models.PropertyUpdate{
				Title:         ptr("Harbour loft"),
				PricePerNight: ptr(decimal.RequireFromString("150.50")),
			},
			mutate: func(p *models.Property) {
				p.Title = "Harbour loft"
				p.PricePerNight = decimal.RequireFromString("150.50")
			},
		},
		{
			name:   "zero values still count as present",
			req:    models.PropertyUpdate{Bedrooms: ptr(0), IsAvailable: ptr(false)},
			mutate: func(p *models.Property) { p.Bedrooms = 0; p.IsAvailable = false },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := stored
			MergePropertyUpdate(tc.req, &got)

			want := stored
			tc.mutate(&want)
			if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })); diff != "" {
				t.Fatalf("merge mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromInsertNeverSetsIdentity(t *testing.T) {
	p := PropertyFromInsert(models.PropertyInsert{Title: "Cabin", MaxGuests: 2})
	assert.Equal(t, domain.Base{}, p.Base)
	assert.True(t, p.IsAvailable, "availability defaults to true")

	p = PropertyFromInsert(models.PropertyInsert{Title: "Cabin", IsAvailable: ptr(false)})
	assert.False(t, p.IsAvailable)

	b := BookingFromInsert(models.BookingInsert{PropertyID: 1, TenantID: 2, Guests: 2})
	assert.Equal(t, domain.Base{}, b.Base)
	assert.Empty(t, b.Status)
	assert.True(t, b.TotalAmount.IsZero())
}

func TestResponsesCarryAudit(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e := &models.Booking{
		Base:     domain.Base{ID: 3, CreatedAt: now, CreatedBy: "bob", UpdatedAt: now, UpdatedBy: "carol"},
		CheckIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Status:   models.BookingPending,
	}
	got := BookingResponse(e)
	assert.Equal(t, domain.ID(3), got.ID)
	assert.Equal(t, "bob", got.CreatedBy)
	assert.Equal(t, "carol", got.UpdatedBy)
	assert.Equal(t, 3, got.Nights)
}

func TestMergePaymentUpdateNormalisesPaidAt(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	paid := time.Date(2026, 5, 1, 9, 0, 0, 0, loc)
	e := &models.Payment{Status: models.PaymentPending}
	MergePaymentUpdate(models.PaymentUpdate{Status: ptr(models.PaymentPaid), PaidAt: &paid}, e)

	assert.Equal(t, models.PaymentPaid, e.Status)
	if assert.NotNil(t, e.PaidAt) {
		assert.Equal(t, time.UTC, e.PaidAt.Location())
		assert.True(t, e.PaidAt.Equal(paid))
	}
}

func TestImageFromInsertKeepsUploadMetadata(t *testing.T) {
	img := ImageFromInsert(models.ImageInsert{
		PropertyID:  4,
		URL:         "https://cdn.example.com/p/4/a.jpg",
		StorageKey:  "properties/4/a.jpg",
		FileName:    "a.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   2048,
	})
	assert.Equal(t, "properties/4/a.jpg", img.StorageKey)
	assert.Equal(t, int64(2048), img.SizeBytes)

	MergeImageUpdate(models.ImageUpdate{Caption: ptr("Kitchen")}, &img)
	assert.Equal(t, "Kitchen", img.Caption)
	assert.Equal(t, "properties/4/a.jpg", img.StorageKey)
}
