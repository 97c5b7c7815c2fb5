package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"rental-backend/internal/db/dbtest"
	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/storage"
)

// fixture wires every feature service against one in-memory SQLite database.
type fixture struct {
	ctx context.Context

	propertyRepo *repositories.SQLRepository[models.Property]
	tenantRepo   *repositories.SQLRepository[models.Tenant]
	bookingRepo  *repositories.SQLRepository[models.Booking]
	paymentRepo  *repositories.SQLRepository[models.Payment]
	reviewRepo   *repositories.SQLRepository[models.Review]
	maintRepo    *repositories.SQLRepository[models.Maintenance]
	imageRepo    *repositories.SQLRepository[models.Image]

	properties  *PropertyService
	tenants     *TenantService
	bookings    *BookingService
	payments    *PaymentService
	reviews     *ReviewService
	maintenance *MaintenanceService
	images      *ImageService
}

func newFixture(t *testing.T, blobs storage.BlobStore) *fixture {
	t.Helper()
	conn := dbtest.NewSQLite(t)
	clock := repositories.WithClock(func() time.Time {
		return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	})

	f := &fixture{ctx: domain.WithActor(context.Background(), domain.RequestContext{UserID: 7, Username: "agent"})}
	var err error
	f.propertyRepo, err = repositories.NewRepository(conn, repositories.PropertySchema, clock)
	require.NoError(t, err)
	f.tenantRepo, err = repositories.NewRepository(conn, repositories.TenantSchema, clock)
	require.NoError(t, err)
	f.bookingRepo, err = repositories.NewRepository(conn, repositories.BookingSchema, clock)
	require.NoError(t, err)
	f.paymentRepo, err = repositories.NewRepository(conn, repositories.PaymentSchema, clock)
	require.NoError(t, err)
	f.reviewRepo, err = repositories.NewRepository(conn, repositories.ReviewSchema, clock)
	require.NoError(t, err)
	f.maintRepo, err = repositories.NewRepository(conn, repositories.MaintenanceSchema, clock)
	require.NoError(t, err)
	f.imageRepo, err = repositories.NewRepository(conn, repositories.ImageSchema, clock)
	require.NoError(t, err)

	f.properties, err = NewPropertyService(f.propertyRepo)
	require.NoError(t, err)
	f.tenants, err = NewTenantService(f.tenantRepo)
	require.NoError(t, err)
	f.bookings, err = NewBookingService(f.bookingRepo, f.propertyRepo, f.tenantRepo)
	require.NoError(t, err)
	docs := DocsService{Currency: "EUR", Now: func() time.Time { return time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC) }}
	f.payments, err = NewPaymentService(f.paymentRepo, f.bookingRepo, f.propertyRepo, f.tenantRepo, docs)
	require.NoError(t, err)
	f.reviews, err = NewReviewService(f.reviewRepo)
	require.NoError(t, err)
	f.maintenance, err = NewMaintenanceService(f.maintRepo)
	require.NoError(t, err)
	f.images, err = NewImageService(f.imageRepo, f.propertyRepo, blobs)
	require.NoError(t, err)
	return f
}

func propertyInsert(title, city, price string) models.PropertyInsert {
	return models.PropertyInsert{
		Title:         title,
		Address:       "Rua Augusta 10",
		City:          city,
		Country:       "PT",
		PropertyType:  models.PropertyApartment,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		PricePerNight: decimal.RequireFromString(price),
	}
}

func (f *fixture) addProperty(t *testing.T, title, city, price string) models.PropertyResponse {
	t.Helper()
	p, err := f.properties.Insert(f.ctx, propertyInsert(title, city, price))
	require.NoError(t, err)
	return p
}

func (f *fixture) addTenant(t *testing.T, name, email string) models.TenantResponse {
	t.Helper()
	tn, err := f.tenants.Insert(f.ctx, models.TenantInsert{FullName: name, Email: email})
	require.NoError(t, err)
	return tn
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }
