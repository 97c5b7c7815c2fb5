// Package app wires repositories, services and collaborators into one
// container used by the HTTP layer and the CLI.
package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jmoiron/sqlx"

	"rental-backend/internal/config"
	"rental-backend/internal/metrics"
	"rental-backend/internal/repositories"
	"rental-backend/internal/services"
	"rental-backend/internal/storage"
)

type App struct {
	DB      *sqlx.DB
	Env     config.Env
	Metrics *metrics.Metrics
	Blobs   storage.BlobStore

	Properties  *services.PropertyService
	Tenants     *services.TenantService
	Bookings    *services.BookingService
	Payments    *services.PaymentService
	Reviews     *services.ReviewService
	Maintenance *services.MaintenanceService
	Images      *services.ImageService
}

// New builds every feature. All construction errors are reported together so
// a misconfigured deployment shows the full list at once.
func New(conn *sqlx.DB, env config.Env, m *metrics.Metrics, blobs storage.BlobStore) (*App, error) {
	if conn == nil {
		return nil, errors.New("app: database connection is nil")
	}
	if blobs == nil {
		blobs = storage.Disabled{}
	}
	a := &App{DB: conn, Env: env, Metrics: m, Blobs: blobs}

	var errs *multierror.Error
	collect := func(err error) {
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	opts := []repositories.Option{repositories.WithMetrics(m)}
	propertyRepo, err := repositories.NewRepository(conn, repositories.PropertySchema, opts...)
	collect(err)
	tenantRepo, err := repositories.NewRepository(conn, repositories.TenantSchema, opts...)
	collect(err)
	bookingRepo, err := repositories.NewRepository(conn, repositories.BookingSchema, opts...)
	collect(err)
	paymentRepo, err := repositories.NewRepository(conn, repositories.PaymentSchema, opts...)
	collect(err)
	reviewRepo, err := repositories.NewRepository(conn, repositories.ReviewSchema, opts...)
	collect(err)
	maintRepo, err := repositories.NewRepository(conn, repositories.MaintenanceSchema, opts...)
	collect(err)
	imageRepo, err := repositories.NewRepository(conn, repositories.ImageSchema, opts...)
	collect(err)
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	a.Properties, err = services.NewPropertyService(propertyRepo)
	collect(err)
	a.Tenants, err = services.NewTenantService(tenantRepo)
	collect(err)
	a.Bookings, err = services.NewBookingService(bookingRepo, propertyRepo, tenantRepo)
	collect(err)
	a.Payments, err = services.NewPaymentService(paymentRepo, bookingRepo, propertyRepo, tenantRepo,
		services.DocsService{Currency: env.ReceiptCurrency})
	collect(err)
	a.Reviews, err = services.NewReviewService(reviewRepo)
	collect(err)
	a.Maintenance, err = services.NewMaintenanceService(maintRepo)
	collect(err)
	a.Images, err = services.NewImageService(imageRepo, propertyRepo, blobs)
	collect(err)

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return a, nil
}

// NewBlobStore returns the S3 store when a bucket is configured and a store
// that refuses uploads otherwise.
func NewBlobStore(ctx context.Context, env config.Env) (storage.BlobStore, error) {
	if !env.StorageEnabled() {
		log.Printf("[STORAGE] S3_BUCKET not set, image uploads disabled")
		return storage.Disabled{}, nil
	}
	store, err := storage.NewS3Store(ctx, env.S3)
	if err != nil {
		return nil, err
	}
	log.Printf("[STORAGE] s3 bucket=%s region=%s", env.S3.Bucket, env.S3.Region)
	return store, nil
}

// Ping checks the database within timeout.
func (a *App) Ping(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return a.DB.PingContext(ctx)
}
