package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
	"rental-backend/internal/mapper"
	"rental-backend/internal/repositories/mock"
)

func TestUpdateMissingNeverWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository[models.Tenant](ctrl)
	repo.EXPECT().GetByID(gomock.Any(), domain.ID(3)).Return(nil, nil)
	// No Update expectation: any write fails the test.

	svc, err := NewTenantService(repo)
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), 3, models.TenantUpdate{FullName: ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInsertHookErrorSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookings := mock.NewMockRepository[models.Booking](ctrl)
	properties := mock.NewMockRepository[models.Property](ctrl)
	tenants := mock.NewMockRepository[models.Tenant](ctrl)
	properties.EXPECT().GetByID(gomock.Any(), domain.ID(1)).Return(nil, nil)

	svc, err := NewBookingService(bookings, properties, tenants)
	require.NoError(t, err)

	_, err = svc.Insert(context.Background(), models.BookingInsert{
		PropertyID: 1, TenantID: 2, Guests: 1,
		CheckIn: day("2026-07-01"), CheckOut: day("2026-07-03"),
	})
	assert.True(t, domain.IsValidation(err), "got %v", err)
}

func TestInsertIgnoresHookIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository[models.Review](ctrl)
	repo.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *models.Review) error {
		assert.Zero(t, e.ID, "identity is assigned by the store")
		e.ID = 11
		return nil
	})

	hook := func(_ context.Context, _ models.ReviewInsert, e *models.Review) error {
		e.ID = 500
		e.CreatedBy = "forged"
		return nil
	}
	svc, err := NewCrudService("review", repo,
		Projection[models.ReviewResponse, models.Review, models.ReviewInsert, models.ReviewUpdate]{
			ToResponse:  mapper.ReviewResponse,
			FromInsert:  mapper.ReviewFromInsert,
			MergeUpdate: mapper.MergeReviewUpdate,
		},
		QueryOptions[models.ReviewSearch]{}, hook)
	require.NoError(t, err)

	got, err := svc.Insert(context.Background(), models.ReviewInsert{PropertyID: 1, TenantID: 1, Rating: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 11, got.ID)
	assert.Empty(t, got.CreatedBy)
}

func TestStoreErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository[models.Maintenance](ctrl)
	boom := errors.New("connection reset")
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), boom)

	svc, err := NewMaintenanceService(repo)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), models.MaintenanceSearch{})
	assert.ErrorIs(t, err, boom)
}

func TestGetSkipsFindPastLastPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository[models.Maintenance](ctrl)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(4), nil)

	svc, err := NewMaintenanceService(repo)
	require.NoError(t, err)

	res, err := svc.Get(context.Background(), models.MaintenanceSearch{Search: domain.Search{Page: 3, PageSize: 2}})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.EqualValues(t, 4, res.TotalCount)
}

func TestConstructorsRejectMissingMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository[models.Review](ctrl)
	full := Projection[models.ReviewResponse, models.Review, models.ReviewInsert, models.ReviewUpdate]{
		ToResponse:  mapper.ReviewResponse,
		FromInsert:  mapper.ReviewFromInsert,
		MergeUpdate: mapper.MergeReviewUpdate,
	}

	tests := []struct {
		name   string
		mutate func(*Projection[models.ReviewResponse, models.Review, models.ReviewInsert, models.ReviewUpdate])
	}{
		{"to response", func(p *Projection[models.ReviewResponse, models.Review, models.ReviewInsert, models.ReviewUpdate]) { p.ToResponse = nil }},
		{"from insert", func(p *Projection[models.ReviewResponse, models.Review, models.ReviewInsert, models.ReviewUpdate]) { p.FromInsert = nil }},
		{"merge update", func(p *Projection[models.ReviewResponse, models.Review, models.ReviewInsert, models.ReviewUpdate]) { p.MergeUpdate = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := full
			tt.mutate(&proj)
			_, err := NewCrudService("review", repo, proj, QueryOptions[models.ReviewSearch]{}, nil)
			assert.True(t, domain.IsMisconfigured(err), "got %v", err)
		})
	}

	_, err := NewReviewService(nil)
	assert.True(t, domain.IsMisconfigured(err))
	_, err = NewBookingService(mock.NewMockRepository[models.Booking](ctrl), nil, nil)
	assert.True(t, domain.IsMisconfigured(err))
	_, err = NewImageService(mock.NewMockRepository[models.Image](ctrl), nil, nil)
	assert.True(t, domain.IsMisconfigured(err))
}

func TestUpdateOfRowDeletedMeanwhileIsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository[models.Tenant](ctrl)
	repo.EXPECT().GetByID(gomock.Any(), domain.ID(3)).
		Return(&models.Tenant{Base: domain.Base{ID: 3}, FullName: "Ana", Email: "ana@example.com"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, nil)

	svc, err := NewTenantService(repo)
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), 3, models.TenantUpdate{FullName: ptr("Ana Lima")})
	require.NoError(t, err)
	assert.Nil(t, got)
}
