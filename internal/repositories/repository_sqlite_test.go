package repositories

import (
	"context"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/internal/db/dbtest"
	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
)

func newProperty(title, city string, price string) *models.Property {
	return &models.Property{
		Title:         title,
		Address:       "1 Main St",
		City:          city,
		Country:       "PT",
		PropertyType:  models.PropertyApartment,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		PricePerNight: decimal.RequireFromString(price),
		IsAvailable:   true,
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	ctx := domain.WithActor(context.Background(), domain.RequestContext{Username: "ops"})
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, err := NewRepository(conn, PropertySchema, WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	p := newProperty("Sea view flat", "Lisbon", "120.50")
	require.NoError(t, repo.Add(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.City, got.City)
	assert.True(t, p.PricePerNight.Equal(got.PricePerNight), "price %s != %s", p.PricePerNight, got.PricePerNight)
	assert.True(t, got.IsAvailable)
	assert.False(t, got.IsArchived)
	assert.True(t, now.Equal(got.CreatedAt))
	assert.Equal(t, "ops", got.CreatedBy)

	missing, err := repo.GetByID(ctx, p.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)

	later := now.Add(time.Hour)
	repo.opts.now = func() time.Time { return later }
	got.Title = "Harbour loft"
	found, err := repo.Update(domain.WithActor(context.Background(), domain.RequestContext{Username: "editor"}), got)
	require.NoError(t, err)
	assert.True(t, found)

	again, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbour loft", again.Title)
	assert.Equal(t, "ops", again.CreatedBy)
	assert.True(t, now.Equal(again.CreatedAt))
	assert.Equal(t, "editor", again.UpdatedBy)
	assert.True(t, later.Equal(again.UpdatedAt))

	deleted, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete is a no-op")

	found, err = repo.Update(ctx, got)
	require.NoError(t, err)
	assert.False(t, found, "update of a deleted row writes nothing")
}

func TestSQLiteFindWindowAndFilters(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	ctx := context.Background()
	repo, err := NewRepository(conn, PropertySchema)
	require.NoError(t, err)

	for i, city := range []string{"Porto", "Lisbon", "Porto", "Faro", "Porto"} {
		p := newProperty("Flat", city, decimal.NewFromInt(int64(50+i*10)).String())
		require.NoError(t, repo.Add(ctx, p))
	}

	where := []sq.Sqlizer{sq.Eq{"city": "Porto"}}
	n, err := repo.Count(ctx, where)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	rows, err := repo.Find(ctx, Query{Where: where, OrderBy: []string{"id DESC"}, Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Greater(t, rows[0].ID, rows[1].ID)

	rows, err = repo.Find(ctx, Query{Where: where, OrderBy: []string{"id DESC"}, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = repo.Find(ctx, Query{Where: []sq.Sqlizer{sq.GtOrEq{"price_per_night": decimal.NewFromInt(80)}}})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSQLiteDuplicateIsConflict(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	repo, err := NewRepository(conn, TenantSchema)
	require.NoError(t, err)

	require.NoError(t, repo.Add(context.Background(), &models.Tenant{FullName: "A", Email: "a@example.com"}))
	err = repo.Add(context.Background(), &models.Tenant{FullName: "B", Email: "a@example.com"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err), "got %v", err)
}
