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

type propertyCrud = CrudService[models.PropertyResponse, models.Property, models.PropertySearch, models.PropertyInsert, models.PropertyUpdate]

// PropertyService manages rentable units. Archived properties are hidden from
// searches unless includeDeleted is set.
type PropertyService struct {
	*propertyCrud
}

func NewPropertyService(repo repositories.Repository[models.Property]) (*PropertyService, error) {
	crud, err := NewCrudService("property", repo,
		Projection[models.PropertyResponse, models.Property, models.PropertyInsert, models.PropertyUpdate]{
			ToResponse:  mapper.PropertyResponse,
			FromInsert:  mapper.PropertyFromInsert,
			MergeUpdate: mapper.MergePropertyUpdate,
		},
		QueryOptions[models.PropertySearch]{
			Filter: propertyFilter,
			Sortable: map[string]string{
				"title":         "title",
				"city":          "city",
				"pricePerNight": "price_per_night",
				"bedrooms":      "bedrooms",
				"createdAt":     "created_at",
				"updatedAt":     "updated_at",
			},
			SoftDeleteColumn: "is_archived",
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &PropertyService{propertyCrud: crud}, nil
}

func propertyFilter(s models.PropertySearch) []sq.Sqlizer {
	preds := []sq.Sqlizer{
		repositories.Contains(s.Q, "title", "city"),
		repositories.EqualsFold("city", s.City),
		repositories.EqualsFold("country", s.Country),
	}
	if s.PropertyType != "" {
		preds = append(preds, sq.Eq{"property_type": s.PropertyType})
	}
	if s.MinPrice != nil {
		preds = append(preds, sq.GtOrEq{"price_per_night": *s.MinPrice})
	}
	if s.MaxPrice != nil {
		preds = append(preds, sq.LtOrEq{"price_per_night": *s.MaxPrice})
	}
	if s.MinBedrooms != nil {
		preds = append(preds, sq.GtOrEq{"bedrooms": *s.MinBedrooms})
	}
	if s.Available != nil {
		preds = append(preds, sq.Eq{"is_available": *s.Available})
	}
	return preds
}

// Archive hides the property from searches. Archiving twice is harmless.
func (s *PropertyService) Archive(ctx context.Context, id domain.ID) (*models.PropertyResponse, error) {
	return s.setArchived(ctx, id, true)
}

// Restore makes an archived property visible again.
func (s *PropertyService) Restore(ctx context.Context, id domain.ID) (*models.PropertyResponse, error) {
	return s.setArchived(ctx, id, false)
}

func (s *PropertyService) setArchived(ctx context.Context, id domain.ID, archived bool) (*models.PropertyResponse, error) {
	resp, err := s.Update(ctx, id, models.PropertyUpdate{IsArchived: &archived})
	if err == nil && resp != nil {
		utils.LogEvent(domain.RequestIDFrom(ctx), "property", "archive", fmt.Sprintf("id=%d archived=%t", id, archived))
	}
	return resp, err
}
