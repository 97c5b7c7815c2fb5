package services

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
	"rental-backend/internal/mapper"
	"rental-backend/internal/repositories"
)

type reviewCrud = CrudService[models.ReviewResponse, models.Review, models.ReviewSearch, models.ReviewInsert, models.ReviewUpdate]

type ReviewService struct {
	*reviewCrud
}

func NewReviewService(repo repositories.Repository[models.Review]) (*ReviewService, error) {
	crud, err := NewCrudService("review", repo,
		Projection[models.ReviewResponse, models.Review, models.ReviewInsert, models.ReviewUpdate]{
			ToResponse:  mapper.ReviewResponse,
			FromInsert:  mapper.ReviewFromInsert,
			MergeUpdate: mapper.MergeReviewUpdate,
		},
		QueryOptions[models.ReviewSearch]{
			Filter: reviewFilter,
			Sortable: map[string]string{
				"rating":    "rating",
				"createdAt": "created_at",
			},
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &ReviewService{reviewCrud: crud}, nil
}

func reviewFilter(s models.ReviewSearch) []sq.Sqlizer {
	preds := []sq.Sqlizer{}
	if s.PropertyID != nil {
		preds = append(preds, sq.Eq{"property_id": *s.PropertyID})
	}
	if s.TenantID != nil {
		preds = append(preds, sq.Eq{"tenant_id": *s.TenantID})
	}
	if s.MinRating != nil {
		preds = append(preds, sq.GtOrEq{"rating": *s.MinRating})
	}
	return preds
}

// ListByProperty is Get scoped to one property; a propertyId in search is overridden.
func (s *ReviewService) ListByProperty(ctx context.Context, propertyID domain.ID, search models.ReviewSearch) (domain.PagedResult[models.ReviewResponse], error) {
	search.PropertyID = &propertyID
	return s.Get(ctx, search)
}
