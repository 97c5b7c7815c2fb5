package mapper

import "rental-backend/internal/domain/models"

func ReviewResponse(e *models.Review) models.ReviewResponse {
	return models.ReviewResponse{
		Audit:      models.AuditOf(e.Base),
		PropertyID: e.PropertyID,
		TenantID:   e.TenantID,
		Rating:     e.Rating,
		Comment:    e.Comment,
	}
}

func ReviewFromInsert(req models.ReviewInsert) models.Review {
	return models.Review{
		PropertyID: req.PropertyID,
		TenantID:   req.TenantID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
}

func MergeReviewUpdate(req models.ReviewUpdate, e *models.Review) {
	overlay(&e.Rating, req.Rating)
	overlay(&e.Comment, req.Comment)
}
