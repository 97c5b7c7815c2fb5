package models

import "rental-backend/internal/domain"

type Review struct {
	domain.Base
	PropertyID domain.ID `db:"property_id"`
	TenantID   domain.ID `db:"tenant_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
}

type ReviewSearch struct {
	domain.Search
	PropertyID *domain.ID `form:"propertyId"`
	TenantID   *domain.ID `form:"tenantId"`
	MinRating  *int       `form:"minRating" binding:"omitempty,min=1,max=5"`
}

type ReviewInsert struct {
	PropertyID domain.ID `json:"propertyId" binding:"required,min=1"`
	TenantID   domain.ID `json:"tenantId" binding:"required,min=1"`
	Rating     int       `json:"rating" binding:"required,min=1,max=5"`
	Comment    string    `json:"comment" binding:"max=2000"`
}

type ReviewUpdate struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

type ReviewResponse struct {
	Audit
	PropertyID domain.ID `json:"propertyId"`
	TenantID   domain.ID `json:"tenantId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
}
