package models

import "rental-backend/internal/domain"

const (
	MaintenanceOpen       = "open"
	MaintenanceInProgress = "in_progress"
	MaintenanceResolved   = "resolved"
	MaintenanceClosed     = "closed"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Maintenance struct {
	domain.Base
	PropertyID  domain.ID `db:"property_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Priority    string    `db:"priority"`
	Status      string    `db:"status"`
}

type MaintenanceSearch struct {
	domain.Search
	PropertyID *domain.ID `form:"propertyId"`
	Status     string     `form:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority   string     `form:"priority" binding:"omitempty,oneof=low normal high urgent"`
}

type MaintenanceInsert struct {
	PropertyID  domain.ID `json:"propertyId" binding:"required,min=1"`
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=4000"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
}

type MaintenanceUpdate struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=4000"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	Status      *string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
}

type MaintenanceResponse struct {
	Audit
	PropertyID  domain.ID `json:"propertyId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
}
