package models

import "rental-backend/internal/domain"

type Tenant struct {
	domain.Base
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Notes    string `db:"notes"`
}

type TenantSearch struct {
	domain.Search
	Q     string `form:"q"`
	Email string `form:"email"`
}

type TenantInsert struct {
	FullName string `json:"fullName" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email,max=190"`
	Phone    string `json:"phone" binding:"max=30"`
	Notes    string `json:"notes" binding:"max=2000"`
}

type TenantUpdate struct {
	FullName *string `json:"fullName" binding:"omitempty,min=1,max=150"`
	Email    *string `json:"email" binding:"omitempty,email,max=190"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	Notes    *string `json:"notes" binding:"omitempty,max=2000"`
}

type TenantResponse struct {
	Audit
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}
