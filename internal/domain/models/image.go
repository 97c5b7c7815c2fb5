package models

import (
	"io"

	"rental-backend/internal/domain"
)

// Image is a property photo. StorageKey is empty for images registered by URL.
type Image struct {
	domain.Base
	PropertyID  domain.ID `db:"property_id"`
	StorageKey  string    `db:"storage_key"`
	URL         string    `db:"url"`
	FileName    string    `db:"file_name"`
	ContentType string    `db:"content_type"`
	SizeBytes   int64     `db:"size_bytes"`
	Caption     string    `db:"caption"`
	SortOrder   int       `db:"sort_order"`
}

type ImageSearch struct {
	domain.Search
	PropertyID *domain.ID `form:"propertyId"`
}

type ImageInsert struct {
	PropertyID domain.ID `json:"propertyId" binding:"required,min=1"`
	URL        string    `json:"url" binding:"required,url,max=1024"`
	Caption    string    `json:"caption" binding:"max=255"`
	SortOrder  int       `json:"sortOrder" binding:"min=0"`

	// Filled by uploads, never from request bodies.
	StorageKey  string `json:"-"`
	FileName    string `json:"-"`
	ContentType string `json:"-"`
	SizeBytes   int64  `json:"-"`
}

type ImageUpdate struct {
	Caption   *string `json:"caption" binding:"omitempty,max=255"`
	SortOrder *int    `json:"sortOrder" binding:"omitempty,min=0"`
}

type ImageResponse struct {
	Audit
	PropertyID  domain.ID `json:"propertyId"`
	URL         string    `json:"url"`
	FileName    string    `json:"fileName,omitempty"`
	ContentType string    `json:"contentType,omitempty"`
	SizeBytes   int64     `json:"sizeBytes,omitempty"`
	Caption     string    `json:"caption"`
	SortOrder   int       `json:"sortOrder"`
}

// FileUpload is an uploaded image body with its metadata.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
	Caption     string
	SortOrder   int
}
