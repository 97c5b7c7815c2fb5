package models

import (
	"time"

	"rental-backend/internal/domain"
)

// Audit is embedded in every response so identity and audit data share one JSON shape.
type Audit struct {
	ID        domain.ID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// AuditOf copies the audit columns of an entity.
func AuditOf(b domain.Base) Audit {
	return Audit{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		CreatedBy: b.CreatedBy,
		UpdatedAt: b.UpdatedAt,
		UpdatedBy: b.UpdatedBy,
	}
}
