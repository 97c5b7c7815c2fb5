package domain

import "time"

// Base holds the identity and audit columns shared by every persisted record.
// Entities embed it; only the repository writes these fields.
type Base struct {
	ID        ID        `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
	UpdatedAt time.Time `db:"updated_at"`
	UpdatedBy string    `db:"updated_by"`
}

// Record gives generic code access to the embedded Base.
func (b *Base) Record() *Base { return b }

// Record is implemented by *Entity for every entity embedding Base.
type Record interface {
	Record() *Base
}

// BaseColumns are selected for every entity, in this order.
var BaseColumns = []string{"id", "created_at", "created_by", "updated_at", "updated_by"}
