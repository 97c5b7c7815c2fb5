package repositories

import "rental-backend/internal/domain/models"

var (
	_ Repository[models.Property]    = (*SQLRepository[models.Property])(nil)
	_ Repository[models.Tenant]      = (*SQLRepository[models.Tenant])(nil)
	_ Repository[models.Booking]     = (*SQLRepository[models.Booking])(nil)
	_ Repository[models.Payment]     = (*SQLRepository[models.Payment])(nil)
	_ Repository[models.Review]      = (*SQLRepository[models.Review])(nil)
	_ Repository[models.Maintenance] = (*SQLRepository[models.Maintenance])(nil)
	_ Repository[models.Image]       = (*SQLRepository[models.Image])(nil)
)

var PropertySchema = Schema[models.Property]{
	Table: "properties",
	Columns: []string{
		"title", "description", "address", "city", "country", "property_type",
		"bedrooms", "bathrooms", "max_guests", "price_per_night", "is_available", "is_archived",
	},
	Values: func(e *models.Property) map[string]any {
		return map[string]any{
			"title":           e.Title,
			"description":     e.Description,
			"address":         e.Address,
			"city":            e.City,
			"country":         e.Country,
			"property_type":   e.PropertyType,
			"bedrooms":        e.Bedrooms,
			"bathrooms":       e.Bathrooms,
			"max_guests":      e.MaxGuests,
			"price_per_night": e.PricePerNight,
			"is_available":    e.IsAvailable,
			"is_archived":     e.IsArchived,
		}
	},
}

var TenantSchema = Schema[models.Tenant]{
	Table:   "tenants",
	Columns: []string{"full_name", "email", "phone", "notes"},
	Values: func(e *models.Tenant) map[string]any {
		return map[string]any{
			"full_name": e.FullName,
			"email":     e.Email,
			"phone":     e.Phone,
			"notes":     e.Notes,
		}
	},
}

var BookingSchema = Schema[models.Booking]{
	Table: "bookings",
	Columns: []string{
		"property_id", "tenant_id", "check_in", "check_out", "guests", "status", "total_amount", "notes",
	},
	Values: func(e *models.Booking) map[string]any {
		return map[string]any{
			"property_id":  e.PropertyID,
			"tenant_id":    e.TenantID,
			"check_in":     e.CheckIn,
			"check_out":    e.CheckOut,
			"guests":       e.Guests,
			"status":       e.Status,
			"total_amount": e.TotalAmount,
			"notes":        e.Notes,
		}
	},
}

var PaymentSchema = Schema[models.Payment]{
	Table:   "payments",
	Columns: []string{"booking_id", "amount", "method", "status", "reference", "paid_at"},
	Values: func(e *models.Payment) map[string]any {
		return map[string]any{
			"booking_id": e.BookingID,
			"amount":     e.Amount,
			"method":     e.Method,
			"status":     e.Status,
			"reference":  e.Reference,
			"paid_at":    e.PaidAt,
		}
	},
}

var ReviewSchema = Schema[models.Review]{
	Table:   "reviews",
	Columns: []string{"property_id", "tenant_id", "rating", "comment"},
	Values: func(e *models.Review) map[string]any {
		return map[string]any{
			"property_id": e.PropertyID,
			"tenant_id":   e.TenantID,
			"rating":      e.Rating,
			"comment":     e.Comment,
		}
	},
}

var MaintenanceSchema = Schema[models.Maintenance]{
	Table:   "maintenance_requests",
	Columns: []string{"property_id", "title", "description", "priority", "status"},
	Values: func(e *models.Maintenance) map[string]any {
		return map[string]any{
			"property_id": e.PropertyID,
			"title":       e.Title,
			"description": e.Description,
			"priority":    e.Priority,
			"status":      e.Status,
		}
	},
}

var ImageSchema = Schema[models.Image]{
	Table: "property_images",
	Columns: []string{
		"property_id", "storage_key", "url", "file_name", "content_type", "size_bytes", "caption", "sort_order",
	},
	Values: func(e *models.Image) map[string]any {
		return map[string]any{
			"property_id":  e.PropertyID,
			"storage_key":  e.StorageKey,
			"url":          e.URL,
			"file_name":    e.FileName,
			"content_type": e.ContentType,
			"size_bytes":   e.SizeBytes,
			"caption":      e.Caption,
			"sort_order":   e.SortOrder,
		}
	},
}
