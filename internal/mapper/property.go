package mapper

import "rental-backend/internal/domain/models"

func PropertyResponse(e *models.Property) models.PropertyResponse {
	return models.PropertyResponse{
		Audit:         models.AuditOf(e.Base),
		Title:         e.Title,
		Description:   e.Description,
		Address:       e.Address,
		City:          e.City,
		Country:       e.Country,
		PropertyType:  e.PropertyType,
		Bedrooms:      e.Bedrooms,
		Bathrooms:     e.Bathrooms,
		MaxGuests:     e.MaxGuests,
		PricePerNight: e.PricePerNight,
		IsAvailable:   e.IsAvailable,
		IsArchived:    e.IsArchived,
	}
}

// PropertyFromInsert defaults IsAvailable to true when the request omits it.
func PropertyFromInsert(req models.PropertyInsert) models.Property {
	available := true
	overlay(&available, req.IsAvailable)
	return models.Property{
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		PropertyType:  req.PropertyType,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		PricePerNight: req.PricePerNight,
		IsAvailable:   available,
	}
}

func MergePropertyUpdate(req models.PropertyUpdate, e *models.Property) {
	overlay(&e.Title, req.Title)
	overlay(&e.Description, req.Description)
	overlay(&e.Address, req.Address)
	overlay(&e.City, req.City)
	overlay(&e.Country, req.Country)
	overlay(&e.PropertyType, req.PropertyType)
	overlay(&e.Bedrooms, req.Bedrooms)
	overlay(&e.Bathrooms, req.Bathrooms)
	overlay(&e.MaxGuests, req.MaxGuests)
	overlay(&e.PricePerNight, req.PricePerNight)
	overlay(&e.IsAvailable, req.IsAvailable)
	overlay(&e.IsArchived, req.IsArchived)
}
