package mapper

import "rental-backend/internal/domain/models"

func MaintenanceResponse(e *models.Maintenance) models.MaintenanceResponse {
	return models.MaintenanceResponse{
		Audit:       models.AuditOf(e.Base),
		PropertyID:  e.PropertyID,
		Title:       e.Title,
		Description: e.Description,
		Priority:    e.Priority,
		Status:      e.Status,
	}
}

func MaintenanceFromInsert(req models.MaintenanceInsert) models.Maintenance {
	return models.Maintenance{
		PropertyID:  req.PropertyID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}
}

func MergeMaintenanceUpdate(req models.MaintenanceUpdate, e *models.Maintenance) {
	overlay(&e.Title, req.Title)
	overlay(&e.Description, req.Description)
	overlay(&e.Priority, req.Priority)
	overlay(&e.Status, req.Status)
}
