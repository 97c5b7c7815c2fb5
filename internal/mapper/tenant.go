package mapper

import "rental-backend/internal/domain/models"

func TenantResponse(e *models.Tenant) models.TenantResponse {
	return models.TenantResponse{
		Audit:    models.AuditOf(e.Base),
		FullName: e.FullName,
		Email:    e.Email,
		Phone:    e.Phone,
		Notes:    e.Notes,
	}
}

func TenantFromInsert(req models.TenantInsert) models.Tenant {
	return models.Tenant{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Notes:    req.Notes,
	}
}

func MergeTenantUpdate(req models.TenantUpdate, e *models.Tenant) {
	overlay(&e.FullName, req.FullName)
	overlay(&e.Email, req.Email)
	overlay(&e.Phone, req.Phone)
	overlay(&e.Notes, req.Notes)
}
