package mapper

import "rental-backend/internal/domain/models"

func ImageResponse(e *models.Image) models.ImageResponse {
	return models.ImageResponse{
		Audit:       models.AuditOf(e.Base),
		PropertyID:  e.PropertyID,
		URL:         e.URL,
		FileName:    e.FileName,
		ContentType: e.ContentType,
		SizeBytes:   e.SizeBytes,
		Caption:     e.Caption,
		SortOrder:   e.SortOrder,
	}
}

func ImageFromInsert(req models.ImageInsert) models.Image {
	return models.Image{
		PropertyID:  req.PropertyID,
		StorageKey:  req.StorageKey,
		URL:         req.URL,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		Caption:     req.Caption,
		SortOrder:   req.SortOrder,
	}
}

func MergeImageUpdate(req models.ImageUpdate, e *models.Image) {
	overlay(&e.Caption, req.Caption)
	overlay(&e.SortOrder, req.SortOrder)
}
