package services

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"rental-backend/internal/domain/models"
	"rental-backend/internal/mapper"
	"rental-backend/internal/repositories"
)

type maintenanceCrud = CrudService[models.MaintenanceResponse, models.Maintenance, models.MaintenanceSearch, models.MaintenanceInsert, models.MaintenanceUpdate]

type MaintenanceService struct {
	*maintenanceCrud
}

func NewMaintenanceService(repo repositories.Repository[models.Maintenance]) (*MaintenanceService, error) {
	crud, err := NewCrudService("maintenance", repo,
		Projection[models.MaintenanceResponse, models.Maintenance, models.MaintenanceInsert, models.MaintenanceUpdate]{
			ToResponse:  mapper.MaintenanceResponse,
			FromInsert:  mapper.MaintenanceFromInsert,
			MergeUpdate: mapper.MergeMaintenanceUpdate,
		},
		QueryOptions[models.MaintenanceSearch]{
			Filter: maintenanceFilter,
			Sortable: map[string]string{
				"priority":  "priority",
				"status":    "status",
				"createdAt": "created_at",
				"updatedAt": "updated_at",
			},
		},
		openMaintenance,
	)
	if err != nil {
		return nil, err
	}
	return &MaintenanceService{maintenanceCrud: crud}, nil
}

// openMaintenance starts every request as open, at normal priority unless the
// reporter picked one.
func openMaintenance(_ context.Context, req models.MaintenanceInsert, e *models.Maintenance) error {
	e.Status = models.MaintenanceOpen
	if req.Priority == "" {
		e.Priority = models.PriorityNormal
	}
	return nil
}

func maintenanceFilter(s models.MaintenanceSearch) []sq.Sqlizer {
	preds := []sq.Sqlizer{}
	if s.PropertyID != nil {
		preds = append(preds, sq.Eq{"property_id": *s.PropertyID})
	}
	if s.Status != "" {
		preds = append(preds, sq.Eq{"status": s.Status})
	}
	if s.Priority != "" {
		preds = append(preds, sq.Eq{"priority": s.Priority})
	}
	return preds
}
