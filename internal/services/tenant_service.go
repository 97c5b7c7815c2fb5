package services

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
	"rental-backend/internal/mapper"
	"rental-backend/internal/repositories"
	"rental-backend/internal/utils"
)

type tenantCrud = CrudService[models.TenantResponse, models.Tenant, models.TenantSearch, models.TenantInsert, models.TenantUpdate]

// TenantService stores emails lower-cased so the unique index is case-insensitive.
type TenantService struct {
	*tenantCrud
}

func NewTenantService(repo repositories.Repository[models.Tenant]) (*TenantService, error) {
	crud, err := NewCrudService("tenant", repo,
		Projection[models.TenantResponse, models.Tenant, models.TenantInsert, models.TenantUpdate]{
			ToResponse:  mapper.TenantResponse,
			FromInsert:  mapper.TenantFromInsert,
			MergeUpdate: mapper.MergeTenantUpdate,
		},
		QueryOptions[models.TenantSearch]{
			Filter: tenantFilter,
			Sortable: map[string]string{
				"fullName":  "full_name",
				"email":     "email",
				"createdAt": "created_at",
			},
		},
		normalizeTenant,
	)
	if err != nil {
		return nil, err
	}
	return &TenantService{tenantCrud: crud}, nil
}

func normalizeTenant(_ context.Context, _ models.TenantInsert, e *models.Tenant) error {
	e.Email = utils.NormalizeEmail(e.Email)
	e.FullName = utils.NormalizeSpace(e.FullName)
	return nil
}

func tenantFilter(s models.TenantSearch) []sq.Sqlizer {
	preds := []sq.Sqlizer{repositories.Contains(s.Q, "full_name", "email")}
	if email := utils.NormalizeEmail(s.Email); email != "" {
		preds = append(preds, sq.Eq{"email": email})
	}
	return preds
}

// Update normalizes a changed email the same way inserts do.
func (s *TenantService) Update(ctx context.Context, id domain.ID, req models.TenantUpdate) (*models.TenantResponse, error) {
	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		req.Email = &email
	}
	if req.FullName != nil {
		name := utils.NormalizeSpace(*req.FullName)
		req.FullName = &name
	}
	return s.tenantCrud.Update(ctx, id, req)
}
