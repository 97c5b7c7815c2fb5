package services

import (
	"context"

	"rental-backend/internal/domain"
	"rental-backend/internal/repositories"
)

// Projection bundles the mapping rules between an entity and its DTOs.
type Projection[R any, E any, I any, U any] struct {
	ToResponse  func(*E) R
	FromInsert  func(I) E
	MergeUpdate func(U, *E)
}

// BeforeInsertFunc runs between projection and persistence. Returning an
// error aborts the insert before the store is touched.
type BeforeInsertFunc[E any, I any] func(ctx context.Context, req I, e *E) error

// CrudService adds insert, partial update and delete to QueryService.
type CrudService[R any, E any, S Searcher, I any, U any] struct {
	*QueryService[R, E, S]
	fromInsert   func(I) E
	mergeUpdate  func(U, *E)
	beforeInsert BeforeInsertFunc[E, I]
}

// NewCrudService fails with domain.ErrMappingMisconfigured when a projection
// function is missing. beforeInsert may be nil.
func NewCrudService[R any, E any, S Searcher, I any, U any](
	name string,
	repo repositories.Repository[E],
	proj Projection[R, E, I, U],
	opts QueryOptions[S],
	beforeInsert BeforeInsertFunc[E, I],
) (*CrudService[R, E, S, I, U], error) {
	query, err := NewQueryService(name, repo, proj.ToResponse, opts)
	if err != nil {
		return nil, err
	}
	if proj.FromInsert == nil {
		return nil, domain.Misconfigured(name, "FromInsert")
	}
	if proj.MergeUpdate == nil {
		return nil, domain.Misconfigured(name, "MergeUpdate")
	}
	if beforeInsert == nil {
		beforeInsert = func(context.Context, I, *E) error { return nil }
	}
	return &CrudService[R, E, S, I, U]{
		QueryService: query,
		fromInsert:   proj.FromInsert,
		mergeUpdate:  proj.MergeUpdate,
		beforeInsert: beforeInsert,
	}, nil
}

func record[E any](e *E) *domain.Base {
	return any(e).(domain.Record).Record()
}

// Insert maps req to a new entity, runs the hook, persists once and returns
// the stored shape including id and audit fields.
func (s *CrudService[R, E, S, I, U]) Insert(ctx context.Context, req I) (R, error) {
	var zero R

	e := s.fromInsert(req)
	if err := s.beforeInsert(ctx, req, &e); err != nil {
		return zero, err
	}
	// identity and audit belong to the repository, whatever the hook set
	*record(&e) = domain.Base{}

	if err := s.repo.Add(ctx, &e); err != nil {
		return zero, err
	}
	return s.toResponse(&e), nil
}

// Update overlays the fields present in req on the stored record. A missing
// record, or one deleted before the write lands, yields nil. Concurrent
// updates are not detected: the last write wins.
func (s *CrudService[R, E, S, I, U]) Update(ctx context.Context, id domain.ID, req U) (*R, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}

	base := *record(e)
	s.mergeUpdate(req, e)
	*record(e) = base

	found, err := s.repo.Update(ctx, e)
	if err != nil || !found {
		return nil, err
	}
	r := s.toResponse(e)
	return &r, nil
}

// Delete reports false when there was nothing to delete.
func (s *CrudService[R, E, S, I, U]) Delete(ctx context.Context, id domain.ID) (bool, error) {
	return s.repo.Delete(ctx, id)
}
