package services

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"rental-backend/internal/domain"
	"rental-backend/internal/repositories"
)

// Searcher is implemented by every feature search through its embedded
// domain.Search.
type Searcher interface {
	Spec() domain.Search
}

// QueryOptions carries the per-feature query rules.
type QueryOptions[S Searcher] struct {
	// Filter turns feature filter fields into predicates. Nil means no filters.
	Filter func(S) []sq.Sqlizer
	// Sortable maps accepted sortBy values to columns. Unknown values fall back
	// to DefaultSort.
	Sortable map[string]string
	// DefaultSort is the column used when sortBy is empty or unknown; "id" when blank.
	DefaultSort string
	// SoftDeleteColumn names a boolean column hiding rows unless includeDeleted is set.
	SoftDeleteColumn string
}

// QueryService runs filtered, sorted and paged reads for one entity type and
// projects the rows to R.
type QueryService[R any, E any, S Searcher] struct {
	name       string
	repo       repositories.Repository[E]
	toResponse func(*E) R
	opts       QueryOptions[S]
}

func NewQueryService[R any, E any, S Searcher](name string, repo repositories.Repository[E], toResponse func(*E) R, opts QueryOptions[S]) (*QueryService[R, E, S], error) {
	if repo == nil {
		return nil, domain.Misconfigured(name, "repository")
	}
	if toResponse == nil {
		return nil, domain.Misconfigured(name, "ToResponse")
	}
	if _, ok := any(new(E)).(domain.Record); !ok {
		return nil, domain.Misconfigured(name, "domain.Base on entity")
	}
	if strings.TrimSpace(opts.DefaultSort) == "" {
		opts.DefaultSort = "id"
	}
	return &QueryService[R, E, S]{name: name, repo: repo, toResponse: toResponse, opts: opts}, nil
}

// Name identifies the feature in logs and errors.
func (s *QueryService[R, E, S]) Name() string { return s.name }

// Get applies feature predicates, then soft-delete visibility, counts the
// filtered set, reads the requested page and projects it.
func (s *QueryService[R, E, S]) Get(ctx context.Context, search S) (domain.PagedResult[R], error) {
	spec := search.Spec()
	where := s.predicates(search, spec)

	total, err := s.repo.Count(ctx, where)
	if err != nil {
		return domain.PagedResult[R]{}, err
	}

	items := []R{}
	offset := spec.Offset()
	if total > 0 && offset < uint64(total) {
		rows, err := s.repo.Find(ctx, repositories.Query{
			Where:   where,
			OrderBy: s.orderBy(spec),
			Limit:   uint64(spec.PageSize),
			Offset:  offset,
		})
		if err != nil {
			return domain.PagedResult[R]{}, err
		}
		items = make([]R, 0, len(rows))
		for i := range rows {
			items = append(items, s.toResponse(&rows[i]))
		}
	}
	return domain.NewPagedResult(items, total, spec.Page, spec.PageSize), nil
}

// GetByID returns nil when the record does not exist. Soft-deleted records are
// still returned.
func (s *QueryService[R, E, S]) GetByID(ctx context.Context, id domain.ID) (*R, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	r := s.toResponse(e)
	return &r, nil
}

func (s *QueryService[R, E, S]) predicates(search S, spec domain.Search) []sq.Sqlizer {
	var where []sq.Sqlizer
	if s.opts.Filter != nil {
		where = repositories.Where(s.opts.Filter(search)...)
	}
	if s.opts.SoftDeleteColumn != "" && !spec.IncludeDeleted {
		where = append(where, sq.Eq{s.opts.SoftDeleteColumn: false})
	}
	return where
}

// orderBy always ends with id so pages stay stable when the sort column repeats.
func (s *QueryService[R, E, S]) orderBy(spec domain.Search) []string {
	col := s.opts.DefaultSort
	if mapped, ok := s.opts.Sortable[spec.SortBy]; ok && spec.SortBy != "" {
		col = mapped
	}
	dir := "ASC"
	if spec.SortDirection.Desc() {
		dir = "DESC"
	}
	order := []string{col + " " + dir}
	if col != "id" {
		order = append(order, "id ASC")
	}
	return order
}
