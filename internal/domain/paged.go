package domain

import "encoding/json"

// PagedResult pairs one page of items with the size of the whole filtered set.
type PagedResult[T any] struct {
	Items      []T
	TotalCount int64
	Page       int
	PageSize   int
}

// NewPagedResult never returns nil Items so the JSON shape stays a list.
func NewPagedResult[T any](items []T, totalCount int64, page, pageSize int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}
}

// TotalPages is ceil(TotalCount / PageSize). PageSize must be >= 1; zero is
// reported for a non-positive PageSize instead of dividing by zero.
func (p PagedResult[T]) TotalPages() int {
	if p.PageSize < 1 || p.TotalCount <= 0 {
		return 0
	}
	size := int64(p.PageSize)
	return int((p.TotalCount + size - 1) / size)
}

type pagedJSON[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

func (p PagedResult[T]) MarshalJSON() ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(pagedJSON[T]{
		Items:      items,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(),
	})
}
