package domain

import (
	"context"
	"strconv"
	"strings"
)

// ID is used across domain entities.
type ID int64

// Status represents a lightweight state value.
type Status string

// SortDirection is asc / desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Search carries paging, sorting and visibility params. Feature searches embed it
// and add their own filter fields.
type Search struct {
	Page           int           `form:"page" json:"page" binding:"omitempty,min=1"`
	PageSize       int           `form:"pageSize" json:"pageSize" binding:"omitempty,min=1,max=100"`
	SortBy         string        `form:"sortBy" json:"sortBy,omitempty"`
	SortDirection  SortDirection `form:"sortDirection" json:"sortDirection,omitempty" binding:"omitempty,oneof=asc desc"`
	IncludeDeleted bool          `form:"includeDeleted" json:"includeDeleted"`
}

// Spec returns the search with defaults applied to unset paging fields.
func (s Search) Spec() Search {
	if s.Page < 1 {
		s.Page = DefaultPage
	}
	if s.PageSize < 1 {
		s.PageSize = DefaultPageSize
	}
	s.SortBy = strings.TrimSpace(s.SortBy)
	return s
}

// Offset is the number of rows skipped before the page window.
func (s Search) Offset() uint64 {
	spec := s.Spec()
	return uint64(spec.Page-1) * uint64(spec.PageSize)
}

// Desc reports whether the requested direction is descending.
func (d SortDirection) Desc() bool {
	return strings.EqualFold(string(d), string(SortDesc))
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID   ID     `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Name is the value written into createdBy / updatedBy.
func (rc RequestContext) Name() string {
	if u := strings.TrimSpace(rc.Username); u != "" {
		return u
	}
	if rc.UserID > 0 {
		return "user:" + strconv.FormatInt(int64(rc.UserID), 10)
	}
	return SystemActor
}

// SystemActor is recorded when no authenticated user is attached to the request.
const SystemActor = "system"

type actorKey struct{}

// WithActor attaches the authenticated user to ctx.
func WithActor(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, actorKey{}, rc)
}

// ActorFrom returns the user attached by WithActor, if any.
func ActorFrom(ctx context.Context) (RequestContext, bool) {
	if ctx == nil {
		return RequestContext{}, false
	}
	rc, ok := ctx.Value(actorKey{}).(RequestContext)
	return rc, ok
}

// ActorName resolves the audit name for ctx, falling back to SystemActor.
func ActorName(ctx context.Context) string {
	rc, ok := ActorFrom(ctx)
	if !ok {
		return SystemActor
	}
	return rc.Name()
}

type requestIDKey struct{}

// WithRequestID attaches the request id used in log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id set by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
