package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestSearchSpecDefaults(t *testing.T) {
	spec := Search{SortBy: "  title "}.Spec()
	if spec.Page != DefaultPage || spec.PageSize != DefaultPageSize {
		t.Fatalf("defaults not applied: %+v", spec)
	}
	if spec.SortBy != "title" {
		t.Fatalf("sortBy not trimmed: %q", spec.SortBy)
	}
	if spec.IncludeDeleted {
		t.Fatalf("includeDeleted must default to false")
	}
}

func TestSearchOffset(t *testing.T) {
	if got := (Search{Page: 3, PageSize: 10}).Offset(); got != 20 {
		t.Fatalf("offset = %d, want 20", got)
	}
	if got := (Search{}).Offset(); got != 0 {
		t.Fatalf("offset of default search = %d, want 0", got)
	}
}

func TestSortDirectionDesc(t *testing.T) {
	if !SortDesc.Desc() || !SortDirection("DESC").Desc() {
		t.Fatalf("desc not detected")
	}
	if SortAsc.Desc() || SortDirection("").Desc() {
		t.Fatalf("asc treated as desc")
	}
}

func TestActorName(t *testing.T) {
	if got := ActorName(context.Background()); got != SystemActor {
		t.Fatalf("anonymous actor = %q", got)
	}
	ctx := WithActor(context.Background(), RequestContext{UserID: 42})
	if got := ActorName(ctx); got != "user:42" {
		t.Fatalf("id-only actor = %q", got)
	}
	ctx = WithActor(context.Background(), RequestContext{UserID: 42, Username: "maria"})
	if got := ActorName(ctx); got != "maria" {
		t.Fatalf("named actor = %q", got)
	}
}

func TestMisconfiguredIsMatchable(t *testing.T) {
	err := fmt.Errorf("startup: %w", Misconfigured("property", "ToResponse"))
	if !errors.Is(err, ErrMappingMisconfigured) || !IsMisconfigured(err) {
		t.Fatalf("expected mapping misconfiguration, got %v", err)
	}
}

func TestTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", NotFoundError{Resource: "property", ID: 7})
	if !IsNotFound(wrapped) {
		t.Fatalf("IsNotFound failed")
	}
	if wrapped.Error() != "wrap: property 7 not found" {
		t.Fatalf("unexpected message %q", wrapped.Error())
	}
	if !IsConflict(ConflictError{Resource: "tenant"}) || IsConflict(ValidationError{}) {
		t.Fatalf("IsConflict mismatch")
	}
	if !IsValidation(ValidationError{Field: "email", Msg: "taken"}) {
		t.Fatalf("IsValidation failed")
	}
	cause := errors.New("boom")
	if !errors.Is(InternalError{Err: cause}, cause) {
		t.Fatalf("InternalError should unwrap")
	}
}
