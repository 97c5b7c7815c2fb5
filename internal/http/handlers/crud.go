package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-backend/internal/domain"
)

// Resource is what a feature service offers to the generic handler.
type Resource[R any, S any, I any, U any] interface {
	Get(ctx context.Context, search S) (domain.PagedResult[R], error)
	GetByID(ctx context.Context, id domain.ID) (*R, error)
	Insert(ctx context.Context, req I) (R, error)
	Update(ctx context.Context, id domain.ID, req U) (*R, error)
	Delete(ctx context.Context, id domain.ID) (bool, error)
}

// Crud serves search, read, create, partial update and delete for one feature.
type Crud[R any, S any, I any, U any] struct {
	Name string
	Svc  Resource[R, S, I, U]
}

func NewCrud[R any, S any, I any, U any](name string, svc Resource[R, S, I, U]) Crud[R, S, I, U] {
	return Crud[R, S, I, U]{Name: name, Svc: svc}
}

// Mount registers the five standard routes on g.
func (h Crud[R, S, I, U]) Mount(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// GET /api/<feature>
func (h Crud[R, S, I, U]) List(c *gin.Context) {
	var search S
	if !BindQueryOrError(c, &search) {
		return
	}
	res, err := h.Svc.Get(c.Request.Context(), search)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/<feature>/:id
func (h Crud[R, S, I, U]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if res == nil {
		respondNotFound(c, h.Name, id)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/<feature>
func (h Crud[R, S, I, U]) Create(c *gin.Context) {
	var req I
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.Svc.Insert(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// PATCH|PUT /api/<feature>/:id; omitted fields keep their stored values.
func (h Crud[R, S, I, U]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req U
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if res == nil {
		respondNotFound(c, h.Name, id)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /api/<feature>/:id
func (h Crud[R, S, I, U]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !deleted {
		respondNotFound(c, h.Name, id)
		return
	}
	c.Status(http.StatusNoContent)
}
