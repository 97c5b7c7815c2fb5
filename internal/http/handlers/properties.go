package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
	"rental-backend/internal/services"
)

type PropertyArchiver interface {
	GetByID(ctx context.Context, id domain.ID) (*models.PropertyResponse, error)
	Archive(ctx context.Context, id domain.ID) (*models.PropertyResponse, error)
	Restore(ctx context.Context, id domain.ID) (*models.PropertyResponse, error)
}

type PropertyReviews interface {
	ListByProperty(ctx context.Context, propertyID domain.ID, search models.ReviewSearch) (domain.PagedResult[models.ReviewResponse], error)
}

type ImageUploader interface {
	Upload(ctx context.Context, propertyID domain.ID, file models.FileUpload) (*models.ImageResponse, error)
}

// Properties serves the property routes beyond plain CRUD.
type Properties struct {
	Props   PropertyArchiver
	Reviews PropertyReviews
	Images  ImageUploader
}

// POST /api/properties/:id/archive
func (h Properties) Archive(c *gin.Context) {
	h.setArchived(c, h.Props.Archive)
}

// POST /api/properties/:id/restore
func (h Properties) Restore(c *gin.Context) {
	h.setArchived(c, h.Props.Restore)
}

func (h Properties) setArchived(c *gin.Context, fn func(context.Context, domain.ID) (*models.PropertyResponse, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := fn(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if res == nil {
		respondNotFound(c, "property", id)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/properties/:id/reviews
func (h Properties) ListReviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var search models.ReviewSearch
	if !BindQueryOrError(c, &search) {
		return
	}
	property, err := h.Props.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if property == nil {
		respondNotFound(c, "property", id)
		return
	}
	res, err := h.Reviews.ListByProperty(c.Request.Context(), id, search)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/properties/:id/images (multipart: file, caption, sortOrder)
func (h Properties) UploadImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxImageBytes+1<<20)

	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "multipart field \"file\" is required", nil)
		return
	}
	sortOrder := 0
	if raw := strings.TrimSpace(c.PostForm("sortOrder")); raw != "" {
		if sortOrder, err = strconv.Atoi(raw); err != nil || sortOrder < 0 {
			respondError(c, http.StatusBadRequest, "validation_error", "sortOrder must be a non-negative integer", nil)
			return
		}
	}

	f, err := header.Open()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer f.Close()

	res, err := h.Images.Upload(c.Request.Context(), id, models.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
		Caption:     c.PostForm("caption"),
		SortOrder:   sortOrder,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if res == nil {
		respondNotFound(c, "property", id)
		return
	}
	c.JSON(http.StatusCreated, res)
}
