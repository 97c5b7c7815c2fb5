package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"rental-backend/internal/domain"
	"rental-backend/internal/domain/models"
	"rental-backend/internal/mapper"
	"rental-backend/internal/repositories"
	"rental-backend/internal/storage"
	"rental-backend/internal/utils"
)

// MaxImageBytes caps a single uploaded image.
const MaxImageBytes = 10 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type imageCrud = CrudService[models.ImageResponse, models.Image, models.ImageSearch, models.ImageInsert, models.ImageUpdate]

// ImageService keeps image rows in the database and uploaded bodies in the
// blob store.
type ImageService struct {
	*imageCrud
	images     repositories.Repository[models.Image]
	properties repositories.Repository[models.Property]
	blobs      storage.BlobStore
	newKey     func(propertyID domain.ID, ext string) string
}

func NewImageService(
	images repositories.Repository[models.Image],
	properties repositories.Repository[models.Property],
	blobs storage.BlobStore,
) (*ImageService, error) {
	if properties == nil {
		return nil, domain.Misconfigured("image", "property repository")
	}
	if blobs == nil {
		blobs = storage.Disabled{}
	}
	s := &ImageService{images: images, properties: properties, blobs: blobs, newKey: imageKey}

	crud, err := NewCrudService("image", images,
		Projection[models.ImageResponse, models.Image, models.ImageInsert, models.ImageUpdate]{
			ToResponse:  mapper.ImageResponse,
			FromInsert:  mapper.ImageFromInsert,
			MergeUpdate: mapper.MergeImageUpdate,
		},
		QueryOptions[models.ImageSearch]{
			Filter: imageFilter,
			Sortable: map[string]string{
				"sortOrder": "sort_order",
				"createdAt": "created_at",
			},
			DefaultSort: "sort_order",
		},
		s.beforeInsert,
	)
	if err != nil {
		return nil, err
	}
	s.imageCrud = crud
	return s, nil
}

func imageKey(propertyID domain.ID, ext string) string {
	return fmt.Sprintf("properties/%d/%s%s", propertyID, uuid.NewString(), ext)
}

func imageFilter(s models.ImageSearch) []sq.Sqlizer {
	if s.PropertyID == nil {
		return nil
	}
	return []sq.Sqlizer{sq.Eq{"property_id": *s.PropertyID}}
}

func (s *ImageService) beforeInsert(ctx context.Context, req models.ImageInsert, _ *models.Image) error {
	property, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return domain.ValidationError{Field: "propertyId", Msg: "property not found"}
	}
	return nil
}

// Upload stores the file and registers it as an image of the property. It
// returns nil when the property does not exist.
func (s *ImageService) Upload(ctx context.Context, propertyID domain.ID, file models.FileUpload) (*models.ImageResponse, error) {
	contentType := strings.ToLower(strings.TrimSpace(file.ContentType))
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domain.ValidationError{Field: "file", Msg: "unsupported image type " + file.ContentType}
	}
	if file.Size <= 0 || file.Size > MaxImageBytes {
		return nil, domain.ValidationError{Field: "file", Msg: fmt.Sprintf("size must be between 1 and %d bytes", MaxImageBytes)}
	}

	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil || property == nil {
		return nil, err
	}

	key := s.newKey(propertyID, ext)
	url, err := s.blobs.Put(ctx, key, contentType, file.Body)
	if err != nil {
		return nil, err
	}

	resp, err := s.Insert(ctx, models.ImageInsert{
		PropertyID:  propertyID,
		URL:         url,
		Caption:     utils.NormalizeSpace(file.Caption),
		SortOrder:   file.SortOrder,
		StorageKey:  key,
		FileName:    path.Base(file.Name),
		ContentType: contentType,
		SizeBytes:   file.Size,
	})
	if err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			utils.LogError(domain.RequestIDFrom(ctx), "image", "upload", "orphaned blob "+key, delErr)
		}
		return nil, err
	}
	utils.LogEvent(domain.RequestIDFrom(ctx), "image", "upload", fmt.Sprintf("property_id=%d key=%s bytes=%d", propertyID, key, file.Size))
	return &resp, nil
}

// Delete removes the row and then the stored body, if any. A failure to remove
// the body is logged and does not undo the delete.
func (s *ImageService) Delete(ctx context.Context, id domain.ID) (bool, error) {
	image, err := s.images.GetByID(ctx, id)
	if err != nil || image == nil {
		return false, err
	}
	deleted, err := s.imageCrud.Delete(ctx, id)
	if err != nil || !deleted || image.StorageKey == "" {
		return deleted, err
	}
	if err := s.blobs.Delete(ctx, image.StorageKey); err != nil {
		utils.LogError(domain.RequestIDFrom(ctx), "image", "delete", "blob "+image.StorageKey, err)
	}
	return true, nil
}
