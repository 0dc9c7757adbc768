package services

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/pkg/apperrors"
	"github.com/hillcrest/college-backend/internal/pkg/blobstore"
	"github.com/hillcrest/college-backend/internal/pkg/slug"
	"github.com/rs/zerolog"
)

// ContentRepo is the persistence contract the content service works against
type ContentRepo[T any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Insert(ctx context.Context, fields map[string]any) (*T, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// assetCarrier is implemented by models that reference a blob store object
type assetCarrier interface {
	AssetRef() string
}

// assetNamer is implemented by models whose asset key derives from a title
type assetNamer interface {
	AssetName() string
}

// ContentService implements the CRUD contract shared by all content
// resources: public list/get, validated create and partial update with an
// optional asset, best-effort asset cleanup on delete. Written once and
// instantiated per resource descriptor.
type ContentService[T any] struct {
	repo   ContentRepo[T]
	blob   blobstore.Store
	desc   models.Descriptor
	logger zerolog.Logger
}

// NewContentService creates a content service for the described resource
func NewContentService[T any](repo ContentRepo[T], blob blobstore.Store, desc models.Descriptor, logger zerolog.Logger) *ContentService[T] {
	return &ContentService[T]{
		repo:   repo,
		blob:   blob,
		desc:   desc,
		logger: logger,
	}
}

// List returns all records in persisted insertion order. Sorting by publish
// date is a presentation concern layered on top by callers.
func (s *ContentService[T]) List(ctx context.Context) ([]*T, error) {
	return s.repo.List(ctx)
}

// GetByID returns one record or a not-found error
func (s *ContentService[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the supplied fields, uploads the asset if one is given,
// and persists the record. The upload strictly precedes the insert so the
// stored row never references an object that does not exist yet; an upload
// failure aborts the create with no partial row.
func (s *ContentService[T]) Create(ctx context.Context, fields map[string]any, asset *multipart.FileHeader) (*T, error) {
	if err := s.validateCreate(fields, asset); err != nil {
		return nil, err
	}

	if asset != nil {
		url, ref, err := s.uploadAsset(ctx, asset, s.assetKeyName(fields, nil))
		if err != nil {
			return nil, err
		}
		fields["image_url"] = url
		fields["image_ref"] = ref
	}

	record, err := s.repo.Insert(ctx, fields)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Update applies a partial update: only supplied fields change. A new asset
// is uploaded under the same deterministic key scheme; the superseded object
// is deleted only after the row persists, and only best-effort.
func (s *ContentService[T]) Update(ctx context.Context, id int64, fields map[string]any, asset *multipart.FileHeader) (*T, error) {
	if asset != nil && !s.desc.HasAsset() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s does not accept attachments", s.desc.Name))
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var oldRef, newRef string
	if carrier, ok := any(existing).(assetCarrier); ok {
		oldRef = carrier.AssetRef()
	}

	if asset != nil {
		url, ref, err := s.uploadAsset(ctx, asset, s.assetKeyName(fields, existing))
		if err != nil {
			return nil, err
		}
		fields["image_url"] = url
		fields["image_ref"] = ref
		newRef = ref
	}

	record, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	// Clean up the replaced object once the new reference is durable.
	if newRef != "" && oldRef != "" && oldRef != newRef {
		if err := s.blob.Delete(ctx, oldRef); err != nil {
			s.logger.Warn().Err(err).
				Str("resource", s.desc.Name).
				Str("ref", oldRef).
				Msg("Failed to delete superseded asset")
		}
	}

	return record, nil
}

// Delete removes the record, attempting to delete its asset first. Asset
// deletion failures are logged and never block the record deletion.
func (s *ContentService[T]) Delete(ctx context.Context, id int64) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if carrier, ok := any(record).(assetCarrier); ok {
		if ref := carrier.AssetRef(); ref != "" {
			if err := s.blob.Delete(ctx, ref); err != nil {
				s.logger.Warn().Err(err).
					Str("resource", s.desc.Name).
					Str("ref", ref).
					Msg("Failed to delete asset, removing record anyway")
			}
		}
	}

	return s.repo.Delete(ctx, id)
}

// validateCreate checks required fields before any upload is attempted
func (s *ContentService[T]) validateCreate(fields map[string]any, asset *multipart.FileHeader) error {
	if asset != nil && !s.desc.HasAsset() {
		return apperrors.NewValidationError(fmt.Sprintf("%s does not accept attachments", s.desc.Name))
	}

	for _, col := range s.desc.Required {
		value, ok := fields[col]
		if !ok || value == nil {
			return apperrors.NewValidationError(fmt.Sprintf("%s is required", col))
		}
		if str, isString := value.(string); isString && strings.TrimSpace(str) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("%s is required", col))
		}
	}

	if s.desc.AssetRequired && asset == nil {
		if _, hasURL := fields["image_url"]; !hasURL {
			return apperrors.NewValidationError("image is required")
		}
	}

	return nil
}

// assetKeyName picks the title-like value the object key derives from:
// the supplied title field if present, the existing record's otherwise.
func (s *ContentService[T]) assetKeyName(fields map[string]any, existing *T) string {
	if value, ok := fields[s.desc.TitleField]; ok {
		if name := strings.TrimSpace(fmt.Sprintf("%v", value)); name != "" {
			return name
		}
	}
	if existing != nil {
		if namer, ok := any(existing).(assetNamer); ok {
			return namer.AssetName()
		}
	}
	return uuid.New().String()
}

// uploadAsset stores the file under a deterministic key in the resource's
// folder. Re-uploads with the same title overwrite predictably.
func (s *ContentService[T]) uploadAsset(ctx context.Context, asset *multipart.FileHeader, name string) (url, ref string, err error) {
	file, err := asset.Open()
	if err != nil {
		return "", "", apperrors.NewUpstreamError(fmt.Sprintf("failed to read uploaded file: %v", err))
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(asset.Filename))
	key := s.desc.AssetFolder + "/" + slug.Make(name) + ext

	contentType := asset.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}

	url, ref, err = s.blob.Upload(ctx, key, contentType, file)
	if err != nil {
		s.logger.Error().Err(err).
			Str("resource", s.desc.Name).
			Str("key", key).
			Msg("Asset upload failed")
		return "", "", apperrors.NewUpstreamError("failed to upload asset")
	}

	return url, ref, nil
}
