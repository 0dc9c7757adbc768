package services

import (
	"context"
	"fmt"

	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ApplicationService specializes the content contract for admission
// applications: creation is public and always starts Pending, status moves
// only through the closed three-value enum, and there is no asset slot.
type ApplicationService struct {
	content *ContentService[models.Application]
}

// NewApplicationService creates a new application service
func NewApplicationService(repo ContentRepo[models.Application], logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{
		content: NewContentService(repo, nil, models.ApplicationDescriptor, logger),
	}
}

// List returns all applications in submission order
func (s *ApplicationService) List(ctx context.Context) ([]*models.Application, error) {
	return s.content.List(ctx)
}

// GetByID returns one application or a not-found error
func (s *ApplicationService) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	return s.content.GetByID(ctx, id)
}

// Create stores a public submission. The server is authoritative for the
// initial status: any client-supplied value is discarded and the record
// starts Pending.
func (s *ApplicationService) Create(ctx context.Context, fields map[string]any) (*models.Application, error) {
	fields["status"] = string(models.StatusPending)
	return s.content.Create(ctx, fields, nil)
}

// Update applies a partial admin update. This is the only path that can
// change status, and only to one of the three known values.
func (s *ApplicationService) Update(ctx context.Context, id int64, fields map[string]any) (*models.Application, error) {
	if raw, ok := fields["status"]; ok {
		status, isString := raw.(string)
		if !isString || !models.ApplicationStatus(status).IsValid() {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("status must be one of %s, %s, %s",
					models.StatusPending, models.StatusApproved, models.StatusRejected))
		}
	}

	return s.content.Update(ctx, id, fields, nil)
}

// Delete removes an application
func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	return s.content.Delete(ctx, id)
}
