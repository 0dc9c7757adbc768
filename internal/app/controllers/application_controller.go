package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/app/models/dto"
	"github.com/hillcrest/college-backend/internal/app/services"
	"github.com/hillcrest/college-backend/internal/middleware"
	"github.com/hillcrest/college-backend/internal/pkg/apperrors"
)

// docxContentType is the MIME type for Word documents
const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ApplicationController handles admission applications: public submission,
// admin triage, and the document export endpoint.
type ApplicationController struct {
	applicationService *services.ApplicationService
	exportService      *services.ExportService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, exportService *services.ExportService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		exportService:      exportService,
	}
}

// List handles GET /applications (admin)
func (c *ApplicationController) List(ctx *gin.Context) {
	applications, err := c.applicationService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// GetByID handles GET /applications/:id (admin)
func (c *ApplicationController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	application, err := c.applicationService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// Create handles POST /applications (public). Any client-supplied status is
// discarded by the service; new submissions always start Pending.
func (c *ApplicationController) Create(ctx *gin.Context) {
	fields, _, ok := bindContentFields(ctx, models.ApplicationDescriptor)
	if !ok {
		return
	}

	application, err := c.applicationService.Create(ctx.Request.Context(), fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// Update handles PUT /applications/:id (admin), the only path that can
// change an application's status.
func (c *ApplicationController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	fields, _, ok := bindContentFields(ctx, models.ApplicationDescriptor)
	if !ok {
		return
	}

	application, err := c.applicationService.Update(ctx.Request.Context(), id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// Delete handles DELETE /applications/:id (admin)
func (c *ApplicationController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.applicationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Application deleted"})
}

// DownloadDocx handles GET /applications/:id/download-docx (public). On
// renderer failure the response lists the known template field names as a
// debugging aid for template authors.
func (c *ApplicationController) DownloadDocx(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	rendered, filename, err := c.exportService.RenderApplication(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamFailure) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Failed to render application document")
			errorDetail = errorDetail.WithDetails(gin.H{"availableFields": c.exportService.KnownFields()})
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	ctx.Data(http.StatusOK, docxContentType, rendered)
}
