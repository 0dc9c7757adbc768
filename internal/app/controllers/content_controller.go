package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/app/models/dto"
	"github.com/hillcrest/college-backend/internal/app/services"
	"github.com/hillcrest/college-backend/internal/middleware"
)

// assetFormField is the multipart field carrying the uploaded image
const assetFormField = "image"

// ContentController exposes the uniform CRUD surface of one content
// resource. Instantiated per resource descriptor instead of repeating
// near-identical controllers nine times.
type ContentController[T any] struct {
	service *services.ContentService[T]
	desc    models.Descriptor
}

// NewContentController creates a controller for the described resource
func NewContentController[T any](service *services.ContentService[T], desc models.Descriptor) *ContentController[T] {
	return &ContentController[T]{
		service: service,
		desc:    desc,
	}
}

// List handles GET /{resource}
func (c *ContentController[T]) List(ctx *gin.Context) {
	records, err := c.service.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// GetByID handles GET /{resource}/:id
func (c *ContentController[T]) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// Create handles POST /{resource}, accepting JSON or multipart form
func (c *ContentController[T]) Create(ctx *gin.Context) {
	fields, asset, ok := bindContentFields(ctx, c.desc)
	if !ok {
		return
	}

	record, err := c.service.Create(ctx.Request.Context(), fields, asset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(record))
}

// Update handles PUT /{resource}/:id with partial semantics
func (c *ContentController[T]) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	fields, asset, ok := bindContentFields(ctx, c.desc)
	if !ok {
		return
	}

	record, err := c.service.Update(ctx.Request.Context(), id, fields, asset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// Delete handles DELETE /{resource}/:id
func (c *ContentController[T]) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: deletedMessage(c.desc.Name)})
}

// parseID reads the :id path parameter, responding 400 on garbage
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindContentFields extracts the descriptor's columns from a JSON body or a
// multipart form, plus the uploaded asset when the resource carries one.
// JSON keys are accepted in both snake_case and camelCase.
func bindContentFields(ctx *gin.Context, desc models.Descriptor) (map[string]any, *multipart.FileHeader, bool) {
	fields := make(map[string]any)
	var asset *multipart.FileHeader

	contentType := ctx.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		form, err := ctx.MultipartForm()
		if err != nil {
			respondBadRequest(ctx, "Invalid multipart form", err.Error())
			return nil, nil, false
		}

		for _, col := range desc.Columns {
			if values, ok := form.Value[col]; ok && len(values) > 0 {
				fields[col] = values[0]
			} else if values, ok := form.Value[toCamel(col)]; ok && len(values) > 0 {
				fields[col] = values[0]
			}
		}

		if desc.HasAsset() {
			if files, ok := form.File[assetFormField]; ok && len(files) > 0 {
				asset = files[0]
			}
		}

		return fields, asset, true
	}

	var raw map[string]any
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		respondBadRequest(ctx, "Invalid request body", err.Error())
		return nil, nil, false
	}

	for _, col := range desc.Columns {
		if value, ok := raw[col]; ok {
			fields[col] = value
		} else if value, ok := raw[toCamel(col)]; ok {
			fields[col] = value
		}
	}

	return fields, nil, true
}

func respondBadRequest(ctx *gin.Context, message, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	errorDetail = errorDetail.WithDetails(details)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// toCamel converts a snake_case column name to its camelCase JSON key
func toCamel(col string) string {
	parts := strings.Split(col, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// deletedMessage builds the "... deleted" confirmation for a resource name
func deletedMessage(name string) string {
	if name == "" {
		return "Deleted"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " deleted"
}
