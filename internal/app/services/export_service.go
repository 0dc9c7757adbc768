package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/pkg/apperrors"
	"github.com/hillcrest/college-backend/internal/pkg/docrender"
	"github.com/hillcrest/college-backend/internal/pkg/slug"
	"github.com/rs/zerolog"
)

// exportDateFormat renders dates as "Month D, YYYY"
const exportDateFormat = "January 2, 2006"

// dateLayouts are the input shapes accepted for submitted date strings
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
	"01/02/2006",
	"2 January 2006",
	"January 2, 2006",
}

// ExportService renders an admission application into a downloadable Word
// document through the template renderer collaborator.
type ExportService struct {
	repo         ContentRepo[models.Application]
	renderer     docrender.Renderer
	templatePath string
	logger       zerolog.Logger
}

// NewExportService creates a new export service
func NewExportService(repo ContentRepo[models.Application], renderer docrender.Renderer, templatePath string, logger zerolog.Logger) *ExportService {
	return &ExportService{
		repo:         repo,
		renderer:     renderer,
		templatePath: templatePath,
		logger:       logger,
	}
}

// RenderApplication fetches the application and merges it into the document
// template. Returns the rendered bytes and a suggested attachment filename.
func (s *ExportService) RenderApplication(ctx context.Context, id int64) ([]byte, string, error) {
	application, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	fields := s.FieldMap(application)

	rendered, err := s.renderer.Render(s.templatePath, fields)
	if err != nil {
		s.logger.Error().Err(err).Int64("applicationID", id).
			Strs("knownFields", s.KnownFields()).
			Msg("Template rendering failed")
		return nil, "", apperrors.NewUpstreamError("failed to render application document")
	}

	filename := fmt.Sprintf("application-%s.docx", slug.Make(application.FullName))
	return rendered, filename, nil
}

// FieldMap flattens an application into the template's key/value context.
// Date-like fields render as "Month D, YYYY", the literal "N/A" when absent,
// or "Invalid Date" when present but unparsable. These three outputs are an
// output-compatibility contract and must not change.
func (s *ExportService) FieldMap(a *models.Application) map[string]string {
	return map[string]string{
		"full_name":                a.FullName,
		"email":                    a.Email,
		"phone":                    a.Phone,
		"date_of_birth":            formatDateField(a.DateOfBirth),
		"gender":                   deref(a.Gender),
		"national_id":              deref(a.NationalID),
		"address":                  deref(a.Address),
		"city":                     deref(a.City),
		"county":                   deref(a.County),
		"next_of_kin_name":         deref(a.NextOfKinName),
		"next_of_kin_phone":        deref(a.NextOfKinPhone),
		"next_of_kin_relationship": deref(a.NextOfKinRelationship),
		"course_applied":           a.CourseApplied,
		"intake":                   deref(a.Intake),
		"mode_of_study":            deref(a.ModeOfStudy),
		"education_level":          deref(a.EducationLevel),
		"previous_school":          deref(a.PreviousSchool),
		"financier_name":           deref(a.FinancierName),
		"financier_phone":          deref(a.FinancierPhone),
		"financier_relationship":   deref(a.FinancierRelationship),
		"status":                   string(a.Status),
		"submitted_on":             a.CreatedAt.Format(exportDateFormat),
	}
}

// KnownFields lists the template field names, exposed in the failure
// response as a debugging aid for template authors.
func (s *ExportService) KnownFields() []string {
	fields := s.FieldMap(&models.Application{})
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatDateField implements the three-literal date contract
func formatDateField(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "N/A"
	}

	raw := strings.TrimSpace(*value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(exportDateFormat)
		}
	}

	return "Invalid Date"
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
