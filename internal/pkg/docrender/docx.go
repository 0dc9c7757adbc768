// Package docrender merges flat field maps into DOCX templates.
package docrender

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/nguyenthenguyen/docx"
)

// placeholderPattern matches template tags like {full_name}. Curly braces
// never occur in the surrounding XML, so a blanket sweep is safe.
var placeholderPattern = regexp.MustCompile(`\{[A-Za-z0-9_]+\}`)

// Renderer merges a flat key/value map into a document template and
// returns the rendered bytes.
type Renderer interface {
	Render(templatePath string, fields map[string]string) ([]byte, error)
}

// DocxRenderer renders Word document templates with {field} placeholders.
// Placeholders that match no supplied field are blanked rather than failing:
// the template is externally authored and may drift from the schema.
type DocxRenderer struct{}

// NewDocxRenderer creates a new DocxRenderer.
func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// Render merges fields into the template at templatePath.
func (r *DocxRenderer) Render(templatePath string, fields map[string]string) ([]byte, error) {
	tmpl, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", templatePath, err)
	}
	defer tmpl.Close()

	doc := tmpl.Editable()
	for key, value := range fields {
		if err := doc.Replace("{"+key+"}", value, -1); err != nil {
			return nil, fmt.Errorf("failed to substitute field %s: %w", key, err)
		}
	}

	// Blank any placeholder the field map did not cover.
	content := doc.GetContent()
	doc.SetContent(placeholderPattern.ReplaceAllString(content, ""))

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write rendered document: %w", err)
	}

	return buf.Bytes(), nil
}
