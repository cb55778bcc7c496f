package render

import (
	"encoding/json"

	"dataprof/domain/profile"
	"dataprof/internal/errors"
)

// JSONRenderer emits the report model itself, for machine consumers. It
// implements ports.ReportRenderer.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// ContentType returns the MIME type of the output.
func (r *JSONRenderer) ContentType() string { return "application/json" }

// Render marshals the report with indentation.
func (r *JSONRenderer) Render(report *profile.Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, errors.RenderError("failed to marshal report", err)
	}
	return data, nil
}
