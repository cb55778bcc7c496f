package ports

import (
	"dataprof/domain/profile"
)

// ReportRenderer turns a finished report into a presentation format. The
// rendering contract is read-only: renderers consume every report field
// without reaching into engine internals.
type ReportRenderer interface {
	// Render produces the formatted document.
	Render(report *profile.Report) ([]byte, error)

	// ContentType is the MIME type of the rendered output.
	ContentType() string
}
