package ports

import (
	"context"

	"dataprof/domain/core"
	"dataprof/domain/profile"
)

// StoredReport wraps an engine report with persistence metadata. The ID
// and timestamp live here, outside the report itself, so the engine
// output stays deterministic.
type StoredReport struct {
	ID        core.ReportID   `json:"id"`
	Name      string          `json:"name"`
	CreatedAt core.Timestamp  `json:"created_at"`
	Report    *profile.Report `json:"report"`
}

// ReportMeta is the listing projection of a stored report.
type ReportMeta struct {
	ID          core.ReportID    `json:"id"`
	Name        string           `json:"name"`
	RowCount    int              `json:"row_count"`
	ColumnCount int              `json:"column_count"`
	Fingerprint core.Fingerprint `json:"fingerprint"`
	CreatedAt   core.Timestamp   `json:"created_at"`
}

// ReportStore persists finished reports.
type ReportStore interface {
	Save(ctx context.Context, rec *StoredReport) error
	Get(ctx context.Context, id core.ReportID) (*StoredReport, error)
	List(ctx context.Context, limit int) ([]ReportMeta, error)
}
