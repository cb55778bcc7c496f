package profile

import (
	"dataprof/domain/core"
)

// Report is the immutable root result of a profiling run. It owns its
// summaries and interactions outright: every value is copied out of the
// source dataset, so the report outlives it. The engine produces no
// random or clock-dependent fields here; re-profiling an unchanged
// dataset yields an identical Report, which the Fingerprint makes
// checkable.
type Report struct {
	DatasetName       string `json:"dataset_name"`
	RowCount          int    `json:"row_count"`
	ColumnCount       int    `json:"column_count"`
	TotalMissingCells int    `json:"total_missing_cells"`
	DuplicateRowCount int    `json:"duplicate_row_count"`
	EstimatedBytes    int64  `json:"estimated_bytes"`

	// TypeCounts maps each semantic type to the number of columns
	// assigned to it.
	TypeCounts map[SemanticType]int `json:"type_counts"`

	// Summaries are ordered exactly as the dataset's columns.
	Summaries    []ColumnSummary `json:"summaries"`
	Interactions *Interactions   `json:"interactions"`

	// Fingerprint is a content hash of all fields above, assigned by the
	// assembler after the report is otherwise complete.
	Fingerprint core.Fingerprint `json:"fingerprint"`
}

// Summary returns the summary for a named column.
func (r *Report) Summary(name string) (*ColumnSummary, bool) {
	for i := range r.Summaries {
		if r.Summaries[i].Name == name {
			return &r.Summaries[i], true
		}
	}
	return nil, false
}
