package engine

import (
	"time"

	"dataprof/domain/profile"
	"dataprof/domain/table"
)

// Summarizer computes the type-specific statistics for one column. It is
// a pure function of the column, its semantic type and the config; no
// summary depends on another column's summary, so summarizers may run on
// any number of columns concurrently.
type Summarizer struct {
	cfg profile.Config
}

// NewSummarizer creates a summarizer with the given thresholds.
func NewSummarizer(cfg profile.Config) *Summarizer {
	return &Summarizer{cfg: cfg}
}

// Summarize builds the full summary for a column whose semantic type has
// already been inferred. datasetMedian is the median timestamp across all
// timestamp columns of the dataset, nil when the dataset has none; only
// the DateTime branch consumes it.
//
// Summarization never fails: a statistic that cannot be computed for a
// degenerate distribution is left nil, and the rest of the summary is
// still populated.
func (s *Summarizer) Summarize(col *table.Column, sem profile.SemanticType, u Universal, datasetMedian *time.Time) profile.ColumnSummary {
	summary := profile.ColumnSummary{
		Name:       col.Name(),
		Storage:    col.Storage(),
		Type:       sem,
		NonMissing: u.NonMissing,
		Missing:    u.Missing,
		Distinct:   u.Distinct,
	}

	switch sem {
	case profile.TypeNumeric:
		summary.Numeric = s.numericStats(col)
	case profile.TypeCategorical, profile.TypeBoolean:
		summary.Categorical = s.categoricalStats(col)
	case profile.TypeDateTime:
		summary.DateTime = s.dateTimeStats(col, datasetMedian)
	case profile.TypeText:
		summary.Text = s.textStats(col)
	case profile.TypeUnsupported:
		// Universal fields only.
	}

	return summary
}
