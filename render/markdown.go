package render

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"dataprof/domain/profile"
)

// MarkdownRenderer renders a report as a Markdown document, handy for
// dropping into READMEs or tickets. It implements ports.ReportRenderer.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a markdown renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// ContentType returns the MIME type of the output.
func (r *MarkdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

// Render writes the report as Markdown.
func (r *MarkdownRenderer) Render(report *profile.Report) ([]byte, error) {
	var sb strings.Builder
	view := newReportView(report)

	fmt.Fprintf(&sb, "# Profile: %s\n\n", report.DatasetName)

	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Observations | %d |\n", report.RowCount)
	fmt.Fprintf(&sb, "| Variables | %d |\n", report.ColumnCount)
	fmt.Fprintf(&sb, "| Missing cells | %d |\n", report.TotalMissingCells)
	fmt.Fprintf(&sb, "| Duplicate rows | %d |\n", report.DuplicateRowCount)
	fmt.Fprintf(&sb, "| Estimated size | %s |\n\n", formatBytes(report.EstimatedBytes))

	for _, s := range report.Summaries {
		fmt.Fprintf(&sb, "## %s (%s)\n\n", s.Name, s.Type)
		sb.WriteString("| | |\n|---|---|\n")
		fmt.Fprintf(&sb, "| Missing | %d |\n", s.Missing)
		fmt.Fprintf(&sb, "| Distinct | %d |\n", s.Distinct)

		if ns := s.Numeric; ns != nil {
			fmt.Fprintf(&sb, "| Min | %s |\n", formatFloat(ns.Min))
			fmt.Fprintf(&sb, "| Max | %s |\n", formatFloat(ns.Max))
			fmt.Fprintf(&sb, "| Mean | %s |\n", formatFloat(ns.Mean))
			fmt.Fprintf(&sb, "| Std dev | %s |\n", formatFloat(ns.StdDev))
			fmt.Fprintf(&sb, "| Skewness | %s |\n", formatFloat(ns.Skewness))
			for _, q := range ns.Quantiles {
				fmt.Fprintf(&sb, "| p%g | %s |\n", q.Q*100, formatFloat(q.Value))
			}
			fmt.Fprintf(&sb, "| Zeros | %d |\n", ns.ZeroCount)
			fmt.Fprintf(&sb, "| Negative | %d |\n", ns.NegativeCount)
			fmt.Fprintf(&sb, "| Infinite | %d |\n", ns.InfiniteCount)
		}
		if cs := s.Categorical; cs != nil {
			for _, vc := range cs.TopValues {
				fmt.Fprintf(&sb, "| %s | %d |\n", vc.Value, vc.Count)
			}
			if cs.OtherCount > 0 {
				fmt.Fprintf(&sb, "| *other* | %d |\n", cs.OtherCount)
			}
		}
		if ds := s.DateTime; ds != nil {
			fmt.Fprintf(&sb, "| Min | %s |\n", formatTime(ds.Min))
			fmt.Fprintf(&sb, "| Max | %s |\n", formatTime(ds.Max))
			fmt.Fprintf(&sb, "| Span | %s |\n", formatSpan(ds.Span))
			fmt.Fprintf(&sb, "| Before median | %s |\n", formatCount(ds.BeforeMedian))
			fmt.Fprintf(&sb, "| After median | %s |\n", formatCount(ds.AfterMedian))
		}
		if ts := s.Text; ts != nil {
			fmt.Fprintf(&sb, "| Length min | %s |\n", formatCount(ts.LengthMin))
			fmt.Fprintf(&sb, "| Length mean | %s |\n", formatFloat(ts.LengthMean))
			fmt.Fprintf(&sb, "| Length max | %s |\n", formatCount(ts.LengthMax))
			fmt.Fprintf(&sb, "| Empty strings | %d |\n", ts.EmptyCount)
		}
		sb.WriteString("\n")
	}

	if len(view.CorrelationRows) > 0 {
		sb.WriteString("## Correlations\n\n| Column | Column | Pearson r |\n|---|---|---|\n")
		for _, row := range view.CorrelationRows {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", row.A, row.B, formatFloat(row.Value))
		}
		sb.WriteString("\n")
	}

	if len(view.OverlapRows) > 0 {
		sb.WriteString("## Missing together\n\n| Column | Column | Rows both missing |\n|---|---|---|\n")
		for _, row := range view.OverlapRows {
			fmt.Fprintf(&sb, "| %s | %s | %d |\n", row.A, row.B, row.Count)
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// MarkdownHTML converts the Markdown rendering to an HTML fragment, for
// embedding a report into another page.
func MarkdownHTML(report *profile.Report) ([]byte, error) {
	md, err := NewMarkdownRenderer().Render(report)
	if err != nil {
		return nil, err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse(md)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return markdown.Render(doc, renderer), nil
}
