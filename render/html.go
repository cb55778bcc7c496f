// Package render turns finished reports into presentation formats. Every
// renderer is a pure function of the report: same report, same bytes.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"time"

	"dataprof/domain/profile"
	"dataprof/internal/errors"
)

// HTMLRenderer renders a report as a standalone HTML document. It
// implements ports.ReportRenderer.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded template once.
func NewHTMLRenderer() *HTMLRenderer {
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"num":   formatFloat,
		"count": formatCount,
		"time":  formatTime,
		"span":  formatSpan,
		"bytes": formatBytes,
	}).Parse(reportTemplate))
	return &HTMLRenderer{tmpl: tmpl}
}

// ContentType returns the MIME type of the output.
func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

// Render executes the template against the report.
func (r *HTMLRenderer) Render(report *profile.Report) ([]byte, error) {
	var buf bytes.Buffer
	view := newReportView(report)
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, errors.RenderError("failed to render HTML report", err)
	}
	return buf.Bytes(), nil
}

// reportView flattens the report maps into deterministically ordered
// slices for the template.
type reportView struct {
	*profile.Report
	TypeRows        []typeRow
	CorrelationRows []correlationRow
	OverlapRows     []overlapRow
}

type typeRow struct {
	Type  profile.SemanticType
	Count int
}

type correlationRow struct {
	A, B  string
	Value *float64
}

type overlapRow struct {
	A, B  string
	Count int
}

func newReportView(r *profile.Report) reportView {
	view := reportView{Report: r}

	for _, t := range []profile.SemanticType{
		profile.TypeNumeric, profile.TypeCategorical, profile.TypeBoolean,
		profile.TypeDateTime, profile.TypeText, profile.TypeUnsupported,
	} {
		if n := r.TypeCounts[t]; n > 0 {
			view.TypeRows = append(view.TypeRows, typeRow{Type: t, Count: n})
		}
	}

	if r.Interactions != nil {
		corrKeys := make([]string, 0, len(r.Interactions.Correlations))
		for k := range r.Interactions.Correlations {
			corrKeys = append(corrKeys, string(k))
		}
		sort.Strings(corrKeys)
		for _, k := range corrKeys {
			key := profile.PairKey(k)
			a, b := key.Columns()
			view.CorrelationRows = append(view.CorrelationRows, correlationRow{
				A: a, B: b, Value: r.Interactions.Correlations[key],
			})
		}

		overlapKeys := make([]string, 0, len(r.Interactions.MissingOverlap))
		for k := range r.Interactions.MissingOverlap {
			overlapKeys = append(overlapKeys, string(k))
		}
		sort.Strings(overlapKeys)
		for _, k := range overlapKeys {
			key := profile.PairKey(k)
			if n := r.Interactions.MissingOverlap[key]; n > 0 {
				a, b := key.Columns()
				view.OverlapRows = append(view.OverlapRows, overlapRow{A: a, B: b, Count: n})
			}
		}
	}

	return view
}

// undefinedMark renders in place of statistics that could not be
// computed, keeping "undefined" visibly distinct from zero.
const undefinedMark = "—"

func formatFloat(v *float64) string {
	if v == nil {
		return undefinedMark
	}
	return strconv.FormatFloat(*v, 'g', 6, 64)
}

func formatCount(v *int) string {
	if v == nil {
		return undefinedMark
	}
	return strconv.Itoa(*v)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return undefinedMark
	}
	return t.UTC().Format(time.RFC3339)
}

func formatSpan(d *time.Duration) string {
	if d == nil {
		return undefinedMark
	}
	return d.String()
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
