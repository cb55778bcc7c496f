package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"dataprof/domain/core"
	"dataprof/domain/profile"
	"dataprof/domain/table"
	"dataprof/internal/errors"
)

// Profiler drives a full profiling run: input validation, type inference
// over all columns, per-column summarization, pairwise interaction
// analysis and assembly of the immutable report. It is the only
// component that reads the raw dataset; everything downstream works on
// extracted values or finished summaries.
type Profiler struct {
	cfg profile.Config
}

// New creates a profiler. The config is captured by value; runs with
// different configs never share state.
func New(cfg profile.Config) *Profiler {
	return &Profiler{cfg: cfg}
}

// Run profiles the dataset. It returns a whole report or a whole error:
// an exceeded time budget yields a TIMEOUT error and no partial report,
// and an unprofilable dataset yields INPUT_INVALID before any
// summarization starts.
func (p *Profiler) Run(ctx context.Context, ds *table.Dataset) (*profile.Report, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, errors.ConfigInvalid(err.Error())
	}
	if err := validateDataset(ds); err != nil {
		return nil, err
	}

	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	cols := ds.Columns()

	// Universal counts and semantic types, once per column, before any
	// type-dispatched work.
	universals := make([]Universal, len(cols))
	types := make([]profile.SemanticType, len(cols))
	for i, col := range cols {
		universals[i] = universalCounts(col)
		types[i] = InferType(col, universals[i], p.cfg)
	}

	median := datasetMedianTimestamp(ds)
	summarizer := NewSummarizer(p.cfg)
	summaries := make([]profile.ColumnSummary, len(cols))

	workers := p.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cols {
		i := i
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			summaries[i] = summarizer.Summarize(cols[i], types[i], universals[i], median)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, runError(err)
	}

	interactions, err := NewAnalyzer(workers).Analyze(ctx, ds, types)
	if err != nil {
		return nil, runError(err)
	}

	report := &profile.Report{
		DatasetName:       ds.Name(),
		RowCount:          ds.NumRows(),
		ColumnCount:       ds.NumColumns(),
		TotalMissingCells: totalMissing(universals),
		DuplicateRowCount: duplicateRows(ds),
		EstimatedBytes:    estimatedBytes(ds),
		TypeCounts:        typeCounts(types),
		Summaries:         summaries,
		Interactions:      interactions,
	}
	report.Fingerprint = fingerprint(report)

	// The budget covers assembly too: a deadline that fired during the
	// final aggregation still fails the run.
	if err := ctx.Err(); err != nil {
		return nil, runError(err)
	}
	return report, nil
}

func validateDataset(ds *table.Dataset) error {
	if ds == nil || ds.NumColumns() == 0 {
		return errors.InvalidInput("dataset has no columns")
	}
	rows := ds.Column(0).Len()
	for _, col := range ds.Columns() {
		if col.Len() != rows {
			return errors.InvalidInput(fmt.Sprintf(
				"column %q has %d rows, expected %d", col.Name(), col.Len(), rows))
		}
	}
	return nil
}

func runError(err error) error {
	if err == context.DeadlineExceeded {
		return errors.Timeout("profiling run exceeded its time budget")
	}
	if err == context.Canceled {
		return errors.Timeout("profiling run canceled before completion")
	}
	return errors.Wrap(err, "profiling run failed")
}

func totalMissing(universals []Universal) int {
	total := 0
	for _, u := range universals {
		total += u.Missing
	}
	return total
}

// duplicateRows counts rows identical across all columns. Each row is
// reduced to a hash of its canonical cell tokens; the count is rows
// beyond the first occurrence of each hash.
func duplicateRows(ds *table.Dataset) int {
	seen := make(map[core.RowHash]struct{}, ds.NumRows())
	duplicates := 0

	var sb strings.Builder
	for row := 0; row < ds.NumRows(); row++ {
		sb.Reset()
		for _, col := range ds.Columns() {
			sb.WriteString(col.Token(row))
			sb.WriteByte(0x1f)
		}
		h := core.NewRowHash([]byte(sb.String()))
		if _, dup := seen[h]; dup {
			duplicates++
		} else {
			seen[h] = struct{}{}
		}
	}
	return duplicates
}

func estimatedBytes(ds *table.Dataset) int64 {
	var total int64
	for _, col := range ds.Columns() {
		total += col.EstimatedBytes()
	}
	return total
}

func typeCounts(types []profile.SemanticType) map[profile.SemanticType]int {
	counts := make(map[profile.SemanticType]int)
	for _, t := range types {
		counts[t]++
	}
	return counts
}

// fingerprint hashes the report content. json.Marshal sorts map keys, so
// the serialization is stable for identical reports.
func fingerprint(r *profile.Report) core.Fingerprint {
	clone := *r
	clone.Fingerprint = ""
	data, err := json.Marshal(&clone)
	if err != nil {
		// Report types marshal by construction; an error here means a
		// programming bug, not bad data.
		panic(fmt.Sprintf("report fingerprint: %v", err))
	}
	return core.NewFingerprint(data)
}
