package engine

import (
	"context"
	"testing"

	"dataprof/domain/profile"
	"dataprof/internal/errors"
	"dataprof/internal/testkit"
)

// TestRun_EndToEnd profiles a mixed dataset and checks the report-level
// aggregates against the column summaries.
func TestRun_EndToEnd(t *testing.T) {
	gen := testkit.NewGenerator(11)
	ds := gen.MixedDataset("orders", 400)

	report, err := New(profile.DefaultConfig()).Run(context.Background(), ds)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.DatasetName != "orders" {
		t.Errorf("DatasetName = %q, want orders", report.DatasetName)
	}
	if report.RowCount != 400 || report.ColumnCount != 5 {
		t.Errorf("shape = %dx%d, want 400x5", report.RowCount, report.ColumnCount)
	}
	if len(report.Summaries) != 5 {
		t.Fatalf("summaries = %d, want 5", len(report.Summaries))
	}
	if report.Fingerprint.String() == "" {
		t.Error("report fingerprint missing")
	}
	if report.EstimatedBytes <= 0 {
		t.Error("estimated bytes must be positive")
	}

	// Total missing cells equals the sum over column summaries.
	sum := 0
	for _, s := range report.Summaries {
		sum += s.Missing
	}
	if report.TotalMissingCells != sum {
		t.Errorf("TotalMissingCells = %d, want %d", report.TotalMissingCells, sum)
	}

	// Type counts partition the columns.
	total := 0
	for _, n := range report.TypeCounts {
		total += n
	}
	if total != report.ColumnCount {
		t.Errorf("type counts sum to %d, want %d", total, report.ColumnCount)
	}

	// Summaries keep dataset column order.
	for i, name := range ds.ColumnNames() {
		if report.Summaries[i].Name != name {
			t.Errorf("summary %d = %q, want %q", i, report.Summaries[i].Name, name)
		}
	}

	// Every unordered pair has an overlap entry.
	wantPairs := 5 * 4 / 2
	if len(report.Interactions.MissingOverlap) != wantPairs {
		t.Errorf("overlap pairs = %d, want %d", len(report.Interactions.MissingOverlap), wantPairs)
	}
}

// TestRun_Deterministic verifies repeated runs and different worker
// counts produce byte-identical reports.
func TestRun_Deterministic(t *testing.T) {
	ds := testkit.NewGenerator(23).MixedDataset("orders", 250)
	ctx := context.Background()

	cfg := profile.DefaultConfig()
	first, err := New(cfg).Run(ctx, ds)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	second, err := New(cfg).Run(ctx, ds)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if first.Fingerprint != second.Fingerprint {
		t.Error("repeated runs produced different reports")
	}

	cfg.Workers = 8
	parallel, err := New(cfg).Run(ctx, ds)
	if err != nil {
		t.Fatalf("parallel Run failed: %v", err)
	}
	if first.Fingerprint != parallel.Fingerprint {
		t.Error("worker count changed the report content")
	}
}

// TestRun_DuplicateRows verifies exact duplicate counting: occurrences
// beyond the first, with missing cells comparing equal to each other.
func TestRun_DuplicateRows(t *testing.T) {
	id := testkit.IntsWithNulls("id",
		[]int64{1, 2, 1, 0, 0},
		[]bool{false, false, false, true, true})
	city := testkit.Strings("city", "NY", "LA", "NY", "SF", "SF")
	ds := testkit.MustDataset("dups", id, city)

	report, err := New(profile.DefaultConfig()).Run(context.Background(), ds)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Rows 0 and 2 match, and rows 3 and 4 match with null ids.
	if report.DuplicateRowCount != 2 {
		t.Errorf("DuplicateRowCount = %d, want 2", report.DuplicateRowCount)
	}
}

// TestRun_NullNotEqualValue verifies a missing cell never compares equal
// to a real value during duplicate detection.
func TestRun_NullNotEqualValue(t *testing.T) {
	col := testkit.IntsWithNulls("v",
		[]int64{0, 0},
		[]bool{false, true})
	ds := testkit.MustDataset("nulls", col)

	report, err := New(profile.DefaultConfig()).Run(context.Background(), ds)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.DuplicateRowCount != 0 {
		t.Errorf("DuplicateRowCount = %d, want 0 (null != 0)", report.DuplicateRowCount)
	}
}

func TestRun_InvalidInput(t *testing.T) {
	p := New(profile.DefaultConfig())

	_, err := p.Run(context.Background(), nil)
	if errors.GetCode(err) != errors.CodeInputInvalid {
		t.Errorf("nil dataset: code = %q, want %q", errors.GetCode(err), errors.CodeInputInvalid)
	}

	empty := testkit.MustDataset("empty")
	_, err = p.Run(context.Background(), empty)
	if errors.GetCode(err) != errors.CodeInputInvalid {
		t.Errorf("zero columns: code = %q, want %q", errors.GetCode(err), errors.CodeInputInvalid)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := profile.DefaultConfig()
	cfg.CategoricalDistinctRatio = 1.5

	ds := testkit.MustDataset("ok", testkit.Ints("id", 1, 2, 3))
	_, err := New(cfg).Run(context.Background(), ds)
	if errors.GetCode(err) != errors.CodeConfigInvalid {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.CodeConfigInvalid)
	}
}

// TestRun_ExpiredBudget verifies an already-dead context fails the whole
// run with a timeout error and no partial report.
func TestRun_ExpiredBudget(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ds := testkit.NewGenerator(3).MixedDataset("orders", 50)
	report, err := New(profile.DefaultConfig()).Run(ctx, ds)
	if report != nil {
		t.Error("expired run must not return a partial report")
	}
	if errors.GetCode(err) != errors.CodeTimeout {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.CodeTimeout)
	}
}
