package engine

import (
	"testing"
	"time"

	"dataprof/domain/profile"
	"dataprof/internal/testkit"
)

// TestInferType_StorageDispatch verifies the direct storage-to-semantic
// mappings: booleans, timestamps and high-cardinality numerics.
func TestInferType_StorageDispatch(t *testing.T) {
	cfg := profile.DefaultConfig()

	bools := testkit.Bools("active", true, false, true)
	if got := InferType(bools, universalCounts(bools), cfg); got != profile.TypeBoolean {
		t.Errorf("bool column inferred %s, want boolean", got)
	}

	times := testkit.Times("seen_at", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5)
	if got := InferType(times, universalCounts(times), cfg); got != profile.TypeDateTime {
		t.Errorf("timestamp column inferred %s, want datetime", got)
	}

	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i) * 1.5
	}
	floats := testkit.Floats("amount", values...)
	if got := InferType(floats, universalCounts(floats), cfg); got != profile.TypeNumeric {
		t.Errorf("high-cardinality float column inferred %s, want numeric", got)
	}
}

// TestInferType_NumericLowCardinality verifies that integer codes with few
// distinct values over many rows are reclassified as categorical, and that
// the thresholds are inclusive.
func TestInferType_NumericLowCardinality(t *testing.T) {
	cfg := profile.DefaultConfig()

	// 3 distinct codes over 200 rows: 3 <= 10 and 3/200 <= 0.05.
	codes := make([]int64, 200)
	for i := range codes {
		codes[i] = int64(i % 3)
	}
	col := testkit.Ints("status_code", codes...)
	if got := InferType(col, universalCounts(col), cfg); got != profile.TypeCategorical {
		t.Errorf("repeated codes inferred %s, want categorical", got)
	}

	// Exactly at both thresholds: 10 distinct over 200 rows, 10/200 == 0.05.
	atLimit := make([]int64, 200)
	for i := range atLimit {
		atLimit[i] = int64(i % 10)
	}
	col = testkit.Ints("bucket", atLimit...)
	if got := InferType(col, universalCounts(col), cfg); got != profile.TypeCategorical {
		t.Errorf("codes at the threshold inferred %s, want categorical", got)
	}

	// Few distinct values but over few rows: fraction too high to be codes.
	col = testkit.Ints("age", 25, 30, 30, 40)
	if got := InferType(col, universalCounts(col), cfg); got != profile.TypeNumeric {
		t.Errorf("small int column inferred %s, want numeric", got)
	}
}

// TestInferType_Strings verifies the categorical-versus-text split for
// string columns.
func TestInferType_Strings(t *testing.T) {
	cfg := profile.DefaultConfig()

	tests := []struct {
		name   string
		values []string
		want   profile.SemanticType
	}{
		{
			name:   "small label domain",
			values: []string{"NY", "LA", "NY", "SF", "LA"},
			want:   profile.TypeCategorical,
		},
		{
			name:   "repeated values with moderate cardinality",
			values: repeatLabels(30, 12),
			want:   profile.TypeCategorical,
		},
		{
			name:   "free text, nearly all distinct",
			values: repeatLabels(30, 30),
			want:   profile.TypeText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := testkit.Strings("col", tt.values...)
			if got := InferType(col, universalCounts(col), cfg); got != tt.want {
				t.Errorf("inferred %s, want %s", got, tt.want)
			}
		})
	}
}

// TestInferType_AllMissing verifies that a column with no observed values
// is unsupported regardless of storage type.
func TestInferType_AllMissing(t *testing.T) {
	cfg := profile.DefaultConfig()

	col := testkit.AllNull("empty", 10)
	if got := InferType(col, universalCounts(col), cfg); got != profile.TypeUnsupported {
		t.Errorf("all-null column inferred %s, want unsupported", got)
	}

	masked := testkit.IntsWithNulls("masked", []int64{0, 0, 0}, []bool{true, true, true})
	if got := InferType(masked, universalCounts(masked), cfg); got != profile.TypeUnsupported {
		t.Errorf("fully masked int column inferred %s, want unsupported", got)
	}
}

func TestUniversalCounts(t *testing.T) {
	col := testkit.IntsWithNulls("age",
		[]int64{25, 30, 0, 30, 40},
		[]bool{false, false, true, false, false})

	u := universalCounts(col)
	if u.NonMissing != 4 {
		t.Errorf("NonMissing = %d, want 4", u.NonMissing)
	}
	if u.Missing != 1 {
		t.Errorf("Missing = %d, want 1", u.Missing)
	}
	if u.Distinct != 3 {
		t.Errorf("Distinct = %d, want 3", u.Distinct)
	}
}

// repeatLabels builds n values drawn from k distinct labels, cycling.
func repeatLabels(n, k int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "label_" + string(rune('a'+i%k))
	}
	return labels
}
