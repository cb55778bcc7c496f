// Package testkit provides deterministic dataset fixtures for engine and
// adapter tests. All generators take an explicit seed so test runs are
// reproducible.
package testkit

import (
	"fmt"
	"math/rand"
	"time"

	"dataprof/domain/table"
)

// MustDataset builds a dataset from columns and panics on invalid input;
// for use in tests only.
func MustDataset(name string, cols ...*table.Column) *table.Dataset {
	ds, err := table.NewDataset(name, cols)
	if err != nil {
		panic(err)
	}
	return ds
}

// Ints builds an int column with no missing rows; use IntsWithNulls when
// missing rows are needed.
func Ints(name string, values ...int64) *table.Column {
	return table.NewIntColumn(name, values, nil)
}

// IntsWithNulls builds an int column with the given null mask.
func IntsWithNulls(name string, values []int64, nulls []bool) *table.Column {
	return table.NewIntColumn(name, values, nulls)
}

// Floats builds a float column.
func Floats(name string, values ...float64) *table.Column {
	return table.NewFloatColumn(name, values, nil)
}

// FloatsWithNulls builds a float column with the given null mask.
func FloatsWithNulls(name string, values []float64, nulls []bool) *table.Column {
	return table.NewFloatColumn(name, values, nulls)
}

// Strings builds a string column.
func Strings(name string, values ...string) *table.Column {
	return table.NewStringColumn(name, values, nil)
}

// StringsWithNulls builds a string column with the given null mask.
func StringsWithNulls(name string, values []string, nulls []bool) *table.Column {
	return table.NewStringColumn(name, values, nulls)
}

// Bools builds a bool column.
func Bools(name string, values ...bool) *table.Column {
	return table.NewBoolColumn(name, values, nil)
}

// Times builds a timestamp column of n evenly spaced daily values
// starting at start.
func Times(name string, start time.Time, n int) *table.Column {
	values := make([]time.Time, n)
	for i := range values {
		values[i] = start.AddDate(0, 0, i)
	}
	return table.NewTimestampColumn(name, values, nil)
}

// AllNull builds a column of n missing rows.
func AllNull(name string, n int) *table.Column {
	return table.NewNullColumn(name, n)
}

// Generator produces randomized but reproducible datasets.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator from a fixed seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NumericColumn generates n gaussian values with the given missing rate.
func (g *Generator) NumericColumn(name string, n int, mean, stddev, missingRate float64) *table.Column {
	values := make([]float64, n)
	nulls := make([]bool, n)
	for i := range values {
		if g.rng.Float64() < missingRate {
			nulls[i] = true
			continue
		}
		values[i] = mean + stddev*g.rng.NormFloat64()
	}
	return table.NewFloatColumn(name, values, nulls)
}

// CorrelatedColumn generates a column linearly related to base plus
// gaussian noise; rows missing in base stay missing here.
func (g *Generator) CorrelatedColumn(name string, base *table.Column, slope, noise float64) *table.Column {
	n := base.Len()
	values := make([]float64, n)
	nulls := make([]bool, n)
	for i := 0; i < n; i++ {
		if base.IsNull(i) {
			nulls[i] = true
			continue
		}
		values[i] = slope*base.Float(i) + noise*g.rng.NormFloat64()
	}
	return table.NewFloatColumn(name, values, nulls)
}

// CategoryColumn generates n values drawn uniformly from k categories
// named cat_0..cat_{k-1}.
func (g *Generator) CategoryColumn(name string, n, k int) *table.Column {
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("cat_%d", g.rng.Intn(k))
	}
	return table.NewStringColumn(name, values, nil)
}

// MixedDataset generates a dataset with numeric, categorical, boolean
// and timestamp columns, suitable for end-to-end assembler tests.
func (g *Generator) MixedDataset(name string, rows int) *table.Dataset {
	amount := g.NumericColumn("amount", rows, 100, 25, 0.1)
	score := g.CorrelatedColumn("score", amount, 0.5, 5)
	segment := g.CategoryColumn("segment", rows, 4)

	flags := make([]bool, rows)
	for i := range flags {
		flags[i] = g.rng.Intn(2) == 1
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, rows)
	for i := range times {
		times[i] = start.Add(time.Duration(g.rng.Intn(365*24)) * time.Hour)
	}

	return MustDataset(name,
		amount,
		score,
		segment,
		table.NewBoolColumn("active", flags, nil),
		table.NewTimestampColumn("seen_at", times, nil),
	)
}
