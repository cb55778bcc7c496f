package profile

import (
	"fmt"
	"sort"
	"time"
)

// Config carries the tunable thresholds for type inference and
// summarization. It is passed explicitly into every profiling run so
// concurrent runs with different settings never interfere.
type Config struct {
	// CategoricalDistinctRatio is the inclusive upper bound on
	// distinct/non-missing below which a string column is Categorical
	// rather than Text.
	CategoricalDistinctRatio float64 `json:"categorical_distinct_ratio"`

	// LowCardinalityCount and LowCardinalityFraction reclassify a numeric
	// column as Categorical when its distinct count is at or below the
	// count AND its distinct fraction of non-missing rows is at or below
	// the fraction. The count bound alone also classifies small string
	// domains as Categorical.
	LowCardinalityCount    int     `json:"low_cardinality_count"`
	LowCardinalityFraction float64 `json:"low_cardinality_fraction"`

	// TopNCategories bounds the categorical frequency table.
	TopNCategories int `json:"top_n_categories"`

	// Quantiles are the levels reported for numeric columns, ascending.
	Quantiles []float64 `json:"quantiles"`

	// Workers bounds engine concurrency; <=1 runs sequentially.
	Workers int `json:"workers"`

	// Timeout bounds the whole run; zero means no limit. An exceeded
	// budget fails the run, never returning a partial report.
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		CategoricalDistinctRatio: 0.5,
		LowCardinalityCount:      10,
		LowCardinalityFraction:   0.05,
		TopNCategories:           10,
		Quantiles:                []float64{0.05, 0.25, 0.5, 0.75, 0.95},
		Workers:                  1,
	}
}

// Validate rejects configurations that would make results meaningless.
func (c Config) Validate() error {
	if c.CategoricalDistinctRatio < 0 || c.CategoricalDistinctRatio > 1 {
		return fmt.Errorf("categorical distinct ratio %v outside [0,1]", c.CategoricalDistinctRatio)
	}
	if c.LowCardinalityFraction < 0 || c.LowCardinalityFraction > 1 {
		return fmt.Errorf("low cardinality fraction %v outside [0,1]", c.LowCardinalityFraction)
	}
	if c.LowCardinalityCount < 0 {
		return fmt.Errorf("low cardinality count %d negative", c.LowCardinalityCount)
	}
	if c.TopNCategories < 1 {
		return fmt.Errorf("top-N categories %d below 1", c.TopNCategories)
	}
	if !sort.Float64sAreSorted(c.Quantiles) {
		return fmt.Errorf("quantiles must be ascending")
	}
	for _, q := range c.Quantiles {
		if q < 0 || q > 1 {
			return fmt.Errorf("quantile %v outside [0,1]", q)
		}
	}
	return nil
}
