// Package profile defines the result model of a profiling run: per-column
// summaries, pairwise interaction results and the immutable Report root.
package profile

import (
	"time"

	"dataprof/domain/table"
)

// SemanticType is the inferred analytical category of a column, distinct
// from its raw storage type.
type SemanticType string

const (
	TypeNumeric     SemanticType = "numeric"
	TypeCategorical SemanticType = "categorical"
	TypeBoolean     SemanticType = "boolean"
	TypeDateTime    SemanticType = "datetime"
	TypeText        SemanticType = "text"
	TypeUnsupported SemanticType = "unsupported"
)

// ColumnSummary is the complete profile of one column. Exactly one of the
// type-specific blocks is non-nil, selected by Type; an Unsupported column
// carries none. Undefined statistics are nil pointers, never zero values.
type ColumnSummary struct {
	Name        string       `json:"name"`
	Storage     table.StorageType `json:"storage"`
	Type        SemanticType `json:"type"`
	NonMissing  int          `json:"non_missing"`
	Missing     int          `json:"missing"`
	Distinct    int          `json:"distinct"`
	Numeric     *NumericStats     `json:"numeric,omitempty"`
	Categorical *CategoricalStats `json:"categorical,omitempty"`
	DateTime    *DateTimeStats    `json:"datetime,omitempty"`
	Text        *TextStats        `json:"text,omitempty"`
}

// QuantileValue pairs a quantile level with its value. Value is nil when
// the quantile could not be computed.
type QuantileValue struct {
	Q     float64  `json:"q"`
	Value *float64 `json:"value"`
}

// NumericStats describes a numeric column. All statistics are computed
// over finite non-missing values; infinities are counted separately and
// excluded from the moments and quantiles.
type NumericStats struct {
	Min           *float64        `json:"min"`
	Max           *float64        `json:"max"`
	Mean          *float64        `json:"mean"`
	StdDev        *float64        `json:"std_dev"`
	Skewness      *float64        `json:"skewness"`
	Quantiles     []QuantileValue `json:"quantiles"`
	Range         *float64        `json:"range"`
	IQR           *float64        `json:"iqr"`
	ZeroCount     int             `json:"zero_count"`
	NegativeCount int             `json:"negative_count"`
	InfiniteCount int             `json:"infinite_count"`
}

// QuantileAt fetches a computed quantile from the block by level; nil if
// the level is absent or undefined.
func (ns *NumericStats) QuantileAt(q float64) *float64 {
	for _, qv := range ns.Quantiles {
		if qv.Q == q {
			return qv.Value
		}
	}
	return nil
}

// ValueCount is one entry of a categorical frequency table.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CategoricalStats describes a categorical or boolean column: the top-N
// values by descending count (ties broken by first appearance in the
// column) and the number of values bucketed outside the top-N.
type CategoricalStats struct {
	TopValues  []ValueCount `json:"top_values"`
	OtherCount int          `json:"other_count"`
}

// DateTimeStats describes a timestamp column. BeforeMedian/AfterMedian
// count values strictly before/after the dataset's overall median
// timestamp; values equal to the median fall in neither bucket.
type DateTimeStats struct {
	Min          *time.Time     `json:"min"`
	Max          *time.Time     `json:"max"`
	Span         *time.Duration `json:"span"`
	BeforeMedian *int           `json:"before_median"`
	AfterMedian  *int           `json:"after_median"`
}

// TextStats describes a free-text column via its string-length
// distribution. Lengths are measured in runes.
type TextStats struct {
	LengthMin  *int     `json:"length_min"`
	LengthMean *float64 `json:"length_mean"`
	LengthMax  *int     `json:"length_max"`
	EmptyCount int      `json:"empty_count"`
}

// Float wraps a concrete value in a defined-statistic pointer.
func Float(v float64) *float64 { return &v }

// Int wraps a concrete value in a defined-statistic pointer.
func Int(v int) *int { return &v }
