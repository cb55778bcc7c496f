// Package table defines the columnar dataset model consumed by the
// profiling engine. A Dataset is an ordered set of named columns, each
// holding values of a single storage type plus a null mask. The engine
// treats every Dataset as read-only.
package table

import (
	"strconv"
	"time"
)

// StorageType is the physical type of a column's values, as delivered by
// an ingestion adapter. It is distinct from the semantic type the engine
// infers during profiling.
type StorageType string

const (
	StorageInt       StorageType = "int"
	StorageFloat     StorageType = "float"
	StorageBool      StorageType = "bool"
	StorageString    StorageType = "string"
	StorageTimestamp StorageType = "timestamp"
	// StorageNull marks a column that carried no typed values at all.
	StorageNull StorageType = "null"
)

// Column holds one named column of uniform storage type. Exactly one of
// the value slices is populated, matching Storage; nulls[i] == true means
// row i is missing and the corresponding value slot is a zero value.
type Column struct {
	name    string
	storage StorageType

	ints    []int64
	floats  []float64
	bools   []bool
	strings []string
	times   []time.Time

	nulls  []bool
	length int
}

// NewIntColumn builds an integer column. nulls may be nil for a fully
// populated column.
func NewIntColumn(name string, values []int64, nulls []bool) *Column {
	return &Column{
		name:    name,
		storage: StorageInt,
		ints:    values,
		nulls:   normalizeNulls(nulls, len(values)),
		length:  len(values),
	}
}

// NewFloatColumn builds a float column.
func NewFloatColumn(name string, values []float64, nulls []bool) *Column {
	return &Column{
		name:    name,
		storage: StorageFloat,
		floats:  values,
		nulls:   normalizeNulls(nulls, len(values)),
		length:  len(values),
	}
}

// NewBoolColumn builds a boolean column.
func NewBoolColumn(name string, values []bool, nulls []bool) *Column {
	return &Column{
		name:    name,
		storage: StorageBool,
		bools:   values,
		nulls:   normalizeNulls(nulls, len(values)),
		length:  len(values),
	}
}

// NewStringColumn builds a string column.
func NewStringColumn(name string, values []string, nulls []bool) *Column {
	return &Column{
		name:    name,
		storage: StorageString,
		strings: values,
		nulls:   normalizeNulls(nulls, len(values)),
		length:  len(values),
	}
}

// NewTimestampColumn builds a timestamp column.
func NewTimestampColumn(name string, values []time.Time, nulls []bool) *Column {
	return &Column{
		name:    name,
		storage: StorageTimestamp,
		times:   values,
		nulls:   normalizeNulls(nulls, len(values)),
		length:  len(values),
	}
}

// NewNullColumn builds a column of length rows with no typed values.
func NewNullColumn(name string, rows int) *Column {
	nulls := make([]bool, rows)
	for i := range nulls {
		nulls[i] = true
	}
	return &Column{
		name:    name,
		storage: StorageNull,
		nulls:   nulls,
		length:  rows,
	}
}

func normalizeNulls(nulls []bool, length int) []bool {
	if nulls != nil {
		return nulls
	}
	return make([]bool, length)
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Storage returns the physical storage type.
func (c *Column) Storage() StorageType { return c.storage }

// Len returns the number of rows, missing or not.
func (c *Column) Len() int { return c.length }

// IsNull reports whether row i is missing.
func (c *Column) IsNull(i int) bool { return c.nulls[i] }

// MissingCount returns the number of missing rows.
func (c *Column) MissingCount() int {
	n := 0
	for _, isNull := range c.nulls {
		if isNull {
			n++
		}
	}
	return n
}

// Float returns the numeric value at row i widened to float64. Only valid
// for int and float storage on non-missing rows.
func (c *Column) Float(i int) float64 {
	if c.storage == StorageInt {
		return float64(c.ints[i])
	}
	return c.floats[i]
}

// IsNumeric reports whether the storage type is int or float.
func (c *Column) IsNumeric() bool {
	return c.storage == StorageInt || c.storage == StorageFloat
}

// StringAt returns the string value at row i (string storage only).
func (c *Column) StringAt(i int) string { return c.strings[i] }

// BoolAt returns the boolean value at row i (bool storage only).
func (c *Column) BoolAt(i int) bool { return c.bools[i] }

// TimeAt returns the timestamp value at row i (timestamp storage only).
func (c *Column) TimeAt(i int) time.Time { return c.times[i] }

// Token returns a canonical string form of the cell at row i, used for
// distinct counting, frequency tables and row hashing. Missing cells
// share a single reserved token that cannot collide with real values.
func (c *Column) Token(i int) string {
	if c.nulls[i] {
		return "\x00null"
	}
	switch c.storage {
	case StorageInt:
		return strconv.FormatInt(c.ints[i], 10)
	case StorageFloat:
		return strconv.FormatFloat(c.floats[i], 'g', -1, 64)
	case StorageBool:
		return strconv.FormatBool(c.bools[i])
	case StorageString:
		return c.strings[i]
	case StorageTimestamp:
		return c.times[i].UTC().Format(time.RFC3339Nano)
	default:
		return "\x00null"
	}
}

// EstimatedBytes approximates the in-memory footprint of the column's
// values plus its null mask.
func (c *Column) EstimatedBytes() int64 {
	var bytes int64
	switch c.storage {
	case StorageInt, StorageFloat, StorageTimestamp:
		bytes = int64(c.length) * 8
	case StorageBool:
		bytes = int64(c.length)
	case StorageString:
		for _, s := range c.strings {
			bytes += int64(len(s)) + 16 // string header
		}
	}
	return bytes + int64(c.length) // null mask
}
