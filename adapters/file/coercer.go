package file

import (
	"strconv"
	"strings"
	"time"

	"dataprof/domain/table"
)

// timestampLayouts are tried in order when coercing a column to
// timestamps. Date-only layouts come last so datetime strings keep their
// time component.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// coerceColumn maps one column of raw cell strings onto the narrowest
// storage type that fits every non-empty cell: int, then float, bool,
// timestamp, falling back to string. Empty cells become nulls; a column
// of only empty cells has null storage.
func coerceColumn(name string, raw []string) *table.Column {
	nulls := make([]bool, len(raw))
	nonEmpty := 0
	for i, cell := range raw {
		if strings.TrimSpace(cell) == "" {
			nulls[i] = true
		} else {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		return table.NewNullColumn(name, len(raw))
	}

	if ints, ok := tryInts(raw, nulls); ok {
		return table.NewIntColumn(name, ints, nulls)
	}
	if floats, ok := tryFloats(raw, nulls); ok {
		return table.NewFloatColumn(name, floats, nulls)
	}
	if bools, ok := tryBools(raw, nulls); ok {
		return table.NewBoolColumn(name, bools, nulls)
	}
	if times, ok := tryTimestamps(raw, nulls); ok {
		return table.NewTimestampColumn(name, times, nulls)
	}

	values := make([]string, len(raw))
	for i, cell := range raw {
		if !nulls[i] {
			values[i] = cell
		}
	}
	return table.NewStringColumn(name, values, nulls)
}

func tryInts(raw []string, nulls []bool) ([]int64, bool) {
	values := make([]int64, len(raw))
	for i, cell := range raw {
		if nulls[i] {
			continue
		}
		v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

func tryFloats(raw []string, nulls []bool) ([]float64, bool) {
	values := make([]float64, len(raw))
	for i, cell := range raw {
		if nulls[i] {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

func tryBools(raw []string, nulls []bool) ([]bool, bool) {
	values := make([]bool, len(raw))
	for i, cell := range raw {
		if nulls[i] {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "true", "t", "yes", "y":
			values[i] = true
		case "false", "f", "no", "n":
			values[i] = false
		default:
			return nil, false
		}
	}
	return values, true
}

func tryTimestamps(raw []string, nulls []bool) ([]time.Time, bool) {
	values := make([]time.Time, len(raw))
	for i, cell := range raw {
		if nulls[i] {
			continue
		}
		parsed, ok := parseTimestamp(strings.TrimSpace(cell))
		if !ok {
			return nil, false
		}
		values[i] = parsed
	}
	return values, true
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
