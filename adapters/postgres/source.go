// Package postgres provides the SQL-backed dataset source and the report
// store. Both speak through sqlx; the lib/pq driver is registered by the
// importing main.
package postgres

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jmoiron/sqlx"

	"dataprof/domain/table"
	"dataprof/internal/errors"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// TableSource loads a whole database table into a dataset. It implements
// ports.DatasetSource.
type TableSource struct {
	db    *sqlx.DB
	table string
}

// NewTableSource creates a source for one table. The table name is
// validated against a strict identifier pattern since it is interpolated
// into the query text.
func NewTableSource(db *sqlx.DB, tableName string) (*TableSource, error) {
	if !identPattern.MatchString(tableName) {
		return nil, errors.InvalidInput(fmt.Sprintf("invalid table name %q", tableName))
	}
	return &TableSource{db: db, table: tableName}, nil
}

// Name returns the table name.
func (s *TableSource) Name() string { return s.table }

// Load selects every row of the table and coerces each database column
// onto the matching storage type.
func (s *TableSource) Load(ctx context.Context) (*table.Dataset, error) {
	query := fmt.Sprintf(`SELECT * FROM "%s"`, s.table)
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, errors.SourceError(s.table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, errors.SourceError(s.table, err)
	}

	cells := make([][]interface{}, len(names))
	rowCount := 0
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, errors.SourceError(s.table, err)
		}
		for c := range names {
			cells[c] = append(cells[c], values[c])
		}
		rowCount++
	}
	if err := rows.Err(); err != nil {
		return nil, errors.SourceError(s.table, err)
	}

	columns := make([]*table.Column, len(names))
	for c, name := range names {
		columns[c] = columnFromValues(name, cells[c], rowCount)
	}

	ds, err := table.NewDataset(s.table, columns)
	if err != nil {
		return nil, errors.SourceError(s.table, err)
	}
	return ds, nil
}

// columnFromValues maps driver values onto a typed column. The storage
// type is decided by the first non-nil value; later values that do not
// fit it degrade the column to string storage rather than failing the
// load.
func columnFromValues(name string, values []interface{}, rows int) *table.Column {
	storage := table.StorageNull
	for _, v := range values {
		if v == nil {
			continue
		}
		switch v.(type) {
		case int64:
			storage = table.StorageInt
		case float64:
			storage = table.StorageFloat
		case bool:
			storage = table.StorageBool
		case time.Time:
			storage = table.StorageTimestamp
		default:
			storage = table.StorageString
		}
		break
	}

	nulls := make([]bool, rows)
	switch storage {
	case table.StorageNull:
		return table.NewNullColumn(name, rows)

	case table.StorageInt:
		ints := make([]int64, rows)
		for i, v := range values {
			iv, ok := v.(int64)
			if v == nil {
				nulls[i] = true
				continue
			}
			if !ok {
				return stringColumn(name, values, rows)
			}
			ints[i] = iv
		}
		return table.NewIntColumn(name, ints, nulls)

	case table.StorageFloat:
		floats := make([]float64, rows)
		for i, v := range values {
			fv, ok := v.(float64)
			if v == nil {
				nulls[i] = true
				continue
			}
			if !ok {
				return stringColumn(name, values, rows)
			}
			floats[i] = fv
		}
		return table.NewFloatColumn(name, floats, nulls)

	case table.StorageBool:
		bools := make([]bool, rows)
		for i, v := range values {
			bv, ok := v.(bool)
			if v == nil {
				nulls[i] = true
				continue
			}
			if !ok {
				return stringColumn(name, values, rows)
			}
			bools[i] = bv
		}
		return table.NewBoolColumn(name, bools, nulls)

	case table.StorageTimestamp:
		times := make([]time.Time, rows)
		for i, v := range values {
			tv, ok := v.(time.Time)
			if v == nil {
				nulls[i] = true
				continue
			}
			if !ok {
				return stringColumn(name, values, rows)
			}
			times[i] = tv
		}
		return table.NewTimestampColumn(name, times, nulls)

	default:
		return stringColumn(name, values, rows)
	}
}

func stringColumn(name string, values []interface{}, rows int) *table.Column {
	strs := make([]string, rows)
	nulls := make([]bool, rows)
	for i, v := range values {
		switch tv := v.(type) {
		case nil:
			nulls[i] = true
		case []byte:
			strs[i] = string(tv)
		case string:
			strs[i] = tv
		default:
			strs[i] = fmt.Sprintf("%v", tv)
		}
	}
	return table.NewStringColumn(name, strs, nulls)
}
