package table

import (
	"fmt"
)

// Dataset is an ordered sequence of named columns with a uniform row
// count. It is the sole input to a profiling run and is never mutated.
type Dataset struct {
	name    string
	columns []*Column
	byName  map[string]int
}

// NewDataset assembles a dataset from columns. Column names must be
// unique and every column must have the same length.
func NewDataset(name string, columns []*Column) (*Dataset, error) {
	byName := make(map[string]int, len(columns))
	rows := -1
	for i, col := range columns {
		if _, dup := byName[col.Name()]; dup {
			return nil, fmt.Errorf("duplicate column name %q", col.Name())
		}
		byName[col.Name()] = i
		if rows == -1 {
			rows = col.Len()
		} else if col.Len() != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name(), col.Len(), rows)
		}
	}
	return &Dataset{name: name, columns: columns, byName: byName}, nil
}

// Name returns the dataset name (typically the source file or table).
func (d *Dataset) Name() string { return d.name }

// NumColumns returns the column count.
func (d *Dataset) NumColumns() int { return len(d.columns) }

// NumRows returns the row count shared by all columns; zero for an
// empty dataset.
func (d *Dataset) NumRows() int {
	if len(d.columns) == 0 {
		return 0
	}
	return d.columns[0].Len()
}

// Columns returns the columns in dataset order. Callers must not modify
// the returned slice.
func (d *Dataset) Columns() []*Column { return d.columns }

// Column returns the column at position i.
func (d *Dataset) Column(i int) *Column { return d.columns[i] }

// ColumnByName looks a column up by name.
func (d *Dataset) ColumnByName(name string) (*Column, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}
	return d.columns[i], true
}

// ColumnNames returns the ordered column names.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name()
	}
	return names
}
