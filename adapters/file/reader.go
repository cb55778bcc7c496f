// Package file loads CSV and Excel files into datasets. Storage types
// are coerced per column from the raw cell strings; the profiling engine
// never sees the files themselves.
package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"dataprof/domain/table"
	"dataprof/internal/errors"
)

// DataReader reads a CSV or Excel file into a table.Dataset. It
// implements ports.DatasetSource.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader; the file type is taken from the
// extension, defaulting to Excel.
func NewDataReader(filePath string) *DataReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Name returns the base file name, used as dataset and report name.
func (r *DataReader) Name() string {
	return filepath.Base(r.filePath)
}

// Load reads the file into a dataset.
func (r *DataReader) Load(ctx context.Context) (*table.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.SourceError(r.filePath, fmt.Errorf("file not found"))
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		err = fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, errors.SourceError(r.filePath, err)
	}

	return r.datasetFromRows(rows)
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// datasetFromRows converts header + data rows into a coerced dataset.
// Short rows (Excel drops trailing empty cells) are padded with empty
// cells, which coerce to nulls.
func (r *DataReader) datasetFromRows(rows [][]string) (*table.Dataset, error) {
	if len(rows) < 1 {
		return nil, errors.SourceError(r.filePath, fmt.Errorf("file has no header row"))
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("column_%d", i+1)
		}
		headers[i] = header
	}

	dataRows := rows[1:]
	columns := make([]*table.Column, len(headers))
	for c, name := range headers {
		raw := make([]string, len(dataRows))
		for i, row := range dataRows {
			if c < len(row) {
				raw[i] = row[c]
			}
		}
		columns[c] = coerceColumn(name, raw)
	}

	ds, err := table.NewDataset(r.Name(), columns)
	if err != nil {
		return nil, errors.SourceError(r.filePath, err)
	}
	return ds, nil
}
