package ports

import (
	"context"

	"dataprof/domain/table"
)

// DatasetSource loads a dataset from some backing medium (file, database
// table). The engine itself never parses files; sources are the input
// boundary.
type DatasetSource interface {
	// Name identifies the source for logging and report naming.
	Name() string

	// Load materializes the full dataset. The returned dataset is owned
	// by the caller and must not be mutated by the source afterwards.
	Load(ctx context.Context) (*table.Dataset, error)
}
