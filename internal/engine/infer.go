// Package engine implements the profiling core: semantic type inference,
// type-dispatched column summarization, pairwise interaction analysis and
// report assembly. The engine reads a table.Dataset and produces a
// profile.Report; it performs no I/O and no presentation formatting.
package engine

import (
	"dataprof/domain/profile"
	"dataprof/domain/table"
)

// Universal holds the per-column counts computed once per run, before
// type dispatch, and shared by inference and summarization.
type Universal struct {
	NonMissing int
	Missing    int
	Distinct   int
}

// universalCounts walks a column once to produce its universal counts.
// Distinct counting uses canonical cell tokens so it is storage-agnostic.
func universalCounts(col *table.Column) Universal {
	seen := make(map[string]struct{})
	u := Universal{}
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			u.Missing++
			continue
		}
		u.NonMissing++
		seen[col.Token(i)] = struct{}{}
	}
	u.Distinct = len(seen)
	return u
}

// InferType assigns exactly one semantic type to a column given its
// storage type and universal counts.
//
// Thresholds are inclusive toward Categorical: a column sitting exactly
// at a threshold is classified Categorical.
func InferType(col *table.Column, u Universal, cfg profile.Config) profile.SemanticType {
	if u.NonMissing == 0 {
		return profile.TypeUnsupported
	}

	switch col.Storage() {
	case table.StorageBool:
		return profile.TypeBoolean

	case table.StorageTimestamp:
		return profile.TypeDateTime

	case table.StorageInt, table.StorageFloat:
		// Small-cardinality numeric codes behave like categories.
		fraction := float64(u.Distinct) / float64(u.NonMissing)
		if u.Distinct <= cfg.LowCardinalityCount && fraction <= cfg.LowCardinalityFraction {
			return profile.TypeCategorical
		}
		return profile.TypeNumeric

	case table.StorageString:
		if u.Distinct <= cfg.LowCardinalityCount {
			return profile.TypeCategorical
		}
		ratio := float64(u.Distinct) / float64(u.NonMissing)
		if ratio <= cfg.CategoricalDistinctRatio {
			return profile.TypeCategorical
		}
		return profile.TypeText

	default:
		return profile.TypeUnsupported
	}
}
