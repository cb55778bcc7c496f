package engine

import (
	"sort"
	"time"

	"dataprof/domain/profile"
	"dataprof/domain/table"
)

// dateTimeStats computes the timestamp block. The before/after counts
// split the column's values around the dataset-wide median timestamp as
// a coarse recency signal; they stay undefined when the dataset median
// itself is undefined.
func (s *Summarizer) dateTimeStats(col *table.Column, datasetMedian *time.Time) *profile.DateTimeStats {
	ds := &profile.DateTimeStats{}

	var minT, maxT time.Time
	seen := false
	before, after := 0, 0

	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		t := col.TimeAt(i)
		if !seen {
			minT, maxT = t, t
			seen = true
		} else {
			if t.Before(minT) {
				minT = t
			}
			if t.After(maxT) {
				maxT = t
			}
		}
		if datasetMedian != nil {
			if t.Before(*datasetMedian) {
				before++
			} else if t.After(*datasetMedian) {
				after++
			}
		}
	}

	if !seen {
		return ds
	}

	ds.Min = &minT
	ds.Max = &maxT
	span := maxT.Sub(minT)
	ds.Span = &span
	if datasetMedian != nil {
		ds.BeforeMedian = profile.Int(before)
		ds.AfterMedian = profile.Int(after)
	}

	return ds
}

// datasetMedianTimestamp returns the median over all non-missing values
// of every timestamp column, nil when the dataset holds none. For an even
// number of values the earlier of the two middle timestamps is taken, so
// the result is always an observed value and the split is deterministic.
func datasetMedianTimestamp(ds *table.Dataset) *time.Time {
	var all []time.Time
	for _, col := range ds.Columns() {
		if col.Storage() != table.StorageTimestamp {
			continue
		}
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				all = append(all, col.TimeAt(i))
			}
		}
	}
	if len(all) == 0 {
		return nil
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Before(all[j]) })
	median := all[(len(all)-1)/2]
	return &median
}
