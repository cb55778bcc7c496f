package engine

import (
	"sort"

	"dataprof/domain/profile"
	"dataprof/domain/table"
)

// categoricalStats builds the top-N frequency table for a categorical or
// boolean column. Ordering is by descending count with ties broken by
// first appearance in the column, which keeps the table deterministic.
func (s *Summarizer) categoricalStats(col *table.Column) *profile.CategoricalStats {
	type bucket struct {
		value     string
		count     int
		firstSeen int
	}

	buckets := make(map[string]*bucket)
	order := make([]*bucket, 0)
	total := 0

	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		total++
		token := col.Token(i)
		b, ok := buckets[token]
		if !ok {
			b = &bucket{value: token, firstSeen: i}
			buckets[token] = b
			order = append(order, b)
		}
		b.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].firstSeen < order[j].firstSeen
	})

	topN := s.cfg.TopNCategories
	if topN > len(order) {
		topN = len(order)
	}

	cs := &profile.CategoricalStats{
		TopValues: make([]profile.ValueCount, 0, topN),
	}
	counted := 0
	for _, b := range order[:topN] {
		cs.TopValues = append(cs.TopValues, profile.ValueCount{Value: b.value, Count: b.count})
		counted += b.count
	}
	cs.OtherCount = total - counted

	return cs
}
