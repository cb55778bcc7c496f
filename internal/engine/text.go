package engine

import (
	"unicode/utf8"

	"dataprof/domain/profile"
	"dataprof/domain/table"
)

// textStats computes the string-length distribution of a text column.
// Lengths count runes, not bytes.
func (s *Summarizer) textStats(col *table.Column) *profile.TextStats {
	ts := &profile.TextStats{}

	minLen, maxLen := 0, 0
	totalLen := 0
	counted := 0

	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		str := col.StringAt(i)
		if str == "" {
			ts.EmptyCount++
		}
		length := utf8.RuneCountInString(str)
		if counted == 0 {
			minLen, maxLen = length, length
		} else {
			if length < minLen {
				minLen = length
			}
			if length > maxLen {
				maxLen = length
			}
		}
		totalLen += length
		counted++
	}

	if counted == 0 {
		return ts
	}

	ts.LengthMin = profile.Int(minLen)
	ts.LengthMax = profile.Int(maxLen)
	ts.LengthMean = profile.Float(float64(totalLen) / float64(counted))

	return ts
}
