package profile

import (
	"strings"
)

// pairSep joins the two column names of a PairKey. The separator cannot
// appear in a column name coming from any ingestion adapter.
const pairSep = "\x1f"

// PairKey identifies an unordered column pair. The two names are stored
// in lexicographic order so (A,B) and (B,A) map to the same key, and keys
// sort deterministically.
type PairKey string

// NewPairKey builds the canonical key for a column pair.
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey(a + pairSep + b)
}

// Columns returns the two column names of the pair.
func (k PairKey) Columns() (string, string) {
	a, b, _ := strings.Cut(string(k), pairSep)
	return a, b
}

// Contains reports whether the pair involves the named column.
func (k PairKey) Contains(name string) bool {
	a, b := k.Columns()
	return a == name || b == name
}

// Interactions holds pairwise analysis results. Correlations covers every
// unordered pair of numeric columns (nil value = undefined correlation);
// MissingOverlap covers every unordered pair of columns and counts rows
// where both sides are simultaneously missing.
type Interactions struct {
	Correlations   map[PairKey]*float64 `json:"correlations"`
	MissingOverlap map[PairKey]int      `json:"missing_overlap"`
}

// NewInteractions returns an empty result.
func NewInteractions() *Interactions {
	return &Interactions{
		Correlations:   make(map[PairKey]*float64),
		MissingOverlap: make(map[PairKey]int),
	}
}

// Correlation looks up the correlation for a pair in either column order.
// The second return reports whether the pair was analyzed at all; a true
// with nil value means the correlation is undefined.
func (x *Interactions) Correlation(a, b string) (*float64, bool) {
	v, ok := x.Correlations[NewPairKey(a, b)]
	return v, ok
}

// Overlap looks up the missing co-occurrence count for a pair.
func (x *Interactions) Overlap(a, b string) (int, bool) {
	v, ok := x.MissingOverlap[NewPairKey(a, b)]
	return v, ok
}
