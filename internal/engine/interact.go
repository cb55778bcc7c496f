package engine

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"dataprof/domain/profile"
	"dataprof/domain/table"
)

// Analyzer computes pairwise interactions: Pearson correlation for
// numeric column pairs and missing-value co-occurrence for all pairs.
// The pass is quadratic in column count, which is acceptable for the
// tens-to-low-hundreds of columns profiling targets; very wide tables
// are a known scaling limit.
type Analyzer struct {
	workers int
}

// NewAnalyzer creates an analyzer; workers <= 1 runs sequentially.
func NewAnalyzer(workers int) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{workers: workers}
}

// pairResult is one pair's computation, produced by a worker and merged
// by the single collecting goroutine.
type pairResult struct {
	key         profile.PairKey
	correlation *float64
	bothNumeric bool
	overlap     int
}

// Analyze covers every unordered pair of columns exactly once. Pair
// computations are independent and fan out over an errgroup; results
// land in a preallocated slice indexed by pair so the final merge is
// collision-free and the output independent of worker scheduling.
func (a *Analyzer) Analyze(ctx context.Context, ds *table.Dataset, types []profile.SemanticType) (*profile.Interactions, error) {
	cols := ds.Columns()
	numPairs := len(cols) * (len(cols) - 1) / 2
	results := make([]pairResult, numPairs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	idx := 0
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			i, j, slot := i, j, idx
			idx++
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[slot] = analyzePair(cols[i], cols[j], types[i], types[j])
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := profile.NewInteractions()
	for _, r := range results {
		out.MissingOverlap[r.key] = r.overlap
		if r.bothNumeric {
			out.Correlations[r.key] = r.correlation
		}
	}
	return out, nil
}

func analyzePair(x, y *table.Column, typeX, typeY profile.SemanticType) pairResult {
	r := pairResult{key: profile.NewPairKey(x.Name(), y.Name())}

	for i := 0; i < x.Len(); i++ {
		if x.IsNull(i) && y.IsNull(i) {
			r.overlap++
		}
	}

	if typeX == profile.TypeNumeric && typeY == profile.TypeNumeric {
		r.bothNumeric = true
		r.correlation = pairwiseCorrelation(x, y)
	}
	return r
}

// pairwiseCorrelation computes Pearson's r over the rows where both
// columns hold finite values (pairwise-complete-case policy). It is
// undefined, not zero, when fewer than two overlapping rows exist or
// either side has no variance.
func pairwiseCorrelation(x, y *table.Column) *float64 {
	var xs, ys []float64
	for i := 0; i < x.Len(); i++ {
		if x.IsNull(i) || y.IsNull(i) {
			continue
		}
		xv, yv := x.Float(i), y.Float(i)
		if !isFinite(xv) || !isFinite(yv) {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}

	if len(xs) < 2 {
		return nil
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		// Zero variance on one side; a single-point density has no
		// defined correlation.
		return nil
	}
	// Floating accumulation can push |r| a hair past 1.
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return profile.Float(r)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
