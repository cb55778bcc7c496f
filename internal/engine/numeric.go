package engine

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"dataprof/domain/profile"
	"dataprof/domain/table"
)

// numericStats computes the numeric block. Infinities are counted but
// excluded from every moment and quantile; stored NaN values are treated
// the same way so no statistic is silently poisoned.
func (s *Summarizer) numericStats(col *table.Column) *profile.NumericStats {
	ns := &profile.NumericStats{}

	finite := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		v := col.Float(i)
		if math.IsInf(v, 0) {
			ns.InfiniteCount++
			continue
		}
		if math.IsNaN(v) {
			continue
		}
		if v == 0 {
			ns.ZeroCount++
		}
		if v < 0 {
			ns.NegativeCount++
		}
		finite = append(finite, v)
	}

	ns.Quantiles = make([]profile.QuantileValue, len(s.cfg.Quantiles))
	for i, q := range s.cfg.Quantiles {
		ns.Quantiles[i] = profile.QuantileValue{Q: q}
	}

	if len(finite) == 0 {
		return ns
	}

	ns.Min = defined(stats.Min(finite))
	ns.Max = defined(stats.Max(finite))
	ns.Mean = defined(stats.Mean(finite))
	// Sample standard deviation; NaN for a single value, which defined()
	// turns into an explicit undefined rather than a fake zero.
	ns.StdDev = defined(stats.StandardDeviationSample(finite))

	if ns.Min != nil && ns.Max != nil {
		ns.Range = profile.Float(*ns.Max - *ns.Min)
	}

	// Nearest-rank quantiles: always an observed value, defined for any
	// non-empty column and monotone across levels.
	for i, q := range s.cfg.Quantiles {
		ns.Quantiles[i].Value = defined(stats.PercentileNearestRank(finite, q*100))
	}
	if p25, p75 := ns.QuantileAt(0.25), ns.QuantileAt(0.75); p25 != nil && p75 != nil {
		ns.IQR = profile.Float(*p75 - *p25)
	}

	// Sample skewness needs at least 3 points and nonzero variance.
	if len(finite) >= 3 && ns.StdDev != nil && *ns.StdDev > 0 {
		if sk := stat.Skew(finite, nil); !math.IsNaN(sk) && !math.IsInf(sk, 0) {
			ns.Skewness = profile.Float(sk)
		}
	}

	return ns
}

// defined converts a (value, error) statistic into a pointer that is nil
// whenever the computation degraded: an error, NaN or infinity all mean
// "undefined", never a fake zero.
func defined(v float64, err error) *float64 {
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return profile.Float(v)
}
