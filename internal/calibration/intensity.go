package calibration

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"rwh-sim/internal/rainfall"
)

// AnalyzeIntensity fits wet-day rainfall-depth statistics per calendar month.
// Depths strictly above the significance threshold feed the sample; the Gamma
// fit is Method of Moments with divisors floored at 1 so a degenerate sample
// yields sentinel shape/scale instead of NaN. Months without a single wet day
// are omitted and must be filled from defaults by the caller.
func AnalyzeIntensity(records []rainfall.HistoricalRecord) []rainfall.MonthlyParameters {
	depths := make(map[int][]float64)
	for _, r := range records {
		if r.RainMM > rainfall.WetThreshold {
			m := int(r.Date.Month())
			depths[m] = append(depths[m], r.RainMM)
		}
	}

	out := make([]rainfall.MonthlyParameters, 0, len(depths))
	for m := 1; m <= 12; m++ {
		sample, ok := depths[m]
		if !ok {
			continue
		}
		mean := stat.Mean(sample, nil)
		variance := stat.PopVariance(sample, nil)
		out = append(out, rainfall.MonthlyParameters{
			Month:      m,
			MeanRain:   round4(mean),
			StdDev:     round4(stat.PopStdDev(sample, nil)),
			GammaK:     round4(mean * mean / math.Max(1, variance)),
			GammaTheta: round4(variance / math.Max(1, mean)),
		})
	}
	return out
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
