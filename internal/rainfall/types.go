package rainfall

import "time"

// WetThreshold is the rainfall depth (mm) at or above which a day counts as wet.
// Analyzers, the generator, and the wet flag on emitted rows all share it.
const WetThreshold = 0.1

// HistoricalRecord is one observed day of rainfall. Records are expected in
// chronological order, one per day; gaps are not validated and bias month
// attribution the same way they did in the source datasets.
type HistoricalRecord struct {
	Date   time.Time `json:"date"`
	RainMM float64   `json:"rain_mm"`
}

// Wet reports whether the record clears the significance threshold.
func (r HistoricalRecord) Wet() bool {
	return r.RainMM >= WetThreshold
}

// MonthlyParameters holds the calibrated statistics for one calendar month.
// P01 is P(dry→wet), P11 is P(wet→wet). Optional fields use 0 as "absent":
// missing Gamma moments route depth sampling to the exponential fallback, and
// missing spell moments route sojourn sampling to the geometric fallback.
type MonthlyParameters struct {
	Month        int     `json:"month"`
	P01          float64 `json:"p01"`
	P11          float64 `json:"p11"`
	MeanRain     float64 `json:"mean_rain"`
	StdDev       float64 `json:"std_dev"`
	GammaK       float64 `json:"gamma_k,omitempty"`
	GammaTheta   float64 `json:"gamma_theta,omitempty"`
	MeanDrySpell float64 `json:"mean_dry_spell,omitempty"`
	VarDrySpell  float64 `json:"var_dry_spell,omitempty"`
	MeanWetSpell float64 `json:"mean_wet_spell,omitempty"`
	VarWetSpell  float64 `json:"var_wet_spell,omitempty"`
}

// DataRow is one generated day of synthetic rainfall. Wet is derived from the
// final emitted depth, not from the generator's internal state, so a wet-state
// day whose draw fell below the threshold carries Wet=false.
type DataRow struct {
	SyntheticYear int     `json:"synthetic_year"`
	DayOfYear     int     `json:"day_of_year"`
	Month         int     `json:"month"`
	DayInMonth    int     `json:"day_in_month"`
	RainMM        float64 `json:"rain_mm"`
	Wet           bool    `json:"wet"`
}
