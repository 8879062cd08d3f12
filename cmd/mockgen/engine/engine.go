// Package engine fabricates plausible historical rainfall CSVs for demos
// and calibration tests. It deliberately uses its own simple wet/dry chain
// with seasonal profiles, so calibrating against its output is a real
// round-trip and not the production generator checking itself.
package engine

import (
	"math"
	"math/rand"
	"time"

	"rwh-sim/internal/ingest"
	"rwh-sim/internal/rainfall"
)

type GeneratorConfig struct {
	Scenario string // "monsoon", "arid" or "uniform"
	Years    int
	Seed     int64
	Start    time.Time
}

// Monthly wet-day probabilities and mean depths (mm) per scenario. The
// monsoon profile peaks June-September, the arid one stays sparse all year.
var (
	monsoonWetP  = [12]float64{0.15, 0.12, 0.15, 0.20, 0.35, 0.55, 0.65, 0.65, 0.55, 0.40, 0.25, 0.18}
	monsoonDepth = [12]float64{4.0, 3.5, 4.0, 5.0, 8.0, 12.0, 15.0, 15.0, 12.0, 9.0, 6.0, 4.5}

	aridWetP  = [12]float64{0.04, 0.03, 0.04, 0.05, 0.06, 0.05, 0.04, 0.04, 0.05, 0.06, 0.05, 0.04}
	aridDepth = [12]float64{2.0, 2.0, 2.5, 3.0, 3.5, 3.0, 2.5, 2.5, 3.0, 3.5, 3.0, 2.0}
)

// persistenceBoost multiplies the wet probability on the day after a wet
// day, giving the fabricated record the spell structure the transition
// analyzer is supposed to find.
const persistenceBoost = 2.2

func profile(scenario string, month int) (wetP, depth float64) {
	switch scenario {
	case "arid":
		return aridWetP[month-1], aridDepth[month-1]
	case "uniform":
		return 0.3, 6.0
	default: // monsoon
		return monsoonWetP[month-1], monsoonDepth[month-1]
	}
}

// Generate fabricates one day per calendar day over the configured years.
func Generate(cfg GeneratorConfig) []rainfall.HistoricalRecord {
	if cfg.Start.IsZero() {
		cfg.Start = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var records []rainfall.HistoricalRecord
	date := cfg.Start
	end := cfg.Start.AddDate(cfg.Years, 0, 0)
	wasWet := false

	for date.Before(end) {
		wetP, depth := profile(cfg.Scenario, int(date.Month()))
		if wasWet {
			wetP = math.Min(0.95, wetP*persistenceBoost)
		}

		rainMM := 0.0
		if rng.Float64() < wetP {
			rainMM = math.Round(rng.ExpFloat64()*depth*10) / 10
			if rainMM < rainfall.WetThreshold {
				rainMM = rainfall.WetThreshold
			}
		}

		records = append(records, rainfall.HistoricalRecord{Date: date, RainMM: rainMM})
		wasWet = rainMM >= rainfall.WetThreshold
		date = date.AddDate(0, 0, 1)
	}
	return records
}

// Save writes the fabricated record as a date,rain_mm CSV.
func Save(path string, records []rainfall.HistoricalRecord) error {
	return ingest.WriteHistory(path, records)
}
