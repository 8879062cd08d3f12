// Package report builds, persists, validates and compares the feasibility
// report document. The document layout — metadata, harvest_summary with its
// index-keyed monthly_L/weekly_L maps, reliability_table with parallel
// tank_L/reliability_pct maps — is shared with externally generated runs, so
// the key names and string-index convention must not drift.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"rwh-sim/internal/rainfall"
	"rwh-sim/internal/tank"
)

// clock is a package-level time source so tests can pin generated_at.
var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Metadata describes the run a report was produced from.
type Metadata struct {
	RunID             string    `json:"run_id"`
	GeneratedAt       time.Time `json:"generated_at"`
	Station           string    `json:"station"`
	SimulationYears   int       `json:"simulation_years"`
	Seed              int64     `json:"seed"`
	CatchmentAreaM2   float64   `json:"catchment_area_m2"`
	RunoffCoefficient float64   `json:"runoff_coefficient"`
	GutterEfficiency  float64   `json:"gutter_efficiency"`
	FirstFlushMM      float64   `json:"first_flush_mm"`
	DailyDemandL      float64   `json:"daily_demand_l"`
}

// HarvestSummary holds average harvested liters keyed by calendar month and
// by 7-day week window, both as 1-based string indices.
type HarvestSummary struct {
	MonthlyL map[string]float64 `json:"monthly_L"`
	WeeklyL  map[string]float64 `json:"weekly_L"`
}

// ReliabilityTable holds the scan curve as two parallel maps keyed by the
// scan index ("0", "1", ...).
type ReliabilityTable struct {
	TankL          map[string]float64 `json:"tank_L"`
	ReliabilityPct map[string]float64 `json:"reliability_pct"`
}

// Report is the persisted feasibility document.
type Report struct {
	Metadata         Metadata         `json:"metadata"`
	HarvestSummary   HarvestSummary   `json:"harvest_summary"`
	ReliabilityTable ReliabilityTable `json:"reliability_table"`
}

// Build assembles a report from one simulation run. The run id and timestamp
// are filled here; everything else in the metadata is the caller's.
func Build(meta Metadata, rows []rainfall.DataRow, inflows []float64, scan []tank.ReliabilityResult) Report {
	meta.RunID = uuid.NewString()
	meta.GeneratedAt = clock.Now().UTC()

	r := Report{
		Metadata:       meta,
		HarvestSummary: Summarize(rows, inflows),
		ReliabilityTable: ReliabilityTable{
			TankL:          make(map[string]float64, len(scan)),
			ReliabilityPct: make(map[string]float64, len(scan)),
		},
	}
	for i, res := range scan {
		key := strconv.Itoa(i)
		r.ReliabilityTable.TankL[key] = res.TankSize
		r.ReliabilityTable.ReliabilityPct[key] = res.Reliability
	}
	return r
}

// Summarize averages daily inflow liters into per-month and per-week totals
// across the synthetic years. Week w covers days 7(w-1)+1 to 7w of the year;
// the trailing partial week is included.
func Summarize(rows []rainfall.DataRow, inflows []float64) HarvestSummary {
	s := HarvestSummary{
		MonthlyL: make(map[string]float64),
		WeeklyL:  make(map[string]float64),
	}
	if len(rows) == 0 || len(rows) != len(inflows) {
		return s
	}

	years := rows[len(rows)-1].SyntheticYear
	for i, row := range rows {
		month := strconv.Itoa(row.Month)
		week := strconv.Itoa((row.DayOfYear-1)/7 + 1)
		s.MonthlyL[month] += inflows[i]
		s.WeeklyL[week] += inflows[i]
	}
	for k, v := range s.MonthlyL {
		s.MonthlyL[k] = round2(v / float64(years))
	}
	for k, v := range s.WeeklyL {
		s.WeeklyL[k] = round2(v / float64(years))
	}
	return s
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Save writes the report as indented JSON.
func Save(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Info().Str("path", path).Str("runId", r.Metadata.RunID).Msg("Wrote report")
	return nil
}

// Load reads a report document, validating it against the schema before
// decoding, so externally produced files fail with a structural error
// rather than as half-empty structs.
func Load(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Report{}, fmt.Errorf("failed to parse report: %w", err)
	}
	if err := Validate(doc); err != nil {
		return Report{}, err
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("failed to decode report: %w", err)
	}
	log.Info().Str("path", path).Str("runId", r.Metadata.RunID).Msg("Loaded report")
	return r, nil
}
