package report

import (
	"fmt"
	"math"
	"sort"
)

// Compare diffs two reports within a numeric tolerance and returns one
// human-readable line per difference. An empty result means the reports are
// equivalent. Run ids and timestamps are run-local and never compared.
func Compare(a, b Report, tolerance float64) []string {
	var diffs []string

	if a.Metadata.SimulationYears != b.Metadata.SimulationYears {
		diffs = append(diffs, fmt.Sprintf("simulation_years: %d vs %d",
			a.Metadata.SimulationYears, b.Metadata.SimulationYears))
	}
	if a.Metadata.DailyDemandL != b.Metadata.DailyDemandL {
		diffs = append(diffs, fmt.Sprintf("daily_demand_l: %g vs %g",
			a.Metadata.DailyDemandL, b.Metadata.DailyDemandL))
	}

	diffs = append(diffs, compareMap("harvest_summary.monthly_L", a.HarvestSummary.MonthlyL, b.HarvestSummary.MonthlyL, tolerance)...)
	diffs = append(diffs, compareMap("harvest_summary.weekly_L", a.HarvestSummary.WeeklyL, b.HarvestSummary.WeeklyL, tolerance)...)
	diffs = append(diffs, compareMap("reliability_table.tank_L", a.ReliabilityTable.TankL, b.ReliabilityTable.TankL, tolerance)...)
	diffs = append(diffs, compareMap("reliability_table.reliability_pct", a.ReliabilityTable.ReliabilityPct, b.ReliabilityTable.ReliabilityPct, tolerance)...)

	return diffs
}

func compareMap(name string, a, b map[string]float64, tolerance float64) []string {
	var diffs []string

	keys := make(map[string]bool, len(a)+len(b))
	for k := range a {
		keys[k] = true
	}
	for k := range b {
		keys[k] = true
	}
	ordered := make([]string, 0, len(keys))
	for k := range keys {
		ordered = append(ordered, k)
	}
	// Numeric order, so "10" follows "9" in the output.
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) < len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	for _, k := range ordered {
		av, aok := a[k]
		bv, bok := b[k]
		switch {
		case !aok:
			diffs = append(diffs, fmt.Sprintf("%s[%s]: missing on the left (right %g)", name, k, bv))
		case !bok:
			diffs = append(diffs, fmt.Sprintf("%s[%s]: missing on the right (left %g)", name, k, av))
		case math.Abs(av-bv) > tolerance:
			diffs = append(diffs, fmt.Sprintf("%s[%s]: %g vs %g", name, k, av, bv))
		}
	}
	return diffs
}
