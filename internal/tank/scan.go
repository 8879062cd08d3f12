package tank

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultReliabilityTarget is the reliability a recommended tank must reach.
const DefaultReliabilityTarget = 90.0

// Scan evaluates the water balance at steps+1 evenly spaced capacities
// between minCap and maxCap inclusive. Scan points are independent, so they
// fan out across workers; results come back ordered by capacity.
func Scan(inflows []float64, dailyDemand, minCap, maxCap float64, steps int) []ReliabilityResult {
	if steps < 1 {
		steps = 1
	}
	span := (maxCap - minCap) / float64(steps)
	capacities := make([]float64, steps+1)
	for i := range capacities {
		capacities[i] = minCap + span*float64(i)
	}

	results := make([]ReliabilityResult, len(capacities))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, capacity := range capacities {
		g.Go(func() error {
			results[i] = Simulate(inflows, WaterBalanceConfig{
				DailyDemand: dailyDemand,
				Capacity:    capacity,
			})
			return nil
		})
	}
	_ = g.Wait() // scan workers never fail

	return results
}

// RecommendTank returns the smallest scanned capacity whose reliability meets
// the threshold, or false when no scan point qualifies.
func RecommendTank(results []ReliabilityResult, thresholdPct float64) (float64, bool) {
	for _, r := range results {
		if r.Reliability >= thresholdPct {
			return r.TankSize, true
		}
	}
	return 0, false
}
