package tank

import "math"

// WaterBalanceConfig holds the per-day demand and the tank size under test.
type WaterBalanceConfig struct {
	DailyDemand float64 `json:"daily_demand_l"`
	Capacity    float64 `json:"capacity_l"`
}

// ReliabilityResult summarizes one water-balance run at a fixed capacity.
type ReliabilityResult struct {
	TankSize              float64 `json:"tank_l"`
	Reliability           float64 `json:"reliability_pct"`
	DroughtDays           int     `json:"drought_days"`
	MaxConsecutiveDrought int     `json:"max_consecutive_drought_days"`
	TotalInflow           float64 `json:"total_inflow_l"`
	TotalDemand           float64 `json:"total_demand_l"`
	TotalOverflow         float64 `json:"total_overflow_l"`
}

// Simulate runs the daily storage balance over an inflow series. The tank
// starts half full. Each day stores what fits, spills the rest, then either
// serves the full demand or registers a drought day and empties the tank.
func Simulate(inflows []float64, cfg WaterBalanceConfig) ReliabilityResult {
	res := ReliabilityResult{TankSize: cfg.Capacity}

	storage := cfg.Capacity * 0.5
	met := 0
	consecutive := 0
	for _, inflow := range inflows {
		// 1. Fill, spilling whatever the tank cannot hold.
		res.TotalInflow += inflow
		storage += inflow
		if storage > cfg.Capacity {
			res.TotalOverflow += storage - cfg.Capacity
			storage = cfg.Capacity
		}

		// 2. Serve the day's demand in full or not at all. A failed day
		// drains the tank: partial deliveries are not worth tracking at
		// this resolution.
		if storage >= cfg.DailyDemand {
			storage -= cfg.DailyDemand
			met++
			consecutive = 0
		} else {
			storage = 0
			res.DroughtDays++
			consecutive++
			if consecutive > res.MaxConsecutiveDrought {
				res.MaxConsecutiveDrought = consecutive
			}
		}
	}

	if len(inflows) > 0 {
		res.Reliability = math.Round(float64(met)/float64(len(inflows))*100*100) / 100
	}
	res.TotalDemand = cfg.DailyDemand * float64(len(inflows))
	res.TotalInflow = math.Round(res.TotalInflow*100) / 100
	res.TotalOverflow = math.Round(res.TotalOverflow*100) / 100
	return res
}
