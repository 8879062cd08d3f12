package tank

import (
	"math"
	"testing"
)

func TestSimulateHandComputed(t *testing.T) {
	tests := []struct {
		name    string
		inflows []float64
		cfg     WaterBalanceConfig
		want    ReliabilityResult
	}{
		{
			// Tank is topped up and spills 50 L every day.
			name:    "SteadyOverflow",
			inflows: []float64{100, 100, 100, 100, 100},
			cfg:     WaterBalanceConfig{DailyDemand: 50, Capacity: 100},
			want: ReliabilityResult{
				TankSize:      100,
				Reliability:   100,
				TotalInflow:   500,
				TotalDemand:   250,
				TotalOverflow: 250,
			},
		},
		{
			// Day two fails with 40 L left; the failed day drains the tank.
			name:    "FailedDayDrainsTank",
			inflows: []float64{0, 0, 200},
			cfg:     WaterBalanceConfig{DailyDemand: 60, Capacity: 200},
			want: ReliabilityResult{
				TankSize:              200,
				Reliability:           66.67,
				DroughtDays:           1,
				MaxConsecutiveDrought: 1,
				TotalInflow:           200,
				TotalDemand:           180,
			},
		},
		{
			// Two dry days back to back before the big storm refills.
			name:    "ConsecutiveDroughtRun",
			inflows: []float64{0, 0, 0, 0, 1000, 0},
			cfg:     WaterBalanceConfig{DailyDemand: 100, Capacity: 400},
			want: ReliabilityResult{
				TankSize:              400,
				Reliability:           66.67,
				DroughtDays:           2,
				MaxConsecutiveDrought: 2,
				TotalInflow:           1000,
				TotalDemand:           600,
				TotalOverflow:         600,
			},
		},
		{
			name:    "ZeroDemandAlwaysMet",
			inflows: []float64{0, 0, 0},
			cfg:     WaterBalanceConfig{DailyDemand: 0, Capacity: 1000},
			want: ReliabilityResult{
				TankSize:    1000,
				Reliability: 100,
			},
		},
		{
			name:    "EmptySeries",
			inflows: nil,
			cfg:     WaterBalanceConfig{DailyDemand: 100, Capacity: 500},
			want:    ReliabilityResult{TankSize: 500},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simulate(tt.inflows, tt.cfg)
			if got != tt.want {
				t.Errorf("Simulate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSimulateZeroCapacity(t *testing.T) {
	cfg := InflowConfig{
		Units:             []RoofUnit{{ClassroomCount: 1, RoofAreaPerClassroom: 10}},
		RunoffCoefficient: 0.85,
		GutterEfficiency:  0.9,
		FirstFlushMM:      0.5,
	}
	rains := []float64{5, 0, 12.5, 3}
	inflows := make([]float64, len(rains))
	for i, r := range rains {
		inflows[i] = cfg.DailyInflow(r)
	}

	got := Simulate(inflows, WaterBalanceConfig{DailyDemand: 100, Capacity: 0})

	if got.Reliability != 0 {
		t.Errorf("Reliability = %v, want 0", got.Reliability)
	}
	if got.DroughtDays != len(rains) {
		t.Errorf("DroughtDays = %d, want %d", got.DroughtDays, len(rains))
	}
	if got.MaxConsecutiveDrought != len(rains) {
		t.Errorf("MaxConsecutiveDrought = %d, want %d", got.MaxConsecutiveDrought, len(rains))
	}
	// A capacity of zero can never store anything, so every liter that
	// arrives leaves as overflow.
	if got.TotalOverflow != got.TotalInflow {
		t.Errorf("TotalOverflow = %v, want TotalInflow %v", got.TotalOverflow, got.TotalInflow)
	}
	if math.Abs(got.TotalInflow-145.35) > 1e-9 {
		t.Errorf("TotalInflow = %v, want 145.35", got.TotalInflow)
	}
}

func TestSimulateReliabilityMonotonic(t *testing.T) {
	inflows := syntheticInflows(730)

	prev := -1.0
	for capacity := 0.0; capacity <= 5000; capacity += 250 {
		res := Simulate(inflows, WaterBalanceConfig{DailyDemand: 150, Capacity: capacity})
		if res.Reliability < prev {
			t.Fatalf("Reliability(%v L) = %v, below %v at smaller capacity", capacity, res.Reliability, prev)
		}
		prev = res.Reliability
	}
}

func TestSimulateBounds(t *testing.T) {
	inflows := syntheticInflows(365)

	for _, capacity := range []float64{0, 100, 1000, 1e9} {
		res := Simulate(inflows, WaterBalanceConfig{DailyDemand: 150, Capacity: capacity})
		if res.Reliability < 0 || res.Reliability > 100 {
			t.Errorf("Reliability(%v L) = %v, want within [0, 100]", capacity, res.Reliability)
		}
		met := len(inflows) - res.DroughtDays
		wantReliability := math.Round(float64(met)/float64(len(inflows))*100*100) / 100
		if res.Reliability != wantReliability {
			t.Errorf("Reliability(%v L) = %v, want %v from %d met days", capacity, res.Reliability, wantReliability, met)
		}
	}
}

// syntheticInflows builds a varied but deterministic daily series without
// involving the rainfall generator.
func syntheticInflows(days int) []float64 {
	inflows := make([]float64, days)
	for i := range inflows {
		inflows[i] = float64((i*37)%13) * 25
	}
	return inflows
}
