package tank

import (
	"math"
	"testing"
)

func TestScanSpacing(t *testing.T) {
	inflows := make([]float64, 365)
	for i := range inflows {
		inflows[i] = 150
	}

	results := Scan(inflows, 100, 1000, 50000, 25)
	if len(results) != 26 {
		t.Fatalf("got %d results, want 26", len(results))
	}

	const span = (50000.0 - 1000.0) / 25 // 1960 L
	for i, r := range results {
		want := 1000 + span*float64(i)
		if math.Abs(r.TankSize-want) > 1e-9 {
			t.Errorf("result %d: tank size %v, want %v", i, r.TankSize, want)
		}
		if i > 0 && results[i-1].TankSize >= r.TankSize {
			t.Errorf("result %d: tank sizes not strictly increasing", i)
		}
	}
	if results[0].TankSize != 1000 || results[25].TankSize != 50000 {
		t.Errorf("scan ends = (%v, %v), want (1000, 50000)", results[0].TankSize, results[25].TankSize)
	}
}

func TestScanReliabilityMonotonic(t *testing.T) {
	// Bursty inflow: long dry gaps a bigger buffer must bridge better.
	inflows := make([]float64, 400)
	for i := range inflows {
		if i%10 == 0 {
			inflows[i] = 1200
		}
	}

	results := Scan(inflows, 100, 0, 10000, 20)
	for i := 1; i < len(results); i++ {
		if results[i].Reliability < results[i-1].Reliability {
			t.Errorf("reliability dropped from %v to %v between %v L and %v L",
				results[i-1].Reliability, results[i].Reliability,
				results[i-1].TankSize, results[i].TankSize)
		}
	}
	for _, r := range results {
		if r.Reliability < 0 || r.Reliability > 100 {
			t.Errorf("tank %v L: reliability %v out of bounds", r.TankSize, r.Reliability)
		}
	}
}

func TestScanResultsOrderedDeterministically(t *testing.T) {
	inflows := []float64{0, 500, 0, 500, 0}
	a := Scan(inflows, 100, 100, 900, 8)
	b := Scan(inflows, 100, 100, 900, 8)
	if len(a) != len(b) {
		t.Fatalf("scan sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("result %d differs across identical scans: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestScanFloorsStepCount(t *testing.T) {
	results := Scan([]float64{100}, 10, 0, 1000, 0)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestRecommendTank(t *testing.T) {
	results := []ReliabilityResult{
		{TankSize: 1000, Reliability: 40},
		{TankSize: 2000, Reliability: 88},
		{TankSize: 3000, Reliability: 91.5},
		{TankSize: 4000, Reliability: 95},
	}

	got, ok := RecommendTank(results, DefaultReliabilityTarget)
	if !ok || got != 3000 {
		t.Errorf("RecommendTank() = (%v, %v), want (3000, true)", got, ok)
	}

	if _, ok := RecommendTank(results, 99); ok {
		t.Error("RecommendTank() found a tank above every scan point")
	}
	if _, ok := RecommendTank(nil, 0); ok {
		t.Error("RecommendTank() recommended from an empty scan")
	}
}

func TestDemandScenarios(t *testing.T) {
	scenarios := DefaultScenarios()
	if len(scenarios) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(scenarios))
	}

	baseline := scenarios[1]
	if baseline.Name != "Baseline" || baseline.LitersPerStudent != DemandBaselineLPD {
		t.Fatalf("scenarios[1] = %+v, want Baseline at %v L", baseline, DemandBaselineLPD)
	}
	if got := baseline.TotalDemand(40); got != 200 {
		t.Errorf("Baseline.TotalDemand(40) = %v, want 200", got)
	}
	if got := scenarios[0].TotalDemand(0); got != 0 {
		t.Errorf("TotalDemand(0) = %v, want 0", got)
	}
}
