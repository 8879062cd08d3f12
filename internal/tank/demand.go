package tank

// Per-student daily consumption tiers in liters, from the field survey
// behind the default school profile.
const (
	DemandLowLPD      = 2.0
	DemandBaselineLPD = 5.0
	DemandHighLPD     = 10.0
)

// DemandScenario names a per-student daily consumption level.
type DemandScenario struct {
	Name             string  `json:"name"`
	LitersPerStudent float64 `json:"liters_per_student_day"`
}

// DefaultScenarios returns the three consumption tiers used for reporting.
func DefaultScenarios() []DemandScenario {
	return []DemandScenario{
		{Name: "Low", LitersPerStudent: DemandLowLPD},
		{Name: "Baseline", LitersPerStudent: DemandBaselineLPD},
		{Name: "High", LitersPerStudent: DemandHighLPD},
	}
}

// TotalDemand converts a scenario into total daily liters for a student body.
func (d DemandScenario) TotalDemand(students int) float64 {
	return d.LitersPerStudent * float64(students)
}
