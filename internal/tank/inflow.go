package tank

import "rwh-sim/internal/rainfall"

// RoofUnit is one group of identical roof catchments.
type RoofUnit struct {
	ClassroomCount       int     `json:"classroom_count"`
	RoofAreaPerClassroom float64 `json:"roof_area_per_classroom_m2"`
}

// InflowConfig describes the catchment between sky and tank. A zero-area or
// zero-efficiency configuration is not rejected; it degrades to zero inflow.
type InflowConfig struct {
	Units             []RoofUnit `json:"units"`
	RunoffCoefficient float64    `json:"runoff_coefficient"`
	GutterEfficiency  float64    `json:"gutter_efficiency"`
	FirstFlushMM      float64    `json:"first_flush_mm"`
}

// TotalArea sums the catchment surface in square meters.
func (c InflowConfig) TotalArea() float64 {
	area := 0.0
	for _, u := range c.Units {
		area += float64(u.ClassroomCount) * u.RoofAreaPerClassroom
	}
	return area
}

// DailyInflow converts one day's rainfall depth into harvested liters.
// 1 mm over 1 m^2 is 1 L; the first flush comes off the top of each day.
func (c InflowConfig) DailyInflow(rainMM float64) float64 {
	effective := rainMM - c.FirstFlushMM
	if effective < 0 {
		effective = 0
	}
	return effective * c.TotalArea() * c.RunoffCoefficient * c.GutterEfficiency
}

// Inflows maps a synthetic series to daily harvested liters.
func Inflows(rows []rainfall.DataRow, cfg InflowConfig) []float64 {
	inflows := make([]float64, len(rows))
	for i, r := range rows {
		inflows[i] = cfg.DailyInflow(r.RainMM)
	}
	return inflows
}
