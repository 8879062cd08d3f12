package rainfall

import "fmt"

// ByMonth indexes a parameter list by calendar month. Later duplicates win,
// which is what the calibration merge relies on.
func ByMonth(params []MonthlyParameters) map[int]MonthlyParameters {
	byMonth := make(map[int]MonthlyParameters, len(params))
	for _, p := range params {
		byMonth[p.Month] = p
	}
	return byMonth
}

// EnsureComplete verifies the set covers every calendar month. The generator
// assumes a complete 12-month set and refuses to start without one.
func EnsureComplete(params []MonthlyParameters) error {
	byMonth := ByMonth(params)
	for m := 1; m <= 12; m++ {
		if _, ok := byMonth[m]; !ok {
			return fmt.Errorf("incomplete calibration: missing month %d", m)
		}
	}
	return nil
}
