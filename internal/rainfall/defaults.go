package rainfall

// Stationary tropical fallback profile, applied to any month the calibration
// could not cover. No Gamma or spell moments: the default profile deliberately
// runs the simple exponential-depth / geometric-sojourn branches.
const (
	DefaultP01      = 0.15
	DefaultP11      = 0.45
	DefaultMeanRain = 5.2
	DefaultStdDev   = 4.8
)

// DefaultParameters returns a complete 12-month parameter set built from the
// stationary tropical profile.
func DefaultParameters() []MonthlyParameters {
	params := make([]MonthlyParameters, 12)
	for i := range params {
		params[i] = MonthlyParameters{
			Month:    i + 1,
			P01:      DefaultP01,
			P11:      DefaultP11,
			MeanRain: DefaultMeanRain,
			StdDev:   DefaultStdDev,
		}
	}
	return params
}
