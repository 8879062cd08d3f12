package synth

import (
	"math"

	"rwh-sim/internal/rainfall"
)

// maxSpellDays bounds a single sojourn so pathological calibration parameters
// cannot stall the generation loop.
const maxSpellDays = 365

// Generator synthesizes daily rainfall as a generalized semi-Markov process:
// sojourn lengths come from an explicit spell distribution, and at each spell
// boundary the state re-enters wet with probability p11 (from wet) or p01
// (from dry), so a state may persist across consecutive spells.
type Generator struct {
	byMonth map[int]rainfall.MonthlyParameters
	stream  *Stream
}

// NewGenerator validates the parameter set and binds a fresh seeded stream.
// The set must cover all twelve calendar months.
func NewGenerator(params []rainfall.MonthlyParameters, seed int64) (*Generator, error) {
	if err := rainfall.EnsureComplete(params); err != nil {
		return nil, err
	}
	return &Generator{
		byMonth: rainfall.ByMonth(params),
		stream:  NewStream(seed),
	}, nil
}

// Run generates the requested number of synthetic years of daily rainfall,
// in strict calendar order. Durations below one year yield an empty series.
// A second call continues the same stream rather than replaying it.
func (g *Generator) Run(years int) []rainfall.DataRow {
	if years < 1 {
		return nil
	}

	rows := make([]rainfall.DataRow, 0, years*366)

	wet := g.initialState()
	year, day := 1, 1

	for year <= years {
		// 1. Sojourn length from the month where the spell begins.
		startMonth, _ := rainfall.MonthOfDay(day, year)
		length := g.sampleSpell(wet, g.byMonth[startMonth])

		// 2. One depth per spell day, each from its own month's parameters.
		for i := 0; i < length && year <= years; i++ {
			month, dayInMonth := rainfall.MonthOfDay(day, year)
			depth := 0.0
			if wet {
				depth = g.sampleDepth(g.byMonth[month])
			}
			rows = append(rows, rainfall.DataRow{
				SyntheticYear: year,
				DayOfYear:     day,
				Month:         month,
				DayInMonth:    dayInMonth,
				RainMM:        depth,
				Wet:           depth >= rainfall.WetThreshold,
			})
			day++
			if day > rainfall.DaysInYear(year) {
				day = 1
				year++
			}
		}
		if year > years {
			break
		}

		// 3. Transition at the (possibly rolled-over) current day's month.
		transitionMonth, _ := rainfall.MonthOfDay(day, year)
		wet = g.transition(wet, g.byMonth[transitionMonth])
	}

	return rows
}

// initialState samples from the stationary distribution of January's
// transition matrix. A degenerate denominator starts the run dry, matching
// the never-throws contract.
func (g *Generator) initialState() bool {
	p := g.byMonth[1]
	denom := 1 - p.P11 + p.P01
	pWet := 0.0
	if denom > 0 {
		pWet = p.P01 / denom
	}
	return g.stream.Float64() < pWet
}

// sampleSpell draws a sojourn length for the current state. Observed spell
// moments drive a Negative Binomial when overdispersed; otherwise the length
// is geometric around the mean (or its stationary fallback 1/p01 resp.
// 1/(1-p11) when the calibration carries no spell moments). The result is
// clamped to [1, maxSpellDays].
func (g *Generator) sampleSpell(wet bool, p rainfall.MonthlyParameters) int {
	var mean, variance float64
	if wet {
		mean = p.MeanWetSpell
		if mean <= 0 {
			mean = 1 / (1 - p.P11)
		}
		variance = p.VarWetSpell
	} else {
		mean = p.MeanDrySpell
		if mean <= 0 {
			mean = 1 / p.P01
		}
		variance = p.VarDrySpell
	}

	var length int
	if variance > mean {
		length = g.stream.NegativeBinomial(mean, variance)
	} else {
		length = g.stream.Geometric(1 / math.Max(1, mean))
	}

	if length < 1 {
		return 1
	}
	if length > maxSpellDays {
		return maxSpellDays
	}
	return length
}

// sampleDepth draws one wet-day depth: Gamma when the month carries a fitted
// shape/scale, exponential around the wet-day mean otherwise. Draws below
// the significance threshold flush to zero; survivors are rounded to 4
// decimals on emission.
func (g *Generator) sampleDepth(p rainfall.MonthlyParameters) float64 {
	var depth float64
	if p.GammaK > 0 && p.GammaTheta > 0 {
		depth = g.stream.Gamma(p.GammaK, p.GammaTheta)
	} else {
		depth = g.stream.Exponential(p.MeanRain)
	}
	if depth < rainfall.WetThreshold {
		return 0
	}
	return math.Round(depth*10000) / 10000
}

func (g *Generator) transition(wet bool, p rainfall.MonthlyParameters) bool {
	u := g.stream.Float64()
	if wet {
		return u < p.P11
	}
	return u < p.P01
}
