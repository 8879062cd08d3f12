package calibration

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"rwh-sim/internal/rainfall"
)

type transitionCounts struct {
	dryToDry int
	dryToWet int
	wetToWet int
	wetToDry int
}

// AnalyzeTransitions fits day-to-day wet/dry transition probabilities and
// spell-length moments per calendar month.
//
// Transition counters are keyed by the month of the pair's first day. A
// closed spell is keyed by the month of the day where the state change is
// observed (the first day of the new state) — not the spell's start month.
// The generator deliberately samples sojourns at spell start, so the two
// attributions are asymmetric; both sides are preserved as calibrated.
//
// The first record seeds the current state and the loop visits len-1 pairs,
// so the final day's outgoing transition is never counted and a trailing
// open spell is discarded with it.
func AnalyzeTransitions(records []rainfall.HistoricalRecord) []rainfall.MonthlyParameters {
	if len(records) == 0 {
		return nil
	}

	counts := make(map[int]*transitionCounts)
	drySpells := make(map[int][]float64)
	wetSpells := make(map[int][]float64)

	isCurrentWet := records[0].Wet()
	spellLength := 1
	for i := 0; i+1 < len(records); i++ {
		nextWet := records[i+1].Wet()

		month := int(records[i].Date.Month())
		c, ok := counts[month]
		if !ok {
			c = &transitionCounts{}
			counts[month] = c
		}
		switch {
		case !isCurrentWet && !nextWet:
			c.dryToDry++
		case !isCurrentWet && nextWet:
			c.dryToWet++
		case isCurrentWet && nextWet:
			c.wetToWet++
		default:
			c.wetToDry++
		}

		if nextWet == isCurrentWet {
			spellLength++
			continue
		}

		boundaryMonth := int(records[i+1].Date.Month())
		if isCurrentWet {
			wetSpells[boundaryMonth] = append(wetSpells[boundaryMonth], float64(spellLength))
		} else {
			drySpells[boundaryMonth] = append(drySpells[boundaryMonth], float64(spellLength))
		}
		isCurrentWet = nextWet
		spellLength = 1
	}

	out := make([]rainfall.MonthlyParameters, 0, len(counts))
	for m := 1; m <= 12; m++ {
		c := counts[m]
		if c == nil && len(drySpells[m]) == 0 && len(wetSpells[m]) == 0 {
			continue
		}
		if c == nil {
			c = &transitionCounts{}
		}

		p01 := float64(c.dryToWet) / math.Max(1, float64(c.dryToWet+c.dryToDry))
		p11 := float64(c.wetToWet) / math.Max(1, float64(c.wetToWet+c.wetToDry))

		meanDry, varDry := spellMoments(drySpells[m], stationarySpell(p01))
		meanWet, varWet := spellMoments(wetSpells[m], stationarySpell(1-p11))

		out = append(out, rainfall.MonthlyParameters{
			Month:        m,
			P01:          round4(p01),
			P11:          round4(p11),
			MeanDrySpell: round4(meanDry),
			VarDrySpell:  round4(varDry),
			MeanWetSpell: round4(meanWet),
			VarWetSpell:  round4(varWet),
		})
	}
	return out
}

// spellMoments returns the mean and population variance of the observed
// spell lengths, or the stationary fallback mean (with zero variance) when a
// month closed no spells of that type.
func spellMoments(spells []float64, fallbackMean float64) (mean, variance float64) {
	if len(spells) == 0 {
		return fallbackMean, 0
	}
	return stat.Mean(spells, nil), stat.PopVariance(spells, nil)
}

// stationarySpell is the geometric expectation 1/p, with the zero
// denominator floored the same way as the transition-count divisors.
func stationarySpell(p float64) float64 {
	if p <= 0 {
		return 1
	}
	return 1 / p
}
