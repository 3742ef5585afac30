package stats

import "math"

// Over/under advice labels.
const (
	AdviceOver  = "OVER"
	AdviceUnder = "UNDER"
	AdviceLean  = "LEAN"
)

// OverUnder is the probability split for a projection against a line.
type OverUnder struct {
	ProbabilityOver  float64 `json:"probability_over"`
	ProbabilityUnder float64 `json:"probability_under"`
	Advice           string  `json:"advice"`
}

// normalCDF is the standard normal cumulative distribution at z.
func normalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

// OverUnderProbability models the outcome as Normal(projection, stdDev²) and
// returns the percentage probability mass above and below the line.
// confidenceThreshold is a fraction in (0,1): advice is OVER or UNDER when the
// corresponding probability exceeds it, else LEAN. The production probability
// comes from the upstream calculator; this local model documents the contract
// and backs the endpoint when the upstream omits a distribution.
// Returns ok=false when stdDev is not positive.
func OverUnderProbability(projection, stdDev, line, confidenceThreshold float64) (OverUnder, bool) {
	if stdDev <= 0 {
		return OverUnder{}, false
	}

	z := (line - projection) / stdDev
	probOver := (1 - normalCDF(z)) * 100
	probUnder := 100 - probOver

	ou := OverUnder{
		ProbabilityOver:  probOver,
		ProbabilityUnder: probUnder,
		Advice:           AdviceLean,
	}
	cutoff := confidenceThreshold * 100
	switch {
	case probOver > cutoff:
		ou.Advice = AdviceOver
	case probUnder > cutoff:
		ou.Advice = AdviceUnder
	}
	return ou, true
}
