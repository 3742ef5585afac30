package stats

import (
	"math"

	"github.com/courtside/dashboard-api/internal/models"
)

// HitResult classifies a prediction against the real outcome.
type HitResult string

const (
	HitPending HitResult = "PENDING"
	HitOver    HitResult = "OVER"
	HitUnder   HitResult = "UNDER"
	HitExact   HitResult = "EXACT"
)

// ClassifyHit compares a predicted value against the actual one. Pending when
// the actual value is absent or the parent record is not finished. Exact uses
// floating equality; it is rare and only used for display, never ranking.
func ClassifyHit(predicted float64, actual *float64, finished bool) HitResult {
	if !finished || actual == nil {
		return HitPending
	}
	switch {
	case *actual > predicted:
		return HitOver
	case *actual < predicted:
		return HitUnder
	default:
		return HitExact
	}
}

// AccuracyLevel buckets a prediction's absolute error.
type AccuracyLevel string

const (
	AccuracyAccurate AccuracyLevel = "Accurate"
	AccuracyClose    AccuracyLevel = "Close"
	AccuracyOff      AccuracyLevel = "Off"
)

// AccuracyBucket classifies the absolute difference between predicted and
// actual. Boundaries are strict: a diff of exactly 2.0 is Close and exactly
// 5.0 is Off.
func AccuracyBucket(predicted, actual float64) (AccuracyLevel, float64) {
	diff := math.Abs(predicted - actual)
	switch {
	case diff < 2:
		return AccuracyAccurate, diff
	case diff < 5:
		return AccuracyClose, diff
	default:
		return AccuracyOff, diff
	}
}

// MatchupClass classifies the opposing defense's effect on a projection.
type MatchupClass string

const (
	MatchupSuppressing MatchupClass = "suppressing"
	MatchupExploiting  MatchupClass = "exploiting"
	MatchupNeutral     MatchupClass = "neutral"
)

// MatchupAssessment is the display-ready view of a matchup factor.
type MatchupAssessment struct {
	ImpactPct float64      `json:"impact_pct"`
	Class     MatchupClass `json:"class"`
}

// MatchupImpact converts a multiplicative matchup factor into a signed impact
// percentage. Factors below 0.95 indicate the defense suppresses the player,
// above 1.05 that the player exploits a weakness.
func MatchupImpact(factor float64) MatchupAssessment {
	a := MatchupAssessment{ImpactPct: (factor - 1) * 100}
	switch {
	case factor < 0.95:
		a.Class = MatchupSuppressing
	case factor > 1.05:
		a.Class = MatchupExploiting
	default:
		a.Class = MatchupNeutral
	}
	return a
}

// SynergyClass labels a lineup-synergy impact.
type SynergyClass string

const (
	SynergyUnavailable SynergyClass = "unavailable"
	SynergySignificant SynergyClass = "significant"
	SynergyModerate    SynergyClass = "moderate"
	SynergyNeutral     SynergyClass = "neutral"
)

// SynergyAssessment is the display-ready view of a lineup-synergy pair.
// Available distinguishes "the upstream had no lineup data" (multiplier of
// exactly 1.0 or zero impact) from a computed neutral impact.
type SynergyAssessment struct {
	Class     SynergyClass `json:"class"`
	ImpactPct float64      `json:"impact_pct"`
	Positive  bool         `json:"positive"`
	Available bool         `json:"available"`
}

// ClassifySynergy buckets a lineup-synergy impact percentage.
func ClassifySynergy(impactPct, multiplier float64) SynergyAssessment {
	if multiplier == 1.0 || impactPct == 0 {
		return SynergyAssessment{Class: SynergyUnavailable}
	}
	a := SynergyAssessment{
		ImpactPct: impactPct,
		Positive:  impactPct > 0,
		Available: true,
	}
	switch abs := math.Abs(impactPct); {
	case abs > 5:
		a.Class = SynergySignificant
	case abs > 2:
		a.Class = SynergyModerate
	default:
		a.Class = SynergyNeutral
	}
	return a
}

// BaseProjection recovers the pre-adjustment baseline by dividing out the
// supplied multiplicative factors (nil or zero factors are skipped). This
// assumes all named adjustments are purely multiplicative and commutative,
// which holds for matchup and lineup factors but is an approximation for the
// upstream pipeline as a whole.
func BaseProjection(finalProjection float64, matchupFactor, lineupMultiplier *float64) float64 {
	divisor := 1.0
	if matchupFactor != nil && *matchupFactor != 0 {
		divisor *= *matchupFactor
	}
	if lineupMultiplier != nil && *lineupMultiplier != 0 {
		divisor *= *lineupMultiplier
	}
	return finalProjection / divisor
}

// ConfidenceLevel labels a spread's decisiveness.
type ConfidenceLevel string

const (
	ConfidenceTight   ConfidenceLevel = "Tight"
	ConfidenceSolid   ConfidenceLevel = "Solid"
	ConfidenceBlowout ConfidenceLevel = "Blowout"
)

// SpreadConfidence buckets the absolute predicted spread.
func SpreadConfidence(spread float64) ConfidenceLevel {
	abs := math.Abs(spread)
	switch {
	case abs < 2:
		return ConfidenceTight
	case abs < 5:
		return ConfidenceSolid
	default:
		return ConfidenceBlowout
	}
}

// VolatilityBand labels projection volatility.
type VolatilityBand string

const (
	VolatilityUnavailable VolatilityBand = "unavailable"
	VolatilityStable      VolatilityBand = "stable"
	VolatilityModerate    VolatilityBand = "moderate"
	VolatilityHigh        VolatilityBand = "volatile"
)

// ClassifyVolatility buckets a volatility percentage; nil or zero means the
// upstream supplied no volatility estimate.
func ClassifyVolatility(volatility *float64) VolatilityBand {
	if volatility == nil || *volatility == 0 {
		return VolatilityUnavailable
	}
	switch v := *volatility; {
	case v < 20:
		return VolatilityStable
	case v < 30:
		return VolatilityModerate
	default:
		return VolatilityHigh
	}
}

// PointsRange is the floor/ceiling band around a projection.
type PointsRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ProjectionRange derives a points band from a projection and a volatility
// percentage. Returns ok=false when volatility is absent or zero.
func ProjectionRange(projection float64, volatility *float64) (PointsRange, bool) {
	if volatility == nil || *volatility == 0 {
		return PointsRange{}, false
	}
	ratio := *volatility / 100
	return PointsRange{
		Min: int(math.Floor(projection * (1 - ratio))),
		Max: int(math.Ceil(projection * (1 + ratio))),
	}, true
}

// BreakdownTolerance is the permitted floating drift between a final spread
// and the sum of its adjustment terms.
const BreakdownTolerance = 0.05

// BreakdownReconciles reports whether the math breakdown's terms sum to the
// final spread within tolerance.
func BreakdownReconciles(mb models.MathBreakdown) bool {
	sum := mb.BaseSpread.Value + mb.FatigueAdjust.Value + mb.AbsencesAdjust.Value
	return math.Abs(sum-mb.FinalSpread) <= BreakdownTolerance
}
