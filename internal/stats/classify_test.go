package stats

import (
	"math"
	"testing"

	"github.com/courtside/dashboard-api/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestClassifyHit(t *testing.T) {
	tests := []struct {
		name      string
		predicted float64
		actual    *float64
		finished  bool
		want      HitResult
	}{
		{"pending when not finished", 20, fptr(25), false, HitPending},
		{"pending when actual absent", 20, nil, true, HitPending},
		{"over", 20, fptr(25), true, HitOver},
		{"under", 20, fptr(15), true, HitUnder},
		{"exact", 20, fptr(20), true, HitExact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyHit(tt.predicted, tt.actual, tt.finished); got != tt.want {
				t.Errorf("ClassifyHit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccuracyBucketBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		predicted float64
		actual    float64
		want      AccuracyLevel
	}{
		{"diff 1 accurate", 20, 21, AccuracyAccurate},
		{"diff exactly 2 is close not accurate", 20, 22, AccuracyClose},
		{"diff 4.9 close", 20, 24.9, AccuracyClose},
		{"diff exactly 5 is off not close", 20, 25, AccuracyOff},
		{"diff 12 off", 20, 32, AccuracyOff},
		{"negative diff uses absolute value", 20, 18.5, AccuracyAccurate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diff := AccuracyBucket(tt.predicted, tt.actual)
			if got != tt.want {
				t.Errorf("AccuracyBucket(%v, %v) = %v (diff %v), want %v",
					tt.predicted, tt.actual, got, diff, tt.want)
			}
		})
	}
}

func TestMatchupImpact(t *testing.T) {
	tests := []struct {
		name    string
		factor  float64
		wantPct float64
		want    MatchupClass
	}{
		{"suppressing", 0.90, -10, MatchupSuppressing},
		{"boundary 0.95 neutral", 0.95, -5, MatchupNeutral},
		{"neutral", 1.0, 0, MatchupNeutral},
		{"boundary 1.05 neutral", 1.05, 5, MatchupNeutral},
		{"exploiting", 1.12, 12, MatchupExploiting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MatchupImpact(tt.factor)
			if a.Class != tt.want {
				t.Errorf("class = %v, want %v", a.Class, tt.want)
			}
			if math.Abs(a.ImpactPct-tt.wantPct) > 1e-9 {
				t.Errorf("impact = %v, want %v", a.ImpactPct, tt.wantPct)
			}
		})
	}
}

func TestClassifySynergy(t *testing.T) {
	tests := []struct {
		name       string
		impactPct  float64
		multiplier float64
		want       SynergyClass
		positive   bool
	}{
		{"multiplier 1.0 means no data", 4.2, 1.0, SynergyUnavailable, false},
		{"zero impact means no data", 0, 1.07, SynergyUnavailable, false},
		{"significant positive", 6.5, 1.065, SynergySignificant, true},
		{"significant negative", -7.1, 0.929, SynergySignificant, false},
		{"moderate", 3.0, 1.03, SynergyModerate, true},
		{"neutral", 1.5, 1.015, SynergyNeutral, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ClassifySynergy(tt.impactPct, tt.multiplier)
			if a.Class != tt.want {
				t.Errorf("class = %v, want %v", a.Class, tt.want)
			}
			if a.Class != SynergyUnavailable && a.Positive != tt.positive {
				t.Errorf("positive = %v, want %v", a.Positive, tt.positive)
			}
			if a.Class == SynergyUnavailable && a.Available {
				t.Error("unavailable assessment must not report available")
			}
		})
	}
}

func TestBaseProjectionRoundTrip(t *testing.T) {
	// backCalc(baseline × f1 × f2, f1, f2) ≈ baseline for factors in (0.5, 2.0).
	baselines := []float64{8.5, 18.0, 27.3, 41.0}
	factors := []float64{0.55, 0.8, 0.95, 1.0, 1.12, 1.5, 1.95}

	for _, base := range baselines {
		for _, f1 := range factors {
			for _, f2 := range factors {
				final := base * f1 * f2
				got := BaseProjection(final, fptr(f1), fptr(f2))
				if math.Abs(got-base) > 1e-9 {
					t.Fatalf("BaseProjection(%v, %v, %v) = %v, want %v",
						final, f1, f2, got, base)
				}
			}
		}
	}
}

func TestBaseProjectionMissingFactors(t *testing.T) {
	if got := BaseProjection(30, nil, nil); got != 30 {
		t.Errorf("no factors must leave projection unchanged, got %v", got)
	}
	if got := BaseProjection(30, fptr(1.2), nil); math.Abs(got-25) > 1e-9 {
		t.Errorf("single factor back-calc = %v, want 25", got)
	}
	// Zero factors are treated as absent, not as a division by zero.
	if got := BaseProjection(30, fptr(0), nil); got != 30 {
		t.Errorf("zero factor must be skipped, got %v", got)
	}
}

func TestSpreadConfidence(t *testing.T) {
	tests := []struct {
		spread float64
		want   ConfidenceLevel
	}{
		{0.5, ConfidenceTight},
		{-1.9, ConfidenceTight},
		{2.0, ConfidenceSolid},
		{-4.5, ConfidenceSolid},
		{5.0, ConfidenceBlowout},
		{-11, ConfidenceBlowout},
	}
	for _, tt := range tests {
		if got := SpreadConfidence(tt.spread); got != tt.want {
			t.Errorf("SpreadConfidence(%v) = %v, want %v", tt.spread, got, tt.want)
		}
	}
}

func TestClassifyVolatility(t *testing.T) {
	if got := ClassifyVolatility(nil); got != VolatilityUnavailable {
		t.Errorf("nil volatility = %v, want unavailable", got)
	}
	if got := ClassifyVolatility(fptr(0)); got != VolatilityUnavailable {
		t.Errorf("zero volatility = %v, want unavailable", got)
	}
	if got := ClassifyVolatility(fptr(12)); got != VolatilityStable {
		t.Errorf("12 = %v, want stable", got)
	}
	if got := ClassifyVolatility(fptr(25)); got != VolatilityModerate {
		t.Errorf("25 = %v, want moderate", got)
	}
	if got := ClassifyVolatility(fptr(38)); got != VolatilityHigh {
		t.Errorf("38 = %v, want volatile", got)
	}
}

func TestProjectionRange(t *testing.T) {
	r, ok := ProjectionRange(25, fptr(20))
	if !ok {
		t.Fatal("expected a range")
	}
	if r.Min != 20 || r.Max != 30 {
		t.Errorf("range = [%d, %d], want [20, 30]", r.Min, r.Max)
	}
	if _, ok := ProjectionRange(25, nil); ok {
		t.Error("absent volatility must yield no range")
	}
}

func TestBreakdownReconciles(t *testing.T) {
	mb := models.MathBreakdown{
		BaseSpread:     models.AdjustmentTerm{Value: -3.2},
		FatigueAdjust:  models.AdjustmentTerm{Value: 0.8},
		AbsencesAdjust: models.AdjustmentTerm{Value: 1.5},
		FinalSpread:    -0.9,
	}
	if !BreakdownReconciles(mb) {
		t.Error("terms summing to final spread must reconcile")
	}

	mb.FinalSpread = -0.93 // within 0.05
	if !BreakdownReconciles(mb) {
		t.Error("drift within tolerance must reconcile")
	}

	mb.FinalSpread = -1.2
	if BreakdownReconciles(mb) {
		t.Error("drift beyond tolerance must not reconcile")
	}
}
