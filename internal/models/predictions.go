package models

// AdjustmentTerm is one named term of a prediction's math breakdown.
type AdjustmentTerm struct {
	Value float64 `json:"value"`
	Desc  string  `json:"desc"`
}

// MathBreakdown decomposes a spread into its adjustment terms. The invariant
// FinalSpread == BaseSpread + FatigueAdjust + AbsencesAdjust (within floating
// rounding) is checked by stats.BreakdownReconciles, never repaired here.
type MathBreakdown struct {
	BaseSpread     AdjustmentTerm `json:"base_spread"`
	FatigueAdjust  AdjustmentTerm `json:"fatigue_adjust"`
	AbsencesAdjust AdjustmentTerm `json:"absences_adjust"`
	FinalSpread    float64        `json:"final_spread"`
}

// ContextAnalysis lists the named fatigue factors applied per side.
type ContextAnalysis struct {
	HomeFatigueFactors []string `json:"home_fatigue_factors"`
	AwayFatigueFactors []string `json:"away_fatigue_factors"`
}

// PredictionDetails carries the raw inputs behind a match prediction.
type PredictionDetails struct {
	SpreadRaw  float64  `json:"spread_raw"`
	HomeNetRtg *float64 `json:"home_net_rtg,omitempty"`
	AwayNetRtg *float64 `json:"away_net_rtg,omitempty"`
}

// MatchPrediction is the team-level prediction for one game.
type MatchPrediction struct {
	PredictedWinner      string            `json:"predicted_winner"`
	PredictedMargin      float64           `json:"predicted_margin"`
	WinProbabilityHome   float64           `json:"win_probability_home"`
	PredictedTotalPoints float64           `json:"predicted_total_points"`
	ConfidenceLevel      string            `json:"confidence_level,omitempty"`
	MathBreakdown        MathBreakdown     `json:"math_breakdown"`
	ContextAnalysis      ContextAnalysis   `json:"context_analysis"`
	Details              PredictionDetails `json:"details"`
}

// PlayerPredictedStats is a player's projected box line. STL/BLK are only
// present for some archetypes.
type PlayerPredictedStats struct {
	PTS      float64  `json:"PTS"`
	REB      float64  `json:"REB"`
	AST      float64  `json:"AST"`
	MIN      float64  `json:"MIN"`
	FG3M     float64  `json:"FG3M"`
	STL      *float64 `json:"STL,omitempty"`
	BLK      *float64 `json:"BLK,omitempty"`
	PtsRange string   `json:"PTS_RANGE,omitempty"`
}

// AdvancedMetricsProjected holds independently supplied aggregates. PRA here
// is not necessarily recomputable from the predicted box line; the upstream
// applies stat-specific adjustments before summing.
type AdvancedMetricsProjected struct {
	PRA float64 `json:"PRA"`
}

// Archetype classifies a player's scoring profile.
type Archetype struct {
	Type      string  `json:"type"`
	IsStar    bool    `json:"is_star"`
	PaintRate float64 `json:"paint_rate"`
	ThreeRate float64 `json:"three_rate"`
}

// MatchupAnalysis describes the opposing defense and the multiplicative factor
// the upstream applied for it.
type MatchupAnalysis struct {
	DefensiveRating *float64 `json:"defensive_rating,omitempty"`
	Rank            *int     `json:"rank,omitempty"`
	Description     string   `json:"description,omitempty"`
	FactorApplied   *float64 `json:"factor_applied,omitempty"`
}

// PlayerContext carries the upstream's free-form reasoning for a projection.
type PlayerContext struct {
	BoostApplied   string `json:"boost_applied"`
	BlowoutPenalty string `json:"blowout_penalty,omitempty"`
	FormWeight     string `json:"form_weight,omitempty"`
	Reasoning      string `json:"reasoning,omitempty"`
}

// BlowoutAnalysis classifies garbage-time risk for the game.
type BlowoutAnalysis struct {
	RiskLevel string   `json:"risk_level"`
	Message   string   `json:"message,omitempty"`
	Margin    *float64 `json:"margin,omitempty"`
}

// ShotQualityAnalysis is the upstream's shot-diet tiering with the projection
// before and after the adjustment.
type ShotQualityAnalysis struct {
	Tier      string  `json:"tier"`
	Reasoning string  `json:"reasoning"`
	PtsBefore float64 `json:"pts_before"`
	PtsAfter  float64 `json:"pts_after"`
}

// LineupSynergy is the multiplicative lineup adjustment. A multiplier of
// exactly 1.0 (or zero impact) means the upstream had no lineup data, which is
// distinct from a computed neutral impact.
type LineupSynergy struct {
	Multiplier float64 `json:"multiplier"`
	ImpactPct  float64 `json:"impact_pct"`
}

// PlayerFullPrediction is one player's projection with all contextual
// explanations attached.
type PlayerFullPrediction struct {
	Player                   string                   `json:"player"`
	Position                 string                   `json:"position,omitempty"`
	PlayerID                 int                      `json:"player_id"`
	Team                     string                   `json:"team"`
	PredictedStats           PlayerPredictedStats     `json:"predicted_stats"`
	AdvancedMetricsProjected AdvancedMetricsProjected `json:"advanced_metrics_projected"`
	Archetype                *Archetype               `json:"archetype,omitempty"`
	MatchupAnalysis          *MatchupAnalysis         `json:"matchup_analysis,omitempty"`
	Context                  *PlayerContext           `json:"context,omitempty"`
	BlowoutAnalysis          BlowoutAnalysis          `json:"blowout_analysis"`
	IsHome                   *bool                    `json:"is_home,omitempty"`
	ShotQualityAnalysis      *ShotQualityAnalysis     `json:"shot_quality_analysis,omitempty"`
	LineupSynergy            *LineupSynergy           `json:"lineup_synergy,omitempty"`
}

// MatchContext summarizes the what-if inputs echoed back by the interactive
// full-match endpoint.
type MatchContext struct {
	HomeUsageBoost  float64 `json:"home_usage_boost"`
	AwayUsageBoost  float64 `json:"away_usage_boost"`
	HomeAbsentCount *int    `json:"home_absent_count,omitempty"`
	AwayAbsentCount *int    `json:"away_absent_count,omitempty"`
	Status          string  `json:"status,omitempty"`
}

// FullMatchPrediction is the per-player projection bundle for one game.
type FullMatchPrediction struct {
	HomePlayers     []PlayerFullPrediction `json:"home_players"`
	AwayPlayers     []PlayerFullPrediction `json:"away_players"`
	BlowoutAnalysis *BlowoutAnalysis       `json:"blowout_analysis,omitempty"`
}

// InteractiveMatchPrediction is FullMatchPrediction plus the echoed scenario.
type InteractiveMatchPrediction struct {
	MatchContext MatchContext           `json:"match_context"`
	HomePlayers  []PlayerFullPrediction `json:"home_players"`
	AwayPlayers  []PlayerFullPrediction `json:"away_players"`
}

// MatchInfoV2 is the team-level header of the v2 full-match response.
type MatchInfoV2 struct {
	PredictedWinner      string  `json:"predicted_winner"`
	PredictedSpread      float64 `json:"predicted_spread"`
	PredictedTotalPoints float64 `json:"predicted_total_points"`
	HomeScore            float64 `json:"home_score"`
	AwayScore            float64 `json:"away_score"`
	WinProbabilityHome   float64 `json:"win_probability_home"`
}

// MatchPredictionV2 is the v2 variant bundling teams and players.
type MatchPredictionV2 struct {
	MatchInfo       MatchInfoV2            `json:"match_info"`
	HomePlayers     []PlayerFullPrediction `json:"home_players"`
	AwayPlayers     []PlayerFullPrediction `json:"away_players"`
	ContextAnalysis ContextAnalysis        `json:"context_analysis"`
}

// CalculatorResult is the over/under probability readout for one line.
type CalculatorResult struct {
	Stat             string  `json:"stat"`
	Line             float64 `json:"line"`
	Projection       float64 `json:"projection"`
	StdDevCalculated float64 `json:"std_dev_calculated"`
	ProbabilityOver  float64 `json:"probability_over"`
	ProbabilityUnder float64 `json:"probability_under"`
	Advice           string  `json:"advice"`
	ColorCode        string  `json:"color_code,omitempty"`
	Confidence       string  `json:"confidence,omitempty"`
}

// ShootingStats is one side of the shooting-battle breakdown.
type ShootingStats struct {
	Team      string  `json:"team"`
	FG2M      float64 `json:"FG2M"`
	FG2MRange string  `json:"FG2M_Range"`
	FG3M      float64 `json:"FG3M"`
	FG3MRange string  `json:"FG3M_Range"`
	TotalFG   float64 `json:"Total_FG"`
}

// ShootingAnalysis names the projected winner of each shot zone.
type ShootingAnalysis struct {
	ThreePtWinner string `json:"3pt_winner"`
	TwoPtWinner   string `json:"2pt_winner"`
	FatigueImpact string `json:"fatigue_impact"`
}

// ShootingPrediction is the shooting-battle breakdown for one matchup.
type ShootingPrediction struct {
	Matchup     string           `json:"matchup"`
	PaceContext string           `json:"pace_context"`
	Home        ShootingStats    `json:"home"`
	Away        ShootingStats    `json:"away"`
	Analysis    ShootingAnalysis `json:"analysis"`
}
