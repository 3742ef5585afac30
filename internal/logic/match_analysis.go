package logic

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/query"
	"github.com/courtside/dashboard-api/internal/scenario"
	"github.com/courtside/dashboard-api/internal/stats"
)

// MatchPredictionView is the team-level prediction with the locally derived
// confidence label and the breakdown reconciliation verdict attached.
type MatchPredictionView struct {
	models.MatchPrediction
	Confidence          stats.ConfidenceLevel `json:"confidence"`
	BreakdownConsistent bool                  `json:"breakdown_consistent"`
}

// EnrichedPlayer is one player's projection with the derived matchup,
// synergy and before/after readouts attached. The pointers stay nil when
// the upstream supplied no data for that dimension.
type EnrichedPlayer struct {
	models.PlayerFullPrediction
	MatchupImpact  *stats.MatchupAssessment `json:"matchup_impact,omitempty"`
	Synergy        *stats.SynergyAssessment `json:"synergy,omitempty"`
	BasePTS        *float64                 `json:"base_pts,omitempty"`
	ShotQualityNet *float64                 `json:"shot_quality_net,omitempty"`
}

// FullMatchView is the per-player projection bundle after local enrichment.
type FullMatchView struct {
	HomePlayers     []EnrichedPlayer        `json:"home_players"`
	AwayPlayers     []EnrichedPlayer        `json:"away_players"`
	BlowoutAnalysis *models.BlowoutAnalysis `json:"blowout_analysis,omitempty"`
}

// FullMatchViewV2 pairs the v2 match header with enriched players.
type FullMatchViewV2 struct {
	MatchInfo       models.MatchInfoV2     `json:"match_info"`
	Confidence      stats.ConfidenceLevel  `json:"confidence"`
	HomePlayers     []EnrichedPlayer       `json:"home_players"`
	AwayPlayers     []EnrichedPlayer       `json:"away_players"`
	ContextAnalysis models.ContextAnalysis `json:"context_analysis"`
}

type matchAnalysisService struct {
	up     Upstream
	cache  *query.Cache
	ttls   TTLs
	logger *zap.SugaredLogger
}

func NewMatchAnalysisService(up Upstream, cache *query.Cache, ttls TTLs, logger *zap.SugaredLogger) MatchAnalysisService {
	return &matchAnalysisService{up: up, cache: cache, ttls: ttls, logger: logger}
}

func scenarioKey(sc *scenario.Scenario) string {
	if sc == nil {
		return "h=|a="
	}
	return sc.Key()
}

// Predict returns the team-level prediction. A breakdown whose terms do not
// sum to the final spread is served anyway, flagged and logged, never
// repaired.
func (s *matchAnalysisService) Predict(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*MatchPredictionView, error) {
	key := fmt.Sprintf("predict:%s:%s:%s", homeCode, awayCode, scenarioKey(sc))
	var out MatchPredictionView
	err := s.cache.Fetch(ctx, key, s.ttls.Prediction, &out, func(ctx context.Context) (any, error) {
		pred, err := s.up.MatchPrediction(ctx, homeCode, awayCode, sc)
		if err != nil {
			return nil, err
		}
		view := &MatchPredictionView{
			MatchPrediction:     *pred,
			Confidence:          stats.SpreadConfidence(pred.MathBreakdown.FinalSpread),
			BreakdownConsistent: stats.BreakdownReconciles(pred.MathBreakdown),
		}
		if !view.BreakdownConsistent {
			s.logger.Warnw("Math breakdown does not reconcile",
				"home", homeCode,
				"away", awayCode,
				"final_spread", pred.MathBreakdown.FinalSpread,
			)
		}
		return view, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *matchAnalysisService) FullPrediction(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*FullMatchView, error) {
	key := fmt.Sprintf("full:%s:%s:%s:%s:%s",
		homeID, awayID, scenarioKey(sc), restKey(homeRest), restKey(awayRest))
	var out FullMatchView
	err := s.cache.Fetch(ctx, key, s.ttls.Prediction, &out, func(ctx context.Context) (any, error) {
		pred, err := s.up.FullMatchPrediction(ctx, homeID, awayID, sc, homeRest, awayRest)
		if err != nil {
			return nil, err
		}
		return &FullMatchView{
			HomePlayers:     enrichPlayers(pred.HomePlayers),
			AwayPlayers:     enrichPlayers(pred.AwayPlayers),
			BlowoutAnalysis: pred.BlowoutAnalysis,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *matchAnalysisService) FullPredictionV2(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*FullMatchViewV2, error) {
	key := fmt.Sprintf("full-v2:%s:%s:%s:%s:%s",
		homeID, awayID, scenarioKey(sc), restKey(homeRest), restKey(awayRest))
	var out FullMatchViewV2
	err := s.cache.Fetch(ctx, key, s.ttls.Prediction, &out, func(ctx context.Context) (any, error) {
		pred, err := s.up.FullMatchPredictionV2(ctx, homeID, awayID, sc, homeRest, awayRest)
		if err != nil {
			return nil, err
		}
		return &FullMatchViewV2{
			MatchInfo:       pred.MatchInfo,
			Confidence:      stats.SpreadConfidence(pred.MatchInfo.PredictedSpread),
			HomePlayers:     enrichPlayers(pred.HomePlayers),
			AwayPlayers:     enrichPlayers(pred.AwayPlayers),
			ContextAnalysis: pred.ContextAnalysis,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *matchAnalysisService) Shooting(ctx context.Context, homeID, awayID models.FlexID) (*models.ShootingPrediction, error) {
	key := "shooting:" + homeID.String() + ":" + awayID.String()
	var out models.ShootingPrediction
	err := s.cache.Fetch(ctx, key, s.ttls.Prediction, &out, func(ctx context.Context) (any, error) {
		return s.up.ShootingPrediction(ctx, homeID, awayID)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *matchAnalysisService) ShootingSplits(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.ShootingPrediction, error) {
	key := fmt.Sprintf("shooting-splits:%s:%s:%s", homeCode, awayCode, scenarioKey(sc))
	var out models.ShootingPrediction
	err := s.cache.Fetch(ctx, key, s.ttls.Prediction, &out, func(ctx context.Context) (any, error) {
		return s.up.ShootingSplits(ctx, homeCode, awayCode, sc)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func restKey(rest *int) string {
	if rest == nil {
		return "-"
	}
	return strconv.Itoa(*rest)
}

func enrichPlayers(players []models.PlayerFullPrediction) []EnrichedPlayer {
	out := make([]EnrichedPlayer, 0, len(players))
	for _, p := range players {
		out = append(out, enrichPlayer(p))
	}
	return out
}

func enrichPlayer(p models.PlayerFullPrediction) EnrichedPlayer {
	e := EnrichedPlayer{PlayerFullPrediction: p}

	var factor, multiplier *float64
	if p.MatchupAnalysis != nil && p.MatchupAnalysis.FactorApplied != nil {
		factor = p.MatchupAnalysis.FactorApplied
		a := stats.MatchupImpact(*factor)
		e.MatchupImpact = &a
	}
	if p.LineupSynergy != nil {
		multiplier = &p.LineupSynergy.Multiplier
		a := stats.ClassifySynergy(p.LineupSynergy.ImpactPct, p.LineupSynergy.Multiplier)
		e.Synergy = &a
	}
	if factor != nil || multiplier != nil {
		base := stats.BaseProjection(p.PredictedStats.PTS, factor, multiplier)
		e.BasePTS = &base
	}
	if p.ShotQualityAnalysis != nil {
		net := p.ShotQualityAnalysis.PtsAfter - p.ShotQualityAnalysis.PtsBefore
		e.ShotQualityNet = &net
	}
	return e
}
