package logic

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/query"
	"github.com/courtside/dashboard-api/internal/scenario"
	"github.com/courtside/dashboard-api/internal/stats"
)

const (
	playerHistoryKey = "history:player"
	matchHistoryKey  = "history:match"
)

// StatResult is one stat's predicted-versus-actual verdict. Accuracy and
// Diff stay nil while the record is pending.
type StatResult struct {
	Stat      string               `json:"stat"`
	Predicted float64              `json:"predicted"`
	Actual    *float64             `json:"actual,omitempty"`
	Hit       stats.HitResult      `json:"hit"`
	Accuracy  *stats.AccuracyLevel `json:"accuracy,omitempty"`
	Diff      *float64             `json:"diff,omitempty"`
}

// PlayerHistoryView is a saved player line with per-stat verdicts attached.
type PlayerHistoryView struct {
	models.PlayerHistoryEntry
	Results []StatResult `json:"results"`
}

// MatchHistoryView is a saved match snapshot with every player line scored.
// AccuracyScore is upstream-owned and only rendered, never recomputed.
type MatchHistoryView struct {
	GameID        string              `json:"game_id"`
	GameDate      string              `json:"game_date"`
	HomeTeam      string              `json:"home_team"`
	AwayTeam      string              `json:"away_team"`
	HomeTeamID    int                 `json:"home_team_id"`
	AwayTeamID    int                 `json:"away_team_id"`
	HomePlayers   []PlayerHistoryView `json:"home_players"`
	AwayPlayers   []PlayerHistoryView `json:"away_players"`
	Status        string              `json:"status"`
	AccuracyScore *float64            `json:"accuracy_score,omitempty"`
	RealWinner    string              `json:"real_winner,omitempty"`
	SavedAt       string              `json:"saved_at"`
}

type historyService struct {
	up       Upstream
	cache    *query.Cache
	ttls     TTLs
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

func NewHistoryService(up Upstream, cache *query.Cache, ttls TTLs, logger *zap.SugaredLogger) HistoryService {
	return &historyService{
		up:       up,
		cache:    cache,
		ttls:     ttls,
		validate: validator.New(),
		logger:   logger,
	}
}

// PlayerHistory scores every saved player line. An entry without real stats
// is pending regardless of age.
func (s *historyService) PlayerHistory(ctx context.Context) ([]PlayerHistoryView, error) {
	var out []PlayerHistoryView
	err := s.cache.Fetch(ctx, playerHistoryKey, s.ttls.Stats, &out, func(ctx context.Context) (any, error) {
		entries, err := s.up.PredictionHistory(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]PlayerHistoryView, 0, len(entries))
		for _, e := range entries {
			views = append(views, scorePlayerEntry(e, e.RealStats != nil))
		}
		return views, nil
	})
	return out, err
}

// MatchHistory scores every saved match. Player lines only score once the
// match status is FINISHED; a real line arriving early stays pending.
func (s *historyService) MatchHistory(ctx context.Context) ([]MatchHistoryView, error) {
	var out []MatchHistoryView
	err := s.cache.Fetch(ctx, matchHistoryKey, s.ttls.Stats, &out, func(ctx context.Context) (any, error) {
		entries, err := s.up.MatchHistory(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]MatchHistoryView, 0, len(entries))
		for _, e := range entries {
			views = append(views, scoreMatchEntry(e))
		}
		return views, nil
	})
	return out, err
}

func (s *historyService) SavePrediction(ctx context.Context, payload *models.PredictionPayload) (*models.SaveResponse, error) {
	if err := s.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("prediction payload: %w", err)
	}
	resp, err := s.up.SavePrediction(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, playerHistoryKey)
	return resp, nil
}

func (s *historyService) SaveMatch(ctx context.Context, req *models.MatchSaveRequest) (*models.SaveResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("match save request: %w", err)
	}
	resp, err := s.up.SaveMatch(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, matchHistoryKey)
	return resp, nil
}

// SaveMatchFromPrediction runs the save chain: fetch the full prediction
// for the game, build the snapshot from it, then post. The two steps are
// sequential by data dependency.
func (s *historyService) SaveMatchFromPrediction(ctx context.Context, game models.TodayGame, sc *scenario.Scenario) (*models.SaveResponse, error) {
	pred, err := s.up.FullMatchPredictionV2(ctx, game.HomeTeamID, game.AwayTeamID, sc, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch prediction for save: %w", err)
	}

	homeID, _ := strconv.Atoi(game.HomeTeamID.String())
	awayID, _ := strconv.Atoi(game.AwayTeamID.String())
	req := &models.MatchSaveRequest{
		GameID:           game.GameID,
		GameDate:         game.GameDate,
		HomeTeam:         game.HomeTeam,
		HomeTeamID:       homeID,
		AwayTeam:         game.AwayTeam,
		AwayTeamID:       awayID,
		HomePlayers:      toStatSaves(pred.HomePlayers, game.HomeTeam),
		AwayPlayers:      toStatSaves(pred.AwayPlayers, game.AwayTeam),
		WinnerPrediction: pred.MatchInfo.PredictedWinner,
	}
	return s.SaveMatch(ctx, req)
}

func toStatSaves(players []models.PlayerFullPrediction, team string) []models.PlayerStatSave {
	out := make([]models.PlayerStatSave, 0, len(players))
	for _, p := range players {
		out = append(out, models.PlayerStatSave{
			PlayerID: p.PlayerID,
			Name:     p.Player,
			Team:     team,
			PredictedStats: models.SaveBox{
				PTS: p.PredictedStats.PTS,
				REB: p.PredictedStats.REB,
				AST: p.PredictedStats.AST,
				MIN: p.PredictedStats.MIN,
				PRA: p.AdvancedMetricsProjected.PRA,
			},
		})
	}
	return out
}

// trackedStats are the stat lines scored in history views.
var trackedStats = []struct {
	name      string
	predicted func(models.SaveBox) float64
	actual    func(models.RealStats) float64
}{
	{"PTS", func(b models.SaveBox) float64 { return b.PTS }, func(r models.RealStats) float64 { return r.PTS }},
	{"REB", func(b models.SaveBox) float64 { return b.REB }, func(r models.RealStats) float64 { return r.REB }},
	{"AST", func(b models.SaveBox) float64 { return b.AST }, func(r models.RealStats) float64 { return r.AST }},
	{"PRA", func(b models.SaveBox) float64 { return b.PRA }, func(r models.RealStats) float64 { return r.PTS + r.REB + r.AST }},
}

func scorePlayerEntry(e models.PlayerHistoryEntry, finished bool) PlayerHistoryView {
	view := PlayerHistoryView{PlayerHistoryEntry: e}
	for _, ts := range trackedStats {
		res := StatResult{
			Stat:      ts.name,
			Predicted: ts.predicted(e.PredictedStats),
		}
		var actual *float64
		if e.RealStats != nil {
			v := ts.actual(*e.RealStats)
			actual = &v
			res.Actual = actual
		}
		res.Hit = stats.ClassifyHit(res.Predicted, actual, finished)
		if res.Hit != stats.HitPending {
			level, diff := stats.AccuracyBucket(res.Predicted, *actual)
			res.Accuracy = &level
			res.Diff = &diff
		}
		view.Results = append(view.Results, res)
	}
	return view
}

func scoreMatchEntry(e models.MatchHistoryEntry) MatchHistoryView {
	finished := e.Status == models.MatchFinished
	score := func(entries []models.PlayerHistoryEntry) []PlayerHistoryView {
		out := make([]PlayerHistoryView, 0, len(entries))
		for _, p := range entries {
			out = append(out, scorePlayerEntry(p, finished))
		}
		return out
	}
	return MatchHistoryView{
		GameID:        e.GameID,
		GameDate:      e.GameDate,
		HomeTeam:      e.HomeTeam,
		AwayTeam:      e.AwayTeam,
		HomeTeamID:    e.HomeTeamID,
		AwayTeamID:    e.AwayTeamID,
		HomePlayers:   score(e.HomePlayers),
		AwayPlayers:   score(e.AwayPlayers),
		Status:        e.Status,
		AccuracyScore: e.AccuracyScore,
		RealWinner:    e.RealWinner,
		SavedAt:       e.SavedAt,
	}
}
