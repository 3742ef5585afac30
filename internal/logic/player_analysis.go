package logic

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/query"
	"github.com/courtside/dashboard-api/internal/stats"
)

// PlayerSummary bundles a player's season line, recent logs and the locally
// derived rolling averages. Nil averages mean the sample was empty, never a
// zero line.
type PlayerSummary struct {
	Season    *models.SeasonStats `json:"season"`
	Recent    []models.GameLog    `json:"recent_games"`
	VsTeam    *models.VsTeamStats `json:"vs_team,omitempty"`
	Last7Avg  *stats.StatAverages `json:"last7_avg,omitempty"`
	RecentAvg *stats.StatAverages `json:"recent_avg,omitempty"`
}

// MissingPlayerImpact is the with/without readout plus the differentials the
// dashboard renders. Deltas stay nil when either split has no games.
type MissingPlayerImpact struct {
	models.MissingPlayerAnalysis
	PPGDelta    *float64 `json:"ppg_delta,omitempty"`
	WinPctDelta *float64 `json:"win_pct_delta,omitempty"`
}

type playerAnalysisService struct {
	up     Upstream
	cache  *query.Cache
	ttls   TTLs
	logger *zap.SugaredLogger
}

func NewPlayerAnalysisService(up Upstream, cache *query.Cache, ttls TTLs, logger *zap.SugaredLogger) PlayerAnalysisService {
	return &playerAnalysisService{up: up, cache: cache, ttls: ttls, logger: logger}
}

func (s *playerAnalysisService) Search(ctx context.Context, q string) ([]models.Player, error) {
	var out []models.Player
	err := s.cache.Fetch(ctx, "search:"+q, s.ttls.Stats, &out, func(ctx context.Context) (any, error) {
		return s.up.SearchPlayers(ctx, q)
	})
	return out, err
}

func (s *playerAnalysisService) Roster(ctx context.Context, teamID models.FlexID) ([]models.Player, error) {
	var out []models.Player
	err := s.cache.Fetch(ctx, "roster:"+teamID.String(), s.ttls.Roster, &out, func(ctx context.Context) (any, error) {
		return s.up.TeamRoster(ctx, teamID)
	})
	return out, err
}

// Summary fans out to season, recent and (when an opponent is given) the
// head-to-head line. Season and recent are required; a missing head-to-head
// history is normal and leaves VsTeam nil.
func (s *playerAnalysisService) Summary(ctx context.Context, playerID, recentLimit int, opponentCode string) (*PlayerSummary, error) {
	if recentLimit <= 0 {
		recentLimit = 10
	}
	key := fmt.Sprintf("summary:%d:%d:%s", playerID, recentLimit, opponentCode)

	var out PlayerSummary
	err := s.cache.Fetch(ctx, key, s.ttls.Stats, &out, func(ctx context.Context) (any, error) {
		return s.buildSummary(ctx, playerID, recentLimit, opponentCode)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *playerAnalysisService) buildSummary(ctx context.Context, playerID, recentLimit int, opponentCode string) (*PlayerSummary, error) {
	summary := &PlayerSummary{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		season, err := s.up.PlayerSeason(ctx, playerID)
		if err != nil {
			return fmt.Errorf("season stats: %w", err)
		}
		summary.Season = season
		return nil
	})

	g.Go(func() error {
		recent, err := s.up.PlayerRecent(ctx, playerID, recentLimit)
		if err != nil {
			return fmt.Errorf("recent games: %w", err)
		}
		summary.Recent = recent
		return nil
	})

	if opponentCode != "" {
		g.Go(func() error {
			vs, err := s.up.PlayerVsTeam(ctx, playerID, opponentCode)
			if err != nil {
				// No matchup history is not an error for the summary.
				s.logger.Infow("No head-to-head line", "player", playerID, "opponent", opponentCode, "error", err)
				return nil
			}
			summary.VsTeam = vs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if avg, ok := stats.RollingAverage(summary.Recent, 7); ok {
		summary.Last7Avg = &avg
	}
	if avg, ok := stats.RollingAverage(summary.Recent, recentLimit); ok {
		summary.RecentAvg = &avg
	}
	return summary, nil
}

func (s *playerAnalysisService) Popup(ctx context.Context, playerID int, opponentID models.FlexID) (*models.PlayerDetailsHistory, error) {
	key := "popup:" + strconv.Itoa(playerID) + ":" + opponentID.String()
	var out models.PlayerDetailsHistory
	err := s.cache.Fetch(ctx, key, s.ttls.Stats, &out, func(ctx context.Context) (any, error) {
		return s.up.PlayerPopup(ctx, playerID, opponentID)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *playerAnalysisService) Trend(ctx context.Context, playerID int, stat string, threshold float64) (*models.TrendResult, error) {
	key := fmt.Sprintf("trend:%d:%s:%g", playerID, stat, threshold)
	var out models.TrendResult
	err := s.cache.Fetch(ctx, key, s.ttls.Stats, &out, func(ctx context.Context) (any, error) {
		return s.up.PlayerTrend(ctx, playerID, stat, threshold)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MissingImpact attaches the PPG and win-percentage differentials to the
// upstream's with/without splits.
func (s *playerAnalysisService) MissingImpact(ctx context.Context, teamCode string, playerID int) (*MissingPlayerImpact, error) {
	key := fmt.Sprintf("missing:%s:%d", teamCode, playerID)
	var out MissingPlayerImpact
	err := s.cache.Fetch(ctx, key, s.ttls.Stats, &out, func(ctx context.Context) (any, error) {
		analysis, err := s.up.MissingPlayerImpact(ctx, teamCode, playerID)
		if err != nil {
			return nil, err
		}
		impact := &MissingPlayerImpact{MissingPlayerAnalysis: *analysis}
		if analysis.StatsWith.Games > 0 && analysis.StatsWithout.Games > 0 {
			ppg := analysis.StatsWith.PPG - analysis.StatsWithout.PPG
			win := analysis.StatsWith.WinPercentage - analysis.StatsWithout.WinPercentage
			impact.PPGDelta = &ppg
			impact.WinPctDelta = &win
		}
		return impact, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
