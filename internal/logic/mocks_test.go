package logic

import (
	"context"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/scenario"
)

// mockUpstream implements Upstream with overridable funcs.
type mockUpstream struct {
	GamesFunc                 func(ctx context.Context) (*models.GamesResponse, error)
	SearchPlayersFunc         func(ctx context.Context, query string) ([]models.Player, error)
	TeamRosterFunc            func(ctx context.Context, teamID models.FlexID) ([]models.Player, error)
	PlayerSeasonFunc          func(ctx context.Context, playerID int) (*models.SeasonStats, error)
	PlayerRecentFunc          func(ctx context.Context, playerID, limit int) ([]models.GameLog, error)
	PlayerVsTeamFunc          func(ctx context.Context, playerID int, teamCode string) (*models.VsTeamStats, error)
	PlayerTrendFunc           func(ctx context.Context, playerID int, stat string, threshold float64) (*models.TrendResult, error)
	MatchPredictionFunc       func(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.MatchPrediction, error)
	FullMatchPredictionFunc   func(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*models.FullMatchPrediction, error)
	FullMatchPredictionV2Func func(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*models.MatchPredictionV2, error)
	MissingPlayerImpactFunc   func(ctx context.Context, teamCode string, playerID int) (*models.MissingPlayerAnalysis, error)
	PlayerPopupFunc           func(ctx context.Context, playerID int, opponentID models.FlexID) (*models.PlayerDetailsHistory, error)
	CalculatorFunc            func(ctx context.Context, playerID int, projection, line float64, statCategory string) (*models.CalculatorResult, error)
	ShootingPredictionFunc    func(ctx context.Context, homeID, awayID models.FlexID) (*models.ShootingPrediction, error)
	ShootingSplitsFunc        func(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.ShootingPrediction, error)
	SavePredictionFunc        func(ctx context.Context, payload *models.PredictionPayload) (*models.SaveResponse, error)
	SaveMatchFunc             func(ctx context.Context, req *models.MatchSaveRequest) (*models.SaveResponse, error)
	PredictionHistoryFunc     func(ctx context.Context) ([]models.PlayerHistoryEntry, error)
	MatchHistoryFunc          func(ctx context.Context) ([]models.MatchHistoryEntry, error)
}

func (m *mockUpstream) Games(ctx context.Context) (*models.GamesResponse, error) {
	if m.GamesFunc != nil {
		return m.GamesFunc(ctx)
	}
	return &models.GamesResponse{}, nil
}

func (m *mockUpstream) SearchPlayers(ctx context.Context, query string) ([]models.Player, error) {
	if m.SearchPlayersFunc != nil {
		return m.SearchPlayersFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockUpstream) TeamRoster(ctx context.Context, teamID models.FlexID) ([]models.Player, error) {
	if m.TeamRosterFunc != nil {
		return m.TeamRosterFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *mockUpstream) PlayerSeason(ctx context.Context, playerID int) (*models.SeasonStats, error) {
	if m.PlayerSeasonFunc != nil {
		return m.PlayerSeasonFunc(ctx, playerID)
	}
	return &models.SeasonStats{}, nil
}

func (m *mockUpstream) PlayerRecent(ctx context.Context, playerID, limit int) ([]models.GameLog, error) {
	if m.PlayerRecentFunc != nil {
		return m.PlayerRecentFunc(ctx, playerID, limit)
	}
	return nil, nil
}

func (m *mockUpstream) PlayerVsTeam(ctx context.Context, playerID int, teamCode string) (*models.VsTeamStats, error) {
	if m.PlayerVsTeamFunc != nil {
		return m.PlayerVsTeamFunc(ctx, playerID, teamCode)
	}
	return &models.VsTeamStats{}, nil
}

func (m *mockUpstream) PlayerTrend(ctx context.Context, playerID int, stat string, threshold float64) (*models.TrendResult, error) {
	if m.PlayerTrendFunc != nil {
		return m.PlayerTrendFunc(ctx, playerID, stat, threshold)
	}
	return &models.TrendResult{}, nil
}

func (m *mockUpstream) MatchPrediction(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.MatchPrediction, error) {
	if m.MatchPredictionFunc != nil {
		return m.MatchPredictionFunc(ctx, homeCode, awayCode, sc)
	}
	return &models.MatchPrediction{}, nil
}

func (m *mockUpstream) FullMatchPrediction(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*models.FullMatchPrediction, error) {
	if m.FullMatchPredictionFunc != nil {
		return m.FullMatchPredictionFunc(ctx, homeID, awayID, sc, homeRest, awayRest)
	}
	return &models.FullMatchPrediction{}, nil
}

func (m *mockUpstream) FullMatchPredictionV2(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*models.MatchPredictionV2, error) {
	if m.FullMatchPredictionV2Func != nil {
		return m.FullMatchPredictionV2Func(ctx, homeID, awayID, sc, homeRest, awayRest)
	}
	return &models.MatchPredictionV2{}, nil
}

func (m *mockUpstream) MissingPlayerImpact(ctx context.Context, teamCode string, playerID int) (*models.MissingPlayerAnalysis, error) {
	if m.MissingPlayerImpactFunc != nil {
		return m.MissingPlayerImpactFunc(ctx, teamCode, playerID)
	}
	return &models.MissingPlayerAnalysis{}, nil
}

func (m *mockUpstream) PlayerPopup(ctx context.Context, playerID int, opponentID models.FlexID) (*models.PlayerDetailsHistory, error) {
	if m.PlayerPopupFunc != nil {
		return m.PlayerPopupFunc(ctx, playerID, opponentID)
	}
	return &models.PlayerDetailsHistory{}, nil
}

func (m *mockUpstream) Calculator(ctx context.Context, playerID int, projection, line float64, statCategory string) (*models.CalculatorResult, error) {
	if m.CalculatorFunc != nil {
		return m.CalculatorFunc(ctx, playerID, projection, line, statCategory)
	}
	return &models.CalculatorResult{}, nil
}

func (m *mockUpstream) ShootingPrediction(ctx context.Context, homeID, awayID models.FlexID) (*models.ShootingPrediction, error) {
	if m.ShootingPredictionFunc != nil {
		return m.ShootingPredictionFunc(ctx, homeID, awayID)
	}
	return &models.ShootingPrediction{}, nil
}

func (m *mockUpstream) ShootingSplits(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.ShootingPrediction, error) {
	if m.ShootingSplitsFunc != nil {
		return m.ShootingSplitsFunc(ctx, homeCode, awayCode, sc)
	}
	return &models.ShootingPrediction{}, nil
}

func (m *mockUpstream) SavePrediction(ctx context.Context, payload *models.PredictionPayload) (*models.SaveResponse, error) {
	if m.SavePredictionFunc != nil {
		return m.SavePredictionFunc(ctx, payload)
	}
	return &models.SaveResponse{Success: true}, nil
}

func (m *mockUpstream) SaveMatch(ctx context.Context, req *models.MatchSaveRequest) (*models.SaveResponse, error) {
	if m.SaveMatchFunc != nil {
		return m.SaveMatchFunc(ctx, req)
	}
	return &models.SaveResponse{Success: true}, nil
}

func (m *mockUpstream) PredictionHistory(ctx context.Context) ([]models.PlayerHistoryEntry, error) {
	if m.PredictionHistoryFunc != nil {
		return m.PredictionHistoryFunc(ctx)
	}
	return nil, nil
}

func (m *mockUpstream) MatchHistory(ctx context.Context) ([]models.MatchHistoryEntry, error) {
	if m.MatchHistoryFunc != nil {
		return m.MatchHistoryFunc(ctx)
	}
	return nil, nil
}
