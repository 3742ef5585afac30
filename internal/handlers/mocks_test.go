package handlers

import (
	"context"

	"github.com/courtside/dashboard-api/internal/logic"
	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/scenario"
)

// Hand-rolled service mocks. Each method delegates to an overridable Func
// field and falls back to an empty success.

type mockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

type mockSchedule struct {
	BoardFunc func(ctx context.Context) (*models.GamesResponse, error)
}

func (m *mockSchedule) Board(ctx context.Context) (*models.GamesResponse, error) {
	if m.BoardFunc != nil {
		return m.BoardFunc(ctx)
	}
	return &models.GamesResponse{Success: true}, nil
}

type mockPlayers struct {
	SearchFunc        func(ctx context.Context, query string) ([]models.Player, error)
	RosterFunc        func(ctx context.Context, teamID models.FlexID) ([]models.Player, error)
	SummaryFunc       func(ctx context.Context, playerID, recentLimit int, opponentCode string) (*logic.PlayerSummary, error)
	PopupFunc         func(ctx context.Context, playerID int, opponentID models.FlexID) (*models.PlayerDetailsHistory, error)
	TrendFunc         func(ctx context.Context, playerID int, stat string, threshold float64) (*models.TrendResult, error)
	MissingImpactFunc func(ctx context.Context, teamCode string, playerID int) (*logic.MissingPlayerImpact, error)
}

func (m *mockPlayers) Search(ctx context.Context, query string) ([]models.Player, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []models.Player{}, nil
}

func (m *mockPlayers) Roster(ctx context.Context, teamID models.FlexID) ([]models.Player, error) {
	if m.RosterFunc != nil {
		return m.RosterFunc(ctx, teamID)
	}
	return []models.Player{}, nil
}

func (m *mockPlayers) Summary(ctx context.Context, playerID, recentLimit int, opponentCode string) (*logic.PlayerSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, playerID, recentLimit, opponentCode)
	}
	return &logic.PlayerSummary{}, nil
}

func (m *mockPlayers) Popup(ctx context.Context, playerID int, opponentID models.FlexID) (*models.PlayerDetailsHistory, error) {
	if m.PopupFunc != nil {
		return m.PopupFunc(ctx, playerID, opponentID)
	}
	return &models.PlayerDetailsHistory{}, nil
}

func (m *mockPlayers) Trend(ctx context.Context, playerID int, stat string, threshold float64) (*models.TrendResult, error) {
	if m.TrendFunc != nil {
		return m.TrendFunc(ctx, playerID, stat, threshold)
	}
	return &models.TrendResult{}, nil
}

func (m *mockPlayers) MissingImpact(ctx context.Context, teamCode string, playerID int) (*logic.MissingPlayerImpact, error) {
	if m.MissingImpactFunc != nil {
		return m.MissingImpactFunc(ctx, teamCode, playerID)
	}
	return &logic.MissingPlayerImpact{}, nil
}

type mockMatches struct {
	PredictFunc          func(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*logic.MatchPredictionView, error)
	FullPredictionFunc   func(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*logic.FullMatchView, error)
	FullPredictionV2Func func(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*logic.FullMatchViewV2, error)
	ShootingFunc         func(ctx context.Context, homeID, awayID models.FlexID) (*models.ShootingPrediction, error)
	ShootingSplitsFunc   func(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.ShootingPrediction, error)
}

func (m *mockMatches) Predict(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*logic.MatchPredictionView, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, homeCode, awayCode, sc)
	}
	return &logic.MatchPredictionView{}, nil
}

func (m *mockMatches) FullPrediction(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*logic.FullMatchView, error) {
	if m.FullPredictionFunc != nil {
		return m.FullPredictionFunc(ctx, homeID, awayID, sc, homeRest, awayRest)
	}
	return &logic.FullMatchView{}, nil
}

func (m *mockMatches) FullPredictionV2(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*logic.FullMatchViewV2, error) {
	if m.FullPredictionV2Func != nil {
		return m.FullPredictionV2Func(ctx, homeID, awayID, sc, homeRest, awayRest)
	}
	return &logic.FullMatchViewV2{}, nil
}

func (m *mockMatches) Shooting(ctx context.Context, homeID, awayID models.FlexID) (*models.ShootingPrediction, error) {
	if m.ShootingFunc != nil {
		return m.ShootingFunc(ctx, homeID, awayID)
	}
	return &models.ShootingPrediction{}, nil
}

func (m *mockMatches) ShootingSplits(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.ShootingPrediction, error) {
	if m.ShootingSplitsFunc != nil {
		return m.ShootingSplitsFunc(ctx, homeCode, awayCode, sc)
	}
	return &models.ShootingPrediction{}, nil
}

type mockCalculator struct {
	AnalyzeFunc func(ctx context.Context, playerID int, projection, line float64, statCategory string) (*models.CalculatorResult, error)
}

func (m *mockCalculator) Analyze(ctx context.Context, playerID int, projection, line float64, statCategory string) (*models.CalculatorResult, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, playerID, projection, line, statCategory)
	}
	return &models.CalculatorResult{}, nil
}

type mockHistory struct {
	PlayerHistoryFunc           func(ctx context.Context) ([]logic.PlayerHistoryView, error)
	MatchHistoryFunc            func(ctx context.Context) ([]logic.MatchHistoryView, error)
	SavePredictionFunc          func(ctx context.Context, payload *models.PredictionPayload) (*models.SaveResponse, error)
	SaveMatchFunc               func(ctx context.Context, req *models.MatchSaveRequest) (*models.SaveResponse, error)
	SaveMatchFromPredictionFunc func(ctx context.Context, game models.TodayGame, sc *scenario.Scenario) (*models.SaveResponse, error)
}

func (m *mockHistory) PlayerHistory(ctx context.Context) ([]logic.PlayerHistoryView, error) {
	if m.PlayerHistoryFunc != nil {
		return m.PlayerHistoryFunc(ctx)
	}
	return []logic.PlayerHistoryView{}, nil
}

func (m *mockHistory) MatchHistory(ctx context.Context) ([]logic.MatchHistoryView, error) {
	if m.MatchHistoryFunc != nil {
		return m.MatchHistoryFunc(ctx)
	}
	return []logic.MatchHistoryView{}, nil
}

func (m *mockHistory) SavePrediction(ctx context.Context, payload *models.PredictionPayload) (*models.SaveResponse, error) {
	if m.SavePredictionFunc != nil {
		return m.SavePredictionFunc(ctx, payload)
	}
	return &models.SaveResponse{Success: true}, nil
}

func (m *mockHistory) SaveMatch(ctx context.Context, req *models.MatchSaveRequest) (*models.SaveResponse, error) {
	if m.SaveMatchFunc != nil {
		return m.SaveMatchFunc(ctx, req)
	}
	return &models.SaveResponse{Success: true}, nil
}

func (m *mockHistory) SaveMatchFromPrediction(ctx context.Context, game models.TodayGame, sc *scenario.Scenario) (*models.SaveResponse, error) {
	if m.SaveMatchFromPredictionFunc != nil {
		return m.SaveMatchFromPredictionFunc(ctx, game, sc)
	}
	return &models.SaveResponse{Success: true}, nil
}
