package logic

import (
	"context"
	"time"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/scenario"
)

// Upstream is the slice of the prediction-service client the services
// consume. Kept as an interface so tests can stand in a hand mock.
type Upstream interface {
	Games(ctx context.Context) (*models.GamesResponse, error)
	SearchPlayers(ctx context.Context, query string) ([]models.Player, error)
	TeamRoster(ctx context.Context, teamID models.FlexID) ([]models.Player, error)
	PlayerSeason(ctx context.Context, playerID int) (*models.SeasonStats, error)
	PlayerRecent(ctx context.Context, playerID, limit int) ([]models.GameLog, error)
	PlayerVsTeam(ctx context.Context, playerID int, teamCode string) (*models.VsTeamStats, error)
	PlayerTrend(ctx context.Context, playerID int, stat string, threshold float64) (*models.TrendResult, error)
	MatchPrediction(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.MatchPrediction, error)
	FullMatchPrediction(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*models.FullMatchPrediction, error)
	FullMatchPredictionV2(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*models.MatchPredictionV2, error)
	MissingPlayerImpact(ctx context.Context, teamCode string, playerID int) (*models.MissingPlayerAnalysis, error)
	PlayerPopup(ctx context.Context, playerID int, opponentID models.FlexID) (*models.PlayerDetailsHistory, error)
	Calculator(ctx context.Context, playerID int, projection, line float64, statCategory string) (*models.CalculatorResult, error)
	ShootingPrediction(ctx context.Context, homeID, awayID models.FlexID) (*models.ShootingPrediction, error)
	ShootingSplits(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.ShootingPrediction, error)
	SavePrediction(ctx context.Context, payload *models.PredictionPayload) (*models.SaveResponse, error)
	SaveMatch(ctx context.Context, req *models.MatchSaveRequest) (*models.SaveResponse, error)
	PredictionHistory(ctx context.Context) ([]models.PlayerHistoryEntry, error)
	MatchHistory(ctx context.Context) ([]models.MatchHistoryEntry, error)
}

// TTLs carries the per-kind cache lifetimes from config.
type TTLs struct {
	Schedule   time.Duration
	Roster     time.Duration
	Stats      time.Duration
	Prediction time.Duration
}

// ScheduleService serves the games board.
type ScheduleService interface {
	Board(ctx context.Context) (*models.GamesResponse, error)
}

// PlayerAnalysisService serves player-scoped panels.
type PlayerAnalysisService interface {
	Search(ctx context.Context, query string) ([]models.Player, error)
	Roster(ctx context.Context, teamID models.FlexID) ([]models.Player, error)
	Summary(ctx context.Context, playerID, recentLimit int, opponentCode string) (*PlayerSummary, error)
	Popup(ctx context.Context, playerID int, opponentID models.FlexID) (*models.PlayerDetailsHistory, error)
	Trend(ctx context.Context, playerID int, stat string, threshold float64) (*models.TrendResult, error)
	MissingImpact(ctx context.Context, teamCode string, playerID int) (*MissingPlayerImpact, error)
}

// MatchAnalysisService serves matchup-scoped panels.
type MatchAnalysisService interface {
	Predict(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*MatchPredictionView, error)
	FullPrediction(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*FullMatchView, error)
	FullPredictionV2(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*FullMatchViewV2, error)
	Shooting(ctx context.Context, homeID, awayID models.FlexID) (*models.ShootingPrediction, error)
	ShootingSplits(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.ShootingPrediction, error)
}

// CalculatorService serves the over/under calculator.
type CalculatorService interface {
	Analyze(ctx context.Context, playerID int, projection, line float64, statCategory string) (*models.CalculatorResult, error)
}

// HistoryService serves saved snapshots and the save flows.
type HistoryService interface {
	PlayerHistory(ctx context.Context) ([]PlayerHistoryView, error)
	MatchHistory(ctx context.Context) ([]MatchHistoryView, error)
	SavePrediction(ctx context.Context, payload *models.PredictionPayload) (*models.SaveResponse, error)
	SaveMatch(ctx context.Context, req *models.MatchSaveRequest) (*models.SaveResponse, error)
	SaveMatchFromPrediction(ctx context.Context, game models.TodayGame, sc *scenario.Scenario) (*models.SaveResponse, error)
}
