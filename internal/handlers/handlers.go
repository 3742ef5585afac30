package handlers

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/courtside/dashboard-api/internal/logic"
	"github.com/courtside/dashboard-api/internal/query"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// Pinger reports upstream reachability for readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Logger   *zap.Logger
	Cache    *query.Cache
	Guard    *query.PanelGuard
	Upstream Pinger
	// Services
	Schedule   logic.ScheduleService
	Players    logic.PlayerAnalysisService
	Matches    logic.MatchAnalysisService
	Calculator logic.CalculatorService
	History    logic.HistoryService
}

type Handler struct {
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	cache      *query.Cache
	guard      *query.PanelGuard
	upstream   Pinger
	schedule   logic.ScheduleService
	players    logic.PlayerAnalysisService
	matches    logic.MatchAnalysisService
	calculator logic.CalculatorService
	history    logic.HistoryService
}

func New(cfg Config) *Handler {
	guard := cfg.Guard
	if guard == nil {
		guard = query.NewPanelGuard()
	}
	return &Handler{
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		cache:      cfg.Cache,
		guard:      guard,
		upstream:   cfg.Upstream,
		schedule:   cfg.Schedule,
		players:    cfg.Players,
		matches:    cfg.Matches,
		calculator: cfg.Calculator,
		history:    cfg.History,
	}
}

// Routes mounts the dashboard API surface.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games", h.GetGames)

		r.Get("/players/search", h.SearchPlayers)
		r.Get("/team/{teamId}/roster", h.GetRoster)
		r.Get("/player/{playerId}/summary", h.GetPlayerSummary)
		r.Get("/player/{playerId}/popup/{opponentId}", h.GetPlayerPopup)
		r.Get("/player/{playerId}/trend", h.GetPlayerTrend)
		r.Get("/analytics/team/{teamCode}/missing-player/{playerId}", h.GetMissingImpact)

		r.Get("/predict/match/{homeCode}/{awayCode}", h.GetMatchPrediction)
		r.Get("/predict/full-match/{homeId}/{awayId}", h.GetFullPrediction)
		r.Get("/predict/full-match-v2/{homeId}/{awayId}", h.GetFullPredictionV2)
		r.Get("/predict/shooting/{homeId}/{awayId}", h.GetShooting)
		r.Get("/predict/shooting-splits/{homeCode}/{awayCode}", h.GetShootingSplits)
		r.Get("/predict/calculator", h.GetCalculator)

		r.Get("/predictions/history", h.GetPlayerHistory)
		r.Get("/predictions/match-history", h.GetMatchHistory)
		r.Post("/predictions/save", h.SavePrediction)
		r.Post("/predictions/save-match", h.SaveMatch)
		r.Post("/predictions/save-match/from-prediction", h.SaveMatchFromPrediction)
	})
}
