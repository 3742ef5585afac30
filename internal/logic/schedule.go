package logic

import (
	"context"

	"go.uber.org/zap"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/query"
)

// BoardCacheKey is where the games board lives in the query cache. The
// schedule poller refreshes it; Board reads through it.
const BoardCacheKey = "games:board"

type scheduleService struct {
	up     Upstream
	cache  *query.Cache
	ttls   TTLs
	logger *zap.SugaredLogger
}

func NewScheduleService(up Upstream, cache *query.Cache, ttls TTLs, logger *zap.SugaredLogger) ScheduleService {
	return &scheduleService{up: up, cache: cache, ttls: ttls, logger: logger}
}

// Board returns the games list. The poller keeps the cache warm, so most
// calls never touch the upstream; a cold cache falls through to a live
// fetch.
func (s *scheduleService) Board(ctx context.Context) (*models.GamesResponse, error) {
	var out models.GamesResponse
	err := s.cache.Fetch(ctx, BoardCacheKey, s.ttls.Schedule, &out, func(ctx context.Context) (any, error) {
		return s.up.Games(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
