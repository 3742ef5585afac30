// Package worker keeps the games board warm. The dashboard front page reads
// the board on every load, so it is refreshed on a schedule instead of on
// demand; handlers then hit the cache and the upstream sees one fetch per
// interval regardless of traffic.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/courtside/dashboard-api/internal/logic"
	"github.com/courtside/dashboard-api/internal/query"
	"github.com/courtside/dashboard-api/internal/upstream"
)

// Prometheus metrics
var (
	boardGames = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courtside_board_games",
		Help: "Number of games on the last refreshed board",
	})

	boardRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtside_board_refreshes_total",
		Help: "Total schedule board refreshes",
	})

	boardRefreshFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtside_board_refresh_failures_total",
		Help: "Total schedule board refreshes that failed",
	})
)

// PollerConfig configures the schedule poller.
type PollerConfig struct {
	Interval time.Duration
	Timeout  time.Duration
	Schedule logic.ScheduleService
	Cache    *query.Cache
	Logger   *zap.Logger
}

// Poller refreshes the games board on a fixed interval.
type Poller struct {
	cron     *cron.Cron
	interval time.Duration
	timeout  time.Duration
	schedule logic.ScheduleService
	cache    *query.Cache
	logger   *zap.SugaredLogger
}

func NewPoller(cfg PollerConfig) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Poller{
		cron:     cron.New(),
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		schedule: cfg.Schedule,
		cache:    cfg.Cache,
		logger:   cfg.Logger.Sugar(),
	}
}

// Start runs one immediate refresh and then ticks on the configured interval.
// The first refresh is synchronous so the board is warm before the server
// accepts traffic; a failure only logs, since a cold board falls back to an
// on-demand fetch.
func (p *Poller) Start() error {
	p.Refresh(context.Background())

	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(spec, func() {
		p.Refresh(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule poller: %w", err)
	}
	p.cron.Start()

	p.logger.Infow("Schedule poller started", "interval", p.interval)
	return nil
}

// Stop halts the ticker and waits for an in-flight refresh to finish.
func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	p.logger.Info("Schedule poller stopped")
}

// Refresh drops the cached board and refetches it. An upstream still warming
// its own caches is expected shortly after tip-off windows open, so warming
// is logged quieter than a real failure.
func (p *Poller) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	boardRefreshes.Inc()
	p.cache.Invalidate(ctx, logic.BoardCacheKey)

	board, err := p.schedule.Board(ctx)
	if err != nil {
		boardRefreshFailures.Inc()
		if upstream.IsWarming(err) {
			p.logger.Infow("Board refresh deferred, upstream warming")
		} else {
			p.logger.Warnw("Board refresh failed", "error", err)
		}
		return
	}

	boardGames.Set(float64(len(board.Games)))
	p.logger.Infow("Board refreshed", "games", len(board.Games))
}
