package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/courtside/dashboard-api/internal/config"
	"github.com/courtside/dashboard-api/internal/handlers"
	"github.com/courtside/dashboard-api/internal/logic"
	"github.com/courtside/dashboard-api/internal/query"
	"github.com/courtside/dashboard-api/internal/upstream"
	"github.com/courtside/dashboard-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	sugar.Infow("Starting dashboard API",
		"env", cfg.Env,
		"port", cfg.Port,
		"upstream", cfg.UpstreamBaseURL,
	)

	// Redis is optional; without it the query cache degrades to in-process
	// deduplication only.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid Redis URL", "error", err)
		}
		rdb = redis.NewClient(opt)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			sugar.Warnw("Redis unreachable at startup, continuing without warm cache", "error", err)
		}
		cancel()
	} else {
		sugar.Info("No Redis URL configured, query cache runs pass-through")
	}

	cache := query.NewCache(rdb, sugar)
	guard := query.NewPanelGuard()
	client := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, sugar)

	ttls := logic.TTLs{
		Schedule:   cfg.ScheduleTTL,
		Roster:     cfg.RosterTTL,
		Stats:      cfg.StatsTTL,
		Prediction: cfg.PredictionTTL,
	}

	schedule := logic.NewScheduleService(client, cache, ttls, sugar)
	players := logic.NewPlayerAnalysisService(client, cache, ttls, sugar)
	matches := logic.NewMatchAnalysisService(client, cache, ttls, sugar)
	calculator := logic.NewCalculatorService(client, cache, ttls, cfg.CalcConfidenceThreshold, sugar)
	history := logic.NewHistoryService(client, cache, ttls, sugar)

	h := handlers.New(handlers.Config{
		Logger:     logger,
		Cache:      cache,
		Guard:      guard,
		Upstream:   client,
		Schedule:   schedule,
		Players:    players,
		Matches:    matches,
		Calculator: calculator,
		History:    history,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	h.Routes(r)
	r.Handle("/metrics", promhttp.Handler())

	poller := worker.NewPoller(worker.PollerConfig{
		Interval: cfg.GamesRefreshInterval,
		Timeout:  cfg.UpstreamTimeout,
		Schedule: schedule,
		Cache:    cache,
		Logger:   logger,
	})
	if err := poller.Start(); err != nil {
		sugar.Fatalw("Failed to start schedule poller", "error", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("Shutting down...")
	poller.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Forced shutdown", "error", err)
	}
	sugar.Info("Server exited")
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
