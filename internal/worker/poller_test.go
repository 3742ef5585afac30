package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/query"
	"github.com/courtside/dashboard-api/internal/upstream"
)

type mockSchedule struct {
	BoardFunc func(ctx context.Context) (*models.GamesResponse, error)
	calls     atomic.Int64
}

func (m *mockSchedule) Board(ctx context.Context) (*models.GamesResponse, error) {
	m.calls.Add(1)
	if m.BoardFunc != nil {
		return m.BoardFunc(ctx)
	}
	return &models.GamesResponse{Success: true}, nil
}

func testPoller(t *testing.T, sched *mockSchedule) *Poller {
	t.Helper()
	logger := zap.NewNop()
	return NewPoller(PollerConfig{
		Interval: time.Hour,
		Schedule: sched,
		Cache:    query.NewCache(nil, logger.Sugar()),
		Logger:   logger,
	})
}

func TestRefreshFetchesBoard(t *testing.T) {
	sched := &mockSchedule{
		BoardFunc: func(ctx context.Context) (*models.GamesResponse, error) {
			return &models.GamesResponse{
				Success:    true,
				TotalGames: 2,
				Games: []models.TodayGame{
					{GameID: "0022500001", HomeTeam: "Lakers", AwayTeam: "Celtics"},
					{GameID: "0022500002", HomeTeam: "Nuggets", AwayTeam: "Suns"},
				},
			}, nil
		},
	}
	p := testPoller(t, sched)

	p.Refresh(context.Background())

	if got := sched.calls.Load(); got != 1 {
		t.Fatalf("expected 1 board fetch, got %d", got)
	}
}

func TestRefreshSurvivesFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"warming upstream", upstream.ErrUpstreamWarming},
		{"transport failure", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := &mockSchedule{
				BoardFunc: func(ctx context.Context) (*models.GamesResponse, error) {
					return nil, tt.err
				},
			}
			p := testPoller(t, sched)

			// Must not panic; the next tick retries.
			p.Refresh(context.Background())

			if got := sched.calls.Load(); got != 1 {
				t.Fatalf("expected 1 board fetch, got %d", got)
			}
		})
	}
}

func TestStartRunsImmediateRefreshAndStops(t *testing.T) {
	sched := &mockSchedule{}
	p := testPoller(t, sched)

	if err := p.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer p.Stop()

	if got := sched.calls.Load(); got != 1 {
		t.Fatalf("expected synchronous warm-up fetch, got %d calls", got)
	}
}

func TestRefreshRespectsTimeout(t *testing.T) {
	sched := &mockSchedule{
		BoardFunc: func(ctx context.Context) (*models.GamesResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	logger := zap.NewNop()
	p := NewPoller(PollerConfig{
		Interval: time.Hour,
		Timeout:  10 * time.Millisecond,
		Schedule: sched,
		Cache:    query.NewCache(nil, logger.Sugar()),
		Logger:   logger,
	})

	done := make(chan struct{})
	go func() {
		p.Refresh(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not honor its timeout")
	}
}
