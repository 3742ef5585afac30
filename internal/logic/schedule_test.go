package logic

import (
	"context"
	"testing"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/upstream"
)

func TestBoardReturnsGames(t *testing.T) {
	up := &mockUpstream{
		GamesFunc: func(ctx context.Context) (*models.GamesResponse, error) {
			return &models.GamesResponse{
				Success:    true,
				Method:     "cache",
				TotalGames: 2,
				Games: []models.TodayGame{
					{GameID: "0022500001", HomeTeam: "Lakers", AwayTeam: "Celtics", IsLive: true},
					{GameID: "0022500002", HomeTeam: "Nuggets", AwayTeam: "Suns"},
				},
			}, nil
		},
	}
	cache, ttls, logger := testDeps()
	svc := NewScheduleService(up, cache, ttls, logger)

	board, err := svc.Board(context.Background())
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if board.TotalGames != 2 || len(board.Games) != 2 {
		t.Fatalf("unexpected board: %+v", board)
	}
	if !board.Games[0].IsLive {
		t.Fatal("live flag lost through the cache round-trip")
	}
}

func TestBoardPropagatesWarming(t *testing.T) {
	up := &mockUpstream{
		GamesFunc: func(ctx context.Context) (*models.GamesResponse, error) {
			return nil, upstream.ErrUpstreamWarming
		},
	}
	cache, ttls, logger := testDeps()
	svc := NewScheduleService(up, cache, ttls, logger)

	if _, err := svc.Board(context.Background()); !upstream.IsWarming(err) {
		t.Fatalf("expected warming error, got %v", err)
	}
}
