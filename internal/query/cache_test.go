package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

type rosterResult struct {
	Team    string   `json:"team"`
	Players []string `json:"players"`
}

func TestFetchPassThroughWithoutRedis(t *testing.T) {
	c := NewCache(nil, zap.NewNop().Sugar())

	calls := 0
	var got rosterResult
	err := c.Fetch(context.Background(), "roster:LAL", time.Minute, &got, func(ctx context.Context) (any, error) {
		calls++
		return rosterResult{Team: "LAL", Players: []string{"James", "Doncic"}}, nil
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got.Team != "LAL" || len(got.Players) != 2 {
		t.Errorf("result = %+v", got)
	}

	// No store, so a second fetch fills again.
	if err := c.Fetch(context.Background(), "roster:LAL", time.Minute, &got, func(ctx context.Context) (any, error) {
		calls++
		return rosterResult{Team: "LAL"}, nil
	}); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if calls != 2 {
		t.Errorf("fill calls = %d, want 2", calls)
	}
}

func TestFetchPropagatesFillError(t *testing.T) {
	c := NewCache(nil, zap.NewNop().Sugar())
	sentinel := errors.New("upstream down")

	var got rosterResult
	err := c.Fetch(context.Background(), "roster:BOS", time.Minute, &got, func(ctx context.Context) (any, error) {
		return nil, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("err = %v, want fill error", err)
	}
}

func TestFetchDeduplicatesConcurrentCalls(t *testing.T) {
	c := NewCache(nil, zap.NewNop().Sugar())

	var fills atomic.Int32
	release := make(chan struct{})

	const callers = 8
	var wg sync.WaitGroup
	results := make([]rosterResult, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := c.Fetch(context.Background(), "roster:DEN", time.Minute, &results[i], func(ctx context.Context) (any, error) {
				fills.Add(1)
				<-release
				return rosterResult{Team: "DEN", Players: []string{"Jokic"}}, nil
			})
			if err != nil {
				t.Errorf("Fetch: %v", err)
			}
		}(i)
	}

	// Let every caller join the flight before it resolves.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := fills.Load(); n != 1 {
		t.Errorf("fill ran %d times, want 1", n)
	}
	for i, r := range results {
		if r.Team != "DEN" {
			t.Errorf("caller %d result = %+v", i, r)
		}
	}
}

func TestPanelGuardDiscardsStaleResponse(t *testing.T) {
	g := NewPanelGuard()

	// Roster panel requests LAL, then the user switches to BOS before the
	// LAL response arrives.
	g.Register("roster", "roster:LAL")
	g.Register("roster", "roster:BOS")

	var displayed string
	if applied := g.Apply("roster", "roster:LAL", func() { displayed = "LAL" }); applied {
		t.Error("stale LAL response must be discarded")
	}
	if applied := g.Apply("roster", "roster:BOS", func() { displayed = "BOS" }); !applied {
		t.Error("current BOS response must be applied")
	}
	if displayed != "BOS" {
		t.Errorf("displayed = %q, want BOS", displayed)
	}
}

func TestPanelGuardPanelsIndependent(t *testing.T) {
	g := NewPanelGuard()
	g.Register("roster", "roster:LAL")
	g.Register("trend", "trend:2544:PTS")

	if !g.Current("roster", "roster:LAL") {
		t.Error("roster key displaced by another panel's registration")
	}
	if !g.Current("trend", "trend:2544:PTS") {
		t.Error("trend key displaced by another panel's registration")
	}
	if g.Current("roster", "trend:2544:PTS") {
		t.Error("keys must not leak across panels")
	}
}
