// Package upstream is the typed client for the prediction service. Each
// method is a stateless request/response pair: inputs are validated before a
// request is issued, responses are parsed into typed records, and the only
// side effect is the network call itself. Caching and deduplication belong
// to the query layer, not here.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/scenario"
)

// Prometheus metrics
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courtside_upstream_requests_total",
		Help: "Total requests issued to the prediction service, by operation",
	}, []string{"op"})

	upstreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "courtside_upstream_failures_total",
		Help: "Total failed upstream requests, by operation",
	}, []string{"op"})

	upstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "courtside_upstream_request_duration_seconds",
		Help:    "Duration of upstream requests",
		Buckets: prometheus.DefBuckets,
	})
)

const maxResponseBytes = 8 << 20

var teamCodeRe = regexp.MustCompile(`^[A-Z]{2,3}$`)

// Client issues typed requests against the prediction service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger
}

// New builds a client for the given base URL. timeout bounds each request
// end to end, on top of whatever deadline the caller's context carries.
func New(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Games returns the upcoming and recent games board.
func (c *Client) Games(ctx context.Context) (*models.GamesResponse, error) {
	var out models.GamesResponse
	if err := c.get(ctx, "games", "/games/30h", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchPlayers searches players by name fragment.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]models.Player, error) {
	if query == "" {
		return nil, fmt.Errorf("search query: %w", ErrInvalidArgument)
	}
	v := url.Values{"query": {query}}
	var out []models.Player
	if err := c.get(ctx, "search_players", "/players/search", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TeamRoster returns the team's current roster.
func (c *Client) TeamRoster(ctx context.Context, teamID models.FlexID) ([]models.Player, error) {
	if teamID.IsZero() {
		return nil, fmt.Errorf("team id: %w", ErrInvalidArgument)
	}
	var out []models.Player
	path := "/team/" + url.PathEscape(teamID.String()) + "/roster"
	if err := c.get(ctx, "team_roster", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlayerSeason returns the player's season stat line.
func (c *Client) PlayerSeason(ctx context.Context, playerID int) (*models.SeasonStats, error) {
	if err := checkPlayerID(playerID); err != nil {
		return nil, err
	}
	var out models.SeasonStats
	path := "/player/" + strconv.Itoa(playerID) + "/season"
	if err := c.get(ctx, "player_season", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlayerRecent returns the player's recent game logs, most recent first.
func (c *Client) PlayerRecent(ctx context.Context, playerID, limit int) ([]models.GameLog, error) {
	if err := checkPlayerID(playerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}
	v := url.Values{"limit": {strconv.Itoa(limit)}}
	var out []models.GameLog
	path := "/player/" + strconv.Itoa(playerID) + "/recent"
	if err := c.get(ctx, "player_recent", path, v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlayerVsTeam returns the player's head-to-head line against a team.
func (c *Client) PlayerVsTeam(ctx context.Context, playerID int, teamCode string) (*models.VsTeamStats, error) {
	if err := checkPlayerID(playerID); err != nil {
		return nil, err
	}
	if err := checkTeamCode(teamCode); err != nil {
		return nil, err
	}
	var out models.VsTeamStats
	path := "/player/" + strconv.Itoa(playerID) + "/vs/" + teamCode
	if err := c.get(ctx, "player_vs_team", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlayerTrend returns the player's streak analysis for one stat against a
// threshold line.
func (c *Client) PlayerTrend(ctx context.Context, playerID int, stat string, threshold float64) (*models.TrendResult, error) {
	if err := checkPlayerID(playerID); err != nil {
		return nil, err
	}
	if stat == "" {
		return nil, fmt.Errorf("trend stat: %w", ErrInvalidArgument)
	}
	v := url.Values{
		"stat":      {stat},
		"threshold": {formatFloat(threshold)},
	}
	var out models.TrendResult
	path := "/player/" + strconv.Itoa(playerID) + "/trend"
	if err := c.get(ctx, "player_trend", path, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MatchPrediction returns the winner/spread prediction for a matchup. sc may
// be nil; when present its absence sets are sent as repeated query
// parameters.
func (c *Client) MatchPrediction(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.MatchPrediction, error) {
	if err := checkTeamCode(homeCode); err != nil {
		return nil, err
	}
	if err := checkTeamCode(awayCode); err != nil {
		return nil, err
	}
	v := url.Values{}
	if sc != nil {
		v = sc.QueryValues("home_missing_players", "away_missing_players")
	}
	var out models.MatchPrediction
	path := "/predict/match/" + homeCode + "/" + awayCode
	if err := c.get(ctx, "match_prediction", path, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FullMatchPrediction returns per-player projections for a matchup. Rest
// days are optional; nil omits the parameter.
func (c *Client) FullMatchPrediction(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*models.FullMatchPrediction, error) {
	v, path, err := c.fullMatchParams("/predict/full-match/", homeID, awayID, sc, homeRest, awayRest)
	if err != nil {
		return nil, err
	}
	var out models.FullMatchPrediction
	if err := c.get(ctx, "full_match_prediction", path, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FullMatchPredictionV2 is the v2 variant carrying interactive context.
func (c *Client) FullMatchPredictionV2(ctx context.Context, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (*models.MatchPredictionV2, error) {
	v, path, err := c.fullMatchParams("/predict/full-match-v2/", homeID, awayID, sc, homeRest, awayRest)
	if err != nil {
		return nil, err
	}
	var out models.MatchPredictionV2
	if err := c.get(ctx, "full_match_prediction_v2", path, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) fullMatchParams(prefix string, homeID, awayID models.FlexID, sc *scenario.Scenario, homeRest, awayRest *int) (url.Values, string, error) {
	if homeID.IsZero() || awayID.IsZero() {
		return nil, "", fmt.Errorf("team ids: %w", ErrInvalidArgument)
	}
	v := url.Values{}
	if sc != nil {
		v = sc.QueryValues("home_absent", "away_absent")
	}
	if homeRest != nil {
		v.Set("home_rest", strconv.Itoa(*homeRest))
	}
	if awayRest != nil {
		v.Set("away_rest", strconv.Itoa(*awayRest))
	}
	path := prefix + url.PathEscape(homeID.String()) + "/" + url.PathEscape(awayID.String())
	return v, path, nil
}

// MissingPlayerImpact returns the team's with/without splits for a player.
func (c *Client) MissingPlayerImpact(ctx context.Context, teamCode string, playerID int) (*models.MissingPlayerAnalysis, error) {
	if err := checkTeamCode(teamCode); err != nil {
		return nil, err
	}
	if err := checkPlayerID(playerID); err != nil {
		return nil, err
	}
	var out models.MissingPlayerAnalysis
	path := "/analytics/team/" + teamCode + "/missing-player/" + strconv.Itoa(playerID)
	if err := c.get(ctx, "missing_player_impact", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlayerPopup returns the recent-form + head-to-head + splits + fatigue
// bundle backing the player detail panel.
func (c *Client) PlayerPopup(ctx context.Context, playerID int, opponentID models.FlexID) (*models.PlayerDetailsHistory, error) {
	if err := checkPlayerID(playerID); err != nil {
		return nil, err
	}
	if opponentID.IsZero() {
		return nil, fmt.Errorf("opponent id: %w", ErrInvalidArgument)
	}
	var out models.PlayerDetailsHistory
	path := "/analysis/player/" + strconv.Itoa(playerID) + "/popup/" + url.PathEscape(opponentID.String())
	if err := c.get(ctx, "player_popup", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Calculator returns the upstream over/under analysis for a projection
// against a line.
func (c *Client) Calculator(ctx context.Context, playerID int, projection, line float64, statCategory string) (*models.CalculatorResult, error) {
	if err := checkPlayerID(playerID); err != nil {
		return nil, err
	}
	if statCategory == "" {
		return nil, fmt.Errorf("stat category: %w", ErrInvalidArgument)
	}
	v := url.Values{
		"player_id":     {strconv.Itoa(playerID)},
		"projection":    {formatFloat(projection)},
		"line":          {formatFloat(line)},
		"stat_category": {statCategory},
	}
	var out models.CalculatorResult
	if err := c.get(ctx, "calculator", "/predict/calculator", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShootingPrediction returns the shooting-battle breakdown by team ids.
func (c *Client) ShootingPrediction(ctx context.Context, homeID, awayID models.FlexID) (*models.ShootingPrediction, error) {
	if homeID.IsZero() || awayID.IsZero() {
		return nil, fmt.Errorf("team ids: %w", ErrInvalidArgument)
	}
	var out models.ShootingPrediction
	path := "/predict/shooting/" + url.PathEscape(homeID.String()) + "/" + url.PathEscape(awayID.String())
	if err := c.get(ctx, "shooting_prediction", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShootingSplits returns the shooting-battle breakdown by team codes, with
// optional absences.
func (c *Client) ShootingSplits(ctx context.Context, homeCode, awayCode string, sc *scenario.Scenario) (*models.ShootingPrediction, error) {
	if err := checkTeamCode(homeCode); err != nil {
		return nil, err
	}
	if err := checkTeamCode(awayCode); err != nil {
		return nil, err
	}
	v := url.Values{}
	if sc != nil {
		v = sc.QueryValues("home_absent", "away_absent")
	}
	var out models.ShootingPrediction
	path := "/predict/shooting-splits/" + homeCode + "/" + awayCode
	if err := c.get(ctx, "shooting_splits", path, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SavePrediction persists a player prediction snapshot.
func (c *Client) SavePrediction(ctx context.Context, payload *models.PredictionPayload) (*models.SaveResponse, error) {
	if payload == nil {
		return nil, fmt.Errorf("payload: %w", ErrInvalidArgument)
	}
	var out models.SaveResponse
	if err := c.post(ctx, "save_prediction", "/predictions/save", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveMatch persists a full match prediction snapshot.
func (c *Client) SaveMatch(ctx context.Context, req *models.MatchSaveRequest) (*models.SaveResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("request: %w", ErrInvalidArgument)
	}
	var out models.SaveResponse
	if err := c.post(ctx, "save_match", "/predictions/save-match", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictionHistory returns saved player prediction snapshots.
func (c *Client) PredictionHistory(ctx context.Context) ([]models.PlayerHistoryEntry, error) {
	var out []models.PlayerHistoryEntry
	if err := c.get(ctx, "prediction_history", "/predictions/history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MatchHistory returns saved match prediction snapshots.
func (c *Client) MatchHistory(ctx context.Context) ([]models.MatchHistoryEntry, error) {
	var out []models.MatchHistoryEntry
	if err := c.get(ctx, "match_history", "/predictions/match-history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping reports whether the upstream answers at all. Warming counts as
// reachable.
func (c *Client) Ping(ctx context.Context) error {
	var out models.GamesResponse
	err := c.get(ctx, "ping", "/games/30h", nil, &out)
	if err != nil && !IsWarming(err) {
		return err
	}
	return nil
}

// IsWarming reports whether err is the upstream cache-warming condition.
func IsWarming(err error) bool {
	return errors.Is(err, ErrUpstreamWarming)
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	upstreamRequests.WithLabelValues(op).Inc()
	start := time.Now()
	resp, err := c.http.Do(req)
	upstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamFailures.WithLabelValues(op).Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		upstreamFailures.WithLabelValues(op).Inc()
		return fmt.Errorf("%s: read body: %w", op, err)
	}

	if msg, warming := sniffError(data); warming {
		upstreamFailures.WithLabelValues(op).Inc()
		c.logger.Warnw("Upstream cache warming", "op", op, "status", resp.StatusCode, "message", msg)
		return fmt.Errorf("%s: %w", op, ErrUpstreamWarming)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamFailures.WithLabelValues(op).Inc()
		c.logger.Warnw("Upstream request failed", "op", op, "status", resp.StatusCode)
		return &RequestError{Op: op, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		upstreamFailures.WithLabelValues(op).Inc()
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func checkPlayerID(id int) error {
	if id <= 0 {
		return fmt.Errorf("player id %d: %w", id, ErrInvalidArgument)
	}
	return nil
}

func checkTeamCode(code string) error {
	if !teamCodeRe.MatchString(code) {
		return fmt.Errorf("team code %q: %w", code, ErrInvalidArgument)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
