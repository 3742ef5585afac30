package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/dashboard-api/internal/models"
)

// GetMatchPrediction returns the team-level prediction for a matchup
// @Summary Match prediction
// @Description Winner, spread and math breakdown, optionally under a what-if absence scenario
// @Tags Predictions
// @Produce json
// @Param homeCode path string true "Home team code"
// @Param awayCode path string true "Away team code"
// @Param home_missing_players query []int false "Absent home player ids (repeated, set semantics)"
// @Param away_missing_players query []int false "Absent away player ids (repeated, set semantics)"
// @Success 200 {object} logic.MatchPredictionView "Prediction"
// @Failure 503 {object} map[string]string "Upstream warming"
// @Router /api/v1/predict/match/{homeCode}/{awayCode} [get]
func (h *Handler) GetMatchPrediction(w http.ResponseWriter, r *http.Request) {
	sc, err := scenarioFromQuery(r, "home_missing_players", "away_missing_players")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := h.matches.Predict(r.Context(), chi.URLParam(r, "homeCode"), chi.URLParam(r, "awayCode"), sc)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetFullPrediction returns per-player projections for a matchup
// @Summary Full match prediction
// @Tags Predictions
// @Produce json
// @Param homeId path string true "Home team id"
// @Param awayId path string true "Away team id"
// @Param home_absent query []int false "Absent home player ids (repeated)"
// @Param away_absent query []int false "Absent away player ids (repeated)"
// @Param home_rest query int false "Home days of rest"
// @Param away_rest query int false "Away days of rest"
// @Success 200 {object} logic.FullMatchView "Per-player projections"
// @Router /api/v1/predict/full-match/{homeId}/{awayId} [get]
func (h *Handler) GetFullPrediction(w http.ResponseWriter, r *http.Request) {
	homeID := models.FlexID(chi.URLParam(r, "homeId"))
	awayID := models.FlexID(chi.URLParam(r, "awayId"))
	sc, err := scenarioFromQuery(r, "home_absent", "away_absent")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	homeRest, awayRest, err := restParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.matches.FullPrediction(r.Context(), homeID, awayID, sc, homeRest, awayRest)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetFullPredictionV2 returns the v2 projection bundle with the match header
// @Summary Full match prediction (v2)
// @Tags Predictions
// @Produce json
// @Param homeId path string true "Home team id"
// @Param awayId path string true "Away team id"
// @Success 200 {object} logic.FullMatchViewV2 "Projections with match header"
// @Router /api/v1/predict/full-match-v2/{homeId}/{awayId} [get]
func (h *Handler) GetFullPredictionV2(w http.ResponseWriter, r *http.Request) {
	homeID := models.FlexID(chi.URLParam(r, "homeId"))
	awayID := models.FlexID(chi.URLParam(r, "awayId"))
	sc, err := scenarioFromQuery(r, "home_absent", "away_absent")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	homeRest, awayRest, err := restParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.matches.FullPredictionV2(r.Context(), homeID, awayID, sc, homeRest, awayRest)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetShooting returns the shooting-battle breakdown by team ids
// @Summary Shooting prediction
// @Tags Predictions
// @Produce json
// @Param homeId path string true "Home team id"
// @Param awayId path string true "Away team id"
// @Success 200 {object} models.ShootingPrediction "Shooting breakdown"
// @Router /api/v1/predict/shooting/{homeId}/{awayId} [get]
func (h *Handler) GetShooting(w http.ResponseWriter, r *http.Request) {
	view, err := h.matches.Shooting(r.Context(),
		models.FlexID(chi.URLParam(r, "homeId")),
		models.FlexID(chi.URLParam(r, "awayId")))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetShootingSplits returns the shooting breakdown by team codes with absences
// @Summary Shooting prediction with splits
// @Tags Predictions
// @Produce json
// @Param homeCode path string true "Home team code"
// @Param awayCode path string true "Away team code"
// @Success 200 {object} models.ShootingPrediction "Shooting breakdown"
// @Router /api/v1/predict/shooting-splits/{homeCode}/{awayCode} [get]
func (h *Handler) GetShootingSplits(w http.ResponseWriter, r *http.Request) {
	sc, err := scenarioFromQuery(r, "home_absent", "away_absent")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := h.matches.ShootingSplits(r.Context(),
		chi.URLParam(r, "homeCode"), chi.URLParam(r, "awayCode"), sc)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetCalculator returns the over/under probability readout for a line
// @Summary Over/under calculator
// @Tags Predictions
// @Produce json
// @Param player_id query int true "Player id"
// @Param projection query number true "Projected value"
// @Param line query number true "Betting line"
// @Param stat_category query string true "Stat category"
// @Success 200 {object} models.CalculatorResult "Probability readout"
// @Router /api/v1/predict/calculator [get]
func (h *Handler) GetCalculator(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	playerID, err := strconv.Atoi(q.Get("player_id"))
	if err != nil || playerID <= 0 {
		h.errorResponse(w, http.StatusBadRequest, "player_id must be a positive integer")
		return
	}
	projection, err := strconv.ParseFloat(q.Get("projection"), 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "projection must be a number")
		return
	}
	line, err := strconv.ParseFloat(q.Get("line"), 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "line must be a number")
		return
	}
	category := q.Get("stat_category")
	if category == "" {
		h.errorResponse(w, http.StatusBadRequest, "stat_category is required")
		return
	}

	result, err := h.calculator.Analyze(r.Context(), playerID, projection, line, category)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, result)
}

func restParams(r *http.Request) (home, away *int, err error) {
	parse := func(key string) (*int, error) {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, &restParamError{key: key}
		}
		return &v, nil
	}
	if home, err = parse("home_rest"); err != nil {
		return nil, nil, err
	}
	if away, err = parse("away_rest"); err != nil {
		return nil, nil, err
	}
	return home, away, nil
}

type restParamError struct{ key string }

func (e *restParamError) Error() string {
	return e.key + " must be a non-negative integer"
}
