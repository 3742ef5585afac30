package handlers

import (
	"net/http"

	"github.com/courtside/dashboard-api/internal/models"
)

// GetPlayerHistory returns saved player predictions scored against outcomes
// @Summary Player prediction history
// @Tags History
// @Produce json
// @Success 200 {array} logic.PlayerHistoryView "Scored history"
// @Router /api/v1/predictions/history [get]
func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	views, err := h.history.PlayerHistory(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, views)
}

// GetMatchHistory returns saved match predictions scored against outcomes
// @Summary Match prediction history
// @Tags History
// @Produce json
// @Success 200 {array} logic.MatchHistoryView "Scored history"
// @Router /api/v1/predictions/match-history [get]
func (h *Handler) GetMatchHistory(w http.ResponseWriter, r *http.Request) {
	views, err := h.history.MatchHistory(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, views)
}

// SavePrediction persists a player prediction snapshot
// @Summary Save a player prediction
// @Tags History
// @Accept json
// @Produce json
// @Param payload body models.PredictionPayload true "Prediction snapshot"
// @Success 201 {object} models.SaveResponse "Acknowledgement"
// @Failure 400 {object} map[string]string "Validation failure"
// @Router /api/v1/predictions/save [post]
func (h *Handler) SavePrediction(w http.ResponseWriter, r *http.Request) {
	var payload models.PredictionPayload
	if !h.decodeBody(w, r, &payload) {
		return
	}
	resp, err := h.history.SavePrediction(r.Context(), &payload)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusCreated, resp)
}

// SaveMatch persists a full match prediction snapshot
// @Summary Save a match prediction
// @Tags History
// @Accept json
// @Produce json
// @Param request body models.MatchSaveRequest true "Match snapshot"
// @Success 201 {object} models.SaveResponse "Acknowledgement"
// @Failure 400 {object} map[string]string "Validation failure"
// @Router /api/v1/predictions/save-match [post]
func (h *Handler) SaveMatch(w http.ResponseWriter, r *http.Request) {
	var req models.MatchSaveRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	resp, err := h.history.SaveMatch(r.Context(), &req)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusCreated, resp)
}

// saveFromPredictionRequest names the game to snapshot; the prediction is
// fetched server-side before posting, so the saved line always matches the
// current model output.
type saveFromPredictionRequest struct {
	Game models.TodayGame `json:"game" validate:"required"`
}

// SaveMatchFromPrediction fetches the current full prediction for a game and
// persists it in one chained flow
// @Summary Save a match prediction from the live model
// @Tags History
// @Accept json
// @Produce json
// @Param request body saveFromPredictionRequest true "Game to snapshot"
// @Success 201 {object} models.SaveResponse "Acknowledgement"
// @Router /api/v1/predictions/save-match/from-prediction [post]
func (h *Handler) SaveMatchFromPrediction(w http.ResponseWriter, r *http.Request) {
	var req saveFromPredictionRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Game.GameID == "" || req.Game.HomeTeamID.IsZero() || req.Game.AwayTeamID.IsZero() {
		h.errorResponse(w, http.StatusBadRequest, "game id and both team ids are required")
		return
	}
	sc, err := scenarioFromQuery(r, "home_absent", "away_absent")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.history.SaveMatchFromPrediction(r.Context(), req.Game, sc)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusCreated, resp)
}
