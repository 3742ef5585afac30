package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/dashboard-api/internal/models"
)

// SearchPlayers searches players by name fragment
// @Summary Search players
// @Tags Players
// @Produce json
// @Param query query string true "Name fragment"
// @Success 200 {array} models.Player "Matching players"
// @Router /api/v1/players/search [get]
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if q == "" {
		h.errorResponse(w, http.StatusBadRequest, "query parameter is required")
		return
	}
	players, err := h.players.Search(r.Context(), q)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, players)
}

// GetRoster returns a team's roster
// @Summary Team roster
// @Tags Players
// @Produce json
// @Param teamId path string true "Team id"
// @Param panel query string false "Panel name for stale-response discard"
// @Success 200 {array} models.Player "Roster"
// @Failure 409 {object} map[string]string "Superseded request"
// @Router /api/v1/team/{teamId}/roster [get]
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	teamID := models.FlexID(chi.URLParam(r, "teamId"))
	if teamID.IsZero() {
		h.errorResponse(w, http.StatusBadRequest, "team id is required")
		return
	}
	key := "roster:" + teamID.String()
	h.registerPanel(r, key)

	roster, err := h.players.Roster(r.Context(), teamID)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.withPanelGuard(w, r, key, func() {
		h.jsonResponse(w, http.StatusOK, roster)
	})
}

// GetPlayerSummary returns season, recent and derived averages for a player
// @Summary Player summary
// @Tags Players
// @Produce json
// @Param playerId path int true "Player id"
// @Param limit query int false "Recent games window (default 10)"
// @Param vs query string false "Opponent team code for head-to-head"
// @Success 200 {object} logic.PlayerSummary "Summary"
// @Router /api/v1/player/{playerId}/summary [get]
func (h *Handler) GetPlayerSummary(w http.ResponseWriter, r *http.Request) {
	playerID, ok := h.intParam(r, "playerId")
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "player id must be a positive integer")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	summary, err := h.players.Summary(r.Context(), playerID, limit, r.URL.Query().Get("vs"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, summary)
}

// GetPlayerPopup returns the player detail bundle against an opponent
// @Summary Player popup bundle
// @Tags Players
// @Produce json
// @Param playerId path int true "Player id"
// @Param opponentId path string true "Opponent team id"
// @Success 200 {object} models.PlayerDetailsHistory "Detail bundle"
// @Router /api/v1/player/{playerId}/popup/{opponentId} [get]
func (h *Handler) GetPlayerPopup(w http.ResponseWriter, r *http.Request) {
	playerID, ok := h.intParam(r, "playerId")
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "player id must be a positive integer")
		return
	}
	opponentID := models.FlexID(chi.URLParam(r, "opponentId"))
	if opponentID.IsZero() {
		h.errorResponse(w, http.StatusBadRequest, "opponent id is required")
		return
	}

	popup, err := h.players.Popup(r.Context(), playerID, opponentID)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, popup)
}

// GetPlayerTrend returns streak analysis for a stat/threshold pair
// @Summary Player trend
// @Tags Players
// @Produce json
// @Param playerId path int true "Player id"
// @Param stat query string true "Stat category"
// @Param threshold query number true "Threshold line"
// @Success 200 {object} models.TrendResult "Trend"
// @Router /api/v1/player/{playerId}/trend [get]
func (h *Handler) GetPlayerTrend(w http.ResponseWriter, r *http.Request) {
	playerID, ok := h.intParam(r, "playerId")
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "player id must be a positive integer")
		return
	}
	stat := r.URL.Query().Get("stat")
	if stat == "" {
		h.errorResponse(w, http.StatusBadRequest, "stat parameter is required")
		return
	}
	threshold, err := strconv.ParseFloat(r.URL.Query().Get("threshold"), 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "threshold must be a number")
		return
	}

	trend, err := h.players.Trend(r.Context(), playerID, stat, threshold)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, trend)
}

// GetMissingImpact returns the team's with/without splits for a player
// @Summary Missing player impact
// @Tags Analytics
// @Produce json
// @Param teamCode path string true "Team code"
// @Param playerId path int true "Player id"
// @Success 200 {object} logic.MissingPlayerImpact "Impact"
// @Router /api/v1/analytics/team/{teamCode}/missing-player/{playerId} [get]
func (h *Handler) GetMissingImpact(w http.ResponseWriter, r *http.Request) {
	playerID, ok := h.intParam(r, "playerId")
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "player id must be a positive integer")
		return
	}
	impact, err := h.players.MissingImpact(r.Context(), chi.URLParam(r, "teamCode"), playerID)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, impact)
}
