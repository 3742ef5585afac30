package handlers

import (
	"net/http"
)

// GetGames returns the upcoming and recent games board
// @Summary List games
// @Description Upcoming and recent games over a 30 hour window
// @Tags Games
// @Produce json
// @Success 200 {object} models.GamesResponse "Games board"
// @Failure 503 {object} map[string]string "Upstream warming"
// @Router /api/v1/games [get]
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	board, err := h.schedule.Board(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, board)
}
