package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/courtside/dashboard-api/internal/models"
	"github.com/courtside/dashboard-api/internal/scenario"
	"github.com/courtside/dashboard-api/internal/upstream"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{
		"cache":    h.cache.Ping(ctx) == nil,
		"upstream": h.upstream.Ping(ctx) == nil,
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps the error taxonomy onto status codes: warming to 503
// with a retry hint, withheld/invalid input to 400, upstream transport to
// 502, anything else to 500.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	var reqErr *upstream.RequestError
	switch {
	case errors.Is(err, upstream.ErrUpstreamWarming):
		w.Header().Set("Retry-After", "30")
		h.jsonResponse(w, http.StatusServiceUnavailable, map[string]interface{}{
			"error":       "prediction service cache is warming",
			"retry_after": 30,
		})
	case errors.Is(err, upstream.ErrInvalidArgument), errors.As(err, &verrs):
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &reqErr):
		h.errorResponse(w, http.StatusBadGateway, reqErr.Error())
	default:
		h.logger.Errorw("Request failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) intParam(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// scenarioFromQuery rebuilds the absence sets from repeated query
// parameters. Duplicates collapse to one occurrence; a cross-side id is a
// caller error.
func scenarioFromQuery(r *http.Request, homeKey, awayKey string) (*scenario.Scenario, error) {
	q := r.URL.Query()
	if len(q[homeKey]) == 0 && len(q[awayKey]) == 0 {
		return nil, nil
	}
	var sc scenario.Scenario
	for side, key := range map[scenario.Side]string{
		scenario.SideHome: homeKey,
		scenario.SideAway: awayKey,
	} {
		for _, raw := range q[key] {
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				return nil, errors.New(key + ": invalid player id " + strconv.Quote(raw))
			}
			if err := sc.Add(side, models.Player{ID: id}); err != nil {
				return nil, err
			}
		}
	}
	return &sc, nil
}

// withPanelGuard applies last-request-wins when the caller names a panel.
// A response arriving for a superseded key is answered 409 so the caller
// drops it instead of rendering stale data.
func (h *Handler) withPanelGuard(w http.ResponseWriter, r *http.Request, key string, respond func()) {
	panel := r.URL.Query().Get("panel")
	if panel == "" {
		respond()
		return
	}
	if !h.guard.Apply(panel, key, respond) {
		h.errorResponse(w, http.StatusConflict, "superseded by a newer request")
	}
}

func (h *Handler) registerPanel(r *http.Request, key string) {
	if panel := r.URL.Query().Get("panel"); panel != "" {
		h.guard.Register(panel, key)
	}
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
