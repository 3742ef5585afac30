package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUpstreamWarming marks the upstream's cache-not-ready condition. Callers
// should retry later instead of treating it as terminal.
var ErrUpstreamWarming = errors.New("upstream cache warming")

// ErrInvalidArgument marks a request withheld because a required identifier
// was missing or malformed. No HTTP request is issued.
var ErrInvalidArgument = errors.New("invalid argument")

// RequestError is a non-2xx upstream response not otherwise classified.
type RequestError struct {
	Op     string
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("upstream %s: status %d", e.Op, e.Status)
}

// warmingMarkers are the error texts the upstream emits while its own cache
// is still loading. The French variant is the one the service actually sends.
var warmingMarkers = []string{
	"cache non chargé",
	"cache warming",
}

type errEnvelope struct {
	Error string `json:"error"`
}

// sniffError inspects a response body for the upstream's error envelope.
// Returns the error text ("" when the body carries none) and whether it is
// the warming marker.
func sniffError(body []byte) (string, bool) {
	var env errEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error == "" {
		return "", false
	}
	lower := strings.ToLower(env.Error)
	for _, marker := range warmingMarkers {
		if strings.Contains(lower, marker) {
			return env.Error, true
		}
	}
	return env.Error, false
}
