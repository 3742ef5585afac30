package query

import "sync"

// PanelGuard implements last-request-wins per display panel. Each panel
// registers the key of its latest request; a resolved result is applied only
// while its key is still the latest. Superseded flights are not cancelled at
// the transport level, their results are simply discarded on arrival.
type PanelGuard struct {
	mu     sync.Mutex
	latest map[string]string
}

func NewPanelGuard() *PanelGuard {
	return &PanelGuard{latest: make(map[string]string)}
}

// Register makes key the panel's current request, superseding any earlier one.
func (g *PanelGuard) Register(panel, key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latest[panel] = key
}

// Current reports whether key is still the panel's latest request.
func (g *PanelGuard) Current(panel, key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.latest[panel] == key
}

// Apply runs fn only if key is still the panel's latest request, reporting
// whether it ran. The lock is held across fn so a concurrent Register orders
// strictly before or after the application.
func (g *PanelGuard) Apply(panel, key string, fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.latest[panel] != key {
		return false
	}
	fn()
	return true
}
