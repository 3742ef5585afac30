// Package scenario tracks the per-side missing-player sets used to vary
// what-if prediction requests. One Scenario belongs to one prediction
// session; it is never persisted.
package scenario

import (
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/courtside/dashboard-api/internal/models"
)

// Side identifies which roster an absence belongs to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

var (
	ErrUnknownSide = errors.New("scenario: unknown side")
	// ErrCrossSide rejects adding a player id already held by the other
	// side. Ids are scoped to one roster and never cross-added.
	ErrCrossSide = errors.New("scenario: player already absent on the other side")
)

func (s Side) other() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

func (s Side) valid() bool { return s == SideHome || s == SideAway }

// Scenario holds the absence sets for one prediction session. The zero
// value is ready to use.
type Scenario struct {
	mu    sync.Mutex
	sides map[Side]map[int]models.Player
}

func (sc *Scenario) set(side Side) map[int]models.Player {
	if sc.sides == nil {
		sc.sides = make(map[Side]map[int]models.Player, 2)
	}
	m, ok := sc.sides[side]
	if !ok {
		m = make(map[int]models.Player)
		sc.sides[side] = m
	}
	return m
}

// Add marks a player absent on the given side. Adding an id already
// present on that side is a no-op; adding one present on the other side
// is rejected with ErrCrossSide.
func (sc *Scenario) Add(side Side, p models.Player) error {
	if !side.valid() {
		return ErrUnknownSide
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if _, taken := sc.set(side.other())[p.ID]; taken {
		return ErrCrossSide
	}
	sc.set(side)[p.ID] = p
	return nil
}

// Remove clears a player id from the given side. Removing an id that is
// not present is a no-op.
func (sc *Scenario) Remove(side Side, id int) {
	if !side.valid() {
		return
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	delete(sc.set(side), id)
}

// Clear drops both sides, ending the session's what-if state.
func (sc *Scenario) Clear() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.sides = nil
}

// Contains reports whether the id is absent on the given side.
func (sc *Scenario) Contains(side Side, id int) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	_, ok := sc.set(side)[id]
	return ok
}

// IDs returns the side's absent player ids sorted ascending. Sorting keeps
// query strings and cache keys deterministic for what is semantically a set.
func (sc *Scenario) IDs(side Side) []int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.idsLocked(side)
}

func (sc *Scenario) idsLocked(side Side) []int {
	m := sc.set(side)
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Players returns the side's absent players in id order.
func (sc *Scenario) Players(side Side) []models.Player {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	m := sc.set(side)
	out := make([]models.Player, 0, len(m))
	for _, id := range sc.idsLocked(side) {
		out = append(out, m[id])
	}
	return out
}

// Len returns the total number of absences across both sides.
func (sc *Scenario) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.set(SideHome)) + len(sc.set(SideAway))
}

// QueryValues renders both sides as repeated query parameters under the
// given keys, matching the upstream's set-semantics contract.
func (sc *Scenario) QueryValues(homeKey, awayKey string) url.Values {
	v := url.Values{}
	for _, id := range sc.IDs(SideHome) {
		v.Add(homeKey, strconv.Itoa(id))
	}
	for _, id := range sc.IDs(SideAway) {
		v.Add(awayKey, strconv.Itoa(id))
	}
	return v
}

// Key is a stable cache-key fragment for the scenario's contents. Equal
// sets produce equal keys regardless of insertion order.
func (sc *Scenario) Key() string {
	var b strings.Builder
	b.WriteString("h=")
	for i, id := range sc.IDs(SideHome) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteString("|a=")
	for i, id := range sc.IDs(SideAway) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
