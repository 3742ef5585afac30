// Package stats is the derived-statistics engine: pure, single-pass
// computations over already-fetched stat lines. Nothing here mutates its
// input, and "no data" is always an explicit result, never a zero line.
package stats

import (
	"github.com/courtside/dashboard-api/internal/models"
)

// StatAverages is the arithmetic mean of each tracked field over a window of
// games. Games records how many games the window actually covered.
type StatAverages struct {
	PTS   float64 `json:"PTS"`
	REB   float64 `json:"REB"`
	AST   float64 `json:"AST"`
	PRA   float64 `json:"PRA"`
	PA    float64 `json:"PA"`
	PR    float64 `json:"PR"`
	Games int     `json:"games"`
}

// RollingAverage averages the first window entries of games, each field
// independently. The caller guarantees most-recent-first ordering. Fewer
// games than the window averages what is available; an empty slice returns
// ok=false and the caller must treat the result as "no data", not zero.
func RollingAverage(games []models.GameLog, window int) (StatAverages, bool) {
	if len(games) == 0 || window <= 0 {
		return StatAverages{}, false
	}
	if window > len(games) {
		window = len(games)
	}

	var avg StatAverages
	for _, g := range games[:window] {
		avg.PTS += g.PTS
		avg.REB += g.REB
		avg.AST += g.AST
		avg.PRA += g.PRA
		avg.PA += g.PA
		avg.PR += g.PR
	}
	n := float64(window)
	avg.PTS /= n
	avg.REB /= n
	avg.AST /= n
	avg.PRA /= n
	avg.PA /= n
	avg.PR /= n
	avg.Games = window
	return avg, true
}

// ComboLine holds the combined totals derived from a base box line.
type ComboLine struct {
	PTS float64 `json:"PTS"`
	REB float64 `json:"REB"`
	AST float64 `json:"AST"`
	PRA float64 `json:"PRA"`
	PA  float64 `json:"PA"`
	PR  float64 `json:"PR"`
	AR  float64 `json:"AR"`
}

// Combo computes the combined totals from base counting stats. The sums are
// exact; combo fields arriving in payloads must match these.
func Combo(pts, reb, ast float64) ComboLine {
	return ComboLine{
		PTS: pts,
		REB: reb,
		AST: ast,
		PRA: pts + reb + ast,
		PA:  pts + ast,
		PR:  pts + reb,
		AR:  ast + reb,
	}
}
