package models

// Player is an upstream roster/search entry. Immutable once fetched;
// referenced by id from stat lines and predictions.
type Player struct {
	ID        int    `json:"id"`
	FullName  string `json:"full_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
	Team      string `json:"team,omitempty"`
}

// SeasonStats is a per-season averaged stat line. The combo fields
// (PRA/PA/PR/AR) are part of the payload shape and must equal the sum of
// their components; ComboConsistent checks that without repairing anything.
type SeasonStats struct {
	PlayerID int     `json:"PLAYER_ID"`
	GP       float64 `json:"GP"`
	MIN      float64 `json:"MIN"`
	PTS      float64 `json:"PTS"`
	AST      float64 `json:"AST"`
	REB      float64 `json:"REB"`
	STL      float64 `json:"STL"`
	BLK      float64 `json:"BLK"`
	FG3M     float64 `json:"FG3M"`
	PRA      float64 `json:"PRA"`
	PA       float64 `json:"PA"`
	PR       float64 `json:"PR"`
	AR       float64 `json:"AR"`
}

const comboTolerance = 1e-9

func comboEqual(got, want float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= comboTolerance
}

// ComboConsistent reports whether every combo field equals the exact sum of
// its named components.
func (s SeasonStats) ComboConsistent() bool {
	return comboEqual(s.PRA, s.PTS+s.REB+s.AST) &&
		comboEqual(s.PA, s.PTS+s.AST) &&
		comboEqual(s.PR, s.PTS+s.REB) &&
		comboEqual(s.AR, s.AST+s.REB)
}

// GameLog is one game's stat line, most-recent-first in upstream responses.
type GameLog struct {
	GameDate string  `json:"GAME_DATE"`
	Matchup  string  `json:"MATCHUP"`
	WL       string  `json:"WL"`
	PTS      float64 `json:"PTS"`
	REB      float64 `json:"REB"`
	AST      float64 `json:"AST"`
	PRA      float64 `json:"PRA"`
	PA       float64 `json:"PA"`
	PR       float64 `json:"PR"`
}

func (g GameLog) ComboConsistent() bool {
	return comboEqual(g.PRA, g.PTS+g.REB+g.AST) &&
		comboEqual(g.PA, g.PTS+g.AST) &&
		comboEqual(g.PR, g.PTS+g.REB)
}

// VsTeamStats is the head-to-head average line against one opponent.
type VsTeamStats struct {
	GP       float64 `json:"GP"`
	PTS      float64 `json:"PTS"`
	AST      float64 `json:"AST"`
	REB      float64 `json:"REB"`
	PRA      float64 `json:"PRA"`
	PA       float64 `json:"PA"`
	PR       float64 `json:"PR"`
	AR       float64 `json:"AR"`
	STL      float64 `json:"STL"`
	BLK      float64 `json:"BLK"`
	Opponent string  `json:"OPPONENT,omitempty"`
}

// TrendResult is the streak analysis for one stat/threshold pair.
type TrendResult struct {
	CurrentActiveStreak int     `json:"current_active_streak"`
	TotalHits           int     `json:"total_hits"`
	HitRatePercent      float64 `json:"hit_rate_percent"`
	Message             string  `json:"message"`
}

// StatLine carries optional per-stat values for splits. Absent fields mean
// "unknown", never zero.
type StatLine struct {
	PTS *float64 `json:"PTS,omitempty"`
	REB *float64 `json:"REB,omitempty"`
	AST *float64 `json:"AST,omitempty"`
	GP  *float64 `json:"GP,omitempty"`
}

// Splits holds home/away averaged lines; either side may be missing.
type Splits struct {
	Home *StatLine `json:"home"`
	Away *StatLine `json:"away"`
}

// Fatigue is the upstream rest/fatigue readout for a player.
type Fatigue struct {
	LastMin   float64 `json:"last_min"`
	DaysRest  int     `json:"days_rest"`
	Status    string  `json:"status"`
	ColorCode string  `json:"color_code"`
}

// RecentFormAvg is the upstream-computed recent-form average bundle.
// STL/BLK/PA/PR/MIN/GP are optional depending on the upstream sample.
type RecentFormAvg struct {
	PTS float64  `json:"PTS"`
	REB float64  `json:"REB"`
	AST float64  `json:"AST"`
	PRA float64  `json:"PRA"`
	STL *float64 `json:"STL,omitempty"`
	BLK *float64 `json:"BLK,omitempty"`
	PA  *float64 `json:"PA,omitempty"`
	PR  *float64 `json:"PR,omitempty"`
	MIN *float64 `json:"MIN,omitempty"`
	GP  *float64 `json:"GP,omitempty"`
}

// H2HAvg mirrors RecentFormAvg for head-to-head history; GP of zero means no
// matchup history exists.
type H2HAvg struct {
	GP  float64  `json:"GP"`
	PTS float64  `json:"PTS"`
	REB float64  `json:"REB"`
	AST float64  `json:"AST"`
	PRA float64  `json:"PRA"`
	PR  float64  `json:"PR"`
	PA  float64  `json:"PA"`
	AR  float64  `json:"AR"`
	STL *float64 `json:"STL,omitempty"`
	BLK *float64 `json:"BLK,omitempty"`
}

// SeasonTrend is the season hit-rate readout shown in the player popup.
type SeasonTrend struct {
	Threshold float64 `json:"threshold"`
	HitRate   float64 `json:"hit_rate"`
	Message   string  `json:"message"`
}

// PlayerDetailsHistory bundles recent form, head-to-head, splits and fatigue
// for the player detail panel.
type PlayerDetailsHistory struct {
	RecentFormAvg  *RecentFormAvg `json:"recent_form_avg"`
	H2HAvg         *H2HAvg        `json:"h2h_avg"`
	SeasonTrend    *SeasonTrend   `json:"season_trend,omitempty"`
	Splits         *Splits        `json:"splits,omitempty"`
	Fatigue        *Fatigue       `json:"fatigue,omitempty"`
	MatchupContext string         `json:"matchup_context,omitempty"`
}

// TeamSplitStats describes team performance with or without a given player.
type TeamSplitStats struct {
	Games         int     `json:"games"`
	WinPercentage float64 `json:"win_percentage"`
	PPG           float64 `json:"ppg"`
	Status        string  `json:"status"`
}

// MissingPlayerAnalysis is the with/without impact readout for one player.
type MissingPlayerAnalysis struct {
	PlayerID     int            `json:"player_id"`
	PlayerName   string         `json:"player_name"`
	Team         string         `json:"team"`
	StatsWith    TeamSplitStats `json:"stats_with"`
	StatsWithout TeamSplitStats `json:"stats_without"`
}
