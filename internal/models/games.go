package models

// TodayGame is one scheduled or live game from the schedule feed. Created by
// the schedule poll, read-only afterwards.
type TodayGame struct {
	GameID     string `json:"gameId"`
	HomeTeam   string `json:"homeTeam"`
	AwayTeam   string `json:"awayTeam"`
	HomeTeamID FlexID `json:"homeTeamId,omitempty"`
	AwayTeamID FlexID `json:"awayTeamId,omitempty"`
	Time       string `json:"time"`
	HomeScore  *int   `json:"homeScore,omitempty"`
	AwayScore  *int   `json:"awayScore,omitempty"`
	Status     string `json:"status"`
	GameDate   string `json:"gameDate"`
	IsLive     bool   `json:"isLive"`
}

// GamesResponse is the envelope of the /games/30h feed.
type GamesResponse struct {
	Success    bool        `json:"success"`
	Method     string      `json:"method"`
	TotalGames int         `json:"total_games"`
	Games      []TodayGame `json:"games"`
}
