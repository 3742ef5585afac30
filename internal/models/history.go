package models

// Prediction record statuses. The pending→completed transition is performed by
// the upstream when it detects game completion; this service only reads it.
const (
	RecordPending   = "pending"
	RecordCompleted = "completed"

	MatchPending  = "PENDING"
	MatchFinished = "FINISHED"
)

// PredictionPayload is the snapshot posted to /predictions/save.
type PredictionPayload struct {
	PlayerID       int                `json:"player_id" validate:"required,gt=0"`
	PlayerName     string             `json:"player_name" validate:"required"`
	OpponentID     string             `json:"opponent_id" validate:"required"`
	GameDate       string             `json:"game_date" validate:"required"`
	PredictedStats map[string]float64 `json:"predicted_stats" validate:"required,min=1"`
	Context        string             `json:"context"`
}

// PredictionRecord is a saved player prediction, later compared against the
// real line once the game finishes.
type PredictionRecord struct {
	ID             *int               `json:"id,omitempty"`
	PlayerID       int                `json:"player_id"`
	PlayerName     string             `json:"player_name"`
	OpponentID     string             `json:"opponent_id"`
	GameDate       string             `json:"game_date"`
	PredictedStats map[string]float64 `json:"predicted_stats"`
	Context        string             `json:"context"`
	CreatedAt      string             `json:"created_at,omitempty"`
	ActualStats    map[string]float64 `json:"actual_stats,omitempty"`
	Status         string             `json:"status"`
}

// PlayerStatSave is one player's projected line inside a match save request.
type PlayerStatSave struct {
	PlayerID       int     `json:"player_id" validate:"required,gt=0"`
	Name           string  `json:"name" validate:"required"`
	Team           string  `json:"team" validate:"required"`
	PredictedStats SaveBox `json:"predicted_stats" validate:"required"`
}

// SaveBox is the fixed projected box line persisted with a match save.
type SaveBox struct {
	PTS float64 `json:"PTS"`
	REB float64 `json:"REB"`
	AST float64 `json:"AST"`
	MIN float64 `json:"MIN"`
	PRA float64 `json:"PRA"`
}

// MatchSaveRequest is the snapshot posted to /predictions/save-match.
type MatchSaveRequest struct {
	GameID           string           `json:"game_id" validate:"required"`
	GameDate         string           `json:"game_date" validate:"required"`
	HomeTeam         string           `json:"home_team" validate:"required"`
	HomeTeamID       int              `json:"home_team_id" validate:"required,gt=0"`
	AwayTeam         string           `json:"away_team" validate:"required"`
	AwayTeamID       int              `json:"away_team_id" validate:"required,gt=0"`
	HomePlayers      []PlayerStatSave `json:"home_players" validate:"required,dive"`
	AwayPlayers      []PlayerStatSave `json:"away_players" validate:"required,dive"`
	WinnerPrediction string           `json:"winner_prediction" validate:"required"`
}

// RealStats is a player's real box line after the game. MIN arrives as a
// number or a clock string depending on the upstream data source.
type RealStats struct {
	PTS float64   `json:"PTS"`
	REB float64   `json:"REB"`
	AST float64   `json:"AST"`
	MIN FlexFloat `json:"MIN"`
}

// PlayerHistoryEntry pairs a saved projection with the real line, when known.
// RealStats stays nil until the upstream completes the record; nil means
// "unknown", never a zero line.
type PlayerHistoryEntry struct {
	PlayerID       int        `json:"player_id"`
	Name           string     `json:"name"`
	Team           string     `json:"team"`
	PredictedStats SaveBox    `json:"predicted_stats"`
	RealStats      *RealStats `json:"real_stats,omitempty"`
}

// MatchHistoryEntry is a saved match prediction snapshot.
type MatchHistoryEntry struct {
	GameID        string               `json:"game_id"`
	GameDate      string               `json:"game_date"`
	HomeTeam      string               `json:"home_team"`
	AwayTeam      string               `json:"away_team"`
	HomeTeamID    int                  `json:"home_team_id"`
	AwayTeamID    int                  `json:"away_team_id"`
	HomePlayers   []PlayerHistoryEntry `json:"home_players"`
	AwayPlayers   []PlayerHistoryEntry `json:"away_players"`
	Status        string               `json:"status"`
	AccuracyScore *float64             `json:"accuracy_score,omitempty"`
	RealWinner    string               `json:"real_winner,omitempty"`
	SavedAt       string               `json:"saved_at"`
}

// SaveResponse acknowledges a save call.
type SaveResponse struct {
	Success bool   `json:"success"`
	ID      *int   `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}
