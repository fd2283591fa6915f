package server

// EventPayload is the jsonb body mirrored into the game_events table.
type EventPayload struct {
	GameID  string `json:"game_id,omitempty"`
	Side    string `json:"side,omitempty"`
	Action  string `json:"action,omitempty"`
	Points  int    `json:"points,omitempty"`
	Quarter int    `json:"quarter,omitempty"`
}
