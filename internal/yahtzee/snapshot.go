package yahtzee

import (
	"encoding/json"
	"errors"
	"time"
)

// Snapshot is the autosave payload for one session.
type Snapshot struct {
	Players       []Player                    `json:"players"`
	Scores        map[string]map[Category]int `json:"scores"`
	CurrentTurn   int                         `json:"current_turn"`
	IsGameStarted bool                        `json:"is_game_started"`
	IsGameOver    bool                        `json:"is_game_over"`
	SavedAt       time.Time                   `json:"saved_at"`
}

// Snapshot captures the current state for autosave.
func (g *Game) Snapshot(at time.Time) Snapshot {
	players := append([]Player{}, g.Players...)
	scores := make(map[string]map[Category]int, len(g.Scores))
	for playerID, entries := range g.Scores {
		copied := make(map[Category]int, len(entries))
		for category, value := range entries {
			copied[category] = value
		}
		scores[playerID] = copied
	}
	return Snapshot{
		Players:       players,
		Scores:        scores,
		CurrentTurn:   g.CurrentTurn,
		IsGameStarted: g.IsGameStarted,
		IsGameOver:    g.IsGameOver,
		SavedAt:       at.UTC(),
	}
}

// Load replaces the whole state from a snapshot. Loading the same snapshot
// twice yields the same state. Invalid snapshots are rejected and leave the
// state untouched.
func (g *Game) Load(snapshot Snapshot) error {
	if err := snapshot.validate(); err != nil {
		return err
	}
	g.Players = append([]Player{}, snapshot.Players...)
	g.Scores = make(map[string]map[Category]int, len(snapshot.Scores))
	for playerID, entries := range snapshot.Scores {
		copied := make(map[Category]int, len(entries))
		for category, value := range entries {
			copied[category] = value
		}
		g.Scores[playerID] = copied
	}
	g.CurrentTurn = snapshot.CurrentTurn
	g.IsGameStarted = snapshot.IsGameStarted
	g.IsGameOver = snapshot.IsGameOver
	g.ensureScoreMaps()
	return nil
}

// DecodeSnapshot parses an autosave payload. Corrupt payloads return an error
// so the caller can discard them and fall back to a fresh session.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, err
	}
	if err := snapshot.validate(); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}

func (s Snapshot) validate() error {
	seen := make(map[string]struct{}, len(s.Players))
	for _, player := range s.Players {
		if player.ID == "" {
			return errors.New("snapshot player missing id")
		}
		if _, dup := seen[player.ID]; dup {
			return errors.New("snapshot has duplicate player ids")
		}
		seen[player.ID] = struct{}{}
	}
	if len(s.Players) == 0 {
		if s.CurrentTurn != 0 {
			return errors.New("snapshot turn out of range")
		}
	} else if s.CurrentTurn < 0 || s.CurrentTurn >= len(s.Players) {
		return errors.New("snapshot turn out of range")
	}
	for playerID, entries := range s.Scores {
		if _, ok := seen[playerID]; !ok {
			return errors.New("snapshot scores reference unknown player")
		}
		for category := range entries {
			if !ValidCategory(string(category)) {
				return errors.New("snapshot has unknown category")
			}
		}
	}
	return nil
}
