package sports

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the autosave payload for one scoreboard.
type Snapshot struct {
	ModeID        string    `json:"mode_id"`
	TargetScore   *int      `json:"target_score,omitempty"`
	TimeRemaining *int      `json:"time_remaining,omitempty"`
	ShotClock     *int      `json:"shot_clock,omitempty"`
	IsGameStarted bool      `json:"is_game_started"`
	IsPaused      bool      `json:"is_paused"`
	IsGameOver    bool      `json:"is_game_over"`
	Home          Team      `json:"home"`
	Away          Team      `json:"away"`
	Possession    Side      `json:"possession"`
	Quarter       int       `json:"quarter"`
	Events        []Event   `json:"events"`
	SavedAt       time.Time `json:"saved_at"`
}

// Snapshot captures the current state for autosave.
func (g *Game) Snapshot(at time.Time) Snapshot {
	return Snapshot{
		ModeID:        g.Mode.ID,
		TargetScore:   copyIntPtr(g.TargetScore),
		TimeRemaining: copyIntPtr(g.TimeRemaining),
		ShotClock:     copyIntPtr(g.ShotClock),
		IsGameStarted: g.IsGameStarted,
		IsPaused:      g.IsPaused,
		IsGameOver:    g.IsGameOver,
		Home:          copyTeam(g.Home),
		Away:          copyTeam(g.Away),
		Possession:    g.Possession,
		Quarter:       g.Quarter,
		Events:        append([]Event{}, g.Events...),
		SavedAt:       at.UTC(),
	}
}

// Load replaces the whole state from a snapshot. A game rehydrated mid-play
// always comes back paused so the clock cannot run before anyone is watching.
func (g *Game) Load(snapshot Snapshot) error {
	if err := snapshot.validate(); err != nil {
		return err
	}
	mode, ok := ModeByID(snapshot.ModeID)
	if !ok {
		return errors.New("snapshot references unknown mode")
	}
	g.Mode = mode
	g.TargetScore = copyIntPtr(snapshot.TargetScore)
	g.TimeRemaining = copyIntPtr(snapshot.TimeRemaining)
	g.ShotClock = copyIntPtr(snapshot.ShotClock)
	g.IsGameStarted = snapshot.IsGameStarted
	g.IsPaused = snapshot.IsPaused || snapshot.IsGameOver
	if snapshot.IsGameStarted && !snapshot.IsGameOver {
		g.IsPaused = true
	}
	g.IsGameOver = snapshot.IsGameOver
	g.Home = copyTeam(snapshot.Home)
	g.Away = copyTeam(snapshot.Away)
	g.Possession = snapshot.Possession
	g.Quarter = snapshot.Quarter
	g.Events = append([]Event{}, snapshot.Events...)
	if g.now == nil {
		g.now = time.Now
	}
	if g.newID == nil {
		g.newID = uuid.NewString
	}
	return nil
}

// DecodeSnapshot parses an autosave payload, rejecting corrupt data.
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
	if _, ok := ModeByID(s.ModeID); !ok {
		return errors.New("snapshot references unknown mode")
	}
	if s.Quarter < 1 {
		return errors.New("snapshot quarter out of range")
	}
	if s.TimeRemaining != nil && *s.TimeRemaining < 0 {
		return errors.New("snapshot clock below zero")
	}
	if s.Home.Score < 0 || s.Away.Score < 0 {
		return errors.New("snapshot score below zero")
	}
	if s.Possession != SideHome && s.Possession != SideAway {
		return errors.New("snapshot possession invalid")
	}
	return nil
}

func copyTeam(team Team) Team {
	copied := team
	copied.Players = append([]Player{}, team.Players...)
	return copied
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}
