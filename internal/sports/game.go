package sports

import (
	"time"

	"github.com/google/uuid"
)

// Side names one of the two fixed team slots.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Player is a roster entry on one team. Rosters survive a reset.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team carries the denormalized score for fast display. The event log is the
// source of truth: Score always equals the clamped sum of the team's events.
type Team struct {
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Score    int      `json:"score"`
	Timeouts int      `json:"timeouts"`
	Players  []Player `json:"players"`
}

// Event is an immutable, append-only record of a scoring or foul action.
type Event struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Side      Side       `json:"side"`
	PlayerID  string     `json:"player_id,omitempty"`
	Action    ActionType `json:"action"`
	Points    int        `json:"points"`
}

// Settings is the closed configuration structure built from user input when a
// game is created. Zero-value fields fall back to the mode defaults.
type Settings struct {
	HomeTeam   TeamSetup `json:"home_team"`
	AwayTeam   TeamSetup `json:"away_team"`
	TimeLength *int      `json:"time_length,omitempty"`
	FinalScore *int      `json:"final_score,omitempty"`
}

// TeamSetup names one team slot before the game starts.
type TeamSetup struct {
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Players []Player `json:"players,omitempty"`
}

// Game is the generic sports scoreboard machine. Basketball and football are
// mode configurations, not separate code paths. All transitions are total:
// out-of-domain intents degrade to no-ops.
type Game struct {
	Mode          Mode    `json:"mode"`
	TargetScore   *int    `json:"target_score,omitempty"`
	TimeRemaining *int    `json:"time_remaining,omitempty"`
	ShotClock     *int    `json:"shot_clock,omitempty"`
	IsGameStarted bool    `json:"is_game_started"`
	IsPaused      bool    `json:"is_paused"`
	IsGameOver    bool    `json:"is_game_over"`
	Home          Team    `json:"home"`
	Away          Team    `json:"away"`
	Possession    Side    `json:"possession"`
	Quarter       int     `json:"quarter"`
	Events        []Event `json:"events"`

	now   func() time.Time
	newID func() string
}

// NewGame builds an unstarted game for a mode, applying any valid overrides
// from the settings.
func NewGame(mode Mode, settings Settings) *Game {
	game := &Game{
		Mode:       mode,
		Home:       newTeam(settings.HomeTeam, "Home", mode.Timeouts),
		Away:       newTeam(settings.AwayTeam, "Away", mode.Timeouts),
		Possession: SideHome,
		Quarter:    1,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	game.TargetScore = mode.TargetScore
	if settings.FinalScore != nil && *settings.FinalScore > 0 {
		game.TargetScore = intPtr(*settings.FinalScore)
	}
	limit := mode.TimeLimit
	if settings.TimeLength != nil && *settings.TimeLength > 0 {
		limit = intPtr(*settings.TimeLength)
	}
	if limit != nil {
		game.TimeRemaining = intPtr(*limit)
	}
	if mode.ShotClock != nil {
		game.ShotClock = intPtr(*mode.ShotClock)
	}
	return game
}

func newTeam(setup TeamSetup, fallback string, timeouts int) Team {
	name := setup.Name
	if name == "" {
		name = fallback
	}
	return Team{
		Name:     name,
		Color:    setup.Color,
		Timeouts: timeouts,
		Players:  append([]Player{}, setup.Players...),
	}
}

// SetClock injects deterministic time and id sources for tests.
func (g *Game) SetClock(now func() time.Time, newID func() string) {
	if now != nil {
		g.now = now
	}
	if newID != nil {
		g.newID = newID
	}
}

// Start enters the started-but-paused state; the clock does not run until an
// explicit resume.
func (g *Game) Start() {
	g.IsGameStarted = true
	g.IsPaused = true
	g.IsGameOver = false
}

// Pause stops the clock. Idempotent.
func (g *Game) Pause() {
	if !g.IsGameStarted {
		return
	}
	g.IsPaused = true
}

// Resume restarts the clock. A finished game cannot resume.
func (g *Game) Resume() {
	if !g.IsGameStarted || g.IsGameOver {
		return
	}
	g.IsPaused = false
}

// Running reports whether clock ticks should be scheduled.
func (g *Game) Running() bool {
	return g.IsGameStarted && !g.IsPaused && !g.IsGameOver
}

// UpdateTime is the sole tick mechanism. The value is clamped at 0 and hitting
// 0 ends the game. Ticks on an untimed or finished game are no-ops, so a stale
// timer firing after pause cannot corrupt the clock.
func (g *Game) UpdateTime(seconds int) {
	if g.TimeRemaining == nil || g.IsGameOver {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	*g.TimeRemaining = seconds
	if seconds == 0 {
		g.IsGameOver = true
		g.IsPaused = true
	}
}

// Tick decrements the remaining time by one second.
func (g *Game) Tick() {
	if g.TimeRemaining == nil || !g.Running() {
		return
	}
	g.UpdateTime(*g.TimeRemaining - 1)
}

// RecordAction resolves the action through the mode's scoring table, appends
// an event and applies the delta to the acting team's score, clamped at 0.
// Once the game is over the scoreboard is frozen and nothing is recorded.
func (g *Game) RecordAction(side Side, action ActionType, playerID string) (Event, bool) {
	if !g.IsGameStarted || g.IsGameOver {
		return Event{}, false
	}
	points, ok := g.Mode.Scoring[action]
	if !ok {
		return Event{}, false
	}
	team := g.team(side)
	if team == nil {
		return Event{}, false
	}

	event := Event{
		ID:        g.newID(),
		Timestamp: g.now().UTC(),
		Side:      side,
		PlayerID:  playerID,
		Action:    action,
		Points:    points,
	}
	g.Events = append(g.Events, event)

	team.Score += points
	if team.Score < 0 {
		team.Score = 0
	}
	if g.TargetScore != nil && team.Score >= *g.TargetScore {
		g.IsGameOver = true
		g.IsPaused = true
	}
	return event, true
}

// ChangePossession flips the ball and resets the shot clock when the mode
// uses one.
func (g *Game) ChangePossession() {
	if g.Possession == SideHome {
		g.Possession = SideAway
	} else {
		g.Possession = SideHome
	}
	if g.ShotClock != nil {
		*g.ShotClock = shotClockSeconds
	}
}

// UseTimeout burns one of the team's timeouts, floored at 0, and always stops
// play.
func (g *Game) UseTimeout(side Side) {
	team := g.team(side)
	if team == nil {
		return
	}
	if team.Timeouts > 0 {
		team.Timeouts--
	}
	if g.IsGameStarted {
		g.IsPaused = true
	}
}

// End finishes the game immediately and freezes the scoreboard. Un-started
// games cannot end.
func (g *Game) End() {
	if !g.IsGameStarted {
		return
	}
	g.IsGameOver = true
	g.IsPaused = true
}

// AddToRoster attaches a player to one team. Duplicates and full rosters are
// no-ops.
func (g *Game) AddToRoster(side Side, player Player) bool {
	team := g.team(side)
	if team == nil || player.ID == "" {
		return false
	}
	if g.Mode.MaxPlayers > 0 && len(team.Players) >= g.Mode.MaxPlayers {
		return false
	}
	for _, existing := range team.Players {
		if existing.ID == player.ID {
			return false
		}
	}
	team.Players = append(team.Players, player)
	return true
}

// NextPeriod advances the quarter counter (never decrements) and reassigns
// possession by parity of the new quarter: even to home, odd to away.
func (g *Game) NextPeriod() {
	if !g.IsGameStarted || g.IsGameOver {
		return
	}
	g.Quarter++
	if g.Quarter%2 == 0 {
		g.Possession = SideHome
	} else {
		g.Possession = SideAway
	}
	if g.ShotClock != nil {
		*g.ShotClock = shotClockSeconds
	}
}

// Reset restores the mode's default state but keeps both rosters.
func (g *Game) Reset() {
	homePlayers := g.Home.Players
	awayPlayers := g.Away.Players
	fresh := NewGame(g.Mode, Settings{
		HomeTeam: TeamSetup{Name: g.Home.Name, Color: g.Home.Color},
		AwayTeam: TeamSetup{Name: g.Away.Name, Color: g.Away.Color},
	})
	now, newID := g.now, g.newID
	*g = *fresh
	g.Home.Players = homePlayers
	g.Away.Players = awayPlayers
	g.now, g.newID = now, newID
}

// EventScore replays the event log for one side with the same per-event clamp
// the live score uses. Display code uses it to cross-check the denormalized
// team score.
func (g *Game) EventScore(side Side) int {
	total := 0
	for _, event := range g.Events {
		if event.Side != side {
			continue
		}
		total += event.Points
		if total < 0 {
			total = 0
		}
	}
	return total
}

func (g *Game) team(side Side) *Team {
	switch side {
	case SideHome:
		return &g.Home
	case SideAway:
		return &g.Away
	}
	return nil
}
