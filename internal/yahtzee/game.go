package yahtzee

// Player is a roster entry referenced by the score card.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Game holds one Yahtzee session. A recorded 0 is a scratch; an absent entry
// means the category has not been played. All mutations go through the methods
// below, which are total: malformed input degrades to a no-op.
type Game struct {
	Players       []Player                    `json:"players"`
	Scores        map[string]map[Category]int `json:"scores"`
	CurrentTurn   int                         `json:"current_turn"`
	IsGameStarted bool                        `json:"is_game_started"`
	IsGameOver    bool                        `json:"is_game_over"`
}

// NewGame returns an empty, unstarted session.
func NewGame() *Game {
	return &Game{
		Scores: make(map[string]map[Category]int),
	}
}

// AddPlayer appends a player and initialises an empty score map. Duplicate ids
// are ignored. The machine accepts joins at any time; the HTTP boundary is
// responsible for rejecting them once play has started.
func (g *Game) AddPlayer(player Player) {
	if player.ID == "" {
		return
	}
	for _, existing := range g.Players {
		if existing.ID == player.ID {
			return
		}
	}
	g.Players = append(g.Players, player)
	g.ensureScoreMaps()
}

// UpdatePlayer replaces the player record with a matching id. Scores are untouched.
func (g *Game) UpdatePlayer(player Player) {
	for i := range g.Players {
		if g.Players[i].ID == player.ID {
			g.Players[i] = player
			return
		}
	}
}

// RemovePlayer drops a player and their score map, clamping the turn pointer
// back to 0 when it would fall out of range.
func (g *Game) RemovePlayer(playerID string) {
	for i := range g.Players {
		if g.Players[i].ID == playerID {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			delete(g.Scores, playerID)
			if g.CurrentTurn >= len(g.Players) {
				g.CurrentTurn = 0
			}
			return
		}
	}
}

// SetScore records a value for a category, overwriting any prior entry. A nil
// value clears the entry back to "unset". No legality check happens here; the
// card endpoint enumerates legal values for the UI.
func (g *Game) SetScore(playerID string, category Category, value *int) {
	if !g.hasPlayer(playerID) {
		return
	}
	scores := g.Scores[playerID]
	if scores == nil {
		scores = make(map[Category]int)
		g.Scores[playerID] = scores
	}
	if value == nil {
		delete(scores, category)
		return
	}
	scores[category] = *value
}

// Start marks the game started, guarantees a score map per player and resets
// the turn pointer.
func (g *Game) Start() {
	g.IsGameStarted = true
	g.IsGameOver = false
	g.CurrentTurn = 0
	g.ensureScoreMaps()
}

// NextTurn advances the turn pointer, wrapping modulo the roster size. A turn
// cannot advance with an empty roster.
func (g *Game) NextTurn() {
	if len(g.Players) == 0 {
		return
	}
	g.CurrentTurn = (g.CurrentTurn + 1) % len(g.Players)
}

// End closes the session. Final totals are persisted by the caller.
func (g *Game) End() {
	g.IsGameStarted = false
	g.IsGameOver = true
}

// Reset keeps the roster but wipes every score map and the lifecycle flags.
func (g *Game) Reset() {
	g.Scores = make(map[string]map[Category]int)
	g.CurrentTurn = 0
	g.IsGameStarted = false
	g.IsGameOver = false
	g.ensureScoreMaps()
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() (Player, bool) {
	if len(g.Players) == 0 || g.CurrentTurn < 0 || g.CurrentTurn >= len(g.Players) {
		return Player{}, false
	}
	return g.Players[g.CurrentTurn], true
}

// CardComplete reports whether every player has recorded all 13 categories.
func (g *Game) CardComplete() bool {
	if len(g.Players) == 0 {
		return false
	}
	for _, player := range g.Players {
		if len(g.Scores[player.ID]) < len(Categories) {
			return false
		}
	}
	return true
}

func (g *Game) hasPlayer(playerID string) bool {
	for _, player := range g.Players {
		if player.ID == playerID {
			return true
		}
	}
	return false
}

func (g *Game) ensureScoreMaps() {
	if g.Scores == nil {
		g.Scores = make(map[string]map[Category]int)
	}
	for _, player := range g.Players {
		if g.Scores[player.ID] == nil {
			g.Scores[player.ID] = make(map[Category]int)
		}
	}
}
