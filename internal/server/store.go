package server

import (
	"errors"
	"fmt"
	"sync"

	"scorekeeper/internal/sports"
	"scorekeeper/internal/yahtzee"
)

// SportsGame is one live scoreboard tracked by the store.
type SportsGame struct {
	ID   string
	Game *sports.Game
}

// YahtzeeGame is one live score card session tracked by the store.
type YahtzeeGame struct {
	ID   string
	Game *yahtzee.Game
}

// GameSummary is the home page listing entry.
type GameSummary struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Label   string `json:"label"`
	Started bool   `json:"started"`
	Over    bool   `json:"over"`
}

// Store holds the active games in memory. All mutation happens under the lock
// through the Update callbacks, which keeps every transition atomic with the
// autosave write that follows it.
type Store struct {
	mu      sync.Mutex
	nextID  int
	sports  map[string]*SportsGame
	yahtzee map[string]*YahtzeeGame
}

func NewStore() *Store {
	return &Store{
		nextID:  1,
		sports:  make(map[string]*SportsGame),
		yahtzee: make(map[string]*YahtzeeGame),
	}
}

func (s *Store) CreateSportsGame(mode sports.Mode, settings sports.Settings) *SportsGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	game := &SportsGame{
		ID:   fmt.Sprintf("game-%d", s.nextID),
		Game: sports.NewGame(mode, settings),
	}
	s.nextID++
	s.sports[game.ID] = game
	return game
}

func (s *Store) CreateYahtzeeGame() *YahtzeeGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	game := &YahtzeeGame{
		ID:   fmt.Sprintf("yahtzee-%d", s.nextID),
		Game: yahtzee.NewGame(),
	}
	s.nextID++
	s.yahtzee[game.ID] = game
	return game
}

func (s *Store) GetSportsGame(id string) (*SportsGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.sports[id]
	return game, ok
}

func (s *Store) GetYahtzeeGame(id string) (*YahtzeeGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.yahtzee[id]
	return game, ok
}

func (s *Store) UpdateSportsGame(id string, update func(game *sports.Game) error) (*SportsGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.sports[id]
	if !ok {
		return nil, errors.New("game not found")
	}
	if err := update(game.Game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *Store) UpdateYahtzeeGame(id string, update func(game *yahtzee.Game) error) (*YahtzeeGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.yahtzee[id]
	if !ok {
		return nil, errors.New("game not found")
	}
	if err := update(game.Game); err != nil {
		return nil, err
	}
	return game, nil
}

// RestoreSportsGame re-registers a rehydrated game under its original id.
func (s *Store) RestoreSportsGame(game *SportsGame) error {
	if game == nil || game.ID == "" {
		return errors.New("game is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sports[game.ID]; ok {
		return errors.New("game already running")
	}
	s.sports[game.ID] = game
	s.bumpNextID(game.ID)
	return nil
}

// RestoreYahtzeeGame re-registers a rehydrated session under its original id.
func (s *Store) RestoreYahtzeeGame(game *YahtzeeGame) error {
	if game == nil || game.ID == "" {
		return errors.New("game is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.yahtzee[game.ID]; ok {
		return errors.New("game already running")
	}
	s.yahtzee[game.ID] = game
	s.bumpNextID(game.ID)
	return nil
}

func (s *Store) RemoveSportsGame(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sports, id)
}

func (s *Store) RemoveYahtzeeGame(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.yahtzee, id)
}

func (s *Store) ListSummaries() []GameSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]GameSummary, 0, len(s.sports)+len(s.yahtzee))
	for _, game := range s.sports {
		list = append(list, GameSummary{
			ID:      game.ID,
			Kind:    string(game.Game.Mode.Sport),
			Label:   game.Game.Mode.Label,
			Started: game.Game.IsGameStarted,
			Over:    game.Game.IsGameOver,
		})
	}
	for _, game := range s.yahtzee {
		list = append(list, GameSummary{
			ID:      game.ID,
			Kind:    "yahtzee",
			Label:   "Yahtzee",
			Started: game.Game.IsGameStarted,
			Over:    game.Game.IsGameOver,
		})
	}
	sortSummaries(list)
	return list
}

func (s *Store) bumpNextID(id string) {
	if n := gameSortKey(id); n >= s.nextID {
		s.nextID = n + 1
	}
}
