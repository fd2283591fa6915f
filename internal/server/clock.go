package server

import (
	"time"

	"scorekeeper/internal/sports"
)

// syncClock arms or cancels a game's tick timer so it matches the machine
// state. Every handler that can flip paused or over must call this after the
// transition commits; cancellation on pause is mandatory, not an optimisation,
// so a stale timer can never fire into a stopped game.
func (s *Server) syncClock(game *SportsGame) {
	if game.Game.Running() && game.Game.TimeRemaining != nil {
		s.scheduleTick(game.ID)
		return
	}
	s.cancelTick(game.ID)
}

func (s *Server) scheduleTick(gameID string) {
	interval := time.Duration(s.cfg.TickIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Second
	}
	s.timersMu.Lock()
	if existing, ok := s.timers[gameID]; ok {
		existing.Stop()
	}
	s.timers[gameID] = time.AfterFunc(interval, func() {
		s.tick(gameID)
	})
	s.timersMu.Unlock()
}

func (s *Server) cancelTick(gameID string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if timer, ok := s.timers[gameID]; ok {
		timer.Stop()
		delete(s.timers, gameID)
	}
}

// tick dispatches one UpdateTime intent. The machine ignores ticks while
// paused or over, so a timer that slips past cancellation is harmless.
func (s *Server) tick(gameID string) {
	game, err := s.store.UpdateSportsGame(gameID, func(game *sports.Game) error {
		game.Tick()
		return nil
	})
	if err != nil {
		s.cancelTick(gameID)
		return
	}
	s.metrics.ClockTick()
	s.autosaveSports(game)
	if game.Game.IsGameOver {
		s.cancelTick(gameID)
		s.finishSportsGame(game)
	} else {
		s.syncClock(game)
	}
	s.broadcastSports(game)
}
