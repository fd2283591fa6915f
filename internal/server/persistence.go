package server

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"scorekeeper/internal/db"
	"scorekeeper/internal/sports"
	"scorekeeper/internal/yahtzee"

	"gorm.io/datatypes"
)

const (
	sportsSaveKeyPrefix  = "sports:"
	yahtzeeSaveKeyPrefix = "yahtzee:"
)

// Autosave and history writes are fire-and-forget: the in-memory transition
// has already committed, failures are logged and counted but never rolled
// back into the machines.

func (s *Server) autosaveSports(game *SportsGame) {
	if s.saves == nil {
		return
	}
	snapshot := game.Game.Snapshot(time.Now())
	if err := s.saves.Save(sportsSaveKeyPrefix+game.ID, snapshot); err != nil {
		log.Printf("autosave failed game_id=%s error=%v", game.ID, err)
		s.metrics.PersistenceFailure("autosave")
	}
}

func (s *Server) autosaveYahtzee(game *YahtzeeGame) {
	if s.saves == nil {
		return
	}
	snapshot := game.Game.Snapshot(time.Now())
	if err := s.saves.Save(yahtzeeSaveKeyPrefix+game.ID, snapshot); err != nil {
		log.Printf("autosave failed game_id=%s error=%v", game.ID, err)
		s.metrics.PersistenceFailure("autosave")
	}
}

func (s *Server) dropAutosave(key string) {
	if s.saves == nil {
		return
	}
	if err := s.saves.Delete(key); err != nil {
		log.Printf("autosave delete failed key=%s error=%v", key, err)
	}
}

// restoreAutosaves rehydrates every saved session at boot. Corrupt payloads
// are discarded and their rows deleted; they must never prevent startup.
func (s *Server) restoreAutosaves() {
	if s.saves == nil {
		return
	}
	saves, err := s.saves.LoadAll()
	if err != nil {
		log.Printf("autosave load failed error=%v", err)
		return
	}
	for key, payload := range saves {
		if id, ok := strings.CutPrefix(key, sportsSaveKeyPrefix); ok && id != "" {
			s.restoreSports(key, id, payload)
			continue
		}
		if id, ok := strings.CutPrefix(key, yahtzeeSaveKeyPrefix); ok && id != "" {
			s.restoreYahtzee(key, id, payload)
			continue
		}
		s.dropAutosave(key)
	}
}

func (s *Server) restoreSports(key, id string, payload []byte) {
	snapshot, err := sports.DecodeSnapshot(payload)
	if err != nil {
		log.Printf("discarding corrupt autosave key=%s error=%v", key, err)
		s.dropAutosave(key)
		return
	}
	mode, _ := sports.ModeByID(snapshot.ModeID)
	game := &SportsGame{ID: id, Game: sports.NewGame(mode, sports.Settings{})}
	if err := game.Game.Load(snapshot); err != nil {
		log.Printf("discarding corrupt autosave key=%s error=%v", key, err)
		s.dropAutosave(key)
		return
	}
	if err := s.store.RestoreSportsGame(game); err != nil {
		log.Printf("autosave restore skipped game_id=%s error=%v", id, err)
		return
	}
	log.Printf("game restored game_id=%s mode=%s", id, snapshot.ModeID)
}

func (s *Server) restoreYahtzee(key, id string, payload []byte) {
	snapshot, err := yahtzee.DecodeSnapshot(payload)
	if err != nil {
		log.Printf("discarding corrupt autosave key=%s error=%v", key, err)
		s.dropAutosave(key)
		return
	}
	game := &YahtzeeGame{ID: id, Game: yahtzee.NewGame()}
	if err := game.Game.Load(snapshot); err != nil {
		log.Printf("discarding corrupt autosave key=%s error=%v", key, err)
		s.dropAutosave(key)
		return
	}
	if err := s.store.RestoreYahtzeeGame(game); err != nil {
		log.Printf("autosave restore skipped game_id=%s error=%v", id, err)
		return
	}
	log.Printf("game restored game_id=%s kind=yahtzee", id)
}

// markFinished records that history for a game id has been written. Intents
// keep arriving for an over game, so the write must happen once.
func (s *Server) markFinished(id string) bool {
	s.finishedMu.Lock()
	defer s.finishedMu.Unlock()
	if _, done := s.finished[id]; done {
		return false
	}
	s.finished[id] = struct{}{}
	return true
}

func (s *Server) clearFinished(id string) {
	s.finishedMu.Lock()
	defer s.finishedMu.Unlock()
	delete(s.finished, id)
}

// finishSportsGame writes game history for every rostered player: winners rank
// 1, the other side rank 2, both rank 1 on a tie.
func (s *Server) finishSportsGame(game *SportsGame) {
	if !s.markFinished(game.ID) {
		return
	}
	g := game.Game
	playedAt := time.Now().UTC()
	homeRank, awayRank := 1, 1
	if g.Home.Score > g.Away.Score {
		awayRank = 2
	} else if g.Away.Score > g.Home.Score {
		homeRank = 2
	}
	s.recordTeamResults(game.ID, string(g.Mode.Sport), g.Home, homeRank, playedAt)
	s.recordTeamResults(game.ID, string(g.Mode.Sport), g.Away, awayRank, playedAt)
	s.mirrorSportsEvents(game)
}

func (s *Server) recordTeamResults(gameID, kind string, team sports.Team, rank int, playedAt time.Time) {
	if !s.history.Enabled() {
		return
	}
	for _, player := range team.Players {
		result := &db.GameResult{
			GameID:   gameID,
			PlayerID: player.ID,
			GameKind: kind,
			Score:    team.Score,
			Rank:     rank,
			PlayedAt: playedAt,
		}
		if err := s.history.RecordResult(result); err != nil {
			log.Printf("history write failed game_id=%s player_id=%s error=%v", gameID, player.ID, err)
			s.metrics.PersistenceFailure("history")
		}
	}
}

func (s *Server) mirrorSportsEvents(game *SportsGame) {
	if !s.history.Enabled() {
		return
	}
	events := make([]db.GameEvent, 0, len(game.Game.Events))
	for _, event := range game.Game.Events {
		payload, err := json.Marshal(EventPayload{
			GameID:  game.ID,
			Side:    string(event.Side),
			Action:  string(event.Action),
			Points:  event.Points,
			Quarter: game.Game.Quarter,
		})
		if err != nil {
			continue
		}
		record := db.GameEvent{
			GameID:    game.ID,
			Type:      string(event.Action),
			Payload:   datatypes.JSON(payload),
			CreatedAt: event.Timestamp,
		}
		if event.PlayerID != "" {
			playerID := event.PlayerID
			record.PlayerID = &playerID
		}
		events = append(events, record)
	}
	if err := s.history.AppendEvents(events); err != nil {
		log.Printf("event mirror failed game_id=%s error=%v", game.ID, err)
		s.metrics.PersistenceFailure("events")
	}
}

// finishYahtzeeGame writes each player's grand total, ranked by standing.
func (s *Server) finishYahtzeeGame(game *YahtzeeGame) {
	if !s.markFinished(game.ID) {
		return
	}
	if !s.history.Enabled() {
		return
	}
	g := game.Game
	playedAt := time.Now().UTC()
	for rank, playerID := range g.Standings() {
		result := &db.GameResult{
			GameID:   game.ID,
			PlayerID: playerID,
			GameKind: "yahtzee",
			Score:    g.PlayerTotals(playerID).GrandTotal,
			Rank:     rank + 1,
			PlayedAt: playedAt,
		}
		if err := s.history.RecordResult(result); err != nil {
			log.Printf("history write failed game_id=%s player_id=%s error=%v", game.ID, playerID, err)
			s.metrics.PersistenceFailure("history")
		}
	}
}
