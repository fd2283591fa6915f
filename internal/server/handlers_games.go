package server

import (
	"log"
	"net/http"

	"scorekeeper/internal/sports"
)

type createGameRequest struct {
	Sport      string `json:"sport,omitempty"`
	Mode       string `json:"mode"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeColor  string `json:"home_color"`
	AwayColor  string `json:"away_color"`
	TimeLength *int   `json:"time_length,omitempty"`
	FinalScore *int   `json:"final_score,omitempty"`
}

type actionRequest struct {
	Side     string `json:"side"`
	Action   string `json:"action"`
	PlayerID string `json:"player_id,omitempty"`
}

type sideRequest struct {
	Side string `json:"side"`
}

type rosterRequest struct {
	Side     string `json:"side"`
	PlayerID string `json:"player_id"`
}

func (s *Server) handleListModes(w http.ResponseWriter, r *http.Request) {
	sport := sports.Sport(r.URL.Query().Get("sport"))
	writeJSON(w, http.StatusOK, map[string]any{"modes": sports.Modes(sport)})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"games": s.store.ListSummaries()})
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	mode, ok := sports.ModeByID(req.Mode)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown game mode")
		return
	}
	if req.Sport != "" && sports.Sport(req.Sport) != mode.Sport {
		writeError(w, http.StatusBadRequest, "mode does not belong to the requested sport")
		return
	}
	settings, err := validateSettings(mode, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	game := s.store.CreateSportsGame(mode, settings)
	s.metrics.GameCreated("sports")
	s.autosaveSports(game)
	log.Printf("game created game_id=%s mode=%s", game.ID, mode.ID)
	writeJSON(w, http.StatusCreated, map[string]string{"game_id": game.ID})
}

func (s *Server) handleGameSubroutes(w http.ResponseWriter, r *http.Request) {
	gameID, action, ok := parseSubPath(r.URL.Path, "/api/games/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		switch action {
		case "":
			s.handleGetGame(w, r, gameID)
		case "events":
			s.handleGameEvents(w, r, gameID)
		default:
			http.NotFound(w, r)
		}
		return
	}

	switch action {
	case "start":
		s.applySportsIntent(w, gameID, "start_game", func(game *sports.Game) error {
			game.Start()
			return nil
		})
	case "pause":
		s.applySportsIntent(w, gameID, "pause_game", func(game *sports.Game) error {
			game.Pause()
			return nil
		})
	case "resume":
		s.applySportsIntent(w, gameID, "resume_game", func(game *sports.Game) error {
			game.Resume()
			return nil
		})
	case "action":
		s.handleRecordAction(w, r, gameID)
	case "possession":
		s.applySportsIntent(w, gameID, "change_possession", func(game *sports.Game) error {
			game.ChangePossession()
			return nil
		})
	case "timeout":
		s.handleTimeout(w, r, gameID)
	case "period":
		s.applySportsIntent(w, gameID, "next_period", func(game *sports.Game) error {
			game.NextPeriod()
			return nil
		})
	case "end":
		s.applySportsIntent(w, gameID, "end_game", func(game *sports.Game) error {
			game.End()
			return nil
		})
	case "reset":
		s.clearFinished(gameID)
		s.applySportsIntent(w, gameID, "reset_game", func(game *sports.Game) error {
			game.Reset()
			return nil
		})
	case "load":
		s.handleLoadGame(w, r, gameID)
	case "roster":
		s.handleRoster(w, r, gameID)
	case "close":
		s.handleCloseGame(w, gameID)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request, gameID string) {
	game, ok := s.store.GetSportsGame(gameID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.sportsSnapshot(game))
}

func (s *Server) handleGameEvents(w http.ResponseWriter, r *http.Request, gameID string) {
	game, ok := s.store.GetSportsGame(gameID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game_id": game.ID,
		"events":  eventPayloads(game.Game.Events),
	})
}

// applySportsIntent commits a transition, then re-syncs the clock, autosaves
// and broadcasts the new snapshot.
func (s *Server) applySportsIntent(w http.ResponseWriter, gameID, intent string, update func(game *sports.Game) error) {
	game, err := s.store.UpdateSportsGame(gameID, update)
	if err != nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	s.metrics.IntentApplied(intent)
	s.syncClock(game)
	s.autosaveSports(game)
	if game.Game.IsGameOver {
		s.finishSportsGame(game)
	}
	s.broadcastSports(game)
	writeJSON(w, http.StatusOK, s.sportsSnapshot(game))
}

func (s *Server) handleRecordAction(w http.ResponseWriter, r *http.Request, gameID string) {
	var req actionRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	recorded := false
	s.applySportsIntent(w, gameID, "record_action", func(game *sports.Game) error {
		_, recorded = game.RecordAction(sports.Side(req.Side), sports.ActionType(req.Action), req.PlayerID)
		return nil
	})
	if !recorded {
		log.Printf("action ignored game_id=%s side=%s action=%s", gameID, req.Side, req.Action)
	}
}

func (s *Server) handleTimeout(w http.ResponseWriter, r *http.Request, gameID string) {
	var req sideRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.applySportsIntent(w, gameID, "use_timeout", func(game *sports.Game) error {
		game.UseTimeout(sports.Side(req.Side))
		return nil
	})
}

func (s *Server) handleLoadGame(w http.ResponseWriter, r *http.Request, gameID string) {
	var snapshot sports.Snapshot
	if err := readJSON(r.Body, &snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot")
		return
	}
	game, err := s.store.UpdateSportsGame(gameID, func(game *sports.Game) error {
		return game.Load(snapshot)
	})
	if err != nil {
		log.Printf("snapshot rejected game_id=%s error=%v", gameID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.IntentApplied("load_game")
	s.syncClock(game)
	s.autosaveSports(game)
	s.broadcastSports(game)
	writeJSON(w, http.StatusOK, s.sportsSnapshot(game))
}

func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request, gameID string) {
	var req rosterRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	player, err := s.players.Get(req.PlayerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown player")
		return
	}
	s.applySportsIntent(w, gameID, "add_to_roster", func(game *sports.Game) error {
		game.AddToRoster(sports.Side(req.Side), sports.Player{ID: player.ID, Name: player.Name})
		return nil
	})
}

func (s *Server) handleCloseGame(w http.ResponseWriter, gameID string) {
	game, ok := s.store.GetSportsGame(gameID)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	s.cancelTick(gameID)
	if game.Game.IsGameOver {
		s.finishSportsGame(game)
	}
	s.store.RemoveSportsGame(gameID)
	s.dropAutosave(sportsSaveKeyPrefix + gameID)
	log.Printf("game closed game_id=%s", gameID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}
