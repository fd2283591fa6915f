package server

import (
	"log"
	"net/http"

	"scorekeeper/internal/yahtzee"

	"github.com/google/uuid"
)

type joinRequest struct {
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
}

type scoreRequest struct {
	PlayerID string `json:"player_id"`
	Category string `json:"category"`
	Value    *int   `json:"value"`
}

func (s *Server) handleCreateYahtzee(w http.ResponseWriter, r *http.Request) {
	game := s.store.CreateYahtzeeGame()
	s.metrics.GameCreated("yahtzee")
	s.autosaveYahtzee(game)
	log.Printf("game created game_id=%s kind=yahtzee", game.ID)
	writeJSON(w, http.StatusCreated, map[string]string{"game_id": game.ID})
}

func (s *Server) handleYahtzeeSubroutes(w http.ResponseWriter, r *http.Request) {
	gameID, action, ok := parseSubPath(r.URL.Path, "/api/yahtzee/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		switch action {
		case "":
			s.handleGetYahtzee(w, r, gameID)
		case "card":
			s.handleCard(w, r, gameID)
		default:
			http.NotFound(w, r)
		}
		return
	}

	switch action {
	case "join":
		s.handleJoinYahtzee(w, r, gameID)
	case "start":
		s.applyYahtzeeIntent(w, gameID, "start_game", func(game *yahtzee.Game) error {
			game.Start()
			return nil
		})
	case "score":
		s.handleScoreYahtzee(w, r, gameID)
	case "turn":
		s.applyYahtzeeIntent(w, gameID, "next_turn", func(game *yahtzee.Game) error {
			game.NextTurn()
			return nil
		})
	case "end":
		s.applyYahtzeeIntent(w, gameID, "end_game", func(game *yahtzee.Game) error {
			game.End()
			return nil
		})
	case "reset":
		s.clearFinished(gameID)
		s.applyYahtzeeIntent(w, gameID, "reset_game", func(game *yahtzee.Game) error {
			game.Reset()
			return nil
		})
	case "load":
		s.handleLoadYahtzee(w, r, gameID)
	case "close":
		s.handleCloseYahtzee(w, gameID)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleGetYahtzee(w http.ResponseWriter, r *http.Request, gameID string) {
	game, ok := s.store.GetYahtzeeGame(gameID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.yahtzeeSnapshot(game))
}

// handleCard scores a dice roll against every category without touching any
// game state, alongside the current per-player totals. The scoreboard uses it
// to preview a roll before committing.
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request, gameID string) {
	game, ok := s.store.GetYahtzeeGame(gameID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	dice, err := parseDiceQuery(r.URL.Query().Get("dice"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	totals := make(map[string]yahtzee.Totals, len(game.Game.Players))
	for _, player := range game.Game.Players {
		totals[player.ID] = game.Game.PlayerTotals(player.ID)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game_id": game.ID,
		"dice":    dice,
		"scores":  yahtzee.ScoreCard(dice),
		"totals":  totals,
	})
}

func (s *Server) applyYahtzeeIntent(w http.ResponseWriter, gameID, intent string, update func(game *yahtzee.Game) error) {
	game, err := s.store.UpdateYahtzeeGame(gameID, update)
	if err != nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	s.metrics.IntentApplied(intent)
	s.autosaveYahtzee(game)
	if game.Game.IsGameOver {
		s.finishYahtzeeGame(game)
	}
	s.broadcastYahtzee(game)
	writeJSON(w, http.StatusOK, s.yahtzeeSnapshot(game))
}

// handleJoinYahtzee seats a player. Known ids reuse the registered roster
// entry; new names get a fresh id and a palette color. Joining is only open
// before the first turn.
func (s *Server) handleJoinYahtzee(w http.ResponseWriter, r *http.Request, gameID string) {
	var req joinRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player := yahtzee.Player{ID: req.PlayerID}
	if req.PlayerID != "" && s.players != nil {
		if registered, err := s.players.Get(req.PlayerID); err == nil {
			player.Name = registered.Name
			player.Color = registered.Color
		}
	}
	if player.Name == "" {
		name, err := validateName(req.Name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		player.Name = name
	}
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	if req.Color != "" {
		color, err := validateColor(req.Color, 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		player.Color = color
	}

	game, ok := s.store.GetYahtzeeGame(gameID)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	if game.Game.IsGameStarted {
		writeError(w, http.StatusConflict, "game already started")
		return
	}
	if player.Color == "" {
		player.Color = pickPlayerColor(len(game.Game.Players))
	}
	s.applyYahtzeeIntent(w, gameID, "join_game", func(game *yahtzee.Game) error {
		game.AddPlayer(player)
		return nil
	})
}

func (s *Server) handleScoreYahtzee(w http.ResponseWriter, r *http.Request, gameID string) {
	var req scoreRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !yahtzee.ValidCategory(req.Category) {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}
	s.applyYahtzeeIntent(w, gameID, "score_category", func(game *yahtzee.Game) error {
		game.SetScore(req.PlayerID, yahtzee.Category(req.Category), req.Value)
		return nil
	})
}

func (s *Server) handleLoadYahtzee(w http.ResponseWriter, r *http.Request, gameID string) {
	var snapshot yahtzee.Snapshot
	if err := readJSON(r.Body, &snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot")
		return
	}
	game, err := s.store.UpdateYahtzeeGame(gameID, func(game *yahtzee.Game) error {
		return game.Load(snapshot)
	})
	if err != nil {
		log.Printf("snapshot rejected game_id=%s error=%v", gameID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.IntentApplied("load_game")
	s.autosaveYahtzee(game)
	s.broadcastYahtzee(game)
	writeJSON(w, http.StatusOK, s.yahtzeeSnapshot(game))
}

func (s *Server) handleCloseYahtzee(w http.ResponseWriter, gameID string) {
	game, ok := s.store.GetYahtzeeGame(gameID)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	if game.Game.IsGameOver {
		s.finishYahtzeeGame(game)
	}
	s.store.RemoveYahtzeeGame(gameID)
	s.dropAutosave(yahtzeeSaveKeyPrefix + gameID)
	log.Printf("game closed game_id=%s", gameID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}
