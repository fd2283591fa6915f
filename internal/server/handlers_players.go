package server

import (
	"errors"
	"log"
	"net/http"

	"scorekeeper/internal/db"

	"github.com/google/uuid"
)

type playerRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	color, err := validateColor(req.Color, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	player := &db.Player{ID: uuid.NewString(), Name: name, Color: color}
	if err := s.players.Create(player); err != nil {
		s.writePlayerError(w, err)
		return
	}
	log.Printf("player created player_id=%s", player.ID)
	writeJSON(w, http.StatusCreated, player)
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.players.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list players")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"players": players})
}

func (s *Server) handlePlayerSubroutes(w http.ResponseWriter, r *http.Request) {
	playerID, action, ok := parseSubPath(r.URL.Path, "/api/players/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch {
	case r.Method == http.MethodGet && action == "":
		s.handleGetPlayer(w, playerID)
	case r.Method == http.MethodGet && action == "history":
		s.handlePlayerHistory(w, playerID)
	case r.Method == http.MethodGet && action == "stats":
		s.handlePlayerStats(w, playerID)
	case r.Method == http.MethodPut && action == "":
		s.handleUpdatePlayer(w, r, playerID)
	case r.Method == http.MethodDelete && action == "":
		s.handleDeletePlayer(w, playerID)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, playerID string) {
	player, err := s.players.Get(playerID)
	if err != nil {
		s.writePlayerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request, playerID string) {
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	color, err := validateColor(req.Color, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	player := &db.Player{ID: playerID, Name: name, Color: color}
	if err := s.players.Update(player); err != nil {
		s.writePlayerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) handleDeletePlayer(w http.ResponseWriter, playerID string) {
	if err := s.players.Delete(playerID); err != nil {
		s.writePlayerError(w, err)
		return
	}
	log.Printf("player deleted player_id=%s", playerID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handlePlayerHistory(w http.ResponseWriter, playerID string) {
	results, err := s.history.PlayerHistory(playerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"player_id": playerID,
		"results":   results,
	})
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, playerID string) {
	stats, err := s.history.PlayerStats(playerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load stats")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"player_id": playerID,
		"stats":     stats,
	})
}

func (s *Server) writePlayerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, "player not found")
	case errors.Is(err, db.ErrDuplicateName):
		writeError(w, http.StatusConflict, "name already taken")
	default:
		writeError(w, http.StatusInternalServerError, "player store unavailable")
	}
}
