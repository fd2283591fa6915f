package server

import (
	"log"
	"net/http"
	"strings"

	"scorekeeper/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.Home()).ServeHTTP(w, r)
}

func (s *Server) handleScoreboardView(w http.ResponseWriter, r *http.Request) {
	gameID := strings.TrimPrefix(r.URL.Path, "/scoreboard/")
	gameID = strings.Trim(gameID, "/")
	if gameID == "" || strings.Contains(gameID, "/") {
		http.NotFound(w, r)
		return
	}
	game, ok := s.store.GetSportsGame(gameID)
	if !ok {
		log.Printf("scoreboard view missing game_id=%s", gameID)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	data := web.ScoreboardData{
		GameID: game.ID,
		Label:  game.Game.Mode.Label,
		Sport:  string(game.Game.Mode.Sport),
	}
	templ.Handler(web.Scoreboard(data)).ServeHTTP(w, r)
}

func (s *Server) handleYahtzeeView(w http.ResponseWriter, r *http.Request) {
	gameID := strings.TrimPrefix(r.URL.Path, "/yahtzee/")
	gameID = strings.Trim(gameID, "/")
	if gameID == "" || strings.Contains(gameID, "/") {
		http.NotFound(w, r)
		return
	}
	if _, ok := s.store.GetYahtzeeGame(gameID); !ok {
		log.Printf("yahtzee view missing game_id=%s", gameID)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	templ.Handler(web.Yahtzee(web.YahtzeeData{GameID: gameID})).ServeHTTP(w, r)
}
