package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsHub fans state snapshots out to every browser watching a game.
type wsHub struct {
	mu     sync.Mutex
	groups map[string]map[*websocket.Conn]struct{}
}

func newWSHub() *wsHub {
	return &wsHub{
		groups: make(map[string]map[*websocket.Conn]struct{}),
	}
}

func (h *wsHub) Add(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.groups[gameID]
	if group == nil {
		group = make(map[*websocket.Conn]struct{})
		h.groups[gameID] = group
	}
	group[conn] = struct{}{}
}

func (h *wsHub) Remove(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if group, ok := h.groups[gameID]; ok {
		delete(group, conn)
		if len(group) == 0 {
			delete(h.groups, gameID)
		}
	}
	_ = conn.Close()
}

func (h *wsHub) Broadcast(gameID string, payload any) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.groups[gameID]))
	for conn := range h.groups[gameID] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.Remove(gameID, conn)
		}
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	gameID, _, ok := parseSubPath(r.URL.Path, "/ws/games/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var snapshot map[string]any
	if game, found := s.store.GetSportsGame(gameID); found {
		snapshot = s.sportsSnapshot(game)
	} else if game, found := s.store.GetYahtzeeGame(gameID); found {
		snapshot = s.yahtzeeSnapshot(game)
	} else {
		http.NotFound(w, r)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed game_id=%s error=%v", gameID, err)
		return
	}
	s.ws.Add(gameID, conn)

	data, err := json.Marshal(snapshot)
	if err == nil {
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}

	go func() {
		defer s.ws.Remove(gameID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) broadcastSports(game *SportsGame) {
	s.ws.Broadcast(game.ID, s.sportsSnapshot(game))
}

func (s *Server) broadcastYahtzee(game *YahtzeeGame) {
	s.ws.Broadcast(game.ID, s.yahtzeeSnapshot(game))
}
