package server

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"scorekeeper/internal/autosave"
	"scorekeeper/internal/config"
	"scorekeeper/internal/db"
	"scorekeeper/internal/metrics"

	"gorm.io/gorm"
)

type Server struct {
	store    *Store
	players  *db.PlayerStore
	history  *db.HistoryStore
	saves    *autosave.Store
	ws       *wsHub
	cfg      config.Config
	metrics  *metrics.Recorder
	timersMu sync.Mutex
	timers   map[string]*time.Timer

	finishedMu sync.Mutex
	finished   map[string]struct{}
}

// New wires the server. The gorm connection, autosave store and recorder may
// each be nil: the scoreboard keeps working in memory and background writes
// become no-ops, matching the availability-over-consistency persistence policy.
func New(conn *gorm.DB, saves *autosave.Store, cfg config.Config, recorder *metrics.Recorder) *Server {
	s := &Server{
		store:    NewStore(),
		players:  db.NewPlayerStore(conn),
		history:  db.NewHistoryStore(conn),
		saves:    saves,
		ws:       newWSHub(),
		cfg:      cfg,
		metrics:  recorder,
		timers:   make(map[string]*time.Timer),
		finished: make(map[string]struct{}),
	}
	s.restoreAutosaves()
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /scoreboard/", s.handleScoreboardView)
	mux.HandleFunc("GET /yahtzee/", s.handleYahtzeeView)

	mux.HandleFunc("POST /api/players", s.handleCreatePlayer)
	mux.HandleFunc("GET /api/players", s.handleListPlayers)
	mux.HandleFunc("GET /api/players/", s.handlePlayerSubroutes)
	mux.HandleFunc("PUT /api/players/", s.handlePlayerSubroutes)
	mux.HandleFunc("DELETE /api/players/", s.handlePlayerSubroutes)

	mux.HandleFunc("GET /api/modes", s.handleListModes)
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("GET /api/games/", s.handleGameSubroutes)
	mux.HandleFunc("POST /api/games/", s.handleGameSubroutes)

	mux.HandleFunc("POST /api/yahtzee", s.handleCreateYahtzee)
	mux.HandleFunc("GET /api/yahtzee/", s.handleYahtzeeSubroutes)
	mux.HandleFunc("POST /api/yahtzee/", s.handleYahtzeeSubroutes)

	mux.HandleFunc("GET /ws/games/", s.handleWebsocket)
	if s.cfg.MetricsEnabled {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}

// parseSubPath splits "/{prefix}/{id}" or "/{prefix}/{id}/{action}" paths.
func parseSubPath(path, prefix string) (id, action string, ok bool) {
	rest, found := strings.CutPrefix(path, prefix)
	if !found {
		return "", "", false
	}
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return "", "", false
	}
	parts := strings.Split(rest, "/")
	switch len(parts) {
	case 1:
		return parts[0], "", true
	case 2:
		return parts[0], parts[1], true
	}
	return "", "", false
}
