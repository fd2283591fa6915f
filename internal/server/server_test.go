package server

import (
	"net/http"
	"testing"
)

func TestHomePage(t *testing.T) {
	ts := newTestServer(t)
	resp := doRequest(t, ts, http.MethodGet, "/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestListModes(t *testing.T) {
	ts := newTestServer(t)

	body := fetchSnapshot(t, ts, "/api/modes")
	modes := body["modes"].([]any)
	if len(modes) != 5 {
		t.Fatalf("expected 5 modes, got %d", len(modes))
	}

	body = fetchSnapshot(t, ts, "/api/modes?sport=football")
	modes = body["modes"].([]any)
	if len(modes) != 2 {
		t.Fatalf("expected 2 football modes, got %d", len(modes))
	}
}

func TestCreateScoreboard(t *testing.T) {
	ts := newTestServer(t)
	gameID := createScoreboard(t, ts, "basketball_first_to_21")

	snapshot := fetchSnapshot(t, ts, "/api/games/"+gameID)
	if snapshot["mode"] != "basketball_first_to_21" {
		t.Fatalf("unexpected mode %v", snapshot["mode"])
	}
	home := snapshot["home"].(map[string]any)
	if home["name"] != "Hawks" {
		t.Fatalf("expected home team Hawks, got %v", home["name"])
	}
	if snapshot["is_game_started"] != false {
		t.Fatal("new game must not be started")
	}
}

func TestCreateScoreboardRejectsBadMode(t *testing.T) {
	ts := newTestServer(t)
	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{"mode": "cricket"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateScoreboardRejectsMismatchedSettings(t *testing.T) {
	ts := newTestServer(t)

	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{
		"mode":        "basketball_first_to_11",
		"time_length": 600,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected clockless mode to reject time_length, got %d", resp.StatusCode)
	}

	resp = doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{
		"mode":        "basketball_timed",
		"final_score": 50,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected targetless mode to reject final_score, got %d", resp.StatusCode)
	}

	resp = doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{
		"sport": "football",
		"mode":  "basketball_timed",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected sport/mode mismatch to be rejected, got %d", resp.StatusCode)
	}
}

func TestGameListIncludesBothKinds(t *testing.T) {
	ts := newTestServer(t)
	createScoreboard(t, ts, "football_timed")
	createYahtzee(t, ts)

	body := fetchSnapshot(t, ts, "/api/games")
	games := body["games"].([]any)
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
}

func TestScoreboardView(t *testing.T) {
	ts := newTestServer(t)
	gameID := createScoreboard(t, ts, "basketball_timed")
	resp := doRequest(t, ts, http.MethodGet, "/scoreboard/"+gameID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestYahtzeeView(t *testing.T) {
	ts := newTestServer(t)
	gameID := createYahtzee(t, ts)
	resp := doRequest(t, ts, http.MethodGet, "/yahtzee/"+gameID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestMissingGameReturns404(t *testing.T) {
	ts := newTestServer(t)
	resp := doRequest(t, ts, http.MethodGet, "/api/games/game-999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
	resp = doRequest(t, ts, http.MethodPost, "/api/games/game-999/start", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestPlayersUnavailableWithoutDatabase(t *testing.T) {
	ts := newTestServer(t)
	resp := doRequest(t, ts, http.MethodPost, "/api/players", map[string]string{"name": "Ada"})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	resp := doRequest(t, ts, http.MethodGet, "/metrics", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}
