package server

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"scorekeeper/internal/autosave"
	"scorekeeper/internal/config"
)

func TestSportsGameFlow(t *testing.T) {
	ts := newTestServer(t)
	gameID := createScoreboard(t, ts, "basketball_first_to_21")
	base := "/api/games/" + gameID

	snapshot := postIntent(t, ts, base+"/start", nil)
	if snapshot["is_game_started"] != true || snapshot["is_paused"] != true {
		t.Fatalf("expected started and paused, got %v / %v", snapshot["is_game_started"], snapshot["is_paused"])
	}

	postIntent(t, ts, base+"/resume", nil)
	for i := 0; i < 7; i++ {
		snapshot = postIntent(t, ts, base+"/action", map[string]string{
			"side":   "home",
			"action": "three_pointer",
		})
	}
	home := snapshot["home"].(map[string]any)
	if home["score"] != float64(21) {
		t.Fatalf("expected 21 points, got %v", home["score"])
	}
	if snapshot["is_game_over"] != true {
		t.Fatal("expected target score to end the game")
	}

	// Frozen scoreboard: further actions change nothing.
	snapshot = postIntent(t, ts, base+"/action", map[string]string{
		"side":   "away",
		"action": "two_pointer",
	})
	away := snapshot["away"].(map[string]any)
	if away["score"] != float64(0) {
		t.Fatalf("finished game accepted an action: %v", away["score"])
	}

	snapshot = postIntent(t, ts, base+"/reset", nil)
	if snapshot["is_game_over"] != false {
		t.Fatal("expected reset to clear the game")
	}
	events := snapshot["events"].([]any)
	if len(events) != 0 {
		t.Fatalf("expected empty event log after reset, got %d", len(events))
	}
}

func TestSportsExplicitEnd(t *testing.T) {
	ts := newTestServer(t)
	gameID := createScoreboard(t, ts, "football_timed")
	base := "/api/games/" + gameID

	postIntent(t, ts, base+"/start", nil)
	snapshot := postIntent(t, ts, base+"/end", nil)
	if snapshot["is_game_over"] != true || snapshot["is_paused"] != true {
		t.Fatalf("expected over and paused, got %v / %v", snapshot["is_game_over"], snapshot["is_paused"])
	}
}

func TestSportsPossessionAndTimeouts(t *testing.T) {
	ts := newTestServer(t)
	gameID := createScoreboard(t, ts, "basketball_timed")
	base := "/api/games/" + gameID

	postIntent(t, ts, base+"/start", nil)
	snapshot := postIntent(t, ts, base+"/possession", nil)
	if snapshot["possession"] != "away" {
		t.Fatalf("expected possession away, got %v", snapshot["possession"])
	}
	if snapshot["shot_clock"] != float64(24) {
		t.Fatalf("expected shot clock 24, got %v", snapshot["shot_clock"])
	}

	snapshot = postIntent(t, ts, base+"/timeout", map[string]string{"side": "home"})
	home := snapshot["home"].(map[string]any)
	if home["timeouts"] != float64(3) {
		t.Fatalf("expected 3 timeouts left, got %v", home["timeouts"])
	}
	if snapshot["is_paused"] != true {
		t.Fatal("expected timeout to pause the game")
	}

	snapshot = postIntent(t, ts, base+"/period", nil)
	if snapshot["quarter"] != float64(2) {
		t.Fatalf("expected Q2, got %v", snapshot["quarter"])
	}
	if snapshot["possession"] != "home" {
		t.Fatalf("expected home ball in Q2, got %v", snapshot["possession"])
	}
}

func TestSportsEventLogEndpoint(t *testing.T) {
	ts := newTestServer(t)
	gameID := createScoreboard(t, ts, "football_first_to_35")
	base := "/api/games/" + gameID

	postIntent(t, ts, base+"/start", nil)
	postIntent(t, ts, base+"/action", map[string]string{"side": "home", "action": "touchdown"})
	postIntent(t, ts, base+"/action", map[string]string{"side": "away", "action": "field_goal"})

	body := fetchSnapshot(t, ts, base+"/events")
	events := body["events"].([]any)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	first := events[0].(map[string]any)
	if first["action"] != "touchdown" || first["points"] != float64(6) {
		t.Fatalf("unexpected first event: %v", first)
	}
}

func TestYahtzeeGameFlow(t *testing.T) {
	ts := newTestServer(t)
	gameID := createYahtzee(t, ts)
	base := "/api/yahtzee/" + gameID

	adaID := joinYahtzee(t, ts, gameID, "Ada")
	graceID := joinYahtzee(t, ts, gameID, "Grace")

	snapshot := postIntent(t, ts, base+"/start", nil)
	if snapshot["current_player"] != adaID {
		t.Fatalf("expected Ada first, got %v", snapshot["current_player"])
	}

	// Joining after the first turn is rejected at the boundary.
	resp := doRequest(t, ts, http.MethodPost, base+"/join", map[string]string{"name": "Late"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, resp.StatusCode)
	}

	value := 18
	snapshot = postIntent(t, ts, base+"/score", map[string]any{
		"player_id": adaID,
		"category":  "sixes",
		"value":     value,
	})
	scores := snapshot["scores"].(map[string]any)
	adaScores := scores[adaID].(map[string]any)
	if adaScores["sixes"] != float64(18) {
		t.Fatalf("expected sixes 18, got %v", adaScores["sixes"])
	}

	snapshot = postIntent(t, ts, base+"/turn", nil)
	if snapshot["current_player"] != graceID {
		t.Fatalf("expected Grace's turn, got %v", snapshot["current_player"])
	}

	resp = doRequest(t, ts, http.MethodPost, base+"/score", map[string]any{
		"player_id": graceID,
		"category":  "lawn_bowling",
		"value":     1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected unknown category to 400, got %d", resp.StatusCode)
	}

	snapshot = postIntent(t, ts, base+"/end", nil)
	if snapshot["is_game_over"] != true {
		t.Fatal("expected game over after end")
	}

	snapshot = postIntent(t, ts, base+"/reset", nil)
	players := snapshot["players"].([]any)
	if len(players) != 2 {
		t.Fatalf("expected roster preserved on reset, got %d", len(players))
	}
	if snapshot["is_game_over"] != false {
		t.Fatal("expected reset to clear game over")
	}
}

func TestYahtzeeCardPreview(t *testing.T) {
	ts := newTestServer(t)
	gameID := createYahtzee(t, ts)

	body := fetchSnapshot(t, ts, "/api/yahtzee/"+gameID+"/card?dice=6,6,6,3,4")
	scores := body["scores"].(map[string]any)
	if scores["sixes"] != float64(18) {
		t.Fatalf("expected sixes 18, got %v", scores["sixes"])
	}
	if scores["three_of_a_kind"] != float64(25) {
		t.Fatalf("expected three of a kind 25, got %v", scores["three_of_a_kind"])
	}
	if scores["full_house"] != float64(0) {
		t.Fatalf("expected full house 0, got %v", scores["full_house"])
	}

	resp := doRequest(t, ts, http.MethodGet, "/api/yahtzee/"+gameID+"/card?dice=1,2", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestAutosaveRehydration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.db")
	saves, err := autosave.Open(path)
	if err != nil {
		t.Fatalf("open autosave: %v", err)
	}

	srv := New(nil, saves, config.Default(), nil)
	ts := httptest.NewServer(srv.Handler())
	gameID := createScoreboard(t, ts, "basketball_first_to_21")
	base := "/api/games/" + gameID
	postIntent(t, ts, base+"/start", nil)
	postIntent(t, ts, base+"/resume", nil)
	postIntent(t, ts, base+"/action", map[string]string{"side": "home", "action": "three_pointer"})

	yahtzeeID := createYahtzee(t, ts)
	joinYahtzee(t, ts, yahtzeeID, "Ada")
	ts.Close()
	if err := saves.Close(); err != nil {
		t.Fatalf("close autosave: %v", err)
	}

	reopened, err := autosave.Open(path)
	if err != nil {
		t.Fatalf("reopen autosave: %v", err)
	}
	t.Cleanup(func() { reopened.Close() })

	restored := New(nil, reopened, config.Default(), nil)
	ts2 := httptest.NewServer(restored.Handler())
	t.Cleanup(ts2.Close)

	snapshot := fetchSnapshot(t, ts2, base)
	home := snapshot["home"].(map[string]any)
	if home["score"] != float64(3) {
		t.Fatalf("expected restored score 3, got %v", home["score"])
	}
	if snapshot["is_game_started"] != true || snapshot["is_paused"] != true {
		t.Fatal("restored game must come back started and paused")
	}

	yahtzeeSnapshot := fetchSnapshot(t, ts2, "/api/yahtzee/"+yahtzeeID)
	players := yahtzeeSnapshot["players"].([]any)
	if len(players) != 1 {
		t.Fatalf("expected restored roster of 1, got %d", len(players))
	}

	// New games must not collide with restored ids.
	newID := createScoreboard(t, ts2, "football_timed")
	if newID == gameID || newID == yahtzeeID {
		t.Fatalf("id collision after restore: %s", newID)
	}
}

func TestCloseGameDropsAutosave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.db")
	saves, err := autosave.Open(path)
	if err != nil {
		t.Fatalf("open autosave: %v", err)
	}
	t.Cleanup(func() { saves.Close() })

	srv := New(nil, saves, config.Default(), nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	gameID := createScoreboard(t, ts, "basketball_first_to_11")
	postIntent(t, ts, "/api/games/"+gameID+"/close", nil)

	resp := doRequest(t, ts, http.MethodGet, "/api/games/"+gameID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected closed game to 404, got %d", resp.StatusCode)
	}
	if _, ok, _ := saves.Load("sports:" + gameID); ok {
		t.Fatal("expected autosave row to be deleted")
	}
}
