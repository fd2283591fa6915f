package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scorekeeper/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := New(nil, nil, config.Default(), nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func createScoreboard(t *testing.T, ts *httptest.Server, mode string) string {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{
		"mode":      mode,
		"home_team": "Hawks",
		"away_team": "Bulls",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	return body["game_id"].(string)
}

func createYahtzee(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/yahtzee", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	return body["game_id"].(string)
}

func joinYahtzee(t *testing.T, ts *httptest.Server, gameID, name string) string {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/yahtzee/"+gameID+"/join", map[string]string{
		"name": name,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	players := body["players"].([]any)
	for _, entry := range players {
		player := entry.(map[string]any)
		if player["name"] == name {
			return player["id"].(string)
		}
	}
	t.Fatalf("player %q missing from snapshot", name)
	return ""
}

func fetchSnapshot(t *testing.T, ts *httptest.Server, path string) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodGet, path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func postIntent(t *testing.T, ts *httptest.Server, path string, payload any) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, path, payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST %s: expected status %d, got %d", path, http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}
