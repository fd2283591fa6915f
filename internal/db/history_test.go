package db

import "testing"

func TestApplyResult(t *testing.T) {
	var stats PlayerStats

	ApplyResult(&stats, 21)
	if stats.GamesPlayed != 1 || stats.HighScore != 21 || stats.AverageScore != 21 {
		t.Fatalf("after first game: %+v", stats)
	}

	ApplyResult(&stats, 11)
	if stats.GamesPlayed != 2 {
		t.Fatalf("expected 2 games, got %d", stats.GamesPlayed)
	}
	if stats.HighScore != 21 {
		t.Fatalf("high score must keep the maximum, got %d", stats.HighScore)
	}
	if stats.AverageScore != 16 {
		t.Fatalf("expected average 16, got %v", stats.AverageScore)
	}

	ApplyResult(&stats, 40)
	if stats.HighScore != 40 {
		t.Fatalf("expected new high score 40, got %d", stats.HighScore)
	}
	if stats.AverageScore != 24 {
		t.Fatalf("expected average 24, got %v", stats.AverageScore)
	}
}

func TestApplyResultNegativeFirstScore(t *testing.T) {
	var stats PlayerStats
	ApplyResult(&stats, 0)
	if stats.HighScore != 0 || stats.GamesPlayed != 1 {
		t.Fatalf("after scoreless game: %+v", stats)
	}
}

func TestStoresReportDisabledWithoutConnection(t *testing.T) {
	history := NewHistoryStore(nil)
	if history.Enabled() {
		t.Fatal("nil-backed history store reported enabled")
	}
	if err := history.RecordResult(&GameResult{}); err == nil {
		t.Fatal("expected error without a database")
	}

	players := NewPlayerStore(nil)
	if err := players.Create(&Player{ID: "p1", Name: "Ada"}); err == nil {
		t.Fatal("expected error without a database")
	}
	if _, err := players.Get("p1"); err == nil {
		t.Fatal("expected error without a database")
	}
}
