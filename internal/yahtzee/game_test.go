package yahtzee

import (
	"encoding/json"
	"testing"
	"time"
)

func intPtr(v int) *int {
	return &v
}

func twoPlayerGame() *Game {
	g := NewGame()
	g.AddPlayer(Player{ID: "p1", Name: "Ada"})
	g.AddPlayer(Player{ID: "p2", Name: "Grace"})
	return g
}

func TestAddPlayerIgnoresDuplicates(t *testing.T) {
	g := twoPlayerGame()
	g.AddPlayer(Player{ID: "p1", Name: "Imposter"})
	if len(g.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(g.Players))
	}
	if g.Players[0].Name != "Ada" {
		t.Fatalf("duplicate join overwrote the original: %q", g.Players[0].Name)
	}
}

func TestTurnRotationWraps(t *testing.T) {
	g := twoPlayerGame()
	g.Start()
	if current, _ := g.CurrentPlayer(); current.ID != "p1" {
		t.Fatalf("expected p1 first, got %s", current.ID)
	}
	g.NextTurn()
	if current, _ := g.CurrentPlayer(); current.ID != "p2" {
		t.Fatalf("expected p2 second, got %s", current.ID)
	}
	g.NextTurn()
	if current, _ := g.CurrentPlayer(); current.ID != "p1" {
		t.Fatalf("expected wrap back to p1, got %s", current.ID)
	}
}

func TestNextTurnWithEmptyRoster(t *testing.T) {
	g := NewGame()
	g.NextTurn()
	if g.CurrentTurn != 0 {
		t.Fatalf("expected turn pointer to stay at 0, got %d", g.CurrentTurn)
	}
}

func TestRemovePlayerClampsTurn(t *testing.T) {
	g := twoPlayerGame()
	g.Start()
	g.NextTurn()
	g.RemovePlayer("p2")
	if g.CurrentTurn != 0 {
		t.Fatalf("expected turn clamped to 0, got %d", g.CurrentTurn)
	}
	if _, ok := g.Scores["p2"]; ok {
		t.Fatal("expected removed player's scores to be dropped")
	}
}

func TestSetScoreAndClear(t *testing.T) {
	g := twoPlayerGame()
	g.Start()
	g.SetScore("p1", CategoryChance, intPtr(25))
	if g.Scores["p1"][CategoryChance] != 25 {
		t.Fatalf("expected chance 25, got %d", g.Scores["p1"][CategoryChance])
	}
	g.SetScore("p1", CategoryChance, nil)
	if _, ok := g.Scores["p1"][CategoryChance]; ok {
		t.Fatal("expected cleared entry to be unset")
	}
	g.SetScore("ghost", CategoryChance, intPtr(10))
	if _, ok := g.Scores["ghost"]; ok {
		t.Fatal("expected unknown player to be ignored")
	}
}

func TestUpperBonus(t *testing.T) {
	g := twoPlayerGame()
	g.Start()
	// 3+6+9+12+15+18 = 63, exactly at the threshold.
	for i, category := range UpperCategories {
		g.SetScore("p1", category, intPtr((i+1)*3))
	}
	totals := g.PlayerTotals("p1")
	if totals.UpperSubtotal != 63 {
		t.Fatalf("expected subtotal 63, got %d", totals.UpperSubtotal)
	}
	if totals.UpperBonus != 35 {
		t.Fatalf("expected bonus 35, got %d", totals.UpperBonus)
	}
	if totals.GrandTotal != 98 {
		t.Fatalf("expected grand total 98, got %d", totals.GrandTotal)
	}

	g.SetScore("p1", CategorySixes, intPtr(12))
	totals = g.PlayerTotals("p1")
	if totals.UpperSubtotal != 57 {
		t.Fatalf("expected subtotal 57, got %d", totals.UpperSubtotal)
	}
	if totals.UpperBonus != 0 {
		t.Fatalf("expected no bonus below 63, got %d", totals.UpperBonus)
	}
}

func TestStandingsOrderAndTies(t *testing.T) {
	g := twoPlayerGame()
	g.AddPlayer(Player{ID: "p3", Name: "Edsger"})
	g.Start()
	g.SetScore("p1", CategoryChance, intPtr(10))
	g.SetScore("p2", CategoryChance, intPtr(30))
	g.SetScore("p3", CategoryChance, intPtr(10))

	standings := g.Standings()
	want := []string{"p2", "p1", "p3"}
	for i, id := range want {
		if standings[i] != id {
			t.Fatalf("standings[%d] = %s, want %s (full: %v)", i, standings[i], id, standings)
		}
	}
}

func TestCardComplete(t *testing.T) {
	g := twoPlayerGame()
	g.Start()
	if g.CardComplete() {
		t.Fatal("empty card reported complete")
	}
	for _, player := range g.Players {
		for _, category := range Categories {
			g.SetScore(player.ID, category, intPtr(1))
		}
	}
	if !g.CardComplete() {
		t.Fatal("full card reported incomplete")
	}
}

func TestResetKeepsRoster(t *testing.T) {
	g := twoPlayerGame()
	g.Start()
	g.SetScore("p1", CategoryChance, intPtr(25))
	g.NextTurn()
	g.End()
	g.Reset()
	if len(g.Players) != 2 {
		t.Fatalf("expected roster preserved, got %d players", len(g.Players))
	}
	if len(g.Scores["p1"]) != 0 {
		t.Fatal("expected scores wiped on reset")
	}
	if g.IsGameStarted || g.IsGameOver || g.CurrentTurn != 0 {
		t.Fatalf("expected clean lifecycle flags, got started=%v over=%v turn=%d",
			g.IsGameStarted, g.IsGameOver, g.CurrentTurn)
	}
}

func TestSnapshotLoadIsIdempotent(t *testing.T) {
	g := twoPlayerGame()
	g.Start()
	g.SetScore("p1", CategoryYahtzee, intPtr(50))
	g.NextTurn()
	snapshot := g.Snapshot(time.Now())

	restored := NewGame()
	if err := restored.Load(snapshot); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	if err := restored.Load(snapshot); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if restored.CurrentTurn != 1 {
		t.Fatalf("expected turn 1, got %d", restored.CurrentTurn)
	}
	if restored.Scores["p1"][CategoryYahtzee] != 50 {
		t.Fatalf("expected yahtzee 50, got %d", restored.Scores["p1"][CategoryYahtzee])
	}

	// Mutating the restored game must not write through to the snapshot.
	restored.SetScore("p1", CategoryChance, intPtr(9))
	if _, ok := snapshot.Scores["p1"][CategoryChance]; ok {
		t.Fatal("snapshot shares state with the restored game")
	}
}

func TestLoadRejectsCorruptSnapshots(t *testing.T) {
	if _, err := DecodeSnapshot([]byte("{not json")); err == nil {
		t.Fatal("expected decode error for malformed payload")
	}

	g := twoPlayerGame()
	snapshot := g.Snapshot(time.Now())
	snapshot.CurrentTurn = 7
	if err := NewGame().Load(snapshot); err == nil {
		t.Fatal("expected out-of-range turn to be rejected")
	}

	snapshot = g.Snapshot(time.Now())
	snapshot.Scores = map[string]map[Category]int{"ghost": {CategoryChance: 1}}
	if err := NewGame().Load(snapshot); err == nil {
		t.Fatal("expected unknown player reference to be rejected")
	}
}

func TestSnapshotRoundTripsThroughJSON(t *testing.T) {
	g := twoPlayerGame()
	g.Start()
	g.SetScore("p2", CategoryFullHouse, intPtr(25))
	data, err := json.Marshal(g.Snapshot(time.Now()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	snapshot, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	restored := NewGame()
	if err := restored.Load(snapshot); err != nil {
		t.Fatalf("load: %v", err)
	}
	if restored.Scores["p2"][CategoryFullHouse] != 25 {
		t.Fatalf("expected full house 25 after round trip, got %d", restored.Scores["p2"][CategoryFullHouse])
	}
}
