package server

import (
	"scorekeeper/internal/sports"
	"scorekeeper/internal/yahtzee"
)

func (s *Server) sportsSnapshot(game *SportsGame) map[string]any {
	g := game.Game
	return map[string]any{
		"game_id":         game.ID,
		"kind":            string(g.Mode.Sport),
		"mode":            g.Mode.ID,
		"mode_label":      g.Mode.Label,
		"target_score":    g.TargetScore,
		"win_by":          g.Mode.WinBy,
		"time_remaining":  g.TimeRemaining,
		"shot_clock":      g.ShotClock,
		"is_game_started": g.IsGameStarted,
		"is_paused":       g.IsPaused,
		"is_game_over":    g.IsGameOver,
		"home":            teamPayload(g.Home),
		"away":            teamPayload(g.Away),
		"possession":      string(g.Possession),
		"quarter":         g.Quarter,
		"actions":         g.Mode.Actions(),
		"events":          eventPayloads(g.Events),
	}
}

func teamPayload(team sports.Team) map[string]any {
	return map[string]any{
		"name":     team.Name,
		"color":    team.Color,
		"score":    team.Score,
		"timeouts": team.Timeouts,
		"players":  team.Players,
	}
}

func eventPayloads(events []sports.Event) []map[string]any {
	list := make([]map[string]any, 0, len(events))
	for _, event := range events {
		list = append(list, map[string]any{
			"id":        event.ID,
			"timestamp": event.Timestamp,
			"side":      string(event.Side),
			"player_id": event.PlayerID,
			"action":    string(event.Action),
			"points":    event.Points,
		})
	}
	return list
}

func (s *Server) yahtzeeSnapshot(game *YahtzeeGame) map[string]any {
	g := game.Game
	totals := make(map[string]yahtzee.Totals, len(g.Players))
	for _, player := range g.Players {
		totals[player.ID] = g.PlayerTotals(player.ID)
	}
	var currentID string
	if current, ok := g.CurrentPlayer(); ok {
		currentID = current.ID
	}
	return map[string]any{
		"game_id":         game.ID,
		"kind":            "yahtzee",
		"players":         g.Players,
		"scores":          g.Scores,
		"totals":          totals,
		"current_turn":    g.CurrentTurn,
		"current_player":  currentID,
		"is_game_started": g.IsGameStarted,
		"is_game_over":    g.IsGameOver,
		"card_complete":   g.CardComplete(),
		"categories":      yahtzee.Categories,
	}
}
