package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoryStore records finished games and maintains per-player aggregates.
type HistoryStore struct {
	db *gorm.DB
}

// NewHistoryStore wraps a gorm connection.
func NewHistoryStore(conn *gorm.DB) *HistoryStore {
	return &HistoryStore{db: conn}
}

// Enabled reports whether a database connection is configured.
func (s *HistoryStore) Enabled() bool {
	return s != nil && s.db != nil
}

// RecordResult appends one game-history row and updates the player's stats
// incrementally in the same transaction. Re-recording the same game/player
// pair is ignored so retried writes stay idempotent.
func (s *HistoryStore) RecordResult(result *GameResult) error {
	if s.db == nil {
		return errors.New("database not configured")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(result)
		if insert.Error != nil {
			return insert.Error
		}
		if insert.RowsAffected == 0 {
			return nil
		}

		var stats PlayerStats
		err := tx.Where("player_id = ? AND game_kind = ?", result.PlayerID, result.GameKind).
			First(&stats).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stats = PlayerStats{PlayerID: result.PlayerID, GameKind: result.GameKind}
		} else if err != nil {
			return err
		}
		ApplyResult(&stats, result.Score)
		return tx.Save(&stats).Error
	})
}

// ApplyResult folds one final score into the aggregate.
func ApplyResult(stats *PlayerStats, score int) {
	stats.GamesPlayed++
	stats.TotalScore += score
	if score > stats.HighScore || stats.GamesPlayed == 1 {
		stats.HighScore = score
	}
	stats.AverageScore = float64(stats.TotalScore) / float64(stats.GamesPlayed)
}

// PlayerHistory returns a player's game results, most recent first.
func (s *HistoryStore) PlayerHistory(playerID string) ([]GameResult, error) {
	if s.db == nil {
		return nil, errors.New("database not configured")
	}
	var results []GameResult
	err := s.db.Where("player_id = ?", playerID).Order("played_at desc").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// PlayerStats returns the per-kind aggregates for a player.
func (s *HistoryStore) PlayerStats(playerID string) ([]PlayerStats, error) {
	if s.db == nil {
		return nil, errors.New("database not configured")
	}
	var stats []PlayerStats
	err := s.db.Where("player_id = ?", playerID).Order("game_kind asc").Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// AppendEvents mirrors a finished game's action log into Postgres.
func (s *HistoryStore) AppendEvents(events []GameEvent) error {
	if s.db == nil {
		return errors.New("database not configured")
	}
	if len(events) == 0 {
		return nil
	}
	return s.db.Create(&events).Error
}
