package db

import (
	"time"

	"gorm.io/datatypes"
)

// Player is a roster entry shared across games. The id is an opaque string
// assigned by the server; names are unique case-insensitively.
type Player struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:64;not null;uniqueIndex" json:"name"`
	Color     string    `gorm:"size:16;not null" json:"color"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

// GameResult is one row of game history: a player's final score and finishing
// rank for a completed game.
type GameResult struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	GameID   string    `gorm:"size:64;index;not null;uniqueIndex:idx_results_game_player" json:"game_id"`
	PlayerID string    `gorm:"size:36;index;not null;uniqueIndex:idx_results_game_player" json:"player_id"`
	GameKind string    `gorm:"size:16;not null" json:"game_kind"`
	Score    int       `gorm:"not null" json:"score"`
	Rank     int       `gorm:"not null" json:"rank"`
	PlayedAt time.Time `gorm:"not null" json:"played_at"`
}

// PlayerStats is the per-player aggregate maintained incrementally on every
// recorded result. TotalScore backs the running average.
type PlayerStats struct {
	PlayerID     string    `gorm:"primaryKey;size:36" json:"player_id"`
	GameKind     string    `gorm:"primaryKey;size:16" json:"game_kind"`
	GamesPlayed  int       `gorm:"not null" json:"games_played"`
	HighScore    int       `gorm:"not null" json:"high_score"`
	TotalScore   int       `gorm:"not null" json:"-"`
	AverageScore float64   `gorm:"not null" json:"average_score"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`
}

// GameEvent mirrors the in-memory append-only action log for finished games.
type GameEvent struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	GameID    string         `gorm:"size:64;index;not null" json:"game_id"`
	PlayerID  *string        `gorm:"size:36;index" json:"player_id,omitempty"`
	Type      string         `gorm:"size:64;not null" json:"type"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}
