package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrPlayerNotFound is returned for lookups of unknown player ids.
var ErrPlayerNotFound = errors.New("player not found")

// ErrDuplicateName is returned when a roster name is already taken.
var ErrDuplicateName = errors.New("player name already taken")

// PlayerStore is the roster CRUD surface over Postgres.
type PlayerStore struct {
	db *gorm.DB
}

// NewPlayerStore wraps a gorm connection. A nil connection yields a store
// whose operations fail with gorm.ErrInvalidDB-free explicit errors.
func NewPlayerStore(conn *gorm.DB) *PlayerStore {
	return &PlayerStore{db: conn}
}

// Create inserts a player. Names collide case-insensitively.
func (s *PlayerStore) Create(player *Player) error {
	if s.db == nil {
		return errors.New("database not configured")
	}
	taken, err := s.nameTaken(player.Name, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateName
	}
	return s.db.Create(player).Error
}

// Update replaces name and color for an existing player.
func (s *PlayerStore) Update(player *Player) error {
	if s.db == nil {
		return errors.New("database not configured")
	}
	taken, err := s.nameTaken(player.Name, player.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateName
	}
	result := s.db.Model(&Player{}).Where("id = ?", player.ID).
		Updates(map[string]any{"name": player.Name, "color": player.Color})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// Delete removes a player by id.
func (s *PlayerStore) Delete(id string) error {
	if s.db == nil {
		return errors.New("database not configured")
	}
	result := s.db.Delete(&Player{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// Get looks a player up by id.
func (s *PlayerStore) Get(id string) (*Player, error) {
	if s.db == nil {
		return nil, errors.New("database not configured")
	}
	var player Player
	if err := s.db.First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// List returns the full roster ordered by name.
func (s *PlayerStore) List() ([]Player, error) {
	if s.db == nil {
		return nil, errors.New("database not configured")
	}
	var players []Player
	if err := s.db.Order("name asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (s *PlayerStore) nameTaken(name, excludeID string) (bool, error) {
	var count int64
	query := s.db.Model(&Player{}).Where("lower(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
