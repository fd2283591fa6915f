package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"scorekeeper/internal/sports"
)

const (
	maxNameLength = 20
	maxTimeLength = 4 * 60 * 60
	maxFinalScore = 200
)

func validateName(name string) (string, error) {
	trimmed := strings.Join(strings.Fields(name), " ")
	if trimmed == "" {
		return "", errors.New("name is required")
	}
	if len(trimmed) > maxNameLength {
		return "", fmt.Errorf("name must be %d characters or fewer", maxNameLength)
	}
	return trimmed, nil
}

func validateColor(color string, fallbackIndex int) (string, error) {
	if color == "" {
		return pickPlayerColor(fallbackIndex), nil
	}
	if !validPaletteColor(color) {
		return "", errors.New("color is not in the palette")
	}
	return color, nil
}

// validateSettings converts the create-game request into the closed Settings
// structure, rejecting values a mode cannot use.
func validateSettings(mode sports.Mode, req createGameRequest) (sports.Settings, error) {
	settings := sports.Settings{
		HomeTeam: sports.TeamSetup{Name: strings.TrimSpace(req.HomeTeam), Color: req.HomeColor},
		AwayTeam: sports.TeamSetup{Name: strings.TrimSpace(req.AwayTeam), Color: req.AwayColor},
	}
	if req.TimeLength != nil {
		if mode.TimeLimit == nil {
			return sports.Settings{}, errors.New("mode has no game clock")
		}
		if *req.TimeLength <= 0 || *req.TimeLength > maxTimeLength {
			return sports.Settings{}, errors.New("time length out of range")
		}
		settings.TimeLength = req.TimeLength
	}
	if req.FinalScore != nil {
		if mode.TargetScore == nil {
			return sports.Settings{}, errors.New("mode has no target score")
		}
		if *req.FinalScore <= 0 || *req.FinalScore > maxFinalScore {
			return sports.Settings{}, errors.New("final score out of range")
		}
		settings.FinalScore = req.FinalScore
	}
	return settings, nil
}

// parseDiceQuery reads a "dice=1,2,3,4,5" query parameter.
func parseDiceQuery(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 5 {
		return nil, errors.New("dice must be five comma-separated values")
	}
	dice := make([]int, 0, 5)
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 1 || value > 6 {
			return nil, errors.New("dice values must be 1-6")
		}
		dice = append(dice, value)
	}
	return dice, nil
}
