package server

import (
	"sort"
	"strconv"
	"strings"
)

// playerPalette is the fixed set of roster colors offered by the UI.
var playerPalette = []string{
	"#ff6b6b",
	"#4dabf7",
	"#51cf66",
	"#ffa94d",
	"#ffd43b",
	"#845ef7",
	"#20c997",
	"#e64980",
}

func pickPlayerColor(index int) string {
	if index < 0 {
		index = 0
	}
	return playerPalette[index%len(playerPalette)]
}

func validPaletteColor(color string) bool {
	for _, candidate := range playerPalette {
		if strings.EqualFold(candidate, color) {
			return true
		}
	}
	return false
}

func gameSortKey(id string) int {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return 0
	}
	value, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return value
}

func sortSummaries(list []GameSummary) {
	sort.Slice(list, func(i, j int) bool {
		return gameSortKey(list[i].ID) < gameSortKey(list[j].ID)
	})
}
