package yahtzee

// Totals are the derived score card summary lines for one player.
type Totals struct {
	UpperSubtotal int `json:"upper_subtotal"`
	UpperBonus    int `json:"upper_bonus"`
	LowerSubtotal int `json:"lower_subtotal"`
	GrandTotal    int `json:"grand_total"`
}

// PlayerTotals recomputes the summary lines from the recorded entries, treating
// unset categories as 0. The bonus is 35 once the upper subtotal reaches 63.
func (g *Game) PlayerTotals(playerID string) Totals {
	scores := g.Scores[playerID]

	var totals Totals
	for _, category := range UpperCategories {
		totals.UpperSubtotal += scores[category]
	}
	if totals.UpperSubtotal >= upperBonusThreshold {
		totals.UpperBonus = upperBonusValue
	}
	for _, category := range LowerCategories {
		totals.LowerSubtotal += scores[category]
	}
	totals.GrandTotal = totals.UpperSubtotal + totals.UpperBonus + totals.LowerSubtotal
	return totals
}

// Standings returns player ids ordered by grand total, highest first. Ties keep
// roster order so ranks are deterministic.
func (g *Game) Standings() []string {
	ids := make([]string, 0, len(g.Players))
	for _, player := range g.Players {
		ids = append(ids, player.ID)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0; j-- {
			if g.PlayerTotals(ids[j]).GrandTotal > g.PlayerTotals(ids[j-1]).GrandTotal {
				ids[j], ids[j-1] = ids[j-1], ids[j]
			} else {
				break
			}
		}
	}
	return ids
}
