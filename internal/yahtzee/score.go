package yahtzee

// Score evaluates a five-die roll against a category. It is a pure function and
// never panics: out-of-range dice are ignored for face counts and an unknown
// category scores 0.
func Score(dice []int, category Category) int {
	counts := faceCounts(dice)

	if face, ok := faceValues[category]; ok {
		return counts[face] * face
	}

	switch category {
	case CategoryThreeOfAKind:
		if maxCount(counts) >= 3 {
			return sum(dice)
		}
		return 0
	case CategoryFourOfAKind:
		if maxCount(counts) >= 4 {
			return sum(dice)
		}
		return 0
	case CategoryFullHouse:
		// Strict count match: a five-of-a-kind is not a full house.
		if hasCount(counts, 3) && hasCount(counts, 2) {
			return fullHouseScore
		}
		return 0
	case CategorySmallStraight:
		if longestRun(counts) >= 4 {
			return smallStraightScore
		}
		return 0
	case CategoryLargeStraight:
		if longestRun(counts) >= 5 {
			return largeStraightScore
		}
		return 0
	case CategoryYahtzee:
		if maxCount(counts) == 5 {
			return yahtzeeScore
		}
		return 0
	case CategoryChance:
		return sum(dice)
	}
	return 0
}

// ScoreCard enumerates the score for every category given one roll.
func ScoreCard(dice []int) map[Category]int {
	card := make(map[Category]int, len(Categories))
	for _, category := range Categories {
		card[category] = Score(dice, category)
	}
	return card
}

// ValidDice reports whether dice is a five-die roll with faces 1-6.
func ValidDice(dice []int) bool {
	if len(dice) != 5 {
		return false
	}
	for _, die := range dice {
		if die < 1 || die > 6 {
			return false
		}
	}
	return true
}

func faceCounts(dice []int) [7]int {
	var counts [7]int
	for _, die := range dice {
		if die >= 1 && die <= 6 {
			counts[die]++
		}
	}
	return counts
}

func maxCount(counts [7]int) int {
	best := 0
	for face := 1; face <= 6; face++ {
		if counts[face] > best {
			best = counts[face]
		}
	}
	return best
}

func hasCount(counts [7]int, want int) bool {
	for face := 1; face <= 6; face++ {
		if counts[face] == want {
			return true
		}
	}
	return false
}

func longestRun(counts [7]int) int {
	best, run := 0, 0
	for face := 1; face <= 6; face++ {
		if counts[face] > 0 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

func sum(dice []int) int {
	total := 0
	for _, die := range dice {
		total += die
	}
	return total
}
