package yahtzee

// Category identifies one of the 13 score card entries.
type Category string

const (
	CategoryOnes   Category = "ones"
	CategoryTwos   Category = "twos"
	CategoryThrees Category = "threes"
	CategoryFours  Category = "fours"
	CategoryFives  Category = "fives"
	CategorySixes  Category = "sixes"

	CategoryThreeOfAKind  Category = "three_of_a_kind"
	CategoryFourOfAKind   Category = "four_of_a_kind"
	CategoryFullHouse     Category = "full_house"
	CategorySmallStraight Category = "small_straight"
	CategoryLargeStraight Category = "large_straight"
	CategoryYahtzee       Category = "yahtzee"
	CategoryChance        Category = "chance"
)

// UpperCategories count a single die face and feed the upper-section bonus.
var UpperCategories = []Category{
	CategoryOnes, CategoryTwos, CategoryThrees,
	CategoryFours, CategoryFives, CategorySixes,
}

// LowerCategories score dice-combination patterns.
var LowerCategories = []Category{
	CategoryThreeOfAKind, CategoryFourOfAKind, CategoryFullHouse,
	CategorySmallStraight, CategoryLargeStraight, CategoryYahtzee,
	CategoryChance,
}

// Categories lists every score card entry in display order.
var Categories = append(append([]Category{}, UpperCategories...), LowerCategories...)

const (
	upperBonusThreshold = 63
	upperBonusValue     = 35

	fullHouseScore     = 25
	smallStraightScore = 30
	largeStraightScore = 40
	yahtzeeScore       = 50
)

// faceValues maps each upper category to the die face it counts.
var faceValues = map[Category]int{
	CategoryOnes:   1,
	CategoryTwos:   2,
	CategoryThrees: 3,
	CategoryFours:  4,
	CategoryFives:  5,
	CategorySixes:  6,
}

// ValidCategory reports whether name is one of the 13 score card entries.
func ValidCategory(name string) bool {
	for _, category := range Categories {
		if category == Category(name) {
			return true
		}
	}
	return false
}
