package scoring

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Category identifies one of the 13 scorecard boxes
type Category string

const (
	// Upper section
	CategoryOnes   Category = "ones"
	CategoryTwos   Category = "twos"
	CategoryThrees Category = "threes"
	CategoryFours  Category = "fours"
	CategoryFives  Category = "fives"
	CategorySixes  Category = "sixes"

	// Lower section
	CategoryThreeOfAKind  Category = "threeOfAKind"
	CategoryFourOfAKind   Category = "fourOfAKind"
	CategoryFullHouse     Category = "fullHouse"
	CategorySmallStraight Category = "smallStraight"
	CategoryLargeStraight Category = "largeStraight"
	CategoryYahtzee       Category = "yahtzee"
	CategoryChance        Category = "chance"
)

// UpperCategories are the face-count boxes, in scorecard order
var UpperCategories = []Category{
	CategoryOnes,
	CategoryTwos,
	CategoryThrees,
	CategoryFours,
	CategoryFives,
	CategorySixes,
}

// LowerCategories are the combination boxes, in scorecard order
var LowerCategories = []Category{
	CategoryThreeOfAKind,
	CategoryFourOfAKind,
	CategoryFullHouse,
	CategorySmallStraight,
	CategoryLargeStraight,
	CategoryYahtzee,
	CategoryChance,
}

// Categories lists all 13 categories in scorecard order
var Categories = append(append([]Category{}, UpperCategories...), LowerCategories...)

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryOnes, CategoryTwos, CategoryThrees, CategoryFours, CategoryFives, CategorySixes,
		CategoryThreeOfAKind, CategoryFourOfAKind, CategoryFullHouse,
		CategorySmallStraight, CategoryLargeStraight, CategoryYahtzee, CategoryChance:
		return true
	default:
		return false
	}
}

// IsUpper reports whether c belongs to the upper section
func (c Category) IsUpper() bool {
	return c.face() != 0
}

// face returns the die face an upper category counts, or 0 for lower categories
func (c Category) face() int {
	switch c {
	case CategoryOnes:
		return 1
	case CategoryTwos:
		return 2
	case CategoryThrees:
		return 3
	case CategoryFours:
		return 4
	case CategoryFives:
		return 5
	case CategorySixes:
		return 6
	default:
		return 0
	}
}

// DisplayName returns the human readable label shown on a scorecard
func (c Category) DisplayName() string {
	switch c {
	case CategoryOnes:
		return "Ones"
	case CategoryTwos:
		return "Twos"
	case CategoryThrees:
		return "Threes"
	case CategoryFours:
		return "Fours"
	case CategoryFives:
		return "Fives"
	case CategorySixes:
		return "Sixes"
	case CategoryThreeOfAKind:
		return "Three of a Kind"
	case CategoryFourOfAKind:
		return "Four of a Kind"
	case CategoryFullHouse:
		return "Full House"
	case CategorySmallStraight:
		return "Small Straight"
	case CategoryLargeStraight:
		return "Large Straight"
	case CategoryYahtzee:
		return "Yahtzee"
	case CategoryChance:
		return "Chance"
	default:
		return string(c)
	}
}

// String implements fmt.Stringer
func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a user supplied identifier to a Category.
// Matching ignores case, underscores, dashes and spaces, so "three_of_a_kind"
// and "Three of a Kind" both resolve to CategoryThreeOfAKind.
func ParseCategory(s string) (Category, error) {
	key := normalizeCategory(s)
	for _, c := range Categories {
		if normalizeCategory(string(c)) == key {
			return c, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidCategory, "unknown category %q", s)
}

func normalizeCategory(s string) string {
	replacer := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(replacer.Replace(strings.TrimSpace(s)))
}
