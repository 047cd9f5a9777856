// Package scoring implements the Yahtzee category rules over a five-die hand.
package scoring

import "github.com/cockroachdb/errors"

// Fixed box values
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50
)

var smallStraightRuns = [][]int{
	{1, 2, 3, 4},
	{2, 3, 4, 5},
	{3, 4, 5, 6},
}

// ScoreCategory scores dice in a single category
func ScoreCategory(category Category, dice []int) (int, error) {
	hand, err := NewHand(dice)
	if err != nil {
		return 0, err
	}
	return hand.Score(category)
}

// ScoreAll scores dice in every category
func ScoreAll(dice []int) (map[Category]int, error) {
	hand, err := NewHand(dice)
	if err != nil {
		return nil, err
	}
	return hand.scoreAll(), nil
}

// Score scores the hand in a single category
func (h Hand) Score(category Category) (int, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}
	counts := h.counts()

	switch category {
	case CategoryOnes, CategoryTwos, CategoryThrees, CategoryFours, CategoryFives, CategorySixes:
		face := category.face()
		return counts[face] * face, nil
	case CategoryThreeOfAKind:
		if maxCount(counts) >= 3 {
			return h.Sum(), nil
		}
		return 0, nil
	case CategoryFourOfAKind:
		if maxCount(counts) >= 4 {
			return h.Sum(), nil
		}
		return 0, nil
	case CategoryFullHouse:
		// exactly two faces, split 2/3; five of a kind does not qualify
		if distinct(counts) == 2 && maxCount(counts) == 3 {
			return FullHouseScore, nil
		}
		return 0, nil
	case CategorySmallStraight:
		for _, run := range smallStraightRuns {
			if containsAll(counts, run) {
				return SmallStraightScore, nil
			}
		}
		return 0, nil
	case CategoryLargeStraight:
		if distinct(counts) == HandSize && (counts[1] == 0 || counts[6] == 0) {
			return LargeStraightScore, nil
		}
		return 0, nil
	case CategoryYahtzee:
		if h.IsYahtzee() {
			return YahtzeeScore, nil
		}
		return 0, nil
	case CategoryChance:
		return h.Sum(), nil
	default:
		return 0, errors.Wrapf(ErrInvalidCategory, "unknown category %q", string(category))
	}
}

// scoreAll scores an already validated hand in every category
func (h Hand) scoreAll() map[Category]int {
	scores := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		// every entry of Categories is valid, Score cannot fail here
		scores[c], _ = h.Score(c)
	}
	return scores
}

func maxCount(counts [MaxFace + 1]int) int {
	highest := 0
	for _, c := range counts {
		if c > highest {
			highest = c
		}
	}
	return highest
}

func distinct(counts [MaxFace + 1]int) int {
	n := 0
	for _, c := range counts {
		if c > 0 {
			n++
		}
	}
	return n
}

func containsAll(counts [MaxFace + 1]int, faces []int) bool {
	for _, f := range faces {
		if counts[f] == 0 {
			return false
		}
	}
	return true
}
