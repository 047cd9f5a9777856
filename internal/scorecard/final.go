package scorecard

import "github.com/KirkDiggler/yahtzee/internal/scoring"

const (
	// UpperBonusThreshold is the upper total needed to earn the upper bonus
	UpperBonusThreshold = 63

	// UpperBonus is awarded once the upper total reaches the threshold
	UpperBonus = 35

	// BonusYahtzeePoints is the flat bonus for each Yahtzee after the first
	BonusYahtzeePoints = 100
)

// FinalScore is the aggregate of a scorecard
type FinalScore struct {
	UpperTotal        int `json:"upperTotal"`
	UpperBonus        int `json:"upperBonus"`
	LowerTotal        int `json:"lowerTotal"`
	BonusYahtzees     int `json:"bonusYahtzees"`
	BonusYahtzeeScore int `json:"bonusYahtzeeScore"`
	TotalScore        int `json:"totalScore"`
}

// ComputeFinalScore derives the totals of a scorecard from scratch
func ComputeFinalScore(card *Scorecard) FinalScore {
	var fs FinalScore
	if card == nil {
		return fs
	}

	for _, c := range scoring.UpperCategories {
		fs.UpperTotal += card.Scores[c]
	}
	if fs.UpperTotal >= UpperBonusThreshold {
		fs.UpperBonus = UpperBonus
	}

	for _, c := range scoring.LowerCategories {
		fs.LowerTotal += card.Scores[c]
	}

	fs.BonusYahtzees = card.BonusYahtzees
	fs.BonusYahtzeeScore = card.BonusYahtzees * BonusYahtzeePoints
	fs.TotalScore = fs.UpperTotal + fs.UpperBonus + fs.LowerTotal + fs.BonusYahtzeeScore

	return fs
}
