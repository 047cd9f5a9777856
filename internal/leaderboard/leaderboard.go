// Package leaderboard ranks players by their final score.
package leaderboard

import (
	"sort"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// RankPlayers orders players by total score, highest first.
// Players who have not scored yet are left out. Ties keep the order the
// players were listed in and still receive distinct, sequential ranks.
func RankPlayers(players []*models.Player) []models.LeaderboardEntry {
	scored := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if p != nil && p.FinalScore != nil {
			scored = append(scored, p)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore.TotalScore > scored[j].FinalScore.TotalScore
	})

	entries := make([]models.LeaderboardEntry, 0, len(scored))
	for i, p := range scored {
		fs := p.FinalScore
		entries = append(entries, models.LeaderboardEntry{
			Rank:              i + 1,
			Name:              p.Name,
			TotalScore:        fs.TotalScore,
			UpperTotal:        fs.UpperTotal,
			UpperBonus:        fs.UpperBonus,
			LowerTotal:        fs.LowerTotal,
			BonusYahtzees:     fs.BonusYahtzees,
			BonusYahtzeeScore: fs.BonusYahtzeeScore,
		})
	}

	return entries
}
