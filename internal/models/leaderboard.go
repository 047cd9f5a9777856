package models

// LeaderboardEntry is one ranked row of a game's standings
type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	Name              string `json:"name"`
	TotalScore        int    `json:"totalScore"`
	UpperTotal        int    `json:"upperTotal"`
	UpperBonus        int    `json:"upperBonus"`
	LowerTotal        int    `json:"lowerTotal"`
	BonusYahtzees     int    `json:"bonusYahtzees"`
	BonusYahtzeeScore int    `json:"bonusYahtzeeScore"`
}

// Leaderboard represents the current standings in a game
type Leaderboard struct {
	// GameID is the unique identifier for the game
	GameID string `json:"gameId"`

	// Entries are ordered by rank
	Entries []LeaderboardEntry `json:"entries"`
}
