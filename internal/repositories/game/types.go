package game

import "github.com/KirkDiggler/yahtzee/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGameByChannelInput struct {
	ChannelID string
}

type DeleteGameInput struct {
	GameID string
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.Game
}

// UpdateGameInput names the game to change and how to change it.
// Update receives a private copy of the stored game and may modify it in place.
type UpdateGameInput struct {
	GameID string
	Update func(game *models.Game) error
}
