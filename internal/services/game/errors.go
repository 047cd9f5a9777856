package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound      GameError = "game not found"
	ErrPlayerNotFound    GameError = "player not found"
	ErrGameAlreadyExists GameError = "game already exists for this channel"
	ErrGameCompleted     GameError = "game is already completed"
	ErrDuplicatePlayer   GameError = "player names must be unique"
	ErrGameFull          GameError = "game is at maximum capacity"
	ErrInvalidInput      GameError = "invalid input"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilGameRepo       GameError = "game repository cannot be nil"
	ErrNilHistoryRepo    GameError = "score history repository cannot be nil"
	ErrNilDiceRoller     GameError = "dice roller cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
)
