package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetScoreMessage returns a message announcing a commit, scratch or clear
func (s *service) GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	box := input.Category.DisplayName()

	var (
		title    string
		messages []string
		tone     = ToneNeutral
	)

	switch {
	case input.EventType == models.ScoreEventClear:
		title = "Score Cleared"
		messages = []string{
			fmt.Sprintf("%s erased %s. Total is back to %d.", name, box, input.TotalScore),
			fmt.Sprintf("%s is open again for %s. Total: %d.", box, name, input.TotalScore),
			fmt.Sprintf("Mulligan! %s cleared %s (total %d).", name, box, input.TotalScore),
		}
	case input.EventType == models.ScoreEventScratch:
		title = "Scratched"
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("%s scratched %s for 0. Brave sacrifice.", name, box),
			fmt.Sprintf("%s takes a zero in %s. The next roll will be kinder.", name, box),
			fmt.Sprintf("Into the bin goes %s for %s. Onward!", box, name),
		}
	case input.BonusAwarded && input.UsedAsJoker:
		title = "Bonus Yahtzee!"
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("JOKER! %s plays a bonus Yahtzee as %s for %d, plus %d bonus points!", name, box, input.Score, scorecard.BonusYahtzeePoints),
			fmt.Sprintf("Five of a kind again?! %s drops it into %s for %d and banks %d bonus points.", name, box, input.Score, scorecard.BonusYahtzeePoints),
		}
	case input.BonusAwarded:
		title = "Bonus Yahtzee!"
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("Another Yahtzee for %s! That's %d bonus points.", name, scorecard.BonusYahtzeePoints),
			fmt.Sprintf("%s can't stop rolling Yahtzees. +%d!", name, scorecard.BonusYahtzeePoints),
		}
	case input.Category == scoring.CategoryYahtzee && input.Score > 0:
		title = "YAHTZEE!"
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("YAHTZEE! %s scores %d!", name, input.Score),
			fmt.Sprintf("Five of a kind! %s takes %d points.", name, input.Score),
		}
	case input.Score == 0:
		title = "Score Recorded"
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("%s puts a big fat zero in %s.", name, box),
			fmt.Sprintf("%s: %s for 0. The dice have spoken.", name, box),
		}
	default:
		title = "Score Recorded"
		messages = []string{
			fmt.Sprintf("%s scores %d in %s.", name, input.Score, box),
			fmt.Sprintf("%d points to %s for %s.", input.Score, name, box),
			fmt.Sprintf("%s locks in %s for %d.", name, box, input.Score),
		}
	}

	message := s.pick(messages)
	if input.UpperBonusEarned {
		message += fmt.Sprintf(" Upper section bonus unlocked: +%d!", scorecard.UpperBonus)
	}
	if input.GameCompleted {
		message += " That was the last box. Game over!"
		tone = ToneCelebration
	}

	return &GetScoreMessageOutput{
		Title:   title,
		Message: message,
		Tone:    tone,
	}, nil
}

// GetLeaderboardMessage returns a headline for the current standings
func (s *service) GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Entries) == 0 {
		return &GetLeaderboardMessageOutput{
			Message: s.pick([]string{
				"Nobody has scored yet. Roll some dice!",
				"The scoreboard is empty. Who's first?",
			}),
		}, nil
	}

	leader := input.Entries[0]
	var messages []string
	switch {
	case input.GameCompleted:
		messages = []string{
			fmt.Sprintf("%s wins with %d points!", leader.Name, leader.TotalScore),
			fmt.Sprintf("Final whistle: %s takes it with %d.", leader.Name, leader.TotalScore),
		}
	case len(input.Entries) > 1 && input.Entries[1].TotalScore == leader.TotalScore:
		messages = []string{
			fmt.Sprintf("Dead heat at %d points!", leader.TotalScore),
			fmt.Sprintf("%s and %s are tied on %d.", leader.Name, input.Entries[1].Name, leader.TotalScore),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s leads with %d points.", leader.Name, leader.TotalScore),
			fmt.Sprintf("%s is out in front on %d.", leader.Name, leader.TotalScore),
		}
	}

	return &GetLeaderboardMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// ErrorTypeFor classifies an error returned by the game service
func ErrorTypeFor(err error) ErrorType {
	switch {
	case errors.Is(err, scoring.ErrInvalidHand):
		return ErrorTypeInvalidHand
	case errors.Is(err, scoring.ErrInvalidCategory):
		return ErrorTypeInvalidCategory
	case errors.Is(err, scorecard.ErrAlreadyScored):
		return ErrorTypeAlreadyScored
	case errors.Is(err, scorecard.ErrNotScored):
		return ErrorTypeNotScored
	case errors.Is(err, game.ErrGameNotFound):
		return ErrorTypeGameNotFound
	case errors.Is(err, game.ErrPlayerNotFound):
		return ErrorTypePlayerNotFound
	case errors.Is(err, game.ErrGameAlreadyExists):
		return ErrorTypeGameExists
	case errors.Is(err, game.ErrGameCompleted):
		return ErrorTypeGameCompleted
	case errors.Is(err, game.ErrDuplicatePlayer), errors.Is(err, game.ErrGameFull):
		return ErrorTypeBadPlayers
	case errors.Is(err, game.ErrInvalidInput):
		return ErrorTypeInvalidInput
	default:
		return ErrorTypeUnknown
	}
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	errorType := ErrorTypeFor(input.Err)

	var title string
	var messages []string
	switch errorType {
	case ErrorTypeInvalidHand:
		title = "Invalid Dice"
		messages = []string{
			"That's not a hand. I need exactly five dice, each from 1 to 6.",
			"Five dice, values 1 through 6. No loaded dice at this table!",
		}
	case ErrorTypeInvalidCategory:
		title = "Unknown Category"
		messages = []string{
			"I don't know that box. Try ones through sixes, three of a kind, four of a kind, full house, small straight, large straight, yahtzee or chance.",
			"That category isn't on any Yahtzee card I've seen.",
		}
	case ErrorTypeAlreadyScored:
		title = "Already Scored"
		messages = []string{
			"That box is already filled. Pick another one (or clear it first).",
			"You've used that one already. Nice try!",
		}
	case ErrorTypeNotScored:
		title = "Nothing to Clear"
		messages = []string{
			"That box is empty, there's nothing to clear.",
			"Can't clear what was never scored.",
		}
	case ErrorTypeGameNotFound:
		title = "No Game"
		messages = []string{
			"There's no game here. Start one with /yahtzee new.",
			"I can't find that game. Maybe start a fresh one?",
		}
	case ErrorTypePlayerNotFound:
		title = "Unknown Player"
		messages = []string{
			"That player isn't in this game.",
			"Who? Nobody by that name is at this table.",
		}
	case ErrorTypeGameExists:
		title = "Game In Progress"
		messages = []string{
			"This channel already has a game going. Finish or abandon it first.",
			"One game per channel! Wrap up the current one first.",
		}
	case ErrorTypeGameCompleted:
		title = "Game Over"
		messages = []string{
			"This game is finished. Clear a box to reopen it, or start a new one with /yahtzee new.",
			"Every card is full, the pencils are down. Start a new game to keep rolling.",
		}
	case ErrorTypeBadPlayers:
		title = "Check the Players"
		messages = []string{
			"A game needs one to four players with different names.",
			"Player names must be unique and there's room for four at most.",
		}
	case ErrorTypeInvalidInput:
		title = "Invalid Input"
		messages = []string{
			"Something in that command didn't look right. Check it and try again.",
			"I couldn't make sense of that. Double-check the options.",
		}
	default:
		title = "Something Went Wrong"
		messages = []string{
			"Something went wrong keeping score. Try again in a moment.",
			"The scorekeeper dropped the pencil. Please try again.",
		}
	}

	return &GetErrorMessageOutput{
		Title:     title,
		Message:   s.pick(messages),
		ErrorType: errorType,
		Tone:      tone,
	}, nil
}
