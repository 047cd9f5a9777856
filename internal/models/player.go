package models

import (
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
)

// Player represents a participant in a game
type Player struct {
	// Name is the display name of the player, unique within a game
	Name string `json:"name"`

	// Scorecard holds the player's committed scores
	Scorecard *scorecard.Scorecard `json:"scorecard"`

	// FinalScore is nil until the scorecard is first changed
	FinalScore *scorecard.FinalScore `json:"finalScore"`
}

// NewPlayer creates a player with an empty scorecard
func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		Scorecard: scorecard.New(),
	}
}

// SetScorecard replaces the card and recomputes the final score
func (p *Player) SetScorecard(card *scorecard.Scorecard) {
	p.Scorecard = card
	fs := scorecard.ComputeFinalScore(card)
	p.FinalScore = &fs
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := &Player{
		Name:      p.Name,
		Scorecard: p.Scorecard.Clone(),
	}
	if p.FinalScore != nil {
		fs := *p.FinalScore
		out.FinalScore = &fs
	}
	return out
}
