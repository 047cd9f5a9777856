// Package scorecard records a player's committed category scores and resolves
// the bonus Yahtzee and joker rules.
//
// Every mutation returns a new Scorecard and leaves its input untouched, so a
// failed call never leaves a card half updated.
package scorecard

import (
	"github.com/cockroachdb/errors"

	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// Scorecard holds one player's committed scores.
// A category present in Scores is used; an absent one is still available.
type Scorecard struct {
	Scores        map[scoring.Category]int `json:"scores"`
	BonusYahtzees int                      `json:"bonusYahtzees"`
}

// CommitResult describes the outcome of committing a hand
type CommitResult struct {
	// Scorecard is the updated card
	Scorecard *Scorecard

	// Category is the box that was scored
	Category scoring.Category

	// Score is the value recorded, or the stored Yahtzee score when a
	// bonus Yahtzee was committed to the yahtzee box
	Score int

	// BonusAwarded is set when the commit earned a bonus Yahtzee
	BonusAwarded bool

	// UsedAsJoker is set when a bonus Yahtzee was scored in another box
	UsedAsJoker bool

	// BonusPoints is the flat bonus earned by this commit
	BonusPoints int

	// FinalScore is recomputed from the updated card
	FinalScore FinalScore
}

// New returns an empty scorecard
func New() *Scorecard {
	return &Scorecard{Scores: make(map[scoring.Category]int)}
}

// Clone returns a deep copy of the card; a nil card clones to an empty one
func (c *Scorecard) Clone() *Scorecard {
	out := New()
	if c == nil {
		return out
	}
	for k, v := range c.Scores {
		out.Scores[k] = v
	}
	out.BonusYahtzees = c.BonusYahtzees
	return out
}

// Score returns the stored value of a category and whether it is used
func (c *Scorecard) Score(category scoring.Category) (int, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.Scores[category]
	return v, ok
}

// Available returns the unused categories in scorecard order
func Available(card *Scorecard) []scoring.Category {
	out := make([]scoring.Category, 0, len(scoring.Categories))
	for _, cat := range scoring.Categories {
		if _, used := card.Score(cat); !used {
			out = append(out, cat)
		}
	}
	return out
}

// Complete reports whether every category has been used
func Complete(card *Scorecard) bool {
	return len(Available(card)) == 0
}

// outcome is the resolved effect of a commit before it is applied
type outcome struct {
	score        int
	bonusAwarded bool
	usedAsJoker  bool
	store        bool
}

func resolve(card *Scorecard, category scoring.Category, dice []int) (outcome, error) {
	if !category.Valid() {
		return outcome{}, errors.Wrapf(scoring.ErrInvalidCategory, "unknown category %q", string(category))
	}
	hand, err := scoring.NewHand(dice)
	if err != nil {
		return outcome{}, err
	}

	stored, used := card.Score(category)
	yahtzeeScore, _ := card.Score(scoring.CategoryYahtzee)

	// a zero in the yahtzee box does not open the bonus path
	if hand.IsYahtzee() && yahtzeeScore > 0 {
		if category == scoring.CategoryYahtzee {
			return outcome{score: stored, bonusAwarded: true}, nil
		}
		if !used {
			score, err := hand.Score(category)
			if err != nil {
				return outcome{}, err
			}
			return outcome{score: score, bonusAwarded: true, usedAsJoker: true, store: true}, nil
		}
	}

	if used {
		return outcome{}, errors.Wrapf(ErrAlreadyScored, "%s holds %d", category, stored)
	}

	score, err := hand.Score(category)
	if err != nil {
		return outcome{}, err
	}
	return outcome{score: score, store: true}, nil
}

// Preview returns what committing dice to category would score right now
func Preview(card *Scorecard, category scoring.Category, dice []int) (int, error) {
	o, err := resolve(card, category, dice)
	if err != nil {
		return 0, err
	}
	return o.score, nil
}

// Commit records dice in category and returns the updated card
func Commit(card *Scorecard, category scoring.Category, dice []int) (*CommitResult, error) {
	o, err := resolve(card, category, dice)
	if err != nil {
		return nil, err
	}

	next := card.Clone()
	if o.store {
		next.Scores[category] = o.score
	}

	result := &CommitResult{
		Scorecard:    next,
		Category:     category,
		Score:        o.score,
		BonusAwarded: o.bonusAwarded,
		UsedAsJoker:  o.usedAsJoker,
	}
	if o.bonusAwarded {
		next.BonusYahtzees++
		result.BonusPoints = BonusYahtzeePoints
	}
	result.FinalScore = ComputeFinalScore(next)

	return result, nil
}

// Scratch records an explicit zero in an unused category
func Scratch(card *Scorecard, category scoring.Category) (*CommitResult, error) {
	if !category.Valid() {
		return nil, errors.Wrapf(scoring.ErrInvalidCategory, "unknown category %q", string(category))
	}
	if stored, used := card.Score(category); used {
		return nil, errors.Wrapf(ErrAlreadyScored, "%s holds %d", category, stored)
	}

	next := card.Clone()
	next.Scores[category] = 0

	return &CommitResult{
		Scorecard:  next,
		Category:   category,
		FinalScore: ComputeFinalScore(next),
	}, nil
}

// Clear removes a committed category. Bonus Yahtzees already earned are kept.
func Clear(card *Scorecard, category scoring.Category) (*Scorecard, error) {
	if !category.Valid() {
		return nil, errors.Wrapf(scoring.ErrInvalidCategory, "unknown category %q", string(category))
	}
	if _, used := card.Score(category); !used {
		return nil, errors.Wrapf(ErrNotScored, "%s is empty", category)
	}

	next := card.Clone()
	delete(next.Scores, category)
	return next, nil
}
