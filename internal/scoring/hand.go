package scoring

import "github.com/cockroachdb/errors"

const (
	// HandSize is the number of dice in a hand
	HandSize = 5

	// MinFace and MaxFace bound a single die
	MinFace = 1
	MaxFace = 6
)

// Hand is a roll of five dice. Build one with NewHand; methods that score a
// hand reject faces outside 1-6, including the zero value.
type Hand [HandSize]int

// NewHand validates dice and returns them as a Hand
func NewHand(dice []int) (Hand, error) {
	var h Hand
	if len(dice) != HandSize {
		return h, errors.Wrapf(ErrInvalidHand, "expected %d dice, got %d", HandSize, len(dice))
	}
	copy(h[:], dice)
	if err := h.Validate(); err != nil {
		return Hand{}, err
	}
	return h, nil
}

// Validate checks that every die shows a face from 1 to 6
func (h Hand) Validate() error {
	for i, d := range h {
		if d < MinFace || d > MaxFace {
			return errors.Wrapf(ErrInvalidHand, "die %d has value %d", i+1, d)
		}
	}
	return nil
}

// Sum returns the total of all five dice
func (h Hand) Sum() int {
	total := 0
	for _, d := range h {
		total += d
	}
	return total
}

// counts returns how many dice show each face, indexed by face value.
// The hand must be valid.
func (h Hand) counts() [MaxFace + 1]int {
	var c [MaxFace + 1]int
	for _, d := range h {
		c[d]++
	}
	return c
}

// IsYahtzee reports whether all five dice show the same valid face
func (h Hand) IsYahtzee() bool {
	if h.Validate() != nil {
		return false
	}
	for _, d := range h[1:] {
		if d != h[0] {
			return false
		}
	}
	return true
}
