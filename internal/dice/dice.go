package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/yahtzee/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a value between 1 and sides
	Roll(sides int) int
}

// randomRoller is a Roller backed by math/rand
type randomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *randomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *randomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = scoring.MaxFace
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// RollHand keeps the held dice and rolls six-sided dice for the rest of the hand
func RollHand(roller Roller, held []int) ([]int, error) {
	if len(held) > scoring.HandSize {
		return nil, errors.Wrapf(scoring.ErrInvalidHand, "cannot hold %d dice", len(held))
	}

	hand := make([]int, 0, scoring.HandSize)
	for _, v := range held {
		if v < scoring.MinFace || v > scoring.MaxFace {
			return nil, errors.Wrapf(scoring.ErrInvalidHand, "held die has value %d", v)
		}
		hand = append(hand, v)
	}

	for len(hand) < scoring.HandSize {
		hand = append(hand, roller.Roll(scoring.MaxFace))
	}
	return hand, nil
}
