package models

import (
	"time"

	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// Roll represents a hand of dice and what it would score
type Roll struct {
	// Dice is the full five-die hand
	Dice []int `json:"dice"`

	// Held are the values kept from the previous roll
	Held []int `json:"held,omitempty"`

	// Scores is the candidate score in every category
	Scores map[scoring.Category]int `json:"scores"`

	// Timestamp is when the roll was made
	Timestamp time.Time `json:"timestamp"`
}
