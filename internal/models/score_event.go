package models

import (
	"time"

	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// ScoreEventType represents what happened to a scorecard
type ScoreEventType string

const (
	// ScoreEventCommit records dice committed to a category
	ScoreEventCommit ScoreEventType = "commit"

	// ScoreEventScratch records an explicit zero
	ScoreEventScratch ScoreEventType = "scratch"

	// ScoreEventClear records a category being emptied
	ScoreEventClear ScoreEventType = "clear"
)

// ScoreEvent records a single scorecard mutation
type ScoreEvent struct {
	// ID is the unique identifier for the event
	ID string `json:"id"`

	// GameID is the game the event belongs to
	GameID string `json:"gameId"`

	// PlayerName is whose scorecard changed
	PlayerName string `json:"playerName"`

	// Type is the kind of mutation
	Type ScoreEventType `json:"type"`

	// Category is the box affected
	Category scoring.Category `json:"category"`

	// Dice is the hand committed, empty for scratch and clear
	Dice []int `json:"dice,omitempty"`

	// Score is the value recorded
	Score int `json:"score"`

	// BonusAwarded indicates a bonus Yahtzee was earned
	BonusAwarded bool `json:"bonusAwarded,omitempty"`

	// UsedAsJoker indicates the bonus Yahtzee was placed in another box
	UsedAsJoker bool `json:"usedAsJoker,omitempty"`

	// TotalScore is the player's total after the event
	TotalScore int `json:"totalScore"`

	// Timestamp is when the event happened
	Timestamp time.Time `json:"timestamp"`
}
