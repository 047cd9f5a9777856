package models

import (
	"strings"
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates players still have open categories
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates every player has filled their scorecard
	GameStatusCompleted GameStatus = "completed"
)

// Game represents a scorekeeping session for up to four players
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// ChannelID is the Discord channel the game is bound to, if any
	ChannelID string `json:"channelId,omitempty"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	// Players in turn order
	Players []*Player `json:"players"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}

// FindPlayer returns the player with the given name, ignoring case, or nil
func (g *Game) FindPlayer(name string) *Player {
	name = strings.TrimSpace(name)
	for _, p := range g.Players {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// IsActive reports whether the game still accepts scores
func (g *Game) IsActive() bool {
	return g.Status == GameStatusActive
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	out := *g
	out.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		out.Players[i] = p.Clone()
	}
	return &out
}
