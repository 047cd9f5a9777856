package game

import "errors"

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrChannelInUse is returned when a channel is already bound to another active game
	ErrChannelInUse = errors.New("channel already has an active game")

	// ErrConcurrentUpdate is returned when an update kept losing races
	ErrConcurrentUpdate = errors.New("game was modified concurrently")
)
