package holdem

import "errors"

// engine error taxonomy. Every rejected call returns one of these (possibly
// wrapped with detail) and leaves the state untouched; none is fatal
var (
	// ErrInsufficientPlayers is returned when a hand is started with fewer than two funded players
	ErrInsufficientPlayers = errors.New("at least two players with chips are required")

	// ErrNotYourTurn is returned when a player acts out of turn
	ErrNotYourTurn = errors.New("it is not your turn")

	// ErrIllegalAction is returned when the action is not legal for the player's current state
	ErrIllegalAction = errors.New("illegal action")

	// ErrUnknownPlayer is returned when the player is not seated in the hand
	ErrUnknownPlayer = errors.New("unknown player")

	// ErrInvalidRaiseAmount is returned when a raise is below the minimum and not a valid all-in
	ErrInvalidRaiseAmount = errors.New("invalid raise amount")
)
