package cribbage

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrBoardNotFound  = errors.New("board not found")
	ErrGameNotFound   = errors.New("game not found")

	// ErrPlayerHasGames is returned when deleting a player that still appears in the game log.
	ErrPlayerHasGames = errors.New("player has recorded games")

	ErrMissingPlayer  = errors.New("winner and loser are required")
	ErrSamePlayer     = errors.New("winner and loser must be different players")
	ErrInvalidScore   = errors.New("invalid score")
	ErrMissingDate    = errors.New("date played is required")
	ErrMissingName    = errors.New("first name is required")
	ErrMissingNumeral = errors.New("roman number is required")
)
