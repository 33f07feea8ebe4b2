package cribbage

import (
	"fmt"
	"strings"
)

// Validate checks a game before it is written to the log.
func (g Game) Validate() error {
	if g.WinnerID == "" || g.LoserID == "" {
		return ErrMissingPlayer
	}
	if g.WinnerID == g.LoserID {
		return ErrSamePlayer
	}
	if g.WinnerScore < 0 || g.LoserScore < 0 {
		return fmt.Errorf("%w: scores must not be negative", ErrInvalidScore)
	}
	if g.WinnerScore > WinningScore {
		return fmt.Errorf("%w: winner score %d exceeds %d", ErrInvalidScore, g.WinnerScore, WinningScore)
	}
	if g.LoserScore >= g.WinnerScore {
		return fmt.Errorf("%w: loser score %d must be below winner score %d", ErrInvalidScore, g.LoserScore, g.WinnerScore)
	}
	if g.DatePlayed.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// Validate checks a player before it is written.
func (p Player) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return ErrMissingName
	}
	return nil
}

// Validate checks a board before it is written.
func (b Board) Validate() error {
	if strings.TrimSpace(b.RomanNumber) == "" {
		return ErrMissingNumeral
	}
	return nil
}

// Normalize clears the gift details of a board that is not a gift.
func (b *Board) Normalize() {
	if !b.IsGift {
		b.GiftedTo = ""
		b.GiftedFrom = ""
	}
}
