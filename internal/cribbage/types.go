package cribbage

import (
	"strings"
	"time"
)

// DateLayout is the layout used for play dates and board dates on the wire.
const DateLayout = "2006-01-02"

// Player is a person who appears in the game log.
type Player struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Name returns the display name of the player.
func (p Player) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Board is a physical cribbage board in the collection.
type Board struct {
	ID           string    `json:"id"`
	RomanNumber  string    `json:"roman_number"`
	Date         string    `json:"date,omitempty"`
	Description  string    `json:"description,omitempty"`
	WoodType     string    `json:"wood_type,omitempty"`
	MaterialType string    `json:"material_type,omitempty"`
	InCollection bool      `json:"in_collection"`
	IsGift       bool      `json:"is_gift"`
	GiftedTo     string    `json:"gifted_to,omitempty"`
	GiftedFrom   string    `json:"gifted_from,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Game is a single recorded game between two players.
type Game struct {
	ID            string    `json:"id" msgpack:"id"`
	WinnerID      string    `json:"winner_id" msgpack:"winner_id"`
	LoserID       string    `json:"loser_id" msgpack:"loser_id"`
	WinnerScore   int       `json:"winner_score" msgpack:"winner_score"`
	LoserScore    int       `json:"loser_score" msgpack:"loser_score"`
	DatePlayed    time.Time `json:"date_played" msgpack:"date_played"`
	BoardID       string    `json:"board_id,omitempty" msgpack:"board_id"`
	Notes         string    `json:"notes,omitempty" msgpack:"notes"`
	IsSkunk       bool      `json:"is_skunk" msgpack:"is_skunk"`
	IsDoubleSkunk bool      `json:"is_double_skunk" msgpack:"is_double_skunk"`
	CreatedAt     time.Time `json:"created_at" msgpack:"created_at"`
}

// Involves reports whether the player took part in the game.
func (g Game) Involves(playerID string) bool {
	return g.WinnerID == playerID || g.LoserID == playerID
}

// Opponent returns the other participant, or "" if the player was not in the game.
func (g Game) Opponent(playerID string) string {
	switch playerID {
	case g.WinnerID:
		return g.LoserID
	case g.LoserID:
		return g.WinnerID
	}
	return ""
}

// Margin is the number of points between winner and loser.
func (g Game) Margin() int {
	return g.WinnerScore - g.LoserScore
}

// Classification returns the skunk tier of the game derived from its scores.
func (g Game) Classification() SkunkClass {
	return ClassifyLoss(g.LoserScore)
}

// DeriveSkunkFlags sets IsSkunk and IsDoubleSkunk from the scores.
func (g *Game) DeriveSkunkFlags() {
	class := g.Classification()
	g.IsSkunk = class == Skunk
	g.IsDoubleSkunk = class == DoubleSkunk
}

// BoardFilter narrows a board listing. Zero values do not filter.
type BoardFilter struct {
	InCollection *bool
	IsGift       *bool
	WoodType     string
	MaterialType string
	Search       string
	DateFrom     string
	DateTo       string
}
