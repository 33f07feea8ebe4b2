package cribbage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLoss(t *testing.T) {
	tests := []struct {
		name       string
		loserScore int
		expected   SkunkClass
	}{
		{"shut out", 0, DoubleSkunk},
		{"just under double skunk line", 60, DoubleSkunk},
		{"on double skunk line", 61, Skunk},
		{"just under skunk line", 90, Skunk},
		{"on skunk line", 91, NoSkunk},
		{"close game", 120, NoSkunk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyLoss(tt.loserScore))
		})
	}
}

func TestDeriveSkunkFlags(t *testing.T) {
	t.Run("flags are mutually exclusive", func(t *testing.T) {
		for score := 0; score < WinningScore; score++ {
			g := Game{WinnerScore: WinningScore, LoserScore: score}
			g.DeriveSkunkFlags()
			assert.False(t, g.IsSkunk && g.IsDoubleSkunk, "score %d produced both flags", score)
		}
	})

	t.Run("ordinary loss clears stale flags", func(t *testing.T) {
		g := Game{WinnerScore: 121, LoserScore: 110, IsSkunk: true, IsDoubleSkunk: true}
		g.DeriveSkunkFlags()
		assert.False(t, g.IsSkunk)
		assert.False(t, g.IsDoubleSkunk)
	})

	t.Run("skunk", func(t *testing.T) {
		g := Game{WinnerScore: 121, LoserScore: 85}
		g.DeriveSkunkFlags()
		assert.True(t, g.IsSkunk)
		assert.False(t, g.IsDoubleSkunk)
	})

	t.Run("double skunk", func(t *testing.T) {
		g := Game{WinnerScore: 121, LoserScore: 55}
		g.DeriveSkunkFlags()
		assert.False(t, g.IsSkunk)
		assert.True(t, g.IsDoubleSkunk)
	})
}

func TestGameValidate(t *testing.T) {
	played := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	valid := Game{WinnerID: "a", LoserID: "b", WinnerScore: 121, LoserScore: 100, DatePlayed: played}

	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(g *Game)
		err    error
	}{
		{"missing winner", func(g *Game) { g.WinnerID = "" }, ErrMissingPlayer},
		{"same player", func(g *Game) { g.LoserID = g.WinnerID }, ErrSamePlayer},
		{"negative loser score", func(g *Game) { g.LoserScore = -1 }, ErrInvalidScore},
		{"winner over 121", func(g *Game) { g.WinnerScore = 122 }, ErrInvalidScore},
		{"loser not below winner", func(g *Game) { g.LoserScore = 121 }, ErrInvalidScore},
		{"missing date", func(g *Game) { g.DatePlayed = time.Time{} }, ErrMissingDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			assert.ErrorIs(t, g.Validate(), tt.err)
		})
	}
}

func TestGameOpponent(t *testing.T) {
	g := Game{WinnerID: "a", LoserID: "b"}
	assert.Equal(t, "b", g.Opponent("a"))
	assert.Equal(t, "a", g.Opponent("b"))
	assert.Equal(t, "", g.Opponent("c"))
	assert.True(t, g.Involves("a"))
	assert.False(t, g.Involves("c"))
}

func TestBoardNormalize(t *testing.T) {
	b := Board{RomanNumber: "XII", GiftedTo: "Ann", GiftedFrom: "Bob"}
	b.Normalize()
	assert.Empty(t, b.GiftedTo)
	assert.Empty(t, b.GiftedFrom)

	gift := Board{RomanNumber: "XIII", IsGift: true, GiftedTo: "Ann"}
	gift.Normalize()
	assert.Equal(t, "Ann", gift.GiftedTo)
	assert.ErrorIs(t, Board{}.Validate(), ErrMissingNumeral)
}
