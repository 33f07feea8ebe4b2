package club

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPlayer(t *testing.T) {
	mock := NewMock()
	mock.GetAllPlayersFunc = func() ([]cribbage.Player, error) {
		return []cribbage.Player{
			{ID: "p1", FirstName: "Morten", LastName: "Voss"},
			{ID: "p2", FirstName: "Martin", LastName: "Hansen"},
			{ID: "p3", FirstName: "Anna", LastName: "Berg"},
		}, nil
	}
	matcher := NewPlayerMatcher(mock)
	ctx := context.Background()

	t.Run("exact full name", func(t *testing.T) {
		player, suggestions, err := matcher.FindPlayer(ctx, "Morten Voss")
		require.NoError(t, err)
		require.NotNil(t, player)
		assert.Equal(t, "p1", player.ID)
		assert.Empty(t, suggestions)
	})

	t.Run("first name only", func(t *testing.T) {
		player, _, err := matcher.FindPlayer(ctx, "anna")
		require.NoError(t, err)
		require.NotNil(t, player)
		assert.Equal(t, "p3", player.ID)
	})

	t.Run("ignores punctuation and case", func(t *testing.T) {
		player, _, err := matcher.FindPlayer(ctx, "  MORTEN   voss! ")
		require.NoError(t, err)
		require.NotNil(t, player)
		assert.Equal(t, "p1", player.ID)
	})

	t.Run("no match", func(t *testing.T) {
		player, suggestions, err := matcher.FindPlayer(ctx, "zzzzzzzz")
		require.NoError(t, err)
		assert.Nil(t, player)
		assert.Empty(t, suggestions)
	})

	t.Run("empty query", func(t *testing.T) {
		player, suggestions, err := matcher.FindPlayer(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, player)
		assert.Empty(t, suggestions)
	})

	t.Run("store error", func(t *testing.T) {
		failing := NewMock()
		failing.GetAllPlayersFunc = func() ([]cribbage.Player, error) { return nil, errors.New("boom") }
		_, _, err := NewPlayerMatcher(failing).FindPlayer(ctx, "anna")
		assert.Error(t, err)
	})
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance([]rune("same"), []rune("same")))
	assert.Equal(t, 3, levenshteinDistance([]rune("kitten"), []rune("sitting")))
	assert.Equal(t, 4, levenshteinDistance([]rune(""), []rune("abcd")))
	assert.Equal(t, 1, levenshteinDistance([]rune("søren"), []rune("soren")))
}

func TestSimilarityRanksCloserNamesFirst(t *testing.T) {
	players := []cribbage.Player{
		{ID: "p1", FirstName: "Morten", LastName: "Voss"},
		{ID: "p2", FirstName: "Martin", LastName: "Voss"},
	}
	suggestions := rankPlayers("morton voss", players)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "p1", suggestions[0].Player.ID)
	assert.NotEmpty(t, suggestions[0].Reasons)
}
