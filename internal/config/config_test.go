package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_NAME", "cribbage.db")
	t.Setenv("PORT", "8080")
	t.Setenv("TURSO_PRIMARY_URL", "")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("NEMESIS_MIN_GAMES", "3")

	cfg := Load()

	assert.Equal(t, "cribbage.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.Turso.PrimaryURL)
	assert.Equal(t, "C123", cfg.Slack.ChannelID)
	assert.Equal(t, 3, cfg.Stats.MinRivalryGames)
}

func TestIntFromEnv(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 7, intFromEnv("SOME_INT", 7))

	t.Setenv("SOME_INT", "")
	assert.Equal(t, 7, intFromEnv("SOME_INT", 7))

	t.Setenv("SOME_INT", "4")
	assert.Equal(t, 4, intFromEnv("SOME_INT", 7))
}
