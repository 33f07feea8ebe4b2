package notifier

import (
	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/mauv0809/cribbage-board/internal/stats"
)

// GameResult is a recorded game together with what the announcement needs to show.
type GameResult struct {
	Game        cribbage.Game
	Winner      cribbage.Player
	Loser       cribbage.Player
	Board       *cribbage.Board
	WinnerStats stats.PlayerStats
	LoserStats  stats.PlayerStats
}

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded games
	SendResultNotification(result GameResult, dryRun bool) error
	// For slash commands
	SendLeaderboard(entries []stats.LeaderboardEntry, dryRun bool) error
	SendPlayerStats(profile *stats.Profile, query string, dryRun bool) error
	SendPlayerNotFound(query string, suggestions []string, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(entries []stats.LeaderboardEntry) (any, error)
	FormatPlayerStatsResponse(profile *stats.Profile, query string) (any, error)
	FormatPlayerNotFoundResponse(query string, suggestions []string) (any, error)
}
