package stats

import (
	"fmt"
	"sort"

	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

type indexedGame struct {
	cribbage.Game
	pos int
}

// playerGames keeps the games involving playerID, remembering their log position.
func playerGames(playerID string, games []cribbage.Game) []indexedGame {
	var played []indexedGame
	for i, g := range games {
		if g.Involves(playerID) {
			played = append(played, indexedGame{Game: g, pos: i})
		}
	}
	return played
}

// ComputePlayerStats filters the log down to the player's games and aggregates
// them. An unknown player, or one with no games, gets the zero record.
func (p Policy) ComputePlayerStats(playerID string, games []cribbage.Game) PlayerStats {
	stats := PlayerStats{RecentForm: "0/0", CurrentStreak: "0"}
	if playerID == "" {
		return stats
	}

	var winningPoints, losingPoints int
	played := playerGames(playerID, games)
	for _, g := range played {
		class := g.Classification()
		if g.WinnerID == playerID {
			stats.Wins++
			winningPoints += g.WinnerScore
			switch class {
			case cribbage.Skunk:
				stats.SkunksGiven++
			case cribbage.DoubleSkunk:
				stats.DoubleSkunksGiven++
			}
			continue
		}
		stats.Losses++
		losingPoints += g.LoserScore
		switch class {
		case cribbage.Skunk:
			stats.SkunksReceived++
		case cribbage.DoubleSkunk:
			stats.DoubleSkunksReceived++
		}
	}

	stats.TotalGames = stats.Wins + stats.Losses
	stats.WinPercentage = percentage(stats.Wins, stats.TotalGames)
	stats.AvgWinningScore = mean(winningPoints, stats.Wins)
	stats.AvgLosingScore = mean(losingPoints, stats.Losses)

	recent := mostRecent(played, p.recentWindow())
	for _, g := range recent {
		if g.WinnerID == playerID {
			stats.RecentWins++
		}
	}
	stats.RecentGames = len(recent)
	stats.RecentForm = fmt.Sprintf("%d/%d", stats.RecentWins, stats.RecentGames)
	stats.CurrentStreak = streak(playerID, recent)
	stats.FavoriteOpponent = favoriteOpponent(tallyOpponents(playerID, games))

	return stats
}

// mostRecent orders games newest first and keeps at most limit of them.
// Games on the same date are ordered by log position, later entries first.
func mostRecent(games []indexedGame, limit int) []indexedGame {
	sorted := make([]indexedGame, len(games))
	copy(sorted, games)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].DatePlayed.Equal(sorted[j].DatePlayed) {
			return sorted[i].DatePlayed.After(sorted[j].DatePlayed)
		}
		return sorted[i].pos > sorted[j].pos
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// streak counts the run of outcomes matching the most recent game.
func streak(playerID string, recent []indexedGame) string {
	if len(recent) == 0 {
		return "0"
	}
	won := recent[0].WinnerID == playerID
	count := 0
	for _, g := range recent {
		if (g.WinnerID == playerID) != won {
			break
		}
		count++
	}
	if won {
		return fmt.Sprintf("%dW", count)
	}
	return fmt.Sprintf("%dL", count)
}
