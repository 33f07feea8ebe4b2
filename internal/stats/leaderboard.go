package stats

import (
	"sort"

	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

// BuildLeaderboard computes stats for every player, drops players without
// games, and orders the rest by win percentage, wins and games played, all
// descending. Players tied on every key keep their input order.
func (p Policy) BuildLeaderboard(players []cribbage.Player, games []cribbage.Game) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(players))
	names := newRoster(players)
	for _, player := range players {
		s := p.ComputePlayerStats(player.ID, games)
		if s.TotalGames == 0 {
			continue
		}
		names.fill(s.FavoriteOpponent)
		entries = append(entries, LeaderboardEntry{
			PlayerID:    player.ID,
			FirstName:   player.FirstName,
			LastName:    player.LastName,
			Name:        player.Name(),
			PlayerStats: s,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return byWinRate(entries[i], entries[j])
	})
	return entries
}

func byWinRate(a, b LeaderboardEntry) bool {
	if a.WinPercentage != b.WinPercentage {
		return a.WinPercentage > b.WinPercentage
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	return a.TotalGames > b.TotalGames
}

// BuildRankings derives the side rankings from already aggregated entries.
// Each ranking is an independent stable sort of its own copy.
func BuildRankings(entries []LeaderboardEntry) Rankings {
	return Rankings{
		WinRate: sortedCopy(entries, byWinRate),
		MostWins: sortedCopy(entries, func(a, b LeaderboardEntry) bool {
			return a.Wins > b.Wins
		}),
		MostGames: sortedCopy(entries, func(a, b LeaderboardEntry) bool {
			return a.TotalGames > b.TotalGames
		}),
		SkunkMasters: sortedCopy(entries, func(a, b LeaderboardEntry) bool {
			return a.SkunksDelivered() > b.SkunksDelivered()
		}),
	}
}

func sortedCopy(entries []LeaderboardEntry, less func(a, b LeaderboardEntry) bool) []LeaderboardEntry {
	sorted := make([]LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// LeaderboardPosition locates a player on a win-rate ordered leaderboard.
func LeaderboardPosition(entries []LeaderboardEntry, playerID string) *Position {
	for i, e := range entries {
		if e.PlayerID == playerID {
			return &Position{
				Position:      i + 1,
				TotalPlayers:  len(entries),
				WinPercentage: e.WinPercentage,
				Wins:          e.Wins,
				Losses:        e.Losses,
			}
		}
	}
	return nil
}
