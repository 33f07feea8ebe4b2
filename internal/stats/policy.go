// Package stats derives records, rivalries and rankings from the game log.
//
// Every function is a pure transformation of the snapshot it is given. Nothing
// is cached and the input slices are never modified, so callers may share one
// snapshot between concurrent requests.
package stats

import (
	"math"

	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

const (
	DefaultRecentWindow    = 10
	DefaultMinRivalryGames = 2
)

// Policy holds the tunables of the statistics engine.
type Policy struct {
	// RecentWindow bounds the games considered for recent form and streaks.
	RecentWindow int
	// MinRivalryGames is how many games two players need before one can be the other's nemesis.
	MinRivalryGames int
}

// DefaultPolicy is used by the package-level functions.
var DefaultPolicy = Policy{
	RecentWindow:    DefaultRecentWindow,
	MinRivalryGames: DefaultMinRivalryGames,
}

// NewPolicy returns the default policy with the given nemesis threshold.
// Values below one fall back to the default.
func NewPolicy(minRivalryGames int) Policy {
	p := DefaultPolicy
	if minRivalryGames > 0 {
		p.MinRivalryGames = minRivalryGames
	}
	return p
}

func (p Policy) recentWindow() int {
	if p.RecentWindow <= 0 {
		return DefaultRecentWindow
	}
	return p.RecentWindow
}

func (p Policy) minRivalryGames() int {
	if p.MinRivalryGames <= 0 {
		return DefaultMinRivalryGames
	}
	return p.MinRivalryGames
}

// ComputePlayerStats aggregates a player's record using DefaultPolicy.
func ComputePlayerStats(playerID string, games []cribbage.Game) PlayerStats {
	return DefaultPolicy.ComputePlayerStats(playerID, games)
}

// FindNemesis finds a player's nemesis using DefaultPolicy.
func FindNemesis(playerID string, games []cribbage.Game) *Rivalry {
	return DefaultPolicy.FindNemesis(playerID, games)
}

// BuildLeaderboard ranks players using DefaultPolicy.
func BuildLeaderboard(players []cribbage.Player, games []cribbage.Game) []LeaderboardEntry {
	return DefaultPolicy.BuildLeaderboard(players, games)
}

// percentage returns 100*part/whole rounded to one decimal, or 0 for an empty whole.
func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round1(100 * float64(part) / float64(whole))
}

func mean(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return round1(float64(sum) / float64(count))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
