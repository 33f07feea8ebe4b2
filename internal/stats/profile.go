package stats

import (
	"github.com/mauv0809/cribbage-board/internal/cribbage"
)

// BuildProfile assembles the player detail view.
func (p Policy) BuildProfile(player cribbage.Player, players []cribbage.Player, games []cribbage.Game) Profile {
	names := newRoster(players)

	s := p.ComputePlayerStats(player.ID, games)
	names.fill(s.FavoriteOpponent)
	nemesis := p.FindNemesis(player.ID, games)
	names.fill(nemesis)

	recent := mostRecent(playerGames(player.ID, games), p.recentWindow())
	lines := make([]GameLine, 0, len(recent))
	for _, g := range recent {
		opponent := g.Opponent(player.ID)
		result := "L"
		if g.WinnerID == player.ID {
			result = "W"
		}
		lines = append(lines, GameLine{
			Game:         g.Game,
			OpponentID:   opponent,
			OpponentName: names.name(opponent),
			Result:       result,
		})
	}

	return Profile{
		Player:      player,
		Stats:       s,
		Nemesis:     nemesis,
		Position:    LeaderboardPosition(p.BuildLeaderboard(players, games), player.ID),
		RecentGames: lines,
	}
}

// Summarize counts the collection, the players and the game log.
func Summarize(boards []cribbage.Board, players []cribbage.Player, games []cribbage.Game) Summary {
	summary := Summary{
		Boards:  len(boards),
		Players: len(players),
		Games:   len(games),
	}
	for _, b := range boards {
		if b.InCollection {
			summary.BoardsInCollection++
		}
		if b.IsGift {
			summary.BoardsGifted++
		}
	}

	active := make(map[string]bool)
	for _, g := range games {
		active[g.WinnerID] = true
		active[g.LoserID] = true
		switch g.Classification() {
		case cribbage.Skunk:
			summary.Skunks++
		case cribbage.DoubleSkunk:
			summary.DoubleSkunks++
		}
	}
	for _, player := range players {
		if active[player.ID] {
			summary.ActivePlayers++
		}
	}
	return summary
}
