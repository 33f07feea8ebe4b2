package stats_test

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/mauv0809/cribbage-board/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// game builds a 121-point game played day days after baseDate.
func game(winner, loser string, loserScore, day int) cribbage.Game {
	g := cribbage.Game{
		ID:          fmt.Sprintf("%s-%s-%d-%d", winner, loser, loserScore, day),
		WinnerID:    winner,
		LoserID:     loser,
		WinnerScore: cribbage.WinningScore,
		LoserScore:  loserScore,
		DatePlayed:  baseDate.AddDate(0, 0, day),
	}
	g.DeriveSkunkFlags()
	return g
}

func player(id, first, last string) cribbage.Player {
	return cribbage.Player{ID: id, FirstName: first, LastName: last}
}

// randomLog builds a reproducible log of n games between the given players.
func randomLog(seed int64, ids []string, n int) []cribbage.Game {
	rng := rand.New(rand.NewSource(seed))
	games := make([]cribbage.Game, 0, n)
	for i := 0; i < n; i++ {
		w := rng.Intn(len(ids))
		l := rng.Intn(len(ids) - 1)
		if l >= w {
			l++
		}
		games = append(games, game(ids[w], ids[l], rng.Intn(121), rng.Intn(60)))
	}
	return games
}

func TestComputePlayerStats_NoGames(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		s := stats.ComputePlayerStats("a", nil)
		assert.Equal(t, 0, s.Wins)
		assert.Equal(t, 0, s.Losses)
		assert.Equal(t, 0, s.TotalGames)
		assert.Equal(t, 0.0, s.WinPercentage)
		assert.Equal(t, 0.0, s.AvgWinningScore)
		assert.Equal(t, 0.0, s.AvgLosingScore)
		assert.Equal(t, "0/0", s.RecentForm)
		assert.Equal(t, "0", s.CurrentStreak)
		assert.Nil(t, s.FavoriteOpponent)
	})

	t.Run("player absent from a populated log", func(t *testing.T) {
		games := []cribbage.Game{game("a", "b", 100, 1), game("b", "a", 80, 2)}
		s := stats.ComputePlayerStats("ghost", games)
		assert.Equal(t, 0, s.TotalGames)
		assert.Equal(t, "0", s.CurrentStreak)
		assert.Nil(t, s.FavoriteOpponent)
		assert.Nil(t, stats.FindNemesis("ghost", games))
	})
}

func TestComputePlayerStats_SkunkScenario(t *testing.T) {
	games := []cribbage.Game{
		game("a", "b", 85, 1),
		game("a", "b", 90, 2),
		game("a", "b", 55, 3),
		game("a", "b", 40, 4),
	}

	a := stats.ComputePlayerStats("a", games)
	b := stats.ComputePlayerStats("b", games)

	assert.Equal(t, 4, a.Wins)
	assert.Equal(t, 4, b.Losses)
	assert.Equal(t, 2, a.SkunksGiven, "85 and 90 are plain skunks")
	assert.Equal(t, 2, a.DoubleSkunksGiven, "55 and 40 are double skunks")
	assert.Equal(t, 2, b.SkunksReceived)
	assert.Equal(t, 2, b.DoubleSkunksReceived)
	assert.Equal(t, 4, a.SkunksDelivered())
	assert.Equal(t, 100.0, a.WinPercentage)
	assert.Equal(t, 0.0, b.WinPercentage)
	assert.Equal(t, 121.0, a.AvgWinningScore)
	assert.Equal(t, 67.5, b.AvgLosingScore)
	assert.Equal(t, "4W", a.CurrentStreak)
	assert.Equal(t, "4L", b.CurrentStreak)

	require.NotNil(t, a.FavoriteOpponent)
	assert.Equal(t, "b", a.FavoriteOpponent.OpponentID)
	assert.Equal(t, 4, a.FavoriteOpponent.WinsAgainstThem)
	assert.Equal(t, 100.0, a.FavoriteOpponent.WinRateAgainst)
	assert.Nil(t, b.FavoriteOpponent, "no wins means no favorite opponent")
}

func TestComputePlayerStats_OrdinaryLossesAreNotSkunks(t *testing.T) {
	games := []cribbage.Game{game("a", "b", 91, 1), game("a", "b", 120, 2)}
	s := stats.ComputePlayerStats("a", games)
	assert.Equal(t, 0, s.SkunksGiven)
	assert.Equal(t, 0, s.DoubleSkunksGiven)
}

func TestComputePlayerStats_WinPercentageRounding(t *testing.T) {
	games := []cribbage.Game{
		game("a", "b", 100, 1),
		game("a", "b", 101, 2),
		game("b", "a", 99, 3),
	}
	s := stats.ComputePlayerStats("a", games)
	assert.Equal(t, 66.7, s.WinPercentage)
	assert.Equal(t, 99.0, s.AvgLosingScore)
}

func TestComputePlayerStats_RecentFormAndStreak(t *testing.T) {
	var games []cribbage.Game
	// Twelve games: a wins days 1..8, then loses days 9..12.
	for day := 1; day <= 8; day++ {
		games = append(games, game("a", "b", 100, day))
	}
	for day := 9; day <= 12; day++ {
		games = append(games, game("b", "a", 100, day))
	}

	s := stats.ComputePlayerStats("a", games)
	assert.Equal(t, "6/10", s.RecentForm)
	assert.Equal(t, 6, s.RecentWins)
	assert.Equal(t, 10, s.RecentGames)
	assert.Equal(t, "4L", s.CurrentStreak)

	t.Run("order of the log does not matter across dates", func(t *testing.T) {
		reversed := make([]cribbage.Game, len(games))
		for i, g := range games {
			reversed[len(games)-1-i] = g
		}
		r := stats.ComputePlayerStats("a", reversed)
		assert.Equal(t, s.RecentForm, r.RecentForm)
		assert.Equal(t, s.CurrentStreak, r.CurrentStreak)
	})

	t.Run("same-day games use log order, newest entry first", func(t *testing.T) {
		sameDay := []cribbage.Game{
			game("a", "b", 100, 5),
			game("b", "a", 100, 5),
		}
		assert.Equal(t, "1L", stats.ComputePlayerStats("a", sameDay).CurrentStreak)
	})

	t.Run("custom window", func(t *testing.T) {
		p := stats.Policy{RecentWindow: 3, MinRivalryGames: 2}
		r := p.ComputePlayerStats("a", games)
		assert.Equal(t, "0/3", r.RecentForm)
		assert.Equal(t, "3L", r.CurrentStreak)
	})
}

func TestComputePlayerStats_FormatInvariants(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	streakPattern := regexp.MustCompile(`^\d+[WL]$`)

	for seed := int64(1); seed <= 20; seed++ {
		games := randomLog(seed, ids, int(seed)*3)
		for _, id := range append(ids, "nobody") {
			s := stats.ComputePlayerStats(id, games)

			parts := strings.Split(s.RecentForm, "/")
			require.Len(t, parts, 2)
			num, err := strconv.Atoi(parts[0])
			require.NoError(t, err)
			den, err := strconv.Atoi(parts[1])
			require.NoError(t, err)
			assert.LessOrEqual(t, num, den, "seed %d player %s", seed, id)
			assert.LessOrEqual(t, den, stats.DefaultRecentWindow)

			if s.CurrentStreak != "0" {
				assert.Regexp(t, streakPattern, s.CurrentStreak)
			} else {
				assert.Equal(t, 0, s.TotalGames)
			}
			assert.Equal(t, s.Wins+s.Losses, s.TotalGames)
		}
	}
}

func TestFavoriteOpponent_TieBreaks(t *testing.T) {
	games := []cribbage.Game{
		game("a", "b", 100, 1),
		game("a", "b", 100, 2),
		game("a", "c", 100, 3),
		game("a", "c", 100, 4),
		game("c", "a", 100, 5),
	}
	s := stats.ComputePlayerStats("a", games)
	require.NotNil(t, s.FavoriteOpponent)
	assert.Equal(t, "c", s.FavoriteOpponent.OpponentID, "equal wins fall to the opponent played more often")
	assert.Equal(t, 3, s.FavoriteOpponent.TotalGames)
	assert.Equal(t, 66.7, s.FavoriteOpponent.WinRateAgainst)
}

func TestFindNemesis(t *testing.T) {
	t.Run("single game is below the threshold", func(t *testing.T) {
		games := []cribbage.Game{game("b", "a", 100, 1)}
		assert.Nil(t, stats.FindNemesis("a", games))

		lenient := stats.NewPolicy(1)
		n := lenient.FindNemesis("a", games)
		require.NotNil(t, n)
		assert.Equal(t, "b", n.OpponentID)
	})

	t.Run("most losses wins", func(t *testing.T) {
		games := []cribbage.Game{
			game("b", "a", 100, 1),
			game("b", "a", 100, 2),
			game("b", "a", 100, 3),
			game("c", "a", 100, 4),
			game("c", "a", 100, 5),
		}
		n := stats.FindNemesis("a", games)
		require.NotNil(t, n)
		assert.Equal(t, "b", n.OpponentID)
		assert.Equal(t, 3, n.LossesToThem)
		assert.Equal(t, 0, n.WinsAgainstThem)
		assert.Equal(t, 3, n.TotalGames)
		assert.Equal(t, 0.0, n.WinRateAgainst)
	})

	t.Run("equal losses fall to the lowest win rate against", func(t *testing.T) {
		games := []cribbage.Game{
			game("b", "a", 100, 1),
			game("b", "a", 100, 2),
			game("a", "b", 100, 3),
			game("c", "a", 100, 4),
			game("c", "a", 100, 5),
		}
		n := stats.FindNemesis("a", games)
		require.NotNil(t, n)
		assert.Equal(t, "c", n.OpponentID)
	})

	t.Run("opponents who never won do not qualify", func(t *testing.T) {
		games := []cribbage.Game{
			game("a", "b", 100, 1),
			game("a", "b", 100, 2),
		}
		assert.Nil(t, stats.FindNemesis("a", games))
	})

	t.Run("win rate against is reported", func(t *testing.T) {
		games := []cribbage.Game{
			game("b", "a", 100, 1),
			game("b", "a", 100, 2),
			game("a", "b", 100, 3),
		}
		n := stats.FindNemesis("a", games)
		require.NotNil(t, n)
		assert.Equal(t, 33.3, n.WinRateAgainst)
	})
}

func TestBuildLeaderboard(t *testing.T) {
	t.Run("no games yields an empty leaderboard", func(t *testing.T) {
		players := []cribbage.Player{player("a", "Ann", "A"), player("b", "Bob", "B")}
		board := stats.BuildLeaderboard(players, nil)
		require.NotNil(t, board)
		assert.Empty(t, board)
		assert.Empty(t, stats.BuildLeaderboard(nil, nil))
	})

	t.Run("excludes players without games and orders by win rate", func(t *testing.T) {
		players := []cribbage.Player{
			player("a", "Ann", "A"),
			player("b", "Bob", "B"),
			player("c", "Cat", "C"),
			player("idle", "Ida", "I"),
		}
		games := []cribbage.Game{
			game("a", "b", 100, 1),
			game("a", "c", 100, 2),
			game("b", "c", 100, 3),
			game("c", "a", 100, 4),
		}
		board := stats.BuildLeaderboard(players, games)
		require.Len(t, board, 3)
		assert.Equal(t, "a", board[0].PlayerID)
		assert.Equal(t, "Ann A", board[0].Name)
		assert.Equal(t, 66.7, board[0].WinPercentage)
		for _, e := range board {
			assert.NotEqual(t, "idle", e.PlayerID)
		}
	})

	t.Run("ties broken by wins then games then input order", func(t *testing.T) {
		players := []cribbage.Player{
			player("p1", "One", ""),
			player("p2", "Two", ""),
			player("p3", "Three", ""),
			player("p4", "Four", ""),
			player("x", "Ex", ""),
		}
		games := []cribbage.Game{
			// p1: 1/2 (50%), p2: 2/4 (50%), p3 and p4: 1/2 (50%)
			game("p1", "x", 100, 1),
			game("x", "p1", 100, 2),
			game("p2", "x", 100, 3),
			game("p2", "x", 100, 4),
			game("x", "p2", 100, 5),
			game("x", "p2", 100, 6),
			game("p3", "x", 100, 7),
			game("x", "p3", 100, 8),
			game("p4", "x", 100, 9),
			game("x", "p4", 100, 10),
		}
		board := stats.BuildLeaderboard(players, games)
		var order []string
		for _, e := range board {
			order = append(order, e.PlayerID)
		}
		assert.Equal(t, []string{"x", "p2", "p1", "p3", "p4"}, order)
	})

	t.Run("adjacent entries are ordered", func(t *testing.T) {
		ids := []string{"a", "b", "c", "d", "e", "f"}
		var players []cribbage.Player
		for _, id := range ids {
			players = append(players, player(id, strings.ToUpper(id), ""))
		}
		for seed := int64(1); seed <= 10; seed++ {
			board := stats.BuildLeaderboard(players, randomLog(seed, ids, 40))
			for i := 1; i < len(board); i++ {
				a, b := board[i-1], board[i]
				ordered := a.WinPercentage > b.WinPercentage ||
					(a.WinPercentage == b.WinPercentage && a.Wins > b.Wins) ||
					(a.WinPercentage == b.WinPercentage && a.Wins == b.Wins && a.TotalGames >= b.TotalGames)
				assert.True(t, ordered, "seed %d: %s before %s", seed, a.PlayerID, b.PlayerID)
			}
		}
	})

	t.Run("idempotent over an unchanged log", func(t *testing.T) {
		ids := []string{"a", "b", "c", "d"}
		var players []cribbage.Player
		for _, id := range ids {
			players = append(players, player(id, id, id))
		}
		games := randomLog(42, ids, 50)
		first := stats.BuildLeaderboard(players, games)
		second := stats.BuildLeaderboard(players, games)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("leaderboard changed between calls (-first +second):\n%s", diff)
		}
	})
}

func TestBuildRankings(t *testing.T) {
	players := []cribbage.Player{
		player("a", "Ann", ""),
		player("b", "Bob", ""),
		player("c", "Cat", ""),
	}
	games := []cribbage.Game{
		game("a", "b", 100, 1),
		game("b", "c", 50, 2),
		game("b", "c", 80, 3),
		game("c", "a", 100, 4),
		game("c", "a", 100, 5),
		game("b", "a", 100, 6),
	}
	board := stats.BuildLeaderboard(players, games)
	before := make([]stats.LeaderboardEntry, len(board))
	copy(before, board)

	rankings := stats.BuildRankings(board)

	ids := func(entries []stats.LeaderboardEntry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.PlayerID)
		}
		return out
	}
	assert.Equal(t, ids(board), ids(rankings.WinRate))
	assert.Equal(t, "b", rankings.MostWins[0].PlayerID)
	assert.Equal(t, 3, rankings.MostWins[0].Wins)
	assert.Equal(t, []string{"b", "c", "a"}, ids(rankings.MostGames), "equal game counts keep win-rate order")
	assert.Equal(t, "b", rankings.SkunkMasters[0].PlayerID)
	assert.Equal(t, 2, rankings.SkunkMasters[0].SkunksDelivered())

	if diff := cmp.Diff(before, board); diff != "" {
		t.Errorf("BuildRankings reordered its input (-before +after):\n%s", diff)
	}

	empty := stats.BuildRankings(nil)
	assert.Empty(t, empty.WinRate)
	assert.Empty(t, empty.SkunkMasters)
}

func TestLeaderboardPosition(t *testing.T) {
	players := []cribbage.Player{player("a", "Ann", ""), player("b", "Bob", ""), player("c", "Cat", "")}
	games := []cribbage.Game{game("a", "b", 100, 1), game("a", "b", 100, 2), game("b", "a", 100, 3)}
	board := stats.BuildLeaderboard(players, games)

	pos := stats.LeaderboardPosition(board, "b")
	require.NotNil(t, pos)
	assert.Equal(t, 2, pos.Position)
	assert.Equal(t, 2, pos.TotalPlayers)
	assert.Equal(t, 33.3, pos.WinPercentage)
	assert.Equal(t, 1, pos.Wins)
	assert.Equal(t, 2, pos.Losses)

	assert.Nil(t, stats.LeaderboardPosition(board, "c"))
}

func TestBuildProfile(t *testing.T) {
	ann := player("a", "Ann", "Archer")
	bob := player("b", "Bob", "Baker")
	players := []cribbage.Player{ann, bob}
	games := []cribbage.Game{
		game("b", "a", 100, 1),
		game("b", "a", 60, 2),
		game("a", "b", 100, 3),
	}

	profile := stats.DefaultPolicy.BuildProfile(ann, players, games)
	assert.Equal(t, ann, profile.Player)
	assert.Equal(t, 1, profile.Stats.Wins)
	require.NotNil(t, profile.Nemesis)
	assert.Equal(t, "Bob Baker", profile.Nemesis.OpponentName)
	require.NotNil(t, profile.Stats.FavoriteOpponent)
	assert.Equal(t, "Bob Baker", profile.Stats.FavoriteOpponent.OpponentName)
	require.NotNil(t, profile.Position)
	assert.Equal(t, 2, profile.Position.Position)

	require.Len(t, profile.RecentGames, 3)
	assert.Equal(t, "W", profile.RecentGames[0].Result)
	assert.Equal(t, "Bob Baker", profile.RecentGames[0].OpponentName)
	assert.Equal(t, "L", profile.RecentGames[2].Result)

	loner := stats.DefaultPolicy.BuildProfile(player("z", "Zed", ""), players, games)
	assert.Nil(t, loner.Nemesis)
	assert.Nil(t, loner.Position)
	assert.Empty(t, loner.RecentGames)
}

func TestNemesisByPlayer(t *testing.T) {
	players := []cribbage.Player{player("a", "Ann", ""), player("b", "Bob", "")}
	games := []cribbage.Game{game("b", "a", 100, 1), game("b", "a", 100, 2)}

	nemeses := stats.DefaultPolicy.NemesisByPlayer(players, games)
	require.Contains(t, nemeses, "a")
	assert.Equal(t, "Bob", nemeses["a"].OpponentName)
	assert.NotContains(t, nemeses, "b")
}

func TestSummarize(t *testing.T) {
	boards := []cribbage.Board{
		{ID: "1", RomanNumber: "I", InCollection: true},
		{ID: "2", RomanNumber: "II", IsGift: true, GiftedTo: "Ann"},
		{ID: "3", RomanNumber: "III", InCollection: true, IsGift: true},
	}
	players := []cribbage.Player{player("a", "Ann", ""), player("b", "Bob", ""), player("c", "Cat", "")}
	games := []cribbage.Game{game("a", "b", 50, 1), game("a", "b", 80, 2), game("b", "a", 110, 3)}

	summary := stats.Summarize(boards, players, games)
	assert.Equal(t, stats.Summary{
		Boards:             3,
		BoardsInCollection: 2,
		BoardsGifted:       2,
		Players:            3,
		ActivePlayers:      2,
		Games:              3,
		Skunks:             1,
		DoubleSkunks:       1,
	}, summary)
}

func TestZeroPolicyFallsBackToDefaults(t *testing.T) {
	games := []cribbage.Game{game("a", "b", 100, 1)}

	var zero stats.Policy
	assert.Nil(t, zero.FindNemesis("b", games))
	assert.Nil(t, stats.NewPolicy(0).FindNemesis("b", games))
	assert.Equal(t, stats.DefaultPolicy.ComputePlayerStats("b", games), zero.ComputePlayerStats("b", games))

	games = append(games, game("a", "b", 90, 2))
	n := zero.FindNemesis("b", games)
	require.NotNil(t, n)
	assert.Equal(t, "a", n.OpponentID)
}

func TestBuildProfile_RecentGamesMatchRecentForm(t *testing.T) {
	ids := []string{"a", "b", "c"}
	players := []cribbage.Player{player("a", "A", ""), player("b", "B", ""), player("c", "C", "")}
	games := randomLog(11, ids, 40)

	for _, pl := range players {
		profile := stats.DefaultPolicy.BuildProfile(pl, players, games)
		require.Len(t, profile.RecentGames, profile.Stats.RecentGames)
		wins := 0
		for _, line := range profile.RecentGames {
			if line.Result == "W" {
				wins++
			}
		}
		assert.Equal(t, profile.Stats.RecentWins, wins, pl.ID)
	}
}
