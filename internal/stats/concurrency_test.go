package stats_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/mauv0809/cribbage-board/internal/stats"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentReadersShareSnapshot(t *testing.T) {
	defer goleak.VerifyNone(t)

	ids := []string{"a", "b", "c", "d", "e"}
	players := make([]cribbage.Player, 0, len(ids))
	for _, id := range ids {
		players = append(players, player(id, "Player", id))
	}
	games := randomLog(7, ids, 300)

	want := stats.BuildLeaderboard(players, games)

	var g errgroup.Group
	results := make([][]stats.LeaderboardEntry, 16)
	for i := range results {
		g.Go(func() error {
			results[i] = stats.BuildLeaderboard(players, games)
			for _, id := range ids {
				stats.FindNemesis(id, games)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("reader %d leaderboard mismatch (-want +got):\n%s", i, diff)
		}
	}
}
