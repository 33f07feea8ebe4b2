package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cribbage-board/internal/club"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/mauv0809/cribbage-board/internal/metrics"
	"github.com/mauv0809/cribbage-board/internal/notifier"
	"github.com/mauv0809/cribbage-board/internal/pubsub"
	"github.com/mauv0809/cribbage-board/internal/stats"
	"golang.org/x/sync/errgroup"
)

// New creates a new Processor.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, opts Options) *Processor {
	return &Processor{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
		opts:     opts,
	}
}

// GameRecorded is called after a game has been written. The announcement is
// either published as an event or, in inline mode, handled right away.
func (p *Processor) GameRecorded(ctx context.Context, game *cribbage.Game, dryRun bool) error {
	p.metrics.IncGamesRecorded()
	event := pubsub.GameRecorded{GameID: game.ID, RecordedAt: game.CreatedAt}

	if p.opts.Inline || dryRun {
		return p.HandleGameRecorded(ctx, event, dryRun)
	}
	if err := p.pubsub.SendMessage(ctx, pubsub.EventGameRecorded, event); err != nil {
		log.Warn("Failed to publish game-recorded event, handling inline", "error", err, "gameID", game.ID)
		return p.HandleGameRecorded(ctx, event, dryRun)
	}
	return nil
}

// HandleGameRecorded announces a recorded game with both players' updated standings.
func (p *Processor) HandleGameRecorded(ctx context.Context, event pubsub.GameRecorded, dryRun bool) error {
	p.metrics.IncEventsProcessed()
	log.Info("Handling game-recorded event", "gameID", event.GameID, "dryRun", dryRun)

	snap, err := p.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	game, ok := findGame(snap.Games, event.GameID)
	if !ok {
		return fmt.Errorf("%w: %s", cribbage.ErrGameNotFound, event.GameID)
	}

	result := notifier.GameResult{Game: game}
	for _, pl := range snap.Players {
		switch pl.ID {
		case game.WinnerID:
			result.Winner = pl
		case game.LoserID:
			result.Loser = pl
		}
	}
	for i := range snap.Boards {
		if snap.Boards[i].ID == game.BoardID {
			result.Board = &snap.Boards[i]
		}
	}
	p.observe(func() {
		result.WinnerStats = p.opts.Policy.ComputePlayerStats(game.WinnerID, snap.Games)
		result.LoserStats = p.opts.Policy.ComputePlayerStats(game.LoserID, snap.Games)
	})

	if err := p.notifier.SendResultNotification(result, dryRun || !p.opts.Announce); err != nil {
		return fmt.Errorf("failed to announce game: %w", err)
	}
	return nil
}

// Leaderboard ranks every player with at least one game.
func (p *Processor) Leaderboard(ctx context.Context) ([]stats.LeaderboardEntry, error) {
	snap, err := p.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var entries []stats.LeaderboardEntry
	p.observe(func() {
		entries = p.opts.Policy.BuildLeaderboard(snap.Players, snap.Games)
	})
	return entries, nil
}

// Rankings returns the side orderings of the leaderboard.
func (p *Processor) Rankings(ctx context.Context) (stats.Rankings, error) {
	entries, err := p.Leaderboard(ctx)
	if err != nil {
		return stats.Rankings{}, err
	}
	return stats.BuildRankings(entries), nil
}

// Profile builds the detail view of one player.
func (p *Processor) Profile(ctx context.Context, playerID string) (*stats.Profile, error) {
	snap, err := p.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	player, ok := findPlayer(snap.Players, playerID)
	if !ok {
		return nil, cribbage.ErrPlayerNotFound
	}
	var profile stats.Profile
	p.observe(func() {
		profile = p.opts.Policy.BuildProfile(player, snap.Players, snap.Games)
	})
	return &profile, nil
}

// Overview computes the summary, the leaderboard and every player's nemesis from one snapshot.
func (p *Processor) Overview(ctx context.Context) (*Overview, error) {
	snap, err := p.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return p.overview(snap), nil
}

func (p *Processor) overview(snap *club.Snapshot) *Overview {
	var o Overview
	p.observe(func() {
		// The three views only read the snapshot.
		var g errgroup.Group
		g.Go(func() error {
			o.Summary = stats.Summarize(snap.Boards, snap.Players, snap.Games)
			return nil
		})
		g.Go(func() error {
			o.Leaderboard = p.opts.Policy.BuildLeaderboard(snap.Players, snap.Games)
			return nil
		})
		g.Go(func() error {
			o.Nemeses = p.opts.Policy.NemesisByPlayer(snap.Players, snap.Games)
			return nil
		})
		_ = g.Wait()
	})
	return &o
}

func (p *Processor) observe(compute func()) {
	start := time.Now()
	compute()
	duration := time.Since(start)
	p.metrics.ObserveStatsDuration(duration.Seconds())
	log.Debug("Computed statistics", "duration", duration)
}

func findGame(games []cribbage.Game, id string) (cribbage.Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return cribbage.Game{}, false
}

func findPlayer(players []cribbage.Player, id string) (cribbage.Player, bool) {
	for _, pl := range players {
		if pl.ID == id {
			return pl, true
		}
	}
	return cribbage.Player{}, false
}
