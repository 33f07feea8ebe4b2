package processor

import (
	"github.com/mauv0809/cribbage-board/internal/metrics"
	"github.com/mauv0809/cribbage-board/internal/pubsub"
	"github.com/mauv0809/cribbage-board/internal/stats"
)

// Processor computes statistics views over the collection and reacts to recorded games.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	opts     Options
}

// Options tune the processor.
type Options struct {
	Policy stats.Policy
	// Inline handles game-recorded events during the request instead of publishing them.
	Inline bool
	// Announce posts results to Slack. Otherwise announcements are logged as dry runs.
	Announce bool
}

// Overview is the whole-collection statistics view.
type Overview struct {
	Summary     stats.Summary             `json:"summary"`
	Leaderboard []stats.LeaderboardEntry  `json:"leaderboard"`
	Nemeses     map[string]*stats.Rivalry `json:"nemeses"`
}
