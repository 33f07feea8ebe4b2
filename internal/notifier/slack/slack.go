package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/mauv0809/cribbage-board/internal/metrics"
	"github.com/mauv0809/cribbage-board/internal/notifier"
	"github.com/mauv0809/cribbage-board/internal/stats"
	"github.com/slack-go/slack"
)

// maxLeaderboardRows keeps leaderboard messages well under Slack's block limit.
const maxLeaderboardRows = 10

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendResultNotification(result notifier.GameResult, dryRun bool) error {
	msg := s.formatResultNotification(result)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(entries []stats.LeaderboardEntry, dryRun bool) error {
	msg := s.formatLeaderboard(entries)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerStats(profile *stats.Profile, query string, dryRun bool) error {
	msg := s.formatPlayerStats(profile)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerNotFound(query string, suggestions []string, dryRun bool) error {
	msg := s.formatPlayerNotFound(query, suggestions)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(entries []stats.LeaderboardEntry) (any, error) {
	return s.formatLeaderboard(entries), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(profile *stats.Profile, query string) (any, error) {
	if profile == nil {
		return s.formatPlayerNotFound(query, nil), nil
	}
	return s.formatPlayerStats(profile), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string, suggestions []string) (any, error) {
	return s.formatPlayerNotFound(query, suggestions), nil
}

// formatResultNotification creates the Slack message for a recorded game using Block Kit.
func (s *Notifier) formatResultNotification(result notifier.GameResult) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🃏 Game recorded! 🃏", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	game := result.Game
	details := fmt.Sprintf("%s beat %s %d-%d\nPlayed: %s",
		result.Winner.Name(), result.Loser.Name(), game.WinnerScore, game.LoserScore,
		game.DatePlayed.Format("Monday 02 Jan 2006"))
	if result.Board != nil {
		details += fmt.Sprintf("\nBoard: %s", result.Board.RomanNumber)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", details, true, false), nil, nil))

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("mrkdwn", standingLine(result.Winner.Name(), result.WinnerStats), false, false),
		slack.NewTextBlockObject("mrkdwn", standingLine(result.Loser.Name(), result.LoserStats), false, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	switch game.Classification() {
	case cribbage.DoubleSkunk:
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", fmt.Sprintf("🦨🦨 Double skunk! %s never made it past %d.", result.Loser.Name(), cribbage.DoubleSkunkLine-1), true, false)))
	case cribbage.Skunk:
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", fmt.Sprintf("🦨 Skunk! %s stayed below %d.", result.Loser.Name(), cribbage.SkunkLine), true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

func standingLine(name string, st stats.PlayerStats) string {
	return fmt.Sprintf("*%s*\n%dW / %dL (%.1f%%)\nForm: %s | Streak: %s",
		name, st.Wins, st.Losses, st.WinPercentage, st.RecentForm, st.CurrentStreak)
}

// formatLeaderboard creates a Slack message to display the player leaderboard.
func (s *Notifier) formatLeaderboard(entries []stats.LeaderboardEntry) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Cribbage Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No games recorded yet. Go play some cribbage!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Player Ranks
	for i, entry := range entries {
		if i == maxLeaderboardRows {
			more := fmt.Sprintf("…and %d more", len(entries)-maxLeaderboardRows)
			blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", more, true, false)))
			break
		}
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Win %%: %.1f%% (%d/%d) | Skunks: %d | Streak: %s",
			rank,
			medal,
			entry.Name,
			entry.WinPercentage,
			entry.Wins,
			entry.TotalGames,
			entry.SkunksDelivered(),
			entry.CurrentStreak,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's profile.
func (s *Notifier) formatPlayerStats(profile *stats.Profile) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("🏆 Stats for %s 🏆", profile.Player.Name())
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	st := profile.Stats
	if st.TotalGames == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No games recorded yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := []string{
		fmt.Sprintf("> *Record*: %dW / %dL (%.1f%%)", st.Wins, st.Losses, st.WinPercentage),
	}
	if profile.Position != nil {
		lines = append(lines, fmt.Sprintf("> *Position*: %d of %d", profile.Position.Position, profile.Position.TotalPlayers))
	}
	lines = append(lines,
		fmt.Sprintf("> *Recent form*: %s | *Streak*: %s", st.RecentForm, st.CurrentStreak),
		fmt.Sprintf("> *Skunks given*: %d (%d double)", st.SkunksDelivered(), st.DoubleSkunksGiven),
		fmt.Sprintf("> *Skunks received*: %d (%d double)", st.SkunksReceived+st.DoubleSkunksReceived, st.DoubleSkunksReceived),
		fmt.Sprintf("> *Avg score*: %.1f winning, %.1f losing", st.AvgWinningScore, st.AvgLosingScore),
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))

	var contextElements []slack.MixedElement
	if n := profile.Nemesis; n != nil {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text",
			fmt.Sprintf("😈 Nemesis: %s (lost %d of %d)", n.OpponentName, n.LossesToThem, n.TotalGames), true, false))
	}
	if f := st.FavoriteOpponent; f != nil {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text",
			fmt.Sprintf("😇 Favorite opponent: %s (won %d of %d)", f.OpponentName, f.WinsAgainstThem, f.TotalGames), true, false))
	}
	if len(contextElements) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when no player matches the query.
func (s *Notifier) formatPlayerNotFound(query string, suggestions []string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	if len(suggestions) > 0 {
		text += fmt.Sprintf("\nDid you mean: %s?", strings.Join(suggestions, ", "))
	}
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}
