package notifier

import (
	"sync"

	"github.com/mauv0809/cribbage-board/internal/stats"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendResultNotificationCalls []GameResult
	SendLeaderboardCalls        [][]stats.LeaderboardEntry
	SendPlayerStatsCalls        []struct {
		Profile *stats.Profile
		Query   string
	}
	SendPlayerNotFoundCalls []string

	// Spies
	SendResultNotificationFunc       func(result GameResult, dryRun bool) error
	FormatLeaderboardResponseFunc    func(entries []stats.LeaderboardEntry) (any, error)
	FormatPlayerStatsResponseFunc    func(profile *stats.Profile, query string) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string, suggestions []string) (any, error)

	// Call records for format functions
	LastLeaderboardEntries     []stats.LeaderboardEntry
	LastPlayerStatsProfile     *stats.Profile
	LastPlayerNotFoundQuery    string
	LastPlayerNotFoundSuggests []string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendPlayerStatsCalls = nil
	m.SendPlayerNotFoundCalls = nil
	m.LastLeaderboardEntries = nil
	m.LastPlayerStatsProfile = nil
	m.LastPlayerNotFoundQuery = ""
	m.LastPlayerNotFoundSuggests = nil
}

func (m *Mock) SendResultNotification(result GameResult, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, result)
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(result, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(entries []stats.LeaderboardEntry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, entries)
	return nil
}

func (m *Mock) SendPlayerStats(profile *stats.Profile, query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerStatsCalls = append(m.SendPlayerStatsCalls, struct {
		Profile *stats.Profile
		Query   string
	}{profile, query})
	return nil
}

func (m *Mock) SendPlayerNotFound(query string, suggestions []string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerNotFoundCalls = append(m.SendPlayerNotFoundCalls, query)
	return nil
}

func (m *Mock) FormatLeaderboardResponse(entries []stats.LeaderboardEntry) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastLeaderboardEntries = entries
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(entries)
	}
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatPlayerStatsResponse(profile *stats.Profile, query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastPlayerStatsProfile = profile
	if m.FormatPlayerStatsResponseFunc != nil {
		return m.FormatPlayerStatsResponseFunc(profile, query)
	}
	return "formatted_player_stats", nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string, suggestions []string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastPlayerNotFoundQuery = query
	m.LastPlayerNotFoundSuggests = suggestions
	if m.FormatPlayerNotFoundResponseFunc != nil {
		return m.FormatPlayerNotFoundResponseFunc(query, suggestions)
	}
	return "formatted_player_not_found", nil
}
