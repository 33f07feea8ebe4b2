package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	gamesRecorded    int
	eventsProcessed  int
	statsDurations   []float64
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		statsDurations: make([]float64, 0),
	}
}

func (m *Mock) IncGamesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesRecorded++
}

func (m *Mock) IncEventsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsProcessed++
}

func (m *Mock) ObserveStatsDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsDurations = append(m.statsDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// GamesRecorded returns the number of times IncGamesRecorded was called.
func (m *Mock) GamesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesRecorded
}

// EventsProcessed returns the number of times IncEventsProcessed was called.
func (m *Mock) EventsProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsProcessed
}

// StatsObservations returns the number of recorded stats durations.
func (m *Mock) StatsObservations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.statsDurations)
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
