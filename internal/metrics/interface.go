package metrics

// Metrics defines the interface for collecting application metrics.
type Metrics interface {
	IncGamesRecorded()
	IncEventsProcessed()
	ObserveStatsDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
