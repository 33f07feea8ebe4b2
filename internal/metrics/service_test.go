package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCountsAndExposes(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncGamesRecorded()
	s.IncGamesRecorded()
	s.IncSlackNotifFailed()
	s.ObserveStatsDuration(0.002)

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "cribbage_games_recorded_total 2")
	assert.Contains(t, rr.Body.String(), "cribbage_slack_notifications_failed_total 1")
	assert.Contains(t, rr.Body.String(), "cribbage_slack_notifications_sent_total 0")
	assert.Contains(t, rr.Body.String(), "cribbage_stats_computation_duration_seconds_count 1")
}
