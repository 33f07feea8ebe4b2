package handlers

import (
	"net/http"

	"github.com/mauv0809/cribbage-board/internal/processor"
)

func LeaderboardHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := proc.Leaderboard(r.Context())
		if err != nil {
			writeError(w, err, "Failed to build leaderboard")
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func RankingsHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rankings, err := proc.Rankings(r.Context())
		if err != nil {
			writeError(w, err, "Failed to build rankings")
			return
		}
		writeJSON(w, http.StatusOK, rankings)
	}
}

func StatsHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := proc.Overview(r.Context())
		if err != nil {
			writeError(w, err, "Failed to build statistics")
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}
