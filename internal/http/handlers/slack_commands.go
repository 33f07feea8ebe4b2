package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cribbage-board/internal/club"
	"github.com/mauv0809/cribbage-board/internal/notifier"
	"github.com/mauv0809/cribbage-board/internal/processor"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg any) {
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(slackMsg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// postRequested reports whether the command should post to the channel instead of
// answering only the caller. Slack passes it through the command URL, e.g. ?post=true.
func postRequested(r *http.Request) bool {
	return r.URL.Query().Get("post") == "true"
}

// respondPosted acknowledges a command whose answer went to the channel.
func respondPosted(w http.ResponseWriter, what string) {
	respondWithSlackMsg(w, slack.Message{Msg: slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "Posted " + what + " to the channel.",
	}})
}

func LeaderboardCommandHandler(proc *processor.Processor, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := proc.Leaderboard(r.Context())
		if err != nil {
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			log.Error("Failed to build leaderboard", "error", err)
			return
		}

		if postRequested(r) {
			if err := notifier.SendLeaderboard(entries, IsDryRunFromContext(r)); err != nil {
				http.Error(w, "Failed to post leaderboard", http.StatusInternalServerError)
				log.Error("Failed to post leaderboard", "error", err)
				return
			}
			respondPosted(w, "the leaderboard")
			return
		}

		msg, err := notifier.FormatLeaderboardResponse(entries)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

func PlayerStatsCommandHandler(store club.ClubStore, proc *processor.Processor, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		query := strings.TrimSpace(r.FormValue("text"))
		if query == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}
		log.Info("Received player stats command", "query", query, "user", r.FormValue("user_name"))

		player, suggestions, err := club.NewPlayerMatcher(store).FindPlayer(r.Context(), query)
		if err != nil {
			http.Error(w, "Failed to look up player", http.StatusInternalServerError)
			log.Error("Failed to look up player", "error", err)
			return
		}

		post, dryRun := postRequested(r), IsDryRunFromContext(r)
		var msg any
		if player == nil {
			names := make([]string, 0, len(suggestions))
			for _, s := range suggestions {
				names = append(names, s.Player.Name())
			}
			log.Warn("Could not find player", "query", query, "suggestions", len(names))
			if post {
				err = notifier.SendPlayerNotFound(query, names, dryRun)
			} else {
				msg, err = notifier.FormatPlayerNotFoundResponse(query, names)
			}
		} else {
			profile, perr := proc.Profile(r.Context(), player.ID)
			if perr != nil {
				http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
				log.Error("Failed to build player profile", "error", perr, "playerID", player.ID)
				return
			}
			if post {
				err = notifier.SendPlayerStats(profile, query, dryRun)
			} else {
				msg, err = notifier.FormatPlayerStatsResponse(profile, query)
			}
		}
		if err != nil {
			http.Error(w, "Failed to deliver player stats", http.StatusInternalServerError)
			log.Error("Failed to deliver player stats", "error", err)
			return
		}
		if post {
			respondPosted(w, "player stats")
			return
		}
		respondWithSlackMsg(w, msg)
	}
}
