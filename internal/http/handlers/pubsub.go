package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cribbage-board/internal/cribbage"
	"github.com/mauv0809/cribbage-board/internal/processor"
	"github.com/mauv0809/cribbage-board/internal/pubsub"
)

// GameRecordedHandler consumes game-recorded events pushed by Pub/Sub.
func GameRecordedHandler(proc *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received game-recorded message", "body", string(bodyBytes))

		var envelope pubsub.PushEnvelope
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := envelope.Payload()
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var event pubsub.GameRecorded
		if err := pubsubClient.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		err = proc.HandleGameRecorded(r.Context(), event, IsDryRunFromContext(r))
		switch {
		case errors.Is(err, cribbage.ErrGameNotFound):
			// Deleted before delivery; acknowledge so Pub/Sub stops retrying.
			log.Warn("Game from event no longer exists", "gameID", event.GameID)
		case err != nil:
			log.Error("Failed to handle game-recorded event", "error", err, "gameID", event.GameID)
			http.Error(w, "Failed to handle event", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
