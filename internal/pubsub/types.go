package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client *pubsub.Client
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventGameRecorded EventType = "game-recorded"
)

// GameRecorded is published after a game is appended to the log.
type GameRecorded struct {
	GameID     string    `msgpack:"game_id"`
	RecordedAt time.Time `msgpack:"recorded_at"`
}

// PushEnvelope is the body of a Pub/Sub push delivery.
type PushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		ID         string            `json:"messageId"`
		Attributes map[string]string `json:"attributes"`
		Data       string            `json:"data"` // base64-encoded message payload
	} `json:"message"`
}
