package pubsub

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestPushEnvelopePayload(t *testing.T) {
	event := GameRecorded{GameID: "g1", RecordedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	raw, err := msgpack.Marshal(event)
	require.NoError(t, err)

	var env PushEnvelope
	env.Message.Data = base64.StdEncoding.EncodeToString(raw)

	payload, err := env.Payload()
	require.NoError(t, err)

	var got GameRecorded
	require.NoError(t, NewNoop().ProcessMessage(payload, &got))
	assert.Equal(t, "g1", got.GameID)
	assert.True(t, event.RecordedAt.Equal(got.RecordedAt))
}

func TestPushEnvelopePayload_InvalidBase64(t *testing.T) {
	var env PushEnvelope
	env.Message.Data = "%%%not-base64"
	_, err := env.Payload()
	assert.Error(t, err)
}

func TestNoopClient(t *testing.T) {
	c := NewNoop()
	assert.NoError(t, c.SendMessage(context.Background(), EventGameRecorded, GameRecorded{GameID: "g1"}))
	assert.Error(t, c.ProcessMessage([]byte{0xc1}, &GameRecorded{}), "0xc1 is never valid msgpack")
	assert.NoError(t, c.Close())
}
