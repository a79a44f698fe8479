package events

import (
	"encoding/json"
	"testing"

	domainevents "github.com/lazharichir/pokerreview/domain/events"
	"github.com/lazharichir/pokerreview/server/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_HandleEvent(t *testing.T) {
	connMgr := connection.NewManager()
	subscriber := &connection.Client{ID: "a", Send: make(chan []byte, 1)}
	other := &connection.Client{ID: "b", Send: make(chan []byte, 1)}
	connMgr.Register(subscriber)
	connMgr.Register(other)
	connMgr.AddSessionToClient("a", "s1")

	NewDispatcher(connMgr).HandleEvent(domainevents.EvaluationRejected{
		EventID:   "e1",
		SessionID: "s1",
		Board:     []string{"2h", "7c"},
		Kind:      "invalid_board",
	})

	require.Len(t, subscriber.Send, 1)
	assert.Empty(t, other.Send)

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(<-subscriber.Send, &envelope))
	assert.Equal(t, "EVALUATION_REJECTED", envelope.Name)

	var payload domainevents.EvaluationRejected
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, "e1", payload.EventID)
	assert.Equal(t, "invalid_board", payload.Kind)
}
