package events

import (
	"encoding/json"
	"log"

	"github.com/lazharichir/pokerreview/domain/events"
	"github.com/lazharichir/pokerreview/server/connection"
)

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// NewEnvelope marshals payload into an envelope named name
func NewEnvelope(name string, payload any) (EventEnvelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return EventEnvelope{}, err
	}
	return EventEnvelope{Name: name, Payload: data}, nil
}

// Encode marshals payload into a ready-to-send envelope
func Encode(name string, payload any) ([]byte, error) {
	envelope, err := NewEnvelope(name, payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope)
}

// Dispatcher handles routing events to clients
type Dispatcher struct {
	connMgr *connection.Manager
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(connMgr *connection.Manager) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
	}
}

// HandleEvent sends review events to the clients subscribed to their session
func (d *Dispatcher) HandleEvent(event events.Event) {
	envelopeData, err := Encode(event.Name(), event)
	if err != nil {
		log.Println("Failed to marshal event envelope:", err)
		return
	}

	sessionID := events.ExtractSessionID(event)
	sent := d.connMgr.SendToSession(sessionID, envelopeData)
	log.Printf("Dispatched event %s for session %s to %d client(s)", event.Name(), sessionID, sent)
}
