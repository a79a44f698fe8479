package events

import (
	"fmt"
	"sync"
)

// EventStore is the interface for storing and retrieving review events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(sessionID string) ([]Event, error)
	Close() error
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
type InMemoryEventStore struct {
	events map[string][]Event
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	sessionID := ExtractSessionID(event)
	if sessionID == "" {
		return fmt.Errorf("event %s has no sessionID", event.Name())
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.events[sessionID] = append(s.events[sessionID], event)
	return nil
}

// LoadEvents retrieves all events for the given session, oldest first.
func (s *InMemoryEventStore) LoadEvents(sessionID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := s.events[sessionID]
	result := make([]Event, len(events))
	copy(result, events)
	return result, nil
}

func (s *InMemoryEventStore) Close() error {
	return nil
}
