package events

type EventHandler func(event Event)

// Event is the interface that all review events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
}
