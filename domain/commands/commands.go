package commands

type Command interface {
	Name() string
}

// EvaluateBoard asks for the best combination on a board plus optional hole cards
type EvaluateBoard struct {
	SessionID string   `json:"sessionId"`
	Board     []string `json:"board"`
	Hand      []string `json:"hand,omitempty"`
}

func (e EvaluateBoard) Name() string { return "EVALUATE_BOARD" }

// SubscribeSession starts pushing a session's events to the sender
type SubscribeSession struct {
	SessionID string `json:"sessionId"`
}

func (s SubscribeSession) Name() string { return "SUBSCRIBE_SESSION" }

type UnsubscribeSession struct {
	SessionID string `json:"sessionId"`
}

func (u UnsubscribeSession) Name() string { return "UNSUBSCRIBE_SESSION" }
