package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lazharichir/pokerreview/domain/cards"
	"github.com/lazharichir/pokerreview/domain/hands"
)

// CombinationRecognized is recorded for every successful evaluation
type CombinationRecognized struct {
	EventID     string            `json:"eventId"`
	SessionID   string            `json:"sessionId"`
	Board       cards.Stack       `json:"board"`
	Hand        cards.Stack       `json:"hand,omitempty"`
	Combination hands.Combination `json:"combination"`
	Cards       cards.Stack       `json:"cards"`
	At          time.Time         `json:"at"`
}

func (e CombinationRecognized) Name() string { return "COMBINATION_RECOGNIZED" }

// EvaluationRejected is recorded when the input could not be evaluated.
// Board and Hand keep the raw notation since it may not parse.
type EvaluationRejected struct {
	EventID   string    `json:"eventId"`
	SessionID string    `json:"sessionId"`
	Board     []string  `json:"board"`
	Hand      []string  `json:"hand,omitempty"`
	Kind      string    `json:"kind"`
	Reason    string    `json:"reason"`
	At        time.Time `json:"at"`
}

func (e EvaluationRejected) Name() string { return "EVALUATION_REJECTED" }

// Decode rebuilds a stored event from its name and JSON payload
func Decode(name string, payload []byte) (Event, error) {
	switch name {
	case CombinationRecognized{}.Name():
		var e CombinationRecognized
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case EvaluationRejected{}.Name():
		var e EvaluationRejected
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unknown event type: %s", name)
	}
}
