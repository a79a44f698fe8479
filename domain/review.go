package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lazharichir/pokerreview/domain/cards"
	"github.com/lazharichir/pokerreview/domain/events"
	"github.com/lazharichir/pokerreview/domain/hands"
)

// EvaluationRequest is a board and optional hole cards in card notation
type EvaluationRequest struct {
	SessionID string   `json:"sessionId"`
	Board     []string `json:"board"`
	Hand      []string `json:"hand,omitempty"`
}

// Evaluation is the outcome of a successful request
type Evaluation struct {
	SessionID string       `json:"sessionId"`
	Result    hands.Result `json:"-"`
}

// MarshalJSON flattens the result next to the session id
func (e Evaluation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SessionID   string            `json:"sessionId"`
		Combination hands.Combination `json:"combination"`
		Strength    int               `json:"strength"`
		Cards       cards.Stack       `json:"cards"`
	}{
		SessionID:   e.SessionID,
		Combination: e.Result.Combination(),
		Strength:    e.Result.Combination().Strength(),
		Cards:       e.Result.SortedCards(),
	})
}

// Reviewer evaluates boards for review sessions and records every outcome
type Reviewer struct {
	store events.EventStore

	mutex         sync.RWMutex
	eventHandlers []events.EventHandler

	now   func() time.Time
	newID func() string
}

// NewReviewer creates a reviewer backed by the given store
func NewReviewer(store events.EventStore) *Reviewer {
	return &Reviewer{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// AddEventHandler adds an event handler to the reviewer
func (r *Reviewer) AddEventHandler(handler events.EventHandler) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.eventHandlers = append(r.eventHandlers, handler)
}

// Evaluate parses the request, recognizes the best combination and records
// the outcome. A request without a session gets a new one.
func (r *Reviewer) Evaluate(req EvaluationRequest) (Evaluation, error) {
	if req.SessionID == "" {
		req.SessionID = r.newID()
	}

	board, hand, err := parseRequest(req)
	var result hands.Result
	if err == nil {
		result, err = hands.Recognize(board, hand)
	}

	if err != nil {
		rejected := events.EvaluationRejected{
			EventID:   r.newID(),
			SessionID: req.SessionID,
			Board:     req.Board,
			Hand:      req.Hand,
			Kind:      ErrorKind(err),
			Reason:    err.Error(),
			At:        r.now(),
		}
		if storeErr := r.store.Append(rejected); storeErr != nil {
			log.Printf("Failed to record rejected evaluation for session %s: %v", req.SessionID, storeErr)
		}
		r.emitEvent(rejected)
		return Evaluation{SessionID: req.SessionID}, err
	}

	recognized := events.CombinationRecognized{
		EventID:     r.newID(),
		SessionID:   req.SessionID,
		Board:       board.Cards(),
		Combination: result.Combination(),
		Cards:       result.SortedCards(),
		At:          r.now(),
	}
	if hand != nil {
		recognized.Hand = hand.Cards()
	}
	if err := r.store.Append(recognized); err != nil {
		return Evaluation{}, fmt.Errorf("record evaluation: %w", err)
	}
	r.emitEvent(recognized)

	return Evaluation{SessionID: req.SessionID, Result: result}, nil
}

// History returns every event recorded for the session, oldest first
func (r *Reviewer) History(sessionID string) ([]events.Event, error) {
	return r.store.LoadEvents(sessionID)
}

// Summary counts the recognized combinations of a session
func (r *Reviewer) Summary(sessionID string) (map[hands.Combination]int, error) {
	history, err := r.store.LoadEvents(sessionID)
	if err != nil {
		return nil, err
	}

	counts := make(map[hands.Combination]int)
	for _, event := range history {
		if e, ok := event.(events.CombinationRecognized); ok {
			counts[e.Combination]++
		}
	}
	return counts, nil
}

func (r *Reviewer) emitEvent(event events.Event) {
	r.mutex.RLock()
	handlers := r.eventHandlers
	r.mutex.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

func parseRequest(req EvaluationRequest) (cards.Board, *cards.Hand, error) {
	board, err := cards.NewBoardFromStrings(req.Board...)
	if err != nil {
		return cards.Board{}, nil, err
	}

	switch len(req.Hand) {
	case 0:
		return board, nil, nil
	case 2:
		hand, err := cards.NewHandFromStrings(req.Hand[0], req.Hand[1])
		if err != nil {
			return cards.Board{}, nil, err
		}
		return board, &hand, nil
	default:
		return cards.Board{}, nil, fmt.Errorf("%w: hand must contain 2 cards, got %d", cards.ErrInvalidHand, len(req.Hand))
	}
}

var errorKinds = []struct {
	err  error
	kind string
}{
	{cards.ErrInvalidCardNotation, "invalid_card_notation"},
	{cards.ErrInvalidHand, "invalid_hand"},
	{cards.ErrInvalidBoard, "invalid_board"},
	{hands.ErrDuplicateCard, "duplicate_card"},
	{hands.ErrInsufficientCards, "insufficient_cards"},
	{hands.ErrTooManyCards, "too_many_cards"},
}

// ErrorKind names the validation failure behind err, or "" if err is not one
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}
