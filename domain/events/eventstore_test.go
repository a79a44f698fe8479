package events

import (
	"testing"
	"time"

	"github.com/lazharichir/pokerreview/domain/cards"
	"github.com/lazharichir/pokerreview/domain/hands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recognized(t *testing.T, eventID, sessionID string) CombinationRecognized {
	t.Helper()
	board, err := cards.StackFromStrings("Kc", "Kd", "Kh", "Ks", "2c")
	require.NoError(t, err)

	return CombinationRecognized{
		EventID:     eventID,
		SessionID:   sessionID,
		Board:       board,
		Combination: hands.FourOfAKind,
		Cards:       board,
		At:          time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func rejected(eventID, sessionID string) EvaluationRejected {
	return EvaluationRejected{
		EventID:   eventID,
		SessionID: sessionID,
		Board:     []string{"2h", "7c", "9d"},
		Hand:      []string{"2h", "As"},
		Kind:      "duplicate_card",
		Reason:    "duplicate card: 2♥ 7♣ 9♦ 2♥ A♠",
		At:        time.Date(2024, 5, 1, 12, 1, 0, 0, time.UTC),
	}
}

func testEventStore(t *testing.T, store EventStore) {
	sessionID := "session-123"

	t.Run("Append and load events", func(t *testing.T) {
		require.NoError(t, store.Append(recognized(t, "event-1", sessionID)))
		require.NoError(t, store.Append(rejected("event-2", sessionID)))
		require.NoError(t, store.Append(recognized(t, "event-3", "other-session")))

		events, err := store.LoadEvents(sessionID)
		require.NoError(t, err)
		require.Len(t, events, 2)

		assert.Equal(t, "COMBINATION_RECOGNIZED", events[0].Name())
		assert.Equal(t, "EVALUATION_REJECTED", events[1].Name())
		assert.Equal(t, recognized(t, "event-1", sessionID), events[0])
		assert.Equal(t, rejected("event-2", sessionID), events[1])
	})

	t.Run("Load events for unknown session", func(t *testing.T) {
		events, err := store.LoadEvents("non-existent-session")
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("Reject events without session", func(t *testing.T) {
		assert.Error(t, store.Append(recognized(t, "event-4", "")))
	})
}

func TestInMemoryEventStore(t *testing.T) {
	store := NewInMemoryEventStore()
	defer store.Close()

	testEventStore(t, store)
}

func TestSQLiteEventStore(t *testing.T) {
	store, err := NewSQLiteEventStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	testEventStore(t, store)

	t.Run("Duplicate event IDs are ignored", func(t *testing.T) {
		require.NoError(t, store.Append(recognized(t, "event-1", "session-123")))

		events, err := store.LoadEvents("session-123")
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})
}

func TestSQLiteEventStore_File(t *testing.T) {
	path := t.TempDir() + "/nested/review.db"

	store, err := NewSQLiteEventStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(recognized(t, "event-1", "s")))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteEventStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	events, err := reopened.LoadEvents("s")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestNumberPlaceholders(t *testing.T) {
	assert.Equal(t, "VALUES ($1, $2, $3)", numberPlaceholders("VALUES (?, ?, ?)"))
}

func TestDecode_UnknownEvent(t *testing.T) {
	_, err := Decode("NOPE", []byte(`{}`))
	assert.Error(t, err)
}
