package events_test

import (
	"testing"

	"github.com/lazharichir/pokerreview/domain/events"
	"github.com/stretchr/testify/assert"
)

type noSessionID struct {
	OtherField string
}

func (noSessionID) Name() string { return "noSessionID" }

func TestExtractSessionID(t *testing.T) {
	t.Run("struct with SessionID field", func(t *testing.T) {
		e := events.EvaluationRejected{SessionID: "session123", EventID: "e1"}
		assert.Equal(t, "session123", events.ExtractSessionID(e))
		assert.Equal(t, "e1", events.ExtractEventID(e))
	})

	t.Run("pointer to struct with SessionID field", func(t *testing.T) {
		e := &events.CombinationRecognized{SessionID: "sessionPointer"}
		assert.Equal(t, "sessionPointer", events.ExtractSessionID(e))
	})

	t.Run("struct without SessionID field", func(t *testing.T) {
		e := noSessionID{OtherField: "noID"}
		assert.Equal(t, "", events.ExtractSessionID(e))
	})

	t.Run("pointer to struct without SessionID field", func(t *testing.T) {
		e := &noSessionID{OtherField: "stillNoID"}
		assert.Equal(t, "", events.ExtractSessionID(e))
	})
}
