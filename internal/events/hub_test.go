package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishFanOut(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()
	defer h.Unsubscribe(a)
	defer h.Unsubscribe(b)

	h.Publish("hello")

	assert.Equal(t, "hello", <-a)
	assert.Equal(t, "hello", <-b)
}

func TestHubSlowSubscriberDrops(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// Buffer is 10; further publishes must not block.
	for i := 0; i < 25; i++ {
		h.Publish("evt")
	}
	assert.Len(t, ch, 10)
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	h.Unsubscribe(ch)

	h.Publish("after")

	_, open := <-ch
	assert.False(t, open)
}

func TestMakeEvent(t *testing.T) {
	raw := MakeEvent("req-1", TypeLeadCreated, 1, map[string]any{"id": "lead_1771722000_a3f2b7c1"})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, TypeLeadCreated, e.Type)
	assert.Equal(t, 1, e.Version)
	assert.Equal(t, "req-1", e.RequestID)
	assert.False(t, e.At.IsZero())

	var data map[string]string
	require.NoError(t, json.Unmarshal(e.Data, &data))
	assert.Equal(t, "lead_1771722000_a3f2b7c1", data["id"])
}
