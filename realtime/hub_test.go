package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesAdminSessions(t *testing.T) {
	h := NewHub()
	admin := &Client{ID: "a", Admin: true, Send: make(chan []byte, 4)}
	guest := &Client{ID: "g", Admin: false, Send: make(chan []byte, 4)}
	h.Register(admin)
	h.Register(guest)

	h.BroadcastToAdmins(EventNewBooking, map[string]string{"referenceCode": "BK-1"})

	require.Len(t, admin.Send, 1)
	assert.Len(t, guest.Send, 0)

	var env Envelope
	require.NoError(t, json.Unmarshal(<-admin.Send, &env))
	assert.Equal(t, EventNewBooking, env.Type)
	assert.False(t, env.CreatedAt.IsZero())

	payload, ok := env.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "BK-1", payload["referenceCode"])
}

func TestBroadcastDropsWhenBufferFull(t *testing.T) {
	h := NewHub()
	slow := &Client{ID: "slow", Admin: true, Send: make(chan []byte, 1)}
	h.Register(slow)

	h.BroadcastToAdmins(EventBookingUpdated, "first")
	h.BroadcastToAdmins(EventBookingUpdated, "second") // dropped, never blocks

	assert.Len(t, slow.Send, 1)
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	h := NewHub()
	client := &Client{ID: "x", Admin: true, Send: make(chan []byte, 1)}
	h.Register(client)
	assert.Equal(t, 1, h.ClientCount())

	h.Unregister(client)
	assert.Equal(t, 0, h.ClientCount())

	_, open := <-client.Send
	assert.False(t, open)

	// double unregister is a no-op
	h.Unregister(client)
}

func TestBroadcastWithNoClients(t *testing.T) {
	h := NewHub()
	h.BroadcastToAdmins(EventNewBooking, "payload") // must not panic
	assert.Equal(t, 0, h.ClientCount())
}
