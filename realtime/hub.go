package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Event types pushed to the admin broadcast group.
const (
	EventNewBooking     = "new-booking"
	EventBookingUpdated = "booking-updated"
)

// Envelope is the wire format for pushed events.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	CreatedAt time.Time   `json:"created_at"`
}

// Client is one connected session. Send is buffered; a slow consumer
// drops messages rather than blocking the broadcaster.
type Client struct {
	ID    string
	Admin bool
	Send  chan []byte
}

// Hub tracks connected sessions and fans events out to the admin group.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	delete(h.clients, client.ID)
	close(client.Send)
}

// ClientCount reports the number of connected sessions.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastToAdmins pushes an event envelope to every admin session.
// Marshal failures and full client buffers are logged, never surfaced:
// notification delivery must not block a booking write.
func (h *Hub) BroadcastToAdmins(eventType string, payload interface{}) {
	data, err := json.Marshal(Envelope{
		Type:      eventType,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("realtime: marshal %s event: %v", eventType, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if !client.Admin {
			continue
		}
		select {
		case client.Send <- data:
		default:
			log.Printf("realtime: drop %s event for client %s", eventType, client.ID)
		}
	}
}
