package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// BookingEvent is pushed to connected clients whenever a booking is
// created or changes status.
type BookingEvent struct {
	Type      string    `json:"type"` // "booking.created" or "booking.cancelled"
	UserID    string    `json:"user_id"`
	BookingID string    `json:"booking_id"`
	ArtisanID string    `json:"artisan_id"`
	Status    string    `json:"status,omitempty"`
	At        time.Time `json:"at"`
}

// Hub fans booking events out to every connected websocket client. It is
// broadcast-only; clients never send anything upstream.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for ws := range h.clients {
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
