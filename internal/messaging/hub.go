package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const defaultHistorySize = 50

// Message is a single chat message inside a customer/artisan conversation.
type Message struct {
	Type         string    `json:"type"` // "message", "user_join", "user_leave"
	Conversation string    `json:"conversation"`
	Sender       string    `json:"sender"`
	Text         string    `json:"text,omitempty"`
	At           time.Time `json:"at"`
}

type conversation struct {
	connections map[*websocket.Conn]string
	history     []Message
}

// Hub holds all live conversations. History is in-memory only and bounded
// per conversation.
type Hub struct {
	mu            sync.Mutex
	conversations map[string]*conversation
	historySize   int
}

func NewHub(historySize int) *Hub {
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return &Hub{
		conversations: make(map[string]*conversation),
		historySize:   historySize,
	}
}

// Join registers the connection and returns the conversation history so
// the client can render prior messages.
func (h *Hub) Join(conv string, ws *websocket.Conn, sender string) []Message {
	var history []Message
	h.mu.Lock()
	c := h.conversationLocked(conv)
	c.connections[ws] = sender
	history = append(history, c.history...)
	h.mu.Unlock()

	h.Broadcast(Message{
		Type:         "user_join",
		Conversation: conv,
		Sender:       sender,
		At:           time.Now().UTC(),
	})

	return history
}

func (h *Hub) Leave(conv string, ws *websocket.Conn) {
	var sender string
	h.mu.Lock()
	if c, ok := h.conversations[conv]; ok {
		if s, exists := c.connections[ws]; exists {
			sender = s
		}
		delete(c.connections, ws)
	}
	h.mu.Unlock()

	_ = ws.Close()

	if sender != "" {
		h.Broadcast(Message{
			Type:         "user_leave",
			Conversation: conv,
			Sender:       sender,
			At:           time.Now().UTC(),
		})
	}
}

func (h *Hub) Broadcast(msg Message) {
	if msg.At.IsZero() {
		msg.At = time.Now().UTC()
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.conversations[msg.Conversation]
	if !ok {
		return
	}

	if msg.Type == "message" {
		c.history = append(c.history, msg)
		if len(c.history) > h.historySize {
			c.history = c.history[len(c.history)-h.historySize:]
		}
	}

	for ws := range c.connections {
		if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = ws.Close()
			delete(c.connections, ws)
		}
	}
}

func (h *Hub) History(conv string) []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.conversations[conv]; ok {
		return append([]Message(nil), c.history...)
	}
	return nil
}

func (h *Hub) Sender(conv string, ws *websocket.Conn) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.conversations[conv]; ok {
		return c.connections[ws]
	}
	return ""
}

func (h *Hub) conversationLocked(conv string) *conversation {
	c, ok := h.conversations[conv]
	if !ok {
		c = &conversation{connections: make(map[*websocket.Conn]string)}
		h.conversations[conv] = c
	}
	return c
}
