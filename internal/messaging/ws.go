package messaging

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type incomingMessage struct {
	Text   string `json:"text"`
	Sender string `json:"sender"`
}

func HistoryHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conv := strings.TrimSpace(c.Query("conversation"))
		if conv == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "conversation is required"})
			return
		}

		c.JSON(http.StatusOK, hub.History(conv))
	}
}

func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conv := strings.TrimSpace(c.Query("conversation"))
		if conv == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "conversation is required"})
			return
		}

		sender := strings.TrimSpace(c.Query("sender"))
		if sender == "" {
			sender = "anon"
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		history := hub.Join(conv, ws, sender)
		for _, msg := range history {
			_ = ws.WriteJSON(msg)
		}

		for {
			_, payload, err := ws.ReadMessage()
			if err != nil {
				break
			}

			var incoming incomingMessage
			if err := json.Unmarshal(payload, &incoming); err != nil {
				text := strings.TrimSpace(string(payload))
				if text == "" {
					continue
				}
				hub.Broadcast(Message{
					Type:         "message",
					Conversation: conv,
					Sender:       hub.Sender(conv, ws),
					Text:         text,
					At:           time.Now().UTC(),
				})
				continue
			}

			text := strings.TrimSpace(incoming.Text)
			if text == "" {
				continue
			}

			msgSender := strings.TrimSpace(incoming.Sender)
			if msgSender == "" {
				msgSender = hub.Sender(conv, ws)
			}

			hub.Broadcast(Message{
				Type:         "message",
				Conversation: conv,
				Sender:       msgSender,
				Text:         text,
				At:           time.Now().UTC(),
			})
		}

		hub.Leave(conv, ws)
	}
}
