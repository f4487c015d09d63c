package events

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWSServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/events", WSHandler(hub))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, hub.Count())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	srv := newWSServer(t, hub)

	first := dial(t, srv)
	second := dial(t, srv)
	waitForClients(t, hub, 2)

	hub.BroadcastJSON(BookingEvent{
		Type:      "booking.created",
		UserID:    "u1",
		BookingID: "b1",
		ArtisanID: "a1",
		Status:    "pending",
		At:        time.Now().UTC(),
	})

	for _, ws := range []*websocket.Conn{first, second} {
		_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		var ev BookingEvent
		require.NoError(t, ws.ReadJSON(&ev))
		assert.Equal(t, "booking.created", ev.Type)
		assert.Equal(t, "b1", ev.BookingID)
	}
}

func TestDisconnectedClientIsDropped(t *testing.T) {
	hub := NewHub()
	srv := newWSServer(t, hub)

	ws := dial(t, srv)
	waitForClients(t, hub, 1)

	require.NoError(t, ws.Close())
	waitForClients(t, hub, 0)

	// broadcasting with no clients must not panic
	hub.BroadcastJSON(BookingEvent{Type: "booking.cancelled", BookingID: "b1"})
}
