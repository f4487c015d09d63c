package messaging

import (
	"net/http"
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
	r.GET("/ws/messages", WSHandler(hub))
	r.GET("/messages/history", HistoryHandler(hub))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, conv, sender string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/messages?conversation=" + conv + "&sender=" + sender
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func readUntil(t *testing.T, ws *websocket.Conn, msgType string) Message {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg Message
		require.NoError(t, ws.ReadJSON(&msg))
		if msg.Type == msgType {
			return msg
		}
	}
	t.Fatalf("no %q message received", msgType)
	return Message{}
}

func TestBroadcastReachesConversation(t *testing.T) {
	hub := NewHub(0)
	srv := newWSServer(t, hub)

	alice := dial(t, srv, "c1", "alice")
	bob := dial(t, srv, "c1", "bob")

	// wait until bob's join is visible to alice so both are registered
	readUntil(t, alice, "user_join")

	require.NoError(t, alice.WriteJSON(incomingMessage{Text: "hello bob"}))

	got := readUntil(t, bob, "message")
	assert.Equal(t, "alice", got.Sender)
	assert.Equal(t, "hello bob", got.Text)
	assert.Equal(t, "c1", got.Conversation)

	// sender receives their own message too
	echo := readUntil(t, alice, "message")
	assert.Equal(t, "hello bob", echo.Text)
}

func TestConversationsAreIsolated(t *testing.T) {
	hub := NewHub(0)
	srv := newWSServer(t, hub)

	alice := dial(t, srv, "c1", "alice")
	eve := dial(t, srv, "c2", "eve")

	require.NoError(t, alice.WriteJSON(incomingMessage{Text: "private"}))
	readUntil(t, alice, "message")

	_ = eve.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var msg Message
	err := eve.ReadJSON(&msg)
	// eve must only ever see her own join/leave events, never c1 traffic
	for err == nil {
		assert.NotEqual(t, "message", msg.Type)
		_ = eve.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
		err = eve.ReadJSON(&msg)
	}
}

func TestHistoryReplayAndBound(t *testing.T) {
	hub := NewHub(3)
	srv := newWSServer(t, hub)

	alice := dial(t, srv, "c1", "alice")
	for _, text := range []string{"one", "two", "three", "four"} {
		require.NoError(t, alice.WriteJSON(incomingMessage{Text: text}))
		readUntil(t, alice, "message")
	}

	history := hub.History("c1")
	require.Len(t, history, 3)
	assert.Equal(t, "two", history[0].Text)
	assert.Equal(t, "four", history[2].Text)

	// late joiner gets the bounded history replayed before live traffic
	bob := dial(t, srv, "c1", "bob")
	first := readUntil(t, bob, "message")
	assert.Equal(t, "two", first.Text)
}

func TestPlainTextFramesAccepted(t *testing.T) {
	hub := NewHub(0)
	srv := newWSServer(t, hub)

	alice := dial(t, srv, "c1", "alice")
	require.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte("raw text")))

	got := readUntil(t, alice, "message")
	assert.Equal(t, "raw text", got.Text)
	assert.Equal(t, "alice", got.Sender)
}

func TestWSRequiresConversation(t *testing.T) {
	hub := NewHub(0)
	srv := newWSServer(t, hub)

	resp, err := http.Get(srv.URL + "/ws/messages")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/messages/history")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLeaveRemovesConnection(t *testing.T) {
	hub := NewHub(0)
	srv := newWSServer(t, hub)

	alice := dial(t, srv, "c1", "alice")
	bob := dial(t, srv, "c1", "bob")
	readUntil(t, alice, "user_join")

	require.NoError(t, bob.Close())

	leave := readUntil(t, alice, "user_leave")
	assert.Equal(t, "bob", leave.Sender)
}
