package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newStreamServer serves connections the way the stream handler does:
// register with the hub, replay a snapshot through the session's send func,
// then sit in a read loop until the client goes away.
func newStreamServer(hub *Hub) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		send, remove := hub.Add(conn)
		defer remove()

		if err := send(map[string]string{"status": "searching"}); err != nil {
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestReplayDuringBroadcast(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	srv := newStreamServer(hub)
	defer srv.Close()

	// Hammer the hub from another goroutine while clients connect and
	// receive their replay, so broadcast writes overlap replay writes on
	// freshly added sessions. The session write lock must serialize the
	// two paths; the race detector catches any direct connection write.
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				hub.Broadcast(map[string]string{"status": "driver_assigned"})
			}
		}
	}()

	conns := make([]*websocket.Conn, 0, 50)
	for i := 0; i < 50; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
		if err != nil {
			t.Fatalf("dial %d: %v", i, err)
		}
		conns = append(conns, conn)

		// The first frame is either the replay or an already in-flight
		// broadcast; both carry a status.
		var msg map[string]string
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if msg["status"] == "" {
			t.Fatalf("frame %d carried no status", i)
		}
	}

	close(stop)
	wg.Wait()

	for _, conn := range conns {
		_ = conn.Close()
	}
}

func TestCountTracksSessions(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	srv := newStreamServer(hub)
	defer srv.Close()

	if got := hub.Count(); got != 0 {
		t.Fatalf("Count() = %d, want 0", got)
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForCount(t, hub, 1)

	_ = conn.Close()
	waitForCount(t, hub, 0)
}

// waitForCount polls until the hub reaches the wanted session count; the
// server handler registers and removes sessions on its own goroutine.
func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Count() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Count() = %d, want %d", hub.Count(), want)
}
