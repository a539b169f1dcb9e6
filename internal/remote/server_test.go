package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/muurk/odintv/internal/navigator"
)

// recorder is a concurrency-safe Sink
type recorder struct {
	mu     sync.Mutex
	events []navigator.Event
}

func (r *recorder) sink(ev navigator.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) snapshot() []navigator.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]navigator.Event(nil), r.events...)
}

func startTestServer(t *testing.T) (*Server, *recorder, *httptest.Server) {
	t.Helper()
	rec := &recorder{}
	s := NewServer(&Config{Host: "127.0.0.1", Port: 0}, rec.sink)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, rec, ts
}

func TestServerForwardsKeys(t *testing.T) {
	_, rec, ts := startTestServer(t)

	client, err := Dial(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer client.Close()

	keys := []string{"ArrowRight", "ArrowDown", "Tab", "Enter", "Back"}
	wantOK := []bool{true, true, false, true, true}
	for i, key := range keys {
		ack, err := client.Send(key)
		if err != nil {
			t.Fatalf("Send(%q) error = %v", key, err)
		}
		if ack.OK != wantOK[i] {
			t.Errorf("Send(%q) ack = %+v, want OK=%v", key, ack, wantOK[i])
		}
	}

	want := []navigator.Event{navigator.Right, navigator.Down, navigator.Confirm, navigator.Cancel}
	got := rec.snapshot()
	if len(got) != len(want) {
		t.Fatalf("sink received %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestServerAcceptsBareText(t *testing.T) {
	_, rec, ts := startTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("ArrowUp")); err != nil {
		t.Fatal(err)
	}
	var ack Ack
	if err := conn.ReadJSON(&ack); err != nil {
		t.Fatal(err)
	}
	if !ack.OK || ack.Event != "up" {
		t.Errorf("ack = %+v, want ok up", ack)
	}

	// binary frames are ignored without an ack; the next text frame still works
	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{0x01}); err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"key":"Escape"}`)); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&ack); err != nil {
		t.Fatal(err)
	}
	if !ack.OK || ack.Event != "cancel" {
		t.Errorf("ack = %+v, want ok cancel", ack)
	}

	if got := rec.snapshot(); len(got) != 2 {
		t.Errorf("sink received %v, want 2 events", got)
	}
}

func TestServerHealth(t *testing.T) {
	_, _, ts := startTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"status":"ok"`) {
		t.Errorf("body = %s", body)
	}
}

func TestServerTracksSessions(t *testing.T) {
	s, _, ts := startTestServer(t)

	client, err := Dial(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	// round trip guarantees the session is registered
	if _, err := client.Send("Enter"); err != nil {
		t.Fatal(err)
	}
	if n := s.GetActiveConnections(); n != 1 {
		t.Errorf("GetActiveConnections() = %d, want 1", n)
	}

	client.Close()
	deadline := time.Now().Add(2 * time.Second)
	for s.GetActiveConnections() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := s.GetActiveConnections(); n != 0 {
		t.Errorf("GetActiveConnections() after close = %d, want 0", n)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	s := NewServer(&Config{Host: "127.0.0.1", Port: 0}, nil)
	addr, err := s.Listen()
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() { errChan <- s.Serve(ctx) }()

	client, err := Dial(context.Background(), addr.String())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer client.Close()
	if _, err := client.Send("ArrowUp"); err != nil {
		t.Fatal(err)
	}

	cancel()
	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}

	if _, err := client.Send("ArrowUp"); err == nil {
		t.Error("Send() after shutdown succeeded, want error")
	}
}

func TestWebSocketURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"192.168.1.20:8765", "ws://192.168.1.20:8765/ws"},
		{"localhost:8765", "ws://localhost:8765/ws"},
		{"http://127.0.0.1:9000", "ws://127.0.0.1:9000/ws"},
		{"ws://tv.local:8765/ws", "ws://tv.local:8765/ws"},
		{"[::1]:8765", "ws://[::1]:8765/ws"},
	}

	for _, tt := range tests {
		got, err := webSocketURL(tt.addr)
		if err != nil {
			t.Errorf("webSocketURL(%q) error = %v", tt.addr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("webSocketURL(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}

	if _, err := webSocketURL(""); err == nil {
		t.Error("webSocketURL(\"\") succeeded, want error")
	}
}
