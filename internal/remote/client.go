package remote

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultDialTimeout bounds the WebSocket handshake
const DefaultDialTimeout = 5 * time.Second

// Client sends key presses to a receiver
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Dial connects to the receiver at addr (host:port or a ws:// URL)
func Dial(ctx context.Context, addr string) (*Client, error) {
	target, err := webSocketURL(addr)
	if err != nil {
		return nil, err
	}

	dialer := websocket.Dialer{HandshakeTimeout: DefaultDialTimeout}
	conn, _, err := dialer.DialContext(ctx, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", target, err)
	}
	return &Client{conn: conn}, nil
}

// Send transmits one key and waits for the acknowledgement.
// An unknown key is not an error; it comes back as Ack{OK: false}.
func (c *Client) Send(key string) (Ack, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(KeyMessage{Key: key}); err != nil {
		return Ack{}, fmt.Errorf("failed to send key %q: %w", key, err)
	}

	var ack Ack
	_ = c.conn.SetReadDeadline(time.Now().Add(writeWait))
	if err := c.conn.ReadJSON(&ack); err != nil {
		return Ack{}, fmt.Errorf("failed to read acknowledgement: %w", err)
	}
	return ack, nil
}

// Close sends a close frame and closes the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return c.conn.Close()
}

func webSocketURL(addr string) (string, error) {
	if addr == "" {
		return "", fmt.Errorf("receiver address is empty")
	}

	u, err := url.Parse(addr)
	if err == nil && (u.Scheme == "ws" || u.Scheme == "wss") {
		if u.Path == "" || u.Path == "/" {
			u.Path = "/ws"
		}
		return u.String(), nil
	}
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		u.Scheme = map[string]string{"http": "ws", "https": "wss"}[u.Scheme]
		if u.Path == "" || u.Path == "/" {
			u.Path = "/ws"
		}
		return u.String(), nil
	}

	return (&url.URL{Scheme: "ws", Host: addr, Path: "/ws"}).String(), nil
}
