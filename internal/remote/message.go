package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/muurk/odintv/internal/navigator"
)

// KeyMessage is a key press sent by a client
type KeyMessage struct {
	Key string `json:"key"`
}

// Ack is the server reply to every key message
type Ack struct {
	OK    bool   `json:"ok"`
	Event string `json:"event,omitempty"`
	Error string `json:"error,omitempty"`
}

// ErrEmptyMessage is returned for blank frames
var ErrEmptyMessage = errors.New("empty message")

// ParseKeyMessage extracts the key name from a JSON or bare-text frame
func ParseKeyMessage(data []byte) (string, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrEmptyMessage
	}

	if strings.HasPrefix(text, "{") {
		var msg KeyMessage
		if err := json.Unmarshal([]byte(text), &msg); err != nil {
			return "", fmt.Errorf("invalid key message: %w", err)
		}
		if msg.Key == "" {
			return "", fmt.Errorf("invalid key message: missing \"key\"")
		}
		return msg.Key, nil
	}
	return text, nil
}

// resolve turns a frame into an event and the acknowledgement to send back
func resolve(data []byte) (navigator.Event, string, Ack) {
	key, err := ParseKeyMessage(data)
	if err != nil {
		return navigator.None, "", Ack{OK: false, Error: err.Error()}
	}
	ev, ok := navigator.ParseEvent(key)
	if !ok {
		return navigator.None, key, Ack{OK: false, Error: fmt.Sprintf("unknown key %q (valid: %s)", key, strings.Join(navigator.KeyNames(), ", "))}
	}
	return ev, key, Ack{OK: true, Event: ev.String()}
}
