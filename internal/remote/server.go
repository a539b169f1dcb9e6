package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/muurk/odintv/internal/logging"
	"github.com/muurk/odintv/internal/navigator"
	"go.uber.org/zap"
)

const (
	// DefaultPort is the default remote-control port
	DefaultPort = 8765

	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024

	// shutdownTimeout bounds the graceful HTTP shutdown
	shutdownTimeout = 5 * time.Second
)

// Sink receives navigator events decoded from remote key presses.
// It is called from connection goroutines and must be safe for concurrent use.
type Sink func(navigator.Event)

// Config holds the server configuration
type Config struct {
	Host string
	Port int
}

// Server is the remote-control WebSocket server
type Server struct {
	config   *Config
	sink     Sink
	upgrader websocket.Upgrader
	mux      *http.ServeMux

	mu          sync.Mutex
	listener    net.Listener
	httpServer  *http.Server
	activeConns map[string]*websocket.Conn
	wg          sync.WaitGroup
}

// NewServer creates a server that forwards recognized keys to sink
func NewServer(config *Config, sink Sink) *Server {
	if config == nil {
		config = &Config{Port: DefaultPort}
	}
	if sink == nil {
		sink = func(navigator.Event) {}
	}

	s := &Server{
		config: config,
		sink:   sink,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: maxMessageSize,
			// remotes connect from arbitrary origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		activeConns: make(map[string]*websocket.Conn),
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/ws", s.handleWebSocket)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	return s
}

// Handler returns the HTTP handler serving /ws and /healthz
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Listen binds the configured address. It is separate from Serve so callers
// can learn the bound port (for port 0) before advertising it.
func (s *Server) Listen() (net.Addr, error) {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Unlock()

	logging.Info("Remote control listening", zap.String("addr", listener.Addr().String()))
	return listener.Addr(), nil
}

// Serve accepts connections until ctx is cancelled, then shuts down.
// Listen is called first if it has not been.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	bound := s.listener != nil
	s.mu.Unlock()
	if !bound {
		if _, err := s.Listen(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	httpServer, listener := s.httpServer, s.listener
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("remote server failed: %w", err)
	}
}

// Shutdown stops accepting connections and closes active sessions
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down remote control server...")

	s.mu.Lock()
	httpServer := s.httpServer
	for session, conn := range s.activeConns {
		logging.Debug("Closing remote session", zap.String("session", session))
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "receiver shutting down"),
			time.Now().Add(time.Second))
		_ = conn.Close()
	}
	s.mu.Unlock()

	var err error
	if httpServer != nil {
		err = httpServer.Shutdown(ctx)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All remote sessions closed")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}
	return err
}

// GetActiveConnections returns the number of connected remotes
func (s *Server) GetActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, s.GetActiveConnections())
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	session := uuid.NewString()
	remoteAddr := r.RemoteAddr

	s.mu.Lock()
	s.activeConns[session] = conn
	s.mu.Unlock()
	s.wg.Add(1)

	defer func() {
		_ = conn.Close()
		s.mu.Lock()
		delete(s.activeConns, session)
		s.mu.Unlock()
		s.wg.Done()
		logging.LogConnection(session, remoteAddr, "session_closed")
	}()

	logging.LogConnection(session, remoteAddr, "session_opened")
	s.serveSession(conn, session, remoteAddr)
}

// serveSession runs the read loop for one remote
func (s *Server) serveSession(conn *websocket.Conn, session, remoteAddr string) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	stopPing := make(chan struct{})
	defer close(stopPing)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-stopPing:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Info("Remote connection closed with error",
					zap.String("session", session),
					zap.Error(err),
				)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		if msgType != websocket.TextMessage {
			logging.Debug("Ignoring non-text remote frame", zap.String("session", session))
			continue
		}

		ev, key, ack := resolve(data)
		logging.LogRemoteKey(session, remoteAddr, key, ack.OK)
		if ack.OK {
			s.sink(ev)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(ack); err != nil {
			logging.Info("Failed to acknowledge remote key",
				zap.String("session", session),
				zap.Error(err),
			)
			return
		}
	}
}
