// Package server exposes the advisor over a websocket endpoint: one JSON
// query in, one recommendation out, any number of round trips per
// connection. Idle connections are reaped on a quartz clock so tests can
// drive the timeout without sleeping.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/cardworks/holdem/internal/advisor"
)

// Server serves advisor queries over websocket connections.
type Server struct {
	addr        string
	advisor     *advisor.Advisor
	upgrader    websocket.Upgrader
	logger      *log.Logger
	clock       quartz.Clock
	idleTimeout time.Duration

	mu          sync.RWMutex
	connections map[*websocket.Conn]struct{}

	ctx    context.Context
	cancel context.CancelFunc
	http   *http.Server
}

// New creates a server. A nil clock uses the real one; tests inject a
// quartz.Mock to exercise the idle timeout.
func New(addr string, adv *advisor.Advisor, logger *log.Logger, idleTimeout time.Duration, clock quartz.Clock) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		addr:    addr,
		advisor: adv,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger:      logger.WithPrefix("server"),
		clock:       clock,
		idleTimeout: idleTimeout,
		connections: make(map[*websocket.Conn]struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Handler returns the HTTP handler serving /ws and /health. It is
// exposed separately so tests can mount it on httptest servers.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens and serves until Stop is called.
func (s *Server) Start() error {
	s.http = &http.Server{Addr: s.addr, Handler: s.Handler()}
	s.logger.Info("starting advisor endpoint", "addr", s.addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop closes the listener and every live connection.
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()

	if s.http != nil {
		return s.http.Shutdown(context.Background())
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	// Each received query rewinds the idle timer; when it fires the
	// connection is closed, which unblocks ReadJSON in serveConn. The
	// timer is armed before the connection is tracked so a caller who
	// observed the connection can rely on the timer existing.
	var timer *quartz.Timer
	if s.idleTimeout > 0 {
		timer = s.clock.AfterFunc(s.idleTimeout, func() {
			s.logger.Info("closing idle connection")
			_ = conn.Close()
		})
	}

	s.mu.Lock()
	s.connections[conn] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("client connected", "total", total)

	go s.serveConn(conn, timer)
}

// serveConn answers queries on one connection until it closes or goes
// idle past the timeout.
func (s *Server) serveConn(conn *websocket.Conn, timer *quartz.Timer) {
	defer s.dropConn(conn)
	if timer != nil {
		defer timer.Stop()
	}

	for {
		var query advisor.Query
		if err := conn.ReadJSON(&query); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("read failed", "error", err)
			}
			return
		}
		if timer != nil {
			timer.Reset(s.idleTimeout)
		}

		response := s.advisor.Advise(query)
		if err := conn.WriteJSON(response); err != nil {
			s.logger.Debug("write failed", "error", err)
			return
		}
	}
}

func (s *Server) dropConn(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()
	_ = conn.Close()
	s.logger.Info("client disconnected", "total", total)
}

// ConnectionCount reports the number of live connections.
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}
