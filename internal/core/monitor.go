//go:build !tinygo

package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"BeaconNav/internal/util"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Screen is a snapshot of the two display lines.
type Screen struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

// Monitor mirrors the character display to websocket clients and exposes
// the mode button over HTTP. It implements device.Display.
type Monitor struct {
	Addr string

	mu      sync.Mutex
	line    int
	lines   [2]string
	clients map[*websocket.Conn]bool
	press   func() bool
	server  *http.Server
}

// NewMonitor constructs a Monitor listening on addr. press is called for
// every POST /api/button and reports whether the press was accepted.
func NewMonitor(addr string, press func() bool) *Monitor {
	return &Monitor{Addr: addr, line: 1, clients: map[*websocket.Conn]bool{}, press: press}
}

// WriteText appends s to the current line and broadcasts the screen.
func (m *Monitor) WriteText(s string) {
	m.mu.Lock()
	m.lines[m.line-1] += s
	m.mu.Unlock()
	m.broadcast()
}

// SetCursorLine selects a line and starts it over.
func (m *Monitor) SetCursorLine(line int) {
	if line != 2 {
		line = 1
	}
	m.mu.Lock()
	m.line = line
	m.lines[line-1] = ""
	m.mu.Unlock()
}

// Snapshot returns the current screen with trailing padding removed.
func (m *Monitor) Snapshot() Screen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Screen{
		Line1: strings.TrimRight(m.lines[0], " "),
		Line2: strings.TrimRight(m.lines[1], " "),
	}
}

// Handler returns the HTTP routes of the monitor.
func (m *Monitor) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", m.handleWS)
	mux.HandleFunc("/api/display", m.handleDisplay)
	mux.HandleFunc("/api/button", m.handleButton)
	return mux
}

// Start launches the HTTP server. This call blocks until the server stops
// or fails.
func (m *Monitor) Start() {
	m.mu.Lock()
	m.server = &http.Server{Addr: m.Addr, Handler: m.Handler()}
	srv := m.server
	m.mu.Unlock()

	util.Info("[monitor] listening on %s", m.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		util.Error("[monitor] server failed: %v", err)
	}
}

// Stop shuts down the HTTP server and drops websocket clients.
func (m *Monitor) Stop() {
	m.mu.Lock()
	srv := m.server
	for c := range m.clients {
		_ = c.Close()
		delete(m.clients, c)
	}
	m.mu.Unlock()
	if srv != nil {
		_ = srv.Close()
	}
}

func (m *Monitor) handleDisplay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(m.Snapshot()); err != nil {
		util.Warn("[monitor] encode display: %v", err)
	}
}

// handleButton presses the mode button. 202 when the press toggled the
// mode, 409 when it fell inside the lockout.
func (m *Monitor) handleButton(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if m.press == nil || !m.press() {
		http.Error(w, "press ignored", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// handleWS upgrades HTTP to websocket, sends the current screen and
// registers the client for broadcasts.
func (m *Monitor) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.clients[conn] = true
	m.mu.Unlock()
	m.broadcast()

	go func() {
		defer func() {
			m.mu.Lock()
			delete(m.clients, conn)
			m.mu.Unlock()
			if err := conn.Close(); err != nil {
				util.Warn("[monitor] failed to close websocket: %v", err)
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

// broadcast sends the screen to all connected websocket clients.
func (m *Monitor) broadcast() {
	msg, err := json.Marshal(m.Snapshot())
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for c := range m.clients {
		_ = c.WriteMessage(websocket.TextMessage, msg)
	}
}
