package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// EventHandler consumes DOM events arriving over the live channel.
type EventHandler func(sessionID string, e LiveEvent)

// liveHub owns the live channel sessions. Patches broadcast to every
// connected session; events fan in to the configured handler.
type liveHub struct {
	log     *slog.Logger
	metrics *metrics
	onEvent EventHandler

	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[*liveSession]struct{}
	lastID   uint64
}

type liveSession struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func newLiveHub(log *slog.Logger, m *metrics, onEvent EventHandler) *liveHub {
	return &liveHub{
		log:     log,
		metrics: m,
		onEvent: onEvent,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sessions: map[*liveSession]struct{}{},
	}
}

// serve upgrades the request and runs the session until the peer
// disconnects.
func (h *liveHub) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("live upgrade failed", "error", err)
		return
	}

	s := &liveSession{
		conn: conn,
		send: make(chan []byte, 16),
	}

	h.mu.Lock()
	h.lastID++
	s.id = sessionID(h.lastID)
	h.sessions[s] = struct{}{}
	h.mu.Unlock()
	h.metrics.liveSessions.Inc()
	h.log.Debug("live session opened", "session", s.id)

	go s.writePump()
	h.readPump(s)

	h.mu.Lock()
	delete(h.sessions, s)
	h.mu.Unlock()
	h.metrics.liveSessions.Dec()
	s.close()
	h.log.Debug("live session closed", "session", s.id)
}

func (h *liveHub) readPump(s *liveSession) {
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				h.log.Error("live read failed", "session", s.id, "error", err)
			}
			return
		}

		event, err := decodeEventFrame(msg)
		if err != nil {
			h.log.Error("bad live frame", "session", s.id, "error", err)
			continue
		}
		if h.onEvent != nil {
			h.onEvent(s.id, event)
		}
	}
}

func (s *liveSession) writePump() {
	for msg := range s.send {
		if err := s.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			return
		}
	}
}

func (s *liveSession) close() {
	s.once.Do(func() {
		close(s.send)
		s.conn.Close()
	})
}

// broadcast sends a patch frame to every session. Sessions with a
// full outbound queue are skipped rather than blocking the writer.
// Returns the number of sessions reached.
func (h *liveHub) broadcast(patches []Patch) (int, error) {
	if len(patches) == 0 {
		return 0, nil
	}
	frame, err := encodePatchFrame(patches)
	if err != nil {
		return 0, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	reached := 0
	for s := range h.sessions {
		select {
		case s.send <- frame:
			reached++
		default:
			h.log.Warn("live session backlogged, dropping frame", "session", s.id)
		}
	}
	h.metrics.patchesSent.Add(float64(len(patches) * reached))
	return reached, nil
}

// sessionCount returns the number of connected sessions.
func (h *liveHub) sessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func sessionID(n uint64) string {
	const digits = "0123456789abcdef"
	buf := make([]byte, 0, 16)
	for n > 0 {
		buf = append([]byte{digits[n%16]}, buf...)
		n /= 16
	}
	if len(buf) == 0 {
		buf = []byte{'0'}
	}
	return "s" + string(buf)
}
