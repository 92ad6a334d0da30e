package notification

import (
	"sync"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type peer struct {
	role domain.UserRole
	id   uuid.UUID
}

// conn serialises writes; gorilla connections allow one writer at a time.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(v)
}

func (c *conn) writeMessage(kind int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(kind, data)
}

// Hub keeps at most one live socket per (role, user).
type Hub struct {
	connections map[peer]*conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{connections: make(map[peer]*conn)}
}

// Register replaces and closes any previous socket of the same user.
func (h *Hub) Register(role domain.UserRole, userID uuid.UUID, ws *websocket.Conn) *conn {
	c := &conn{ws: ws}
	key := peer{role: role, id: userID}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	if old, ok := h.connections[key]; ok {
		_ = old.ws.Close()
	}
	h.connections[key] = c
	return c
}

// Unregister drops c if it is still the user's current socket.
func (h *Hub) Unregister(role domain.UserRole, userID uuid.UUID, c *conn) {
	key := peer{role: role, id: userID}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	if cur, ok := h.connections[key]; ok && cur == c {
		_ = cur.ws.Close()
		delete(h.connections, key)
	}
}

// Push sends v to the user's socket and reports whether it was delivered.
func (h *Hub) Push(role domain.UserRole, userID uuid.UUID, v any) bool {
	h.mutex.RLock()
	c, ok := h.connections[peer{role: role, id: userID}]
	h.mutex.RUnlock()
	if !ok {
		return false
	}

	if err := c.writeJSON(v); err != nil {
		h.Unregister(role, userID, c)
		return false
	}
	return true
}

func (h *Hub) IsOnline(role domain.UserRole, userID uuid.UUID) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	_, ok := h.connections[peer{role: role, id: userID}]
	return ok
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for key, c := range h.connections {
		_ = c.ws.Close()
		delete(h.connections, key)
	}
}
