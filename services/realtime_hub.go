package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// RecordEvent tells connected clients a record changed so views can refresh.
type RecordEvent struct {
	Kind   string `json:"kind"`   // daily_log | vitals
	Action string `json:"action"` // created | updated | deleted
	ID     uint   `json:"id"`
}

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	// writeMu serializes data frames; gorilla allows only one writer at a
	// time. Control frames (pings) go through WriteControl and stay safe.
	writeMu sync.Mutex
}

func (c *WSClient) write(msg []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, msg)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends the event to every connection the owning user has open.
// Connections that fail the write are unregistered.
func (h *RealtimeHub) Broadcast(userID uint, event RecordEvent) {
	msg, _ := json.Marshal(event)

	h.mu.RLock()
	var dead []*WSClient
	for c := range h.clients[userID] {
		if err := c.write(msg); err != nil {
			dead = append(dead, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range dead {
		h.Unregister(c)
	}
}
