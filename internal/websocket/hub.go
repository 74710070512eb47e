package websocket

import (
	"encoding/json"
	"sync"
)

// Notification is the transient event a successful or failed operation
// pushes to the owning user's open connections.
type Notification struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Balance string `json:"balance,omitempty"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
}

func (h *Hub) Unregister(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		return
	}
	delete(h.clients[userID], client)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// Broadcast delivers the notification to every connection the user has
// open. Slow clients are skipped rather than blocked on.
func (h *Hub) Broadcast(userID string, notification Notification) {
	payload, _ := json.Marshal(notification)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[userID] {
		select {
		case client.send <- payload:
		default:
		}
	}
}
