// Package ws tracks live WebSocket connections per user and delivers
// real-time events to them.
package ws

import (
	"sync"

	"github.com/google/uuid"
)

// Event is a single JSON message pushed to clients.
type Event struct {
	Type     string `json:"type"`
	MatchID  string `json:"matchId,omitempty"`
	ReportID string `json:"reportId,omitempty"`
	Message  string `json:"message,omitempty"`
	Data     any    `json:"data,omitempty"`
}

const sendBuffer = 16

// Client is one live connection. Events are queued on a buffered channel
// consumed by the connection's write pump; the channel is closed exactly
// once, by Unregister.
type Client struct {
	userID uuid.UUID
	send   chan Event
}

func (c *Client) UserID() uuid.UUID { return c.userID }

// Events exposes the client's delivery channel to the write pump.
func (c *Client) Events() <-chan Event { return c.send }

// Registry maps user IDs to their currently open connections. A user may
// hold any number of simultaneous connections; every one of them receives
// each push for that user.
type Registry struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
	}
}

// Register records a new live connection for userID and returns its client.
func (r *Registry) Register(userID uuid.UUID) *Client {
	c := &Client{
		userID: userID,
		send:   make(chan Event, sendBuffer),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clients[userID] == nil {
		r.clients[userID] = make(map[*Client]struct{})
	}
	r.clients[userID][c] = struct{}{}
	return c
}

// Unregister removes the client and closes its delivery channel. Calling it
// for an already-removed client is a no-op.
func (r *Registry) Unregister(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	peers, ok := r.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := peers[c]; !ok {
		return
	}
	delete(peers, c)
	if len(peers) == 0 {
		delete(r.clients, c.userID)
	}
	close(c.send)
}

// Push delivers evt to every registered connection of userID. With no
// registered connections it is a silent no-op. A client whose buffer is
// full has the event dropped rather than blocking the caller.
func (r *Registry) Push(userID uuid.UUID, evt Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for c := range r.clients[userID] {
		select {
		case c.send <- evt:
		default:
		}
	}
}

// Broadcast delivers evt to every registered connection of every user.
func (r *Registry) Broadcast(evt Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, peers := range r.clients {
		for c := range peers {
			select {
			case c.send <- evt:
			default:
			}
		}
	}
}

// Connections reports the number of live connections across all users.
func (r *Registry) Connections() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, peers := range r.clients {
		n += len(peers)
	}
	return n
}

// Shutdown unregisters every client, which signals their write pumps to
// send close frames and tear the connections down.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, peers := range r.clients {
		for c := range peers {
			close(c.send)
		}
		delete(r.clients, userID)
	}
}
