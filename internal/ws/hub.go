package ws

import (
	"context"
	"log"
	"sync"
)

// Hub fans broadcast messages out to every connected dashboard client.
// Membership changes go through channels owned by Run.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stopOnce.Do(func() { close(h.done) })
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mutex.Unlock()
			h.drainPending()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logf("WS connected | total_clients=%d", total)

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- message:
				default:
					h.remove(client)
				}
			}
			h.logf("WS broadcast | clients=%d", len(snapshot))
		}
	}
}

// drainPending closes clients that were queued for registration but never
// reached the map.
func (h *Hub) drainPending() {
	for {
		select {
		case c := <-h.register:
			if c != nil {
				close(c.send)
			}
		default:
			return
		}
	}
}

func (h *Hub) remove(client *Client) {
	if client == nil {
		return
	}
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	h.logf("WS disconnected | total_clients=%d", total)
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}

// Register reports false once Run has stopped; the caller owns the client then.
func (h *Hub) Register(client *Client) bool {
	if h == nil {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister never blocks after Run has stopped; Run already closed every
// client on the way out.
func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues message for delivery and drops it when the buffer is full.
func (h *Hub) Broadcast(message []byte) bool {
	if h == nil {
		return false
	}
	select {
	case h.broadcast <- message:
		return true
	default:
		h.logf("WS broadcast dropped | reason=buffer_full")
		return false
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
