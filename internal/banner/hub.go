// Package banner fans mutation outcomes out to connected admin panels as a
// transient message stream: text, a severity tag and how long the message
// should stay visible.
package banner

import (
	"encoding/json"
	"sync"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

const (
	successDurationMS = 3000
	errorDurationMS   = 5000
)

type Message struct {
	Text       string   `json:"text"`
	Severity   Severity `json:"severity"`
	DurationMS int      `json:"duration_ms"`
}

type Client struct {
	ID   string
	Send chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg)
			for _, client := range h.clients {
				select {
				case client.Send <- data:
				default:
					// Client buffer full, skip
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) Success(text string) {
	h.broadcast <- Message{Text: text, Severity: SeveritySuccess, DurationMS: successDurationMS}
}

func (h *Hub) Error(text string) {
	h.broadcast <- Message{Text: text, Severity: SeverityError, DurationMS: errorDurationMS}
}
