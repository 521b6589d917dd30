package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"wetlandwarden/pkg/logger"
)

const (
	TopicNewsArticles      = "news_articles"
	TopicWetlandStatistics = "wetland_statistics"
)

const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event is one change notification on a table topic. News subscribers get
// action-only events and refetch; statistics subscribers get the updated
// aggregate in Data.
type Event struct {
	Topic  string      `json:"topic"`
	Action string      `json:"action"`
	Data   interface{} `json:"data,omitempty"`
}

// Client is one WebSocket subscriber. The write pump is the single writer
// on the connection.
type Client struct {
	ID     string
	Topics map[string]bool
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub fans change events out to subscribed clients.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	events     chan Event
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		events:     make(chan Event, 64),
	}
}

// Start runs the hub's main loop in a goroutine.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client.ID] = client
				h.mutex.Unlock()
				logger.Debug("Realtime client registered: %s", client.ID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client.ID]; ok {
					delete(h.clients, client.ID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("Realtime client unregistered: %s", client.ID)

			case event := <-h.events:
				payload, err := json.Marshal(event)
				if err != nil {
					logger.Error("Failed to marshal realtime event: %v", err)
					continue
				}

				h.mutex.Lock()
				for id, client := range h.clients {
					if !client.Topics[event.Topic] {
						continue
					}
					select {
					case client.Send <- payload:
					default:
						close(client.Send)
						delete(h.clients, id)
					}
				}
				h.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Publish queues a change event for fan-out. Non-blocking; if the hub is
// saturated the event is dropped and logged, never stalling a write path.
func (h *Hub) Publish(event Event) {
	select {
	case h.events <- event:
	default:
		logger.Warn("Realtime event dropped, hub saturated: topic=%s", event.Topic)
	}
}

// SubscriberCount reports how many clients are subscribed to a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	count := 0
	for _, client := range h.clients {
		if client.Topics[topic] {
			count++
		}
	}
	return count
}

// ReadPump drains the connection until it closes, then unregisters.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Realtime read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
