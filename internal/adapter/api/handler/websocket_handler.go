package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/infrastructure/realtime"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/logger"
	"wetlandwarden/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var subscribableTopics = map[string]bool{
	realtime.TopicNewsArticles:      true,
	realtime.TopicWetlandStatistics: true,
}

type WebSocketHandler struct {
	hub *realtime.Hub
}

func NewWebSocketHandler(hub *realtime.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// Subscribe upgrades the connection and registers the client for the table
// topics named in the "topics" query parameter (comma-separated).
func (h *WebSocketHandler) Subscribe(c echo.Context) error {
	topics := make(map[string]bool)
	for _, topic := range strings.Split(c.QueryParam("topics"), ",") {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		if !subscribableTopics[topic] {
			return response.Error(c, errors.BadRequest("Unknown topic: "+topic, nil))
		}
		topics[topic] = true
	}
	if len(topics) == 0 {
		return response.Error(c, errors.BadRequest("At least one topic is required", nil))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed: %v", err)
		return err
	}

	client := &realtime.Client{
		ID:     uuid.New().String(),
		Topics: topics,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}

	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump(h.hub)

	return nil
}
