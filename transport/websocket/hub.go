package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/room/event"
	"hotel/internal/domains/roomboard/model"
	"hotel/internal/domains/roomboard/model/dto"
	"hotel/internal/domains/roomboard/service"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const otelHubScopeName = "websocket"

const (
	defaultPingInterval = 25 * time.Second
	defaultReadTimeout  = 70 * time.Second
	defaultWriteTimeout = 7 * time.Second
)

// Hub pushes the room status board to connected admin clients. Any room change reloads the whole board.
type Hub struct {
	cfg      *config.Config
	board    service.RoomBoard
	otel     otel.Otel
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

var _ event.Notifier = (*Hub)(nil)

func New(cfg *config.Config, board service.RoomBoard, otel otel.Otel) *Hub {
	return &Hub{
		cfg:   cfg,
		board: board,
		otel:  otel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = struct{}{}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, c)
}

func (h *Hub) list() []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}

	return out
}

// Clients reports how many boards are connected.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Notify reloads the board once per distinct client filter and pushes it to every client.
func (h *Hub) Notify(ctx context.Context, evt event.RoomChanged) {
	ctx, scope := h.otel.NewScope(ctx, otelHubScopeName, otelHubScopeName+".Notify")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"room.id":      evt.RoomID,
		"event.action": string(evt.Action),
	})

	snapshots := make(map[string][]byte)

	for _, c := range h.list() {
		status := c.filter()

		raw, ok := snapshots[status]
		if !ok {
			snapshot, err := h.board.Snapshot(ctx, status)
			if err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Msg("failed to load room board snapshot")

				continue
			}

			raw, err = json.Marshal(dto.Message{Type: model.MessageSnapshot, Snapshot: &snapshot})
			if err != nil {
				log.Error().Err(err).Msg("failed to marshal room board snapshot")

				continue
			}

			snapshots[status] = raw
		}

		if err := c.writeText(raw); err != nil {
			log.Warn().Err(err).Msg("dropping room board client")

			h.remove(c)
			_ = c.close()
		}
	}
}

// ServeWS upgrades the request, sends a hello snapshot and answers sync/refresh until the client leaves.
func (h *Hub) ServeWS(writer http.ResponseWriter, request *http.Request) {
	conn, err := h.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade room board connection")

		return
	}

	realtime := h.cfg.Realtime
	readTimeout := seconds(realtime.ReadTimeoutSeconds, defaultReadTimeout)

	c := newClient(conn, seconds(realtime.WriteTimeoutSeconds, defaultWriteTimeout))
	c.setFilter(request.URL.Query().Get("status"))

	h.add(c)

	defer func() {
		h.remove(c)
		_ = c.close()
	}()

	ctx := context.WithoutCancel(request.Context())

	conn.SetReadLimit(maxMessageBytes)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	h.reply(ctx, c, model.MessageHello)

	readDone := make(chan struct{})

	go func() {
		defer close(readDone)

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var msg dto.ClientMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				_ = c.writeJSON(dto.Message{Type: model.MessageError, Error: failure.Decode("board message", err).Error()})

				continue
			}

			switch strings.ToLower(strings.TrimSpace(msg.Type)) {
			case model.MessageSync, model.MessageRefresh:
				c.setFilter(msg.Status)
				h.reply(ctx, c, model.MessageSnapshot)
			}
		}
	}()

	ticker := time.NewTicker(seconds(realtime.PingIntervalSeconds, defaultPingInterval))
	defer ticker.Stop()

	for {
		select {
		case <-readDone:
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}

func (h *Hub) reply(ctx context.Context, c *client, messageType string) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelHandlerScopeName, otelHubScopeName+".Reply")
	defer scope.End()

	snapshot, err := h.board.Snapshot(ctx, c.filter())
	if err != nil {
		scope.TraceError(err)

		_ = c.writeJSON(dto.Message{Type: model.MessageError, Error: err.Error()})

		return
	}

	if err := c.writeJSON(dto.Message{Type: messageType, Snapshot: &snapshot}); err != nil {
		log.Warn().Err(err).Msg("failed to write room board snapshot")
	}
}

func seconds(value int, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}

	return time.Duration(value) * time.Second
}
