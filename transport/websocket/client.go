package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const maxMessageBytes = 1 << 20

// client serialises writes to one connection. status is the board filter it last asked for.
type client struct {
	conn         *websocket.Conn
	writeTimeout time.Duration

	mu     sync.Mutex
	status string
}

func newClient(conn *websocket.Conn, writeTimeout time.Duration) *client {
	return &client{
		conn:         conn,
		writeTimeout: writeTimeout,
	}
}

func (c *client) filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

func (c *client) setFilter(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

func (c *client) writeText(raw []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (c *client) writeJSON(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return c.writeText(raw)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline := time.Now().Add(c.writeTimeout)

	if err := c.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}

	return nil
}

func (c *client) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.Close() //nolint:wrapcheck
}
