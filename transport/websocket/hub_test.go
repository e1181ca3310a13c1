package websocket_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/room/event"
	roomModel "hotel/internal/domains/room/model"
	boardMocks "hotel/internal/domains/roomboard/mocks"
	"hotel/internal/domains/roomboard/model"
	"hotel/internal/domains/roomboard/model/dto"
	hub "hotel/transport/websocket"
)

func dial(t *testing.T) (*hub.Hub, *websocket.Conn) {
	t.Helper()

	ctrl := gomock.NewController(t)
	board := boardMocks.NewMockRoomBoard(ctrl)
	board.EXPECT().
		Snapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, status string) (dto.SnapshotResponse, error) {
			return dto.SnapshotResponse{Status: status, Total: 3}, nil
		}).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Realtime.PingIntervalSeconds = 25
	cfg.Realtime.ReadTimeoutSeconds = 70
	cfg.Realtime.WriteTimeoutSeconds = 7

	h := hub.New(cfg, board, mocks.NewOtel())

	server := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return h, conn
}

func read(t *testing.T, conn *websocket.Conn) dto.Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg dto.Message
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestHub_HelloOnConnect(t *testing.T) {
	h, conn := dial(t)

	msg := read(t, conn)

	assert.Equal(t, model.MessageHello, msg.Type)
	require.NotNil(t, msg.Snapshot)
	assert.Equal(t, 3, msg.Snapshot.Total)
	assert.Equal(t, 1, h.Clients())
}

func TestHub_SyncUsesRequestedFilter(t *testing.T) {
	_, conn := dial(t)
	read(t, conn)

	require.NoError(t, conn.WriteJSON(dto.ClientMessage{Type: "sync", Status: "Occupied"}))

	msg := read(t, conn)

	assert.Equal(t, model.MessageSnapshot, msg.Type)
	assert.Equal(t, "Occupied", msg.Snapshot.Status)
}

func TestHub_InvalidMessage(t *testing.T) {
	_, conn := dial(t)
	read(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	msg := read(t, conn)

	assert.Equal(t, model.MessageError, msg.Type)
	assert.Contains(t, msg.Error, "board message")
}

func TestHub_NotifyBroadcastsSnapshot(t *testing.T) {
	h, conn := dial(t)
	read(t, conn)

	h.Notify(context.Background(), event.NewRoomChanged(event.ActionStatusChanged, "room-1", roomModel.StatusCleaning))

	msg := read(t, conn)

	assert.Equal(t, model.MessageSnapshot, msg.Type)
	assert.Equal(t, 3, msg.Snapshot.Total)
}
