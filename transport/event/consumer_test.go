package event_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	kafkaInfra "hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	roomEvent "hotel/internal/domains/room/event"
	eventMocks "hotel/internal/domains/room/event/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/transport/event"
)

func TestConsumer_Handle(t *testing.T) {
	valid, _ := json.Marshal(roomEvent.RoomChanged{
		Action: roomEvent.ActionStatusChanged,
		RoomID: "room-1",
		Status: roomModel.StatusOccupied,
	})

	tests := []struct {
		name      string
		value     []byte
		setupMock func(notifier *eventMocks.MockNotifier)
	}{
		{
			name:  "decoded event reaches the notifier",
			value: valid,
			setupMock: func(notifier *eventMocks.MockNotifier) {
				notifier.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, evt roomEvent.RoomChanged) {
						assert.Equal(t, "room-1", evt.RoomID)
						assert.Equal(t, roomModel.StatusOccupied, evt.Status)
					})
			},
		},
		{
			name:      "malformed payload is dropped",
			value:     []byte("{not json"),
			setupMock: func(_ *eventMocks.MockNotifier) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notifier := eventMocks.NewMockNotifier(ctrl)
			tt.setupMock(notifier)

			consumer := event.New(&config.Config{}, kafkaMocks.NewMockClient(ctrl), notifier, mocks.NewOtel())
			err := consumer.Handle(context.Background(), kafka.Message{Topic: "room.events", Value: tt.value})

			assert.NoError(t, err)
		})
	}
}

func TestConsumer_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	consumer := event.New(&config.Config{}, client, eventMocks.NewMockNotifier(ctrl), mocks.NewOtel())
	consumer.Start(context.Background())
}

func TestConsumer_StartEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.ConsumerGroup = "hotel-board"
	cfg.Kafka.Topic.RoomEvents = "room.events"

	consumed := make(chan struct{})

	consumer := event.New(cfg, client, eventMocks.NewMockNotifier(ctrl), mocks.NewOtel())

	client.EXPECT().
		Consume(gomock.Any(), consumer.GroupID(), "room.events", gomock.Any()).
		Do(func(_ context.Context, _, _ string, _ kafkaInfra.Handler) {
			close(consumed)
		})

	consumer.Start(context.Background())

	<-consumed
}

func TestConsumer_GroupPerInstance(t *testing.T) {
	tests := []struct {
		name       string
		group      string
		wantPrefix string
	}{
		{name: "configured prefix", group: "hotel-board", wantPrefix: "hotel-board-"},
		{name: "default prefix", wantPrefix: "hotel-room-board-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			cfg := &config.Config{}
			cfg.Kafka.ConsumerGroup = tt.group

			first := event.New(cfg, kafkaMocks.NewMockClient(ctrl), eventMocks.NewMockNotifier(ctrl), mocks.NewOtel())
			second := event.New(cfg, kafkaMocks.NewMockClient(ctrl), eventMocks.NewMockNotifier(ctrl), mocks.NewOtel())

			assert.True(t, strings.HasPrefix(first.GroupID(), tt.wantPrefix))
			assert.True(t, strings.HasPrefix(second.GroupID(), tt.wantPrefix))
			assert.NotEqual(t, first.GroupID(), second.GroupID())
		})
	}
}

func TestConsumer_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	client.EXPECT().Close().Return(nil)

	consumer := event.New(&config.Config{}, client, eventMocks.NewMockNotifier(ctrl), mocks.NewOtel())
	consumer.Close()
}
