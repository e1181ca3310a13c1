package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/room/event"
	eventMocks "hotel/internal/domains/room/event/mocks"
	"hotel/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	evt := event.NewRoomChanged(event.ActionStatusChanged, "room-1", model.StatusCleaning)

	tests := []struct {
		name         string
		kafkaEnabled bool
		setupMock    func(client *kafkaMocks.MockClient, notifier *eventMocks.MockNotifier)
		wantErr      bool
	}{
		{
			name:         "kafka enabled sends keyed message",
			kafkaEnabled: true,
			setupMock: func(client *kafkaMocks.MockClient, _ *eventMocks.MockNotifier) {
				client.EXPECT().
					SendMessages(gomock.Any(), "room.events", kafka.Message{Key: "room-1", Value: evt}).
					Return(nil)
			},
		},
		{
			name:         "kafka failure is returned",
			kafkaEnabled: true,
			setupMock: func(client *kafkaMocks.MockClient, _ *eventMocks.MockNotifier) {
				client.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			client := kafkaMocks.NewMockClient(ctrl)
			notifier := eventMocks.NewMockNotifier(ctrl)
			tt.setupMock(client, notifier)

			cfg := &config.Config{}
			cfg.Kafka.Enable = tt.kafkaEnabled
			cfg.Kafka.Topic.RoomEvents = "room.events"

			publisher := event.NewPublisher(cfg, client, notifier, mocks.NewOtel())
			err := publisher.Publish(context.Background(), evt)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPublisher_InProcessDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := eventMocks.NewMockNotifier(ctrl)

	evt := event.NewRoomChanged(event.ActionUpdated, "room-2", model.StatusMaintenance)
	release := make(chan struct{})
	delivered := make(chan struct{})

	notifier.EXPECT().
		Notify(gomock.Any(), evt).
		Do(func(ctx context.Context, _ event.RoomChanged) {
			<-release
			assert.NoError(t, ctx.Err())
			close(delivered)
		})

	publisher := event.NewPublisher(&config.Config{}, kafkaMocks.NewMockClient(ctrl), notifier, mocks.NewOtel())

	ctx, cancel := context.WithCancel(context.Background())
	assert.NoError(t, publisher.Publish(ctx, evt))
	cancel()
	close(release)

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("room change was not delivered")
	}
}
