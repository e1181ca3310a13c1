package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"
)

type Action string

const (
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionDeleted       Action = "deleted"
	ActionStatusChanged Action = "status_changed"
)

// RoomChanged is emitted after any committed write to the rooms table.
type RoomChanged struct {
	Action     Action       `json:"action"`
	RoomID     string       `json:"room_id"`
	Status     model.Status `json:"status,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

func NewRoomChanged(action Action, roomID string, status model.Status) RoomChanged {
	return RoomChanged{
		Action:     action,
		RoomID:     roomID,
		Status:     status,
		OccurredAt: timezone.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, evt RoomChanged) error
}

// Notifier receives room changes delivered in-process.
type Notifier interface {
	Notify(ctx context.Context, evt RoomChanged)
}

type publisherImpl struct {
	cfg      *config.Config
	client   kafka.Client
	notifier Notifier
	otel     otel.Otel
}

func NewPublisher(cfg *config.Config, client kafka.Client, notifier Notifier, otl otel.Otel) Publisher {
	return &publisherImpl{
		cfg:      cfg,
		client:   client,
		notifier: notifier,
		otel:     otl,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, evt RoomChanged) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		"room.id":      evt.RoomID,
		"event.action": string(evt.Action),
	})

	// In-process delivery reloads snapshots and writes to every board client, off the request path.
	if !p.cfg.Kafka.Enable {
		go p.notifier.Notify(context.WithoutCancel(ctx), evt)

		return nil
	}

	err = p.client.SendMessages(ctx, p.cfg.Kafka.Topic.RoomEvents, kafka.Message{Key: evt.RoomID, Value: evt})
	if err != nil {
		return fmt.Errorf("failed to publish room event: %w", err)
	}

	return nil
}
