package event

import (
	"context"
	"os"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	roomEvent "hotel/internal/domains/room/event"
	"hotel/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const defaultGroupPrefix = "hotel-room-board"

// Consumer forwards room change events from Kafka to the in-process notifier.
// Every instance reads in its own consumer group so each one sees every event.
type Consumer struct {
	cfg      *config.Config
	client   kafka.Client
	notifier roomEvent.Notifier
	otel     otel.Otel
	groupID  string
}

func New(cfg *config.Config, client kafka.Client, notifier roomEvent.Notifier, otel otel.Otel) *Consumer {
	return &Consumer{
		cfg:      cfg,
		client:   client,
		notifier: notifier,
		otel:     otel,
		groupID:  instanceGroup(cfg.Kafka.ConsumerGroup),
	}
}

// GroupID is the consumer group this instance reads with.
func (c *Consumer) GroupID() string {
	return c.groupID
}

// instanceGroup suffixes prefix with the host name and a random id.
func instanceGroup(prefix string) string {
	if prefix == "" {
		prefix = defaultGroupPrefix
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}

	return prefix + "-" + host + "-" + uuid.NewString()[:8]
}

// Start consumes in the background until ctx is cancelled. It does nothing when Kafka is disabled.
func (c *Consumer) Start(ctx context.Context) {
	if !c.cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, room events are delivered in process")

		return
	}

	topic := c.cfg.Kafka.Topic.RoomEvents

	log.Info().Str("topic", topic).Str("group", c.groupID).Msg("Starting room event consumer")

	go c.client.Consume(ctx, c.groupID, topic, c.Handle)
}

// Handle delivers one message. Undecodable payloads are logged and skipped.
func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Consume")
	defer scope.End()

	evt, err := kafka.DecodeMessage[roomEvent.RoomChanged](message)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("topic", message.Topic).Int64("offset", message.Offset).Msg("skipping undecodable room event")

		return nil
	}

	scope.SetAttributes(map[string]any{
		"room.id":      evt.RoomID,
		"event.action": string(evt.Action),
	})

	c.notifier.Notify(ctx, evt)

	return nil
}

// Close flushes the shared Kafka client. Publishing stops working afterwards.
func (c *Consumer) Close() {
	if err := c.client.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close Kafka client")
	}
}
