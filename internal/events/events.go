// Package events provides the in-process message bus that carries match
// lifecycle events between domain systems. The matches system publishes;
// the notifications system subscribes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/pkg/lifecycle"
)

// Topics for match lifecycle events.
const (
	TopicMatchSuggested = "match.suggested"
	TopicMatchConfirmed = "match.confirmed"
	TopicMatchDismissed = "match.dismissed"
)

// MatchEvent is the payload published on match lifecycle topics. Reporter
// IDs identify the owners of the two items so subscribers can address them
// without a database round trip. Actor is set for confirmed and dismissed
// events and identifies the user who acted on the suggestion.
type MatchEvent struct {
	MatchID         uuid.UUID  `json:"match_id"`
	LostItemID      uuid.UUID  `json:"lost_item_id"`
	FoundItemID     uuid.UUID  `json:"found_item_id"`
	LostReporterID  uuid.UUID  `json:"lost_reporter_id"`
	FoundReporterID uuid.UUID  `json:"found_reporter_id"`
	Score           int        `json:"score"`
	Actor           *uuid.UUID `json:"actor,omitempty"`
}

// Bus wraps an in-process publisher/subscriber pair for match events.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger
}

// NewBus creates an in-process event bus with the given configuration.
func NewBus(cfg *Config, logger *slog.Logger) *Bus {
	scoped := logger.With("system", "events")

	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: cfg.BufferSize},
		watermill.NewSlogLogger(scoped),
	)

	return &Bus{
		pubsub: pubsub,
		logger: scoped,
	}
}

// Publish marshals the event and publishes it on the given topic.
func (b *Bus) Publish(topic string, evt MatchEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal match event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	return nil
}

// Subscribe returns a channel of messages for the given topic. The channel
// closes when ctx is cancelled or the bus shuts down.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Start registers bus shutdown with the lifecycle coordinator.
func (b *Bus) Start(lc *lifecycle.Coordinator) error {
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		b.logger.Info("closing event bus")

		if err := b.pubsub.Close(); err != nil {
			b.logger.Error("event bus close failed", "error", err)
			return
		}

		b.logger.Info("event bus closed")
	})

	return nil
}

// DecodeMatchEvent unmarshals a message payload into a MatchEvent.
func DecodeMatchEvent(msg *message.Message) (MatchEvent, error) {
	var evt MatchEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return evt, fmt.Errorf("decode match event: %w", err)
	}
	return evt, nil
}
