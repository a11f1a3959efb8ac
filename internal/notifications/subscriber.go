package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/events"
	"github.com/reclaim-app/reclaim/pkg/lifecycle"
)

// Subscriber consumes match lifecycle events and records notifications.
// A suggestion notifies the lost item's owner; confirmation and dismissal
// notify both owners.
type Subscriber struct {
	sys    System
	bus    *events.Bus
	logger *slog.Logger
}

// NewSubscriber creates a Subscriber over the given system and event bus.
func NewSubscriber(sys System, bus *events.Bus, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		sys:    sys,
		bus:    bus,
		logger: logger.With("system", "notifications.subscriber"),
	}
}

// Start subscribes to all match topics and registers the consumer loops
// with the lifecycle coordinator. Loops drain when the bus closes on
// shutdown.
func (s *Subscriber) Start(lc *lifecycle.Coordinator) error {
	ctx := lc.Context()

	topics := []string{
		events.TopicMatchSuggested,
		events.TopicMatchConfirmed,
		events.TopicMatchDismissed,
	}

	for _, topic := range topics {
		msgs, err := s.bus.Subscribe(ctx, topic)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			s.consume(ctx, topic, msgs)
		}()

		lc.OnShutdown(func() {
			<-done
		})
	}

	s.logger.Info("notifications subscriber started", "topics", len(topics))
	return nil
}

// consume drains one topic channel. Messages are always acked: a failed
// write is logged and dropped rather than redelivered forever.
func (s *Subscriber) consume(ctx context.Context, topic string, msgs <-chan *message.Message) {
	for msg := range msgs {
		evt, err := events.DecodeMatchEvent(msg)
		if err != nil {
			s.logger.Error("drop undecodable match event", "topic", topic, "error", err)
			msg.Ack()
			continue
		}

		if err := s.record(ctx, topic, evt); err != nil {
			s.logger.Error("record notification failed",
				"topic", topic,
				"match_id", evt.MatchID,
				"error", err,
			)
		}

		msg.Ack()
	}
}

func (s *Subscriber) record(ctx context.Context, topic string, evt events.MatchEvent) error {
	kind, recipients, body := describe(topic, evt)
	if kind == "" {
		return fmt.Errorf("unknown topic %s", topic)
	}

	seen := make(map[uuid.UUID]bool, len(recipients))
	for _, userID := range recipients {
		if seen[userID] {
			continue
		}
		seen[userID] = true

		cmd := CreateCommand{
			UserID:  userID,
			MatchID: &evt.MatchID,
			Kind:    kind,
			Body:    body,
		}
		if _, err := s.sys.Create(ctx, cmd); err != nil {
			return err
		}
	}

	return nil
}

func describe(topic string, evt events.MatchEvent) (Kind, []uuid.UUID, string) {
	switch topic {
	case events.TopicMatchSuggested:
		return KindMatchSuggested,
			[]uuid.UUID{evt.LostReporterID},
			fmt.Sprintf("A found item may match your lost item (score %d).", evt.Score)
	case events.TopicMatchConfirmed:
		return KindMatchConfirmed,
			[]uuid.UUID{evt.LostReporterID, evt.FoundReporterID},
			"A match on your item was confirmed."
	case events.TopicMatchDismissed:
		return KindMatchDismissed,
			[]uuid.UUID{evt.LostReporterID, evt.FoundReporterID},
			"A suggested match on your item was dismissed."
	}
	return "", nil, ""
}
