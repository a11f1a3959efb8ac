package events_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/reclaim-app/reclaim/internal/events"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() events.MatchEvent {
	return events.MatchEvent{
		MatchID:         uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		LostItemID:      uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		FoundItemID:     uuid.MustParse("550e8400-e29b-41d4-a716-446655440002"),
		LostReporterID:  uuid.MustParse("550e8400-e29b-41d4-a716-446655440003"),
		FoundReporterID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440004"),
		Score:           92,
	}
}

func TestBusPublishSubscribe(t *testing.T) {
	cfg := events.Config{BufferSize: 8}
	bus := events.NewBus(&cfg, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := bus.Subscribe(ctx, events.TopicMatchSuggested)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	want := sampleEvent()
	if err := bus.Publish(events.TopicMatchSuggested, want); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case msg := <-msgs:
		got, err := events.DecodeMatchEvent(msg)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		msg.Ack()

		if got.MatchID != want.MatchID {
			t.Errorf("MatchID = %v, want %v", got.MatchID, want.MatchID)
		}
		if got.LostReporterID != want.LostReporterID {
			t.Errorf("LostReporterID = %v, want %v", got.LostReporterID, want.LostReporterID)
		}
		if got.Score != want.Score {
			t.Errorf("Score = %d, want %d", got.Score, want.Score)
		}
		if got.Actor != nil {
			t.Errorf("Actor = %v, want nil", got.Actor)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestBusTopicsIsolated(t *testing.T) {
	cfg := events.Config{BufferSize: 8}
	bus := events.NewBus(&cfg, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	confirmed, err := bus.Subscribe(ctx, events.TopicMatchConfirmed)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	if err := bus.Publish(events.TopicMatchDismissed, sampleEvent()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case msg := <-confirmed:
		t.Fatalf("received message on wrong topic: %s", msg.UUID)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDecodeMatchEventActor(t *testing.T) {
	actor := uuid.MustParse("550e8400-e29b-41d4-a716-446655440005")
	evt := sampleEvent()
	evt.Actor = &actor

	cfg := events.Config{BufferSize: 1}
	bus := events.NewBus(&cfg, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := bus.Subscribe(ctx, events.TopicMatchConfirmed)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	if err := bus.Publish(events.TopicMatchConfirmed, evt); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case msg := <-msgs:
		got, err := events.DecodeMatchEvent(msg)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		msg.Ack()

		if got.Actor == nil || *got.Actor != actor {
			t.Errorf("Actor = %v, want %v", got.Actor, actor)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestDecodeMatchEventInvalidPayload(t *testing.T) {
	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	if _, err := events.DecodeMatchEvent(msg); err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := events.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if cfg.BufferSize != 64 {
		t.Errorf("BufferSize = %d, want 64", cfg.BufferSize)
	}
}

func TestConfigFinalizeEnvOverride(t *testing.T) {
	t.Setenv("TEST_EVENTS_BUFFER", "128")

	cfg := events.Config{}
	if err := cfg.Finalize(&events.Env{BufferSize: "TEST_EVENTS_BUFFER"}); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if cfg.BufferSize != 128 {
		t.Errorf("BufferSize = %d, want 128", cfg.BufferSize)
	}
}

func TestConfigFinalizeNegative(t *testing.T) {
	cfg := events.Config{BufferSize: -1}
	if err := cfg.Finalize(nil); err == nil {
		t.Fatal("expected error, got nil")
	}
}
