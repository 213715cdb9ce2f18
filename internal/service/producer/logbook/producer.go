package logbookproducer

import (
	"context"
	"fmt"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka"
)

type Converter interface {
	EventToPayload(shipName string, e model.Event) ([]byte, error)
	ContentType() string
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewLogbookProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// PublishEvent sends e keyed by ship name so one ship's history stays on
// one partition, in order. The event kind and id travel as headers so
// readers can route or skip records without decoding them.
func (s *service) PublishEvent(ctx context.Context, shipName string, e model.Event) error {
	payload, err := s.conv.EventToPayload(shipName, e)
	if err != nil {
		return fmt.Errorf("converter event_to_payload error: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(shipName),
		Value: payload,
	}.
		WithHeader(kafka.HeaderContentType, s.conv.ContentType()).
		WithHeader(kafka.HeaderEventKind, e.Kind.String()).
		WithHeader(kafka.HeaderEventID, e.ID.String())

	if err := s.producer.Send(ctx, msg); err != nil {
		return fmt.Errorf("produce to logbook topic error: %w", err)
	}

	return nil
}

type disabled struct{}

// NewDisabled returns a publisher that drops every event.
func NewDisabled() disabled { return disabled{} }

func (disabled) PublishEvent(context.Context, string, model.Event) error { return nil }
