package logbookconsumer

import (
	"context"
	"fmt"
	"io"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

type Converter interface {
	PayloadToEvent(data []byte) (model.LogbookRecord, error)
	ContentType() string
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	out      io.Writer
}

func NewLogbookConsumer(consumer kafka.Consumer, conv Converter, out io.Writer) *service {
	return &service{
		consumer: consumer,
		conv:     conv,
		out:      out,
	}
}

func (s *service) RunLogbookConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting logbook consumer")

	if err := s.consumer.Consume(ctx, s.logbookHandler); err != nil {
		logger.Error(ctx, "Consume from logbook topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// logbookHandler prints one record. Records tagged with another content
// type are acknowledged and skipped; untagged ones are decoded.
func (s *service) logbookHandler(ctx context.Context, msg kafka.Message) error {
	if ct := msg.Header(kafka.HeaderContentType); ct != "" && ct != s.conv.ContentType() {
		logger.Debug(ctx, "Skipping foreign record",
			logger.Any("offset", msg.Offset),
			logger.String("content_type", ct),
		)
		return nil
	}

	rec, err := s.conv.PayloadToEvent(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode logbook record",
			logger.Any("offset", msg.Offset),
			logger.ErrorF(err),
		)
		return fmt.Errorf("converter payload_to_event error: %w", err)
	}

	if _, err := fmt.Fprintln(s.out, rec.String()); err != nil {
		return fmt.Errorf("write logbook line: %w", err)
	}

	return nil
}
