package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka"
)

type DebugLogger interface {
	Debug(ctx context.Context, msg string, fields ...zap.Field)
}

// Logging records every delivered message with its key and event headers.
func Logging(logger DebugLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			logger.Debug(ctx, "Record received",
				zap.String("topic", msg.Topic),
				zap.Int32("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.ByteString("key", msg.Key),
				zap.String("event_kind", msg.Header(kafka.HeaderEventKind)),
				zap.String("event_id", msg.Header(kafka.HeaderEventID)),
				zap.Duration("lag", lag(msg)),
			)
			return next(ctx, msg)
		}
	}
}

func lag(msg kafka.Message) time.Duration {
	if msg.Timestamp.IsZero() {
		return 0
	}
	return time.Since(msg.Timestamp)
}
