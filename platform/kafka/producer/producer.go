package producer

import (
	"context"
	"sort"

	"github.com/IBM/sarama"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka"
)

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	logger       Logger
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       logger,
	}
}

// Send publishes msg to the producer's topic. msg.Topic and the broker
// coordinates are ignored.
func (p *producer) Send(ctx context.Context, msg kafka.Message) error {
	partition, offset, err := p.syncProducer.SendMessage(&sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.ByteEncoder(msg.Key),
		Value:   sarama.ByteEncoder(msg.Value),
		Headers: recordHeaders(msg.Headers),
	})
	if err != nil {
		p.logger.Error(ctx, "Failed to send record",
			zap.String("topic", p.topic),
			zap.ByteString("key", msg.Key),
			zap.String("event_kind", msg.Header(kafka.HeaderEventKind)),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug(ctx, "Record sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.ByteString("key", msg.Key),
		zap.String("event_kind", msg.Header(kafka.HeaderEventKind)),
		zap.String("event_id", msg.Header(kafka.HeaderEventID)),
		zap.Int("value_bytes", len(msg.Value)),
	)

	return nil
}

// recordHeaders converts headers to sarama's form, sorted by key.
func recordHeaders(headers map[string][]byte) []sarama.RecordHeader {
	if len(headers) == 0 {
		return nil
	}

	keys := lo.Keys(headers)
	sort.Strings(keys)

	return lo.Map(keys, func(k string, _ int) sarama.RecordHeader {
		return sarama.RecordHeader{Key: []byte(k), Value: headers[k]}
	})
}
