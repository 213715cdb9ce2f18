package producer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

func TestProducer_Send(t *testing.T) {
	t.Parallel()

	brokerDown := errors.New("broker down")

	msg := kafka.Message{
		Key:   []byte("Thésée"),
		Value: []byte("payload"),
		Topic: "ignored",
	}.WithHeader(kafka.HeaderEventKind, "replace").WithHeader(kafka.HeaderContentType, "application/x-protobuf")

	tests := []struct {
		name    string
		arrange func(sp *mocks.SyncProducer)
		wantErr error
	}{
		{
			name: "success: record forwarded to the configured topic",
			arrange: func(sp *mocks.SyncProducer) {
				sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(pm *sarama.ProducerMessage) error {
					if pm.Topic != "ship.history" {
						return fmt.Errorf("unexpected topic %q", pm.Topic)
					}
					key, _ := pm.Key.Encode()
					if string(key) != "Thésée" {
						return fmt.Errorf("unexpected key %q", key)
					}
					val, _ := pm.Value.Encode()
					if string(val) != "payload" {
						return fmt.Errorf("unexpected value %q", val)
					}
					if len(pm.Headers) != 2 ||
						string(pm.Headers[0].Key) != kafka.HeaderContentType ||
						string(pm.Headers[1].Key) != kafka.HeaderEventKind ||
						string(pm.Headers[1].Value) != "replace" {
						return fmt.Errorf("unexpected headers %v", pm.Headers)
					}
					return nil
				})
			},
		},
		{
			name: "broker error returned",
			arrange: func(sp *mocks.SyncProducer) {
				sp.ExpectSendMessageAndFail(brokerDown)
			},
			wantErr: brokerDown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := sarama.NewConfig()
			cfg.Producer.Return.Successes = true
			sp := mocks.NewSyncProducer(t, cfg)
			tt.arrange(sp)

			p := NewProducer(sp, "ship.history", logger.L())
			err := p.Send(context.Background(), msg)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, sp.Close())
		})
	}
}

func TestRecordHeaders(t *testing.T) {
	t.Parallel()

	assert.Nil(t, recordHeaders(nil))

	got := recordHeaders(map[string][]byte{
		kafka.HeaderEventKind:   []byte("change_material"),
		kafka.HeaderContentType: []byte("application/x-protobuf"),
		kafka.HeaderEventID:     []byte("42"),
	})
	require.Len(t, got, 3)
	assert.Equal(t, kafka.HeaderContentType, string(got[0].Key))
	assert.Equal(t, kafka.HeaderEventID, string(got[1].Key))
	assert.Equal(t, kafka.HeaderEventKind, string(got[2].Key))
	assert.Equal(t, "change_material", string(got[2].Value))
}
