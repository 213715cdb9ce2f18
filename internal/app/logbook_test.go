package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

var errRebalance = errors.New("rebalance failed")

// fakeGroup reports one asynchronous error while consuming and then closes.
type fakeGroup struct {
	sarama.ConsumerGroup

	errs        chan error
	errorsCalls int
	delivered   bool
}

func (g *fakeGroup) Errors() <-chan error {
	g.errorsCalls++
	return g.errs
}

func (g *fakeGroup) Consume(ctx context.Context, _ []string, _ sarama.ConsumerGroupHandler) error {
	select {
	case g.errs <- errRebalance:
		g.delivered = true
	case <-time.After(2 * time.Second):
	case <-ctx.Done():
	}
	return sarama.ErrClosedConsumerGroup
}

func newTestLogbookApp(t *testing.T) *logbookApp {
	t.Helper()

	a := &logbookApp{app: app{out: &bytes.Buffer{}}}
	require.NoError(t, a.init(context.Background()))
	logger.SetNopLogger()

	return a
}

func TestLogbookApp_WatchesTheConsumingGroup(t *testing.T) {
	a := newTestLogbookApp(t)

	group := &fakeGroup{errs: make(chan error)}
	a.di.logbookConsumerGroup = group

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("logbook reader did not stop after its consumer group closed")
	}

	assert.True(t, group.delivered, "group errors must be drained from the group that consumes")
	assert.Equal(t, 1, group.errorsCalls)
	assert.Same(t, group, a.di.LogbookConsumerGroup(context.Background()))
}

type stubLogbookConsumer struct {
	run func(ctx context.Context) error
}

func (s stubLogbookConsumer) RunLogbookConsume(ctx context.Context) error { return s.run(ctx) }

func TestRunLogbook(t *testing.T) {
	newTestLogbookApp(t)

	consumeErr := errors.New("consume failed")

	t.Run("consumer failure is returned", func(t *testing.T) {
		c := stubLogbookConsumer{run: func(context.Context) error { return consumeErr }}

		err := runLogbook(context.Background(), c, make(chan error))
		assert.ErrorIs(t, err, consumeErr)
	})

	t.Run("parent cancellation stops both goroutines", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		c := stubLogbookConsumer{run: func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		}}

		done := make(chan error, 1)
		go func() { done <- runLogbook(ctx, c, make(chan error)) }()
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("runLogbook did not return after cancel")
		}
	})
}
