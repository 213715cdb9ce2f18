package app

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/config"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

type logbookApp struct {
	app
}

// NewLogbook builds the reader that prints the mirrored ship history to
// stdout.
func NewLogbook(ctx context.Context) (*logbookApp, error) {
	a := &logbookApp{app: app{out: os.Stdout}}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *logbookApp) Run(ctx context.Context) error {
	defer gracefulShutdown()

	return runLogbook(ctx,
		a.di.LogbookConsumer(ctx),
		a.di.LogbookConsumerGroup(ctx).Errors(),
	)
}

// runLogbook runs the consumer and drains groupErrs until the consumer
// stops. Both must come from the same consumer group.
func runLogbook(ctx context.Context, consumer LogbookConsumer, groupErrs <-chan error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		logger.Info(egCtx, "logbook consumer running",
			logger.String("topic", config.C().Logbook.Topic()),
		)
		return consumer.RunLogbookConsume(egCtx)
	})

	eg.Go(func() error {
		return watchGroupErrors(egCtx, groupErrs)
	})

	return eg.Wait()
}

// watchGroupErrors logs asynchronous consumer group errors until ctx ends or
// the group is closed.
func watchGroupErrors(ctx context.Context, errs <-chan error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn(ctx, "logbook consumer group error", logger.ErrorF(err))
		}
	}
}
