package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/config"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/closer"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

const shutdownTimeout = 10 * time.Second

type app struct {
	in  io.Reader
	out io.Writer

	di *di
}

// New builds the interactive simulation bound to the process stdin/stdout.
func New(ctx context.Context) (*app, error) {
	a := &app{in: os.Stdin, out: os.Stdout}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI(a.in, a.out)
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	logger.Info(ctx, "simulation started",
		logger.String("ship", config.C().Fleet.ShipName()),
		logger.Bool("logbook", config.C().Logbook.Enabled()),
	)

	return a.di.MenuController(ctx).Run(ctx)
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := closer.CloseAll(ctx); err != nil {
		logger.Error(ctx, "error during shutdown", logger.ErrorF(err))
		return
	}
	logger.Info(ctx, "stopped")
	_ = logger.Sync()
}
