package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/app"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	a, err := app.New(ctx)
	if err != nil {
		logger.Error(ctx,
			"failed to create the simulation",
			logger.ErrorF(err),
		)
		return
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "simulation error", logger.ErrorF(err))
	}
}
