package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/RedhaAGGOUN/bateau-de-thesee/internal/config/env"
)

var cfg *config

type config struct {
	Logger  Logger
	Fleet   Fleet
	Logbook Logbook
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	fleetCfg, err := envconfig.NewFleetConfig()
	if err != nil {
		return fmt.Errorf("%s Fleet: %w", op, err)
	}

	logbookCfg, err := envconfig.NewLogbookConfig()
	if err != nil {
		return fmt.Errorf("%s Logbook: %w", op, err)
	}

	cfg = &config{
		Logger:  loggerCfg,
		Fleet:   fleetCfg,
		Logbook: logbookCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
