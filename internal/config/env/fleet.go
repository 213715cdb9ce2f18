package envconfig

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/samber/lo"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
)

type fleetEnv struct {
	ShipName           string   `env:"SHIP_NAME" envDefault:"Thésée"`
	ShipParts          []string `env:"SHIP_PARTS" envSeparator:"," envDefault:"Mât:Bois,Coque:Bois,Voiles:Tissu"`
	RacingShipName     string   `env:"RACING_SHIP_NAME" envDefault:"Thésée Racing"`
	RacingShipMaxSpeed int      `env:"RACING_SHIP_MAX_SPEED" envDefault:"80"`
}

type fleet struct {
	raw   fleetEnv
	parts []model.PartSpec
}

func NewFleetConfig() (*fleet, error) {
	var raw fleetEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	parts, err := parsePartSpecs(raw.ShipParts)
	if err != nil {
		return nil, err
	}

	return &fleet{raw: raw, parts: parts}, nil
}

func (cfg *fleet) ShipName() string            { return cfg.raw.ShipName }
func (cfg *fleet) RacingShipName() string      { return cfg.raw.RacingShipName }
func (cfg *fleet) RacingShipMaxSpeed() int     { return cfg.raw.RacingShipMaxSpeed }
func (cfg *fleet) ShipParts() []model.PartSpec { return append([]model.PartSpec(nil), cfg.parts...) }

// parsePartSpecs reads "name:material" entries. Blank entries are skipped.
func parsePartSpecs(entries []string) ([]model.PartSpec, error) {
	var bad []string

	specs := lo.FilterMap(entries, func(entry string, _ int) (model.PartSpec, bool) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return model.PartSpec{}, false
		}
		name, material, ok := strings.Cut(entry, ":")
		if !ok || strings.TrimSpace(name) == "" {
			bad = append(bad, entry)
			return model.PartSpec{}, false
		}
		return model.PartSpec{
			Name:     strings.TrimSpace(name),
			Material: strings.TrimSpace(material),
		}, true
	})

	if len(bad) > 0 {
		return nil, fmt.Errorf("SHIP_PARTS: expected name:material, got %q", bad)
	}

	return specs, nil
}
