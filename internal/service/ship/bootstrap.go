package service

import (
	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
)

type PartAdder interface {
	AddPart(part *model.Part)
}

// PartsBootstrap equips a ship with freshly built parts, in order.
func PartsBootstrap(a PartAdder, specs []model.PartSpec) {
	for _, spec := range specs {
		a.AddPart(model.NewPart(spec.Name, spec.Material))
	}
}
