package config

import (
	"github.com/IBM/sarama"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
)

type Logger interface {
	Level() string
	AsJSON() bool
}

type Fleet interface {
	ShipName() string
	ShipParts() []model.PartSpec
	RacingShipName() string
	RacingShipMaxSpeed() int
}

type Logbook interface {
	Enabled() bool
	Brokers() []string
	Topic() string
	ConsumerGroupID() string
	ProducerConfig() *sarama.Config
	ConsumerConfig() *sarama.Config
}
