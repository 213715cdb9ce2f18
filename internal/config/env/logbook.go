package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type logbookEnv struct {
	Enabled         bool     `env:"LOGBOOK_ENABLED" envDefault:"false"`
	Brokers         []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic           string   `env:"LOGBOOK_TOPIC" envDefault:"ship.history"`
	ConsumerGroupID string   `env:"LOGBOOK_CONSUMER_GROUP_ID" envDefault:"logbook-reader"`
}

type logbook struct {
	raw logbookEnv
}

func NewLogbookConfig() (*logbook, error) {
	var raw logbookEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &logbook{raw: raw}, nil
}

func (cfg *logbook) Enabled() bool           { return cfg.raw.Enabled }
func (cfg *logbook) Brokers() []string       { return cfg.raw.Brokers }
func (cfg *logbook) Topic() string           { return cfg.raw.Topic }
func (cfg *logbook) ConsumerGroupID() string { return cfg.raw.ConsumerGroupID }

func (cfg *logbook) ProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Partitioner = sarama.NewHashPartitioner

	return config
}

func (cfg *logbook) ConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true

	return config
}
