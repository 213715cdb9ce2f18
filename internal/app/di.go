package app

import (
	"context"
	"fmt"
	"io"

	"github.com/IBM/sarama"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/config"
	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/converter"
	logbookconsumer "github.com/RedhaAGGOUN/bateau-de-thesee/internal/service/consumer/logbook"
	logbookproducer "github.com/RedhaAGGOUN/bateau-de-thesee/internal/service/producer/logbook"
	service "github.com/RedhaAGGOUN/bateau-de-thesee/internal/service/ship"
	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/transport/cli/menu"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/closer"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka/consumer"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka/middleware"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka/producer"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

type MenuController interface {
	Run(ctx context.Context) error
}

type LogbookConsumer interface {
	RunLogbookConsume(ctx context.Context) error
}

type Converter interface {
	logbookproducer.Converter
	logbookconsumer.Converter
}

type di struct {
	in  io.Reader
	out io.Writer

	converter Converter

	syncProducer     sarama.SyncProducer
	kafkaProducer    kafka.Producer
	historyPublisher service.HistoryPublisher

	flagship   *service.Ship
	racingShip *service.RacingShip

	menuController MenuController

	logbookConsumerGroup sarama.ConsumerGroup
	logbookKafkaConsumer kafka.Consumer
	logbookConsumer      LogbookConsumer
}

func NewDI(in io.Reader, out io.Writer) *di { return &di{in: in, out: out} }

func (d *di) KafkaConverter(ctx context.Context) Converter {
	if d.converter == nil {
		d.converter = converter.NewKafkaConverter()
	}

	return d.converter
}

func (d *di) LogbookSyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Logbook.Brokers(),
			cfg.Logbook.ProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create logbook sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka logbook sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) LogbookKafkaProducer(ctx context.Context) kafka.Producer {
	if d.kafkaProducer == nil {
		d.kafkaProducer = producer.NewProducer(
			d.LogbookSyncProducer(ctx),
			config.C().Logbook.Topic(),
			logger.L(),
		)
	}

	return d.kafkaProducer
}

// HistoryPublisher mirrors ship history to Kafka when the logbook is enabled
// and drops it otherwise.
func (d *di) HistoryPublisher(ctx context.Context) service.HistoryPublisher {
	if d.historyPublisher == nil {
		if !config.C().Logbook.Enabled() {
			d.historyPublisher = logbookproducer.NewDisabled()
			return d.historyPublisher
		}

		d.historyPublisher = logbookproducer.NewLogbookProducer(
			d.LogbookKafkaProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.historyPublisher
}

func (d *di) Flagship(ctx context.Context) *service.Ship {
	if d.flagship == nil {
		fleet := config.C().Fleet

		s := service.New(fleet.ShipName(), service.WithPublisher(d.HistoryPublisher(ctx)))
		service.PartsBootstrap(s, fleet.ShipParts())

		d.flagship = s
	}

	return d.flagship
}

func (d *di) RacingShip(ctx context.Context) *service.RacingShip {
	if d.racingShip == nil {
		fleet := config.C().Fleet

		d.racingShip = service.NewRacingShip(
			fleet.RacingShipName(),
			fleet.RacingShipMaxSpeed(),
			service.WithPublisher(d.HistoryPublisher(ctx)),
		)
	}

	return d.racingShip
}

func (d *di) MenuController(ctx context.Context) MenuController {
	if d.menuController == nil {
		d.menuController = menu.NewController(
			d.Flagship(ctx),
			d.RacingShip(ctx),
			d.in,
			d.out,
		)
	}

	return d.menuController
}

func (d *di) LogbookConsumerGroup(ctx context.Context) sarama.ConsumerGroup {
	if d.logbookConsumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Logbook.Brokers(),
			cfg.Logbook.ConsumerGroupID(),
			cfg.Logbook.ConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create logbook consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka logbook consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.logbookConsumerGroup = consumerGroup
	}

	return d.logbookConsumerGroup
}

func (d *di) LogbookKafkaConsumer(ctx context.Context) kafka.Consumer {
	if d.logbookKafkaConsumer == nil {
		d.logbookKafkaConsumer = consumer.NewConsumer(
			d.LogbookConsumerGroup(ctx),
			[]string{
				config.C().Logbook.Topic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.logbookKafkaConsumer
}

func (d *di) LogbookConsumer(ctx context.Context) LogbookConsumer {
	if d.logbookConsumer == nil {
		d.logbookConsumer = logbookconsumer.NewLogbookConsumer(
			d.LogbookKafkaConsumer(ctx),
			d.KafkaConverter(ctx),
			d.out,
		)
	}

	return d.logbookConsumer
}
