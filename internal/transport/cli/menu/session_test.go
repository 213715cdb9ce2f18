package menu_test

import (
	"bytes"
	"context"
	"strings"

	"github.com/IBM/sarama"
	saramamocks "github.com/IBM/sarama/mocks"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/converter"
	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
	logbookproducer "github.com/RedhaAGGOUN/bateau-de-thesee/internal/service/producer/logbook"
	service "github.com/RedhaAGGOUN/bateau-de-thesee/internal/service/ship"
	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/transport/cli/menu"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/kafka/producer"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

func bootstrapParts() []model.PartSpec {
	return []model.PartSpec{
		{Name: "Mât", Material: "Bois"},
		{Name: "Coque", Material: "Bois"},
		{Name: "Voiles", Material: "Tissu"},
	}
}

var _ = Describe("Interactive session", func() {
	var (
		ctx    context.Context
		ship   *service.Ship
		racing *service.RacingShip
		out    *bytes.Buffer
	)

	run := func(script string) *menu.Controller {
		c := menu.NewController(ship, racing, strings.NewReader(script), out)
		Expect(c.Run(ctx)).To(Succeed())
		return c
	}

	BeforeEach(func() {
		ctx = context.Background()
		ship = service.New("Thésée")
		service.PartsBootstrap(ship, bootstrapParts())
		racing = service.NewRacingShip("Thésée Racing", 80)
		out = &bytes.Buffer{}
	})

	Context("replacing every part", func() {
		It("keeps the ship name while no original part instance remains", func() {
			before := ship.Parts()

			c := run("2\nMât\nMétal\n2\nCoque\nAcier\n2\nVoiles\nNylon\n1\n6\n")

			Expect(c.State()).To(Equal(menu.StateTerminated))
			Expect(ship.Name()).To(Equal("Thésée"))

			after := ship.Parts()
			Expect(after).To(HaveLen(3))
			for i := range after {
				Expect(after[i].Name).To(Equal(before[i].Name))
				Expect(after[i].SameIdentityAs(before[i])).To(BeFalse())
			}

			Expect(ship.History()).To(HaveLen(3))
			Expect(out.String()).To(ContainSubstring("Pièce : Mât | Matériau : Métal"))
			Expect(out.String()).To(ContainSubstring("Pièce : Coque | Matériau : Acier"))
			Expect(out.String()).To(ContainSubstring("Pièce : Voiles | Matériau : Nylon"))
		})
	})

	Context("changing materials", func() {
		It("keeps part instances and logs each change", func() {
			before := ship.Parts()

			run("3\nMât\nMétal\n3\nMât\nMétal\n4\n6\n")

			mat, ok := ship.Part("Mât")
			Expect(ok).To(BeTrue())
			Expect(mat.SameIdentityAs(before[0])).To(BeTrue())
			Expect(mat.Material).To(Equal("Métal"))

			Expect(ship.History()).To(HaveLen(2))
			Expect(strings.Count(out.String(), "Modification du matériau de la pièce 'Mât' en 'Métal'")).To(Equal(2))
		})
	})

	Context("user mistakes", func() {
		It("reports them and keeps the session alive", func() {
			c := run("9\n1 \n3\nAncre\nFer\n5\n6\n")

			Expect(c.State()).To(Equal(menu.StateTerminated))
			Expect(strings.Count(out.String(), "Option non valide. Veuillez réessayer.")).To(Equal(2))
			Expect(out.String()).To(ContainSubstring("Erreur : la pièce 'Ancre' n'existe pas sur le navire."))
			Expect(out.String()).To(ContainSubstring("Vitesse maximale de 'Thésée Racing' : 80 km/h"))
			Expect(ship.History()).To(BeEmpty())
			Expect(out.String()).To(HaveSuffix("Au revoir !\n"))
		})
	})

	Context("racing ship", func() {
		It("reports its speed regardless of the flagship state", func() {
			run("2\nMât\nCarbone\n5\n6\n")

			Expect(out.String()).To(ContainSubstring("Vitesse maximale de 'Thésée Racing' : 80 km/h\n"))
			Expect(racing.Parts()).To(BeEmpty())
			Expect(racing.History()).To(BeEmpty())
		})
	})

	Context("with the logbook mirrored to kafka", func() {
		var (
			syncProducer *saramamocks.SyncProducer
			mirrored     []model.LogbookRecord
		)

		BeforeEach(func() {
			cfg := sarama.NewConfig()
			cfg.Producer.Return.Successes = true
			syncProducer = saramamocks.NewSyncProducer(GinkgoT(), cfg)
			mirrored = nil

			conv := converter.NewKafkaConverter()
			record := func(val []byte) error {
				rec, err := conv.PayloadToEvent(val)
				if err != nil {
					return err
				}
				mirrored = append(mirrored, rec)
				return nil
			}
			syncProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(record)
			syncProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(record)

			publisher := logbookproducer.NewLogbookProducer(
				producer.NewProducer(syncProducer, "ship.history", logger.L()),
				conv,
			)
			ship = service.New("Thésée", service.WithPublisher(publisher))
			service.PartsBootstrap(ship, bootstrapParts())
		})

		AfterEach(func() {
			Expect(syncProducer.Close()).To(Succeed())
		})

		It("publishes every successful change in order", func() {
			run("3\nVoiles\nLin\n3\nQuille\nPlomb\n2\nCoque\nAcier\n6\n")

			history := ship.History()
			Expect(history).To(HaveLen(2))
			Expect(mirrored).To(HaveLen(2))

			for i, rec := range mirrored {
				Expect(rec.ShipName).To(Equal("Thésée"))
				Expect(rec.Event.ID).To(Equal(history[i].ID))
				Expect(rec.Event.String()).To(Equal(history[i].String()))
			}
			Expect(mirrored[0].Event.Kind).To(Equal(model.EventKindChangeMaterial))
			Expect(mirrored[1].Event.Kind).To(Equal(model.EventKindReplace))
		})
	})
})
