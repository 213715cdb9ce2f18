package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

const (
	stateFooterWidth   = 30
	historyFooterWidth = 40
)

type HistoryPublisher interface {
	PublishEvent(ctx context.Context, shipName string, event model.Event) error
}

type Option func(*Ship)

func WithPublisher(p HistoryPublisher) Option {
	return func(s *Ship) { s.publisher = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Ship) { s.now = now }
}

// Ship owns its parts and an append-only history. The collection never
// leaves the package: callers get value snapshots through Parts and Part.
type Ship struct {
	name string

	parts map[string]*model.Part
	order []string

	history []model.Event

	publisher HistoryPublisher
	now       func() time.Time
}

func New(name string, opts ...Option) *Ship {
	s := &Ship{
		name:  name,
		parts: make(map[string]*model.Part),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Ship) Name() string { return s.name }

// AddPart inserts part under its name. An existing entry with the same name
// is overwritten in place and nothing is recorded in the history.
func (s *Ship) AddPart(part *model.Part) {
	if part == nil {
		return
	}

	if old, ok := s.parts[part.Name]; ok {
		logger.Debug(context.Background(), "part overwritten by add",
			logger.String("ship", s.name),
			logger.String("part", part.Name),
			logger.Stringer("old_part_id", old.ID),
			logger.Stringer("new_part_id", part.ID),
		)
	} else {
		s.order = append(s.order, part.Name)
	}
	s.parts[part.Name] = part
}

func (s *Ship) DisplayState(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== État du navire '%s' ===\n", s.name)
	if len(s.order) == 0 {
		b.WriteString("Aucune pièce n'a encore été ajoutée.\n")
	} else {
		for _, name := range s.order {
			b.WriteString(s.parts[name].String())
			b.WriteByte('\n')
		}
	}
	b.WriteString(strings.Repeat("=", stateFooterWidth))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// ReplacePart swaps the part stored under partName for newPart.
func (s *Ship) ReplacePart(ctx context.Context, partName string, newPart *model.Part) error {
	const op = "ship.ReplacePart"

	if newPart == nil {
		return fmt.Errorf("%s: %w: nil part", op, model.ErrInvalidArgument)
	}
	if newPart.Name != partName {
		return fmt.Errorf("%s: %w: part %q cannot be stored under %q",
			op, model.ErrInvalidArgument, newPart.Name, partName)
	}

	old, ok := s.parts[partName]
	if !ok {
		return fmt.Errorf("%s: part %q: %w", op, partName, model.ErrPartNotFound)
	}

	s.parts[partName] = newPart

	s.record(ctx, model.Event{
		Kind:        model.EventKindReplace,
		PartName:    old.Name,
		OldMaterial: old.Material,
		NewMaterial: newPart.Material,
		OldPartID:   old.ID,
		NewPartID:   newPart.ID,
	})

	return nil
}

// ChangePart rewrites the material of the stored part in place.
func (s *Ship) ChangePart(ctx context.Context, partName, newMaterial string) error {
	const op = "ship.ChangePart"

	part, ok := s.parts[partName]
	if !ok {
		return fmt.Errorf("%s: part %q: %w", op, partName, model.ErrPartNotFound)
	}

	oldMaterial := part.Material
	part.ChangeMaterial(newMaterial)

	s.record(ctx, model.Event{
		Kind:        model.EventKindChangeMaterial,
		PartName:    partName,
		OldMaterial: oldMaterial,
		NewMaterial: newMaterial,
		OldPartID:   part.ID,
		NewPartID:   part.ID,
	})

	return nil
}

func (s *Ship) DisplayHistory(w io.Writer) error {
	var b strings.Builder

	b.WriteString("\n--- Historique des modifications ---\n")
	if len(s.history) == 0 {
		b.WriteString("Aucune modification n'a encore été effectuée.\n")
	} else {
		for _, e := range s.history {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	b.WriteString(strings.Repeat("-", historyFooterWidth))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Parts returns copies of the parts in display order.
func (s *Ship) Parts() []model.Part {
	return lo.Map(s.order, func(name string, _ int) model.Part {
		return *s.parts[name]
	})
}

func (s *Ship) Part(name string) (model.Part, bool) {
	p, ok := s.parts[name]
	if !ok {
		return model.Part{}, false
	}
	return *p, true
}

func (s *Ship) History() []model.Event {
	return append([]model.Event(nil), s.history...)
}

// record appends e to the history, then mirrors it to the publisher. A
// publish failure is logged only: the local history stays authoritative.
func (s *Ship) record(ctx context.Context, e model.Event) {
	e.ID = uuid.New()
	e.At = s.now()
	s.history = append(s.history, e)

	log := logger.With(
		logger.String("ship", s.name),
		logger.String("part", e.PartName),
		logger.Stringer("kind", e.Kind),
	)
	log.Info(ctx, "history entry recorded",
		logger.Int("history_len", len(s.history)),
		logger.Stringer("old_part_id", e.OldPartID),
		logger.Stringer("new_part_id", e.NewPartID),
	)

	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, s.name, e); err != nil {
		log.Warn(ctx, "logbook publish failed", logger.ErrorF(err))
	}
}
