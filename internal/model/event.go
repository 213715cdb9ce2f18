package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventKind int32

const (
	EventKindUnknown EventKind = iota
	EventKindReplace
	EventKindChangeMaterial
)

var eventKindNames = map[EventKind]string{
	EventKindUnknown:        "unknown",
	EventKindReplace:        "replace",
	EventKindChangeMaterial: "change_material",
}

func (k EventKind) String() string {
	if s, ok := eventKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", int32(k))
}

func ParseEventKind(s string) (EventKind, error) {
	for k, name := range eventKindNames {
		if name == s && k != EventKindUnknown {
			return k, nil
		}
	}
	return EventKindUnknown, fmt.Errorf("%w: event kind %q", ErrInvalidArgument, s)
}

// Event is one entry of a ship's history log.
type Event struct {
	ID   uuid.UUID
	Kind EventKind
	// Name of the part the action targeted.
	PartName string
	// Material before the action.
	OldMaterial string
	// Material after the action.
	NewMaterial string
	// Identity of the part before and after the action. Equal for
	// EventKindChangeMaterial.
	OldPartID uuid.UUID
	NewPartID uuid.UUID
	At        time.Time
}

// String renders the entry the way the history screen shows it.
func (e Event) String() string {
	switch e.Kind {
	case EventKindReplace:
		return fmt.Sprintf(
			"Remplacement de la pièce '%s' (ancien matériau: %s) par '%s'",
			e.PartName, e.OldMaterial, e.NewMaterial,
		)
	case EventKindChangeMaterial:
		return fmt.Sprintf(
			"Modification du matériau de la pièce '%s' en '%s'",
			e.PartName, e.NewMaterial,
		)
	default:
		return fmt.Sprintf("Événement inconnu sur la pièce '%s'", e.PartName)
	}
}

// LogbookRecord is a history event as it travels on the logbook topic.
type LogbookRecord struct {
	ShipName string
	Event    Event
}

func (r LogbookRecord) String() string {
	return fmt.Sprintf("[%s] %s", r.ShipName, r.Event)
}
