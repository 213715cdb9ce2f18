package converter

import (
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
)

const (
	fieldEventUUID   = "event_uuid"
	fieldShipName    = "ship_name"
	fieldKind        = "kind"
	fieldPartName    = "part_name"
	fieldOldMaterial = "old_material"
	fieldNewMaterial = "new_material"
	fieldOldPartUUID = "old_part_uuid"
	fieldNewPartUUID = "new_part_uuid"
	fieldAtSeconds   = "at_seconds"
	fieldAtNanos     = "at_nanos"
)

// logbookContentType tags logbook payloads so readers can skip foreign
// records on a shared topic.
const logbookContentType = "application/x-protobuf; message=google.protobuf.Struct; schema=ship.history.v1"

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) ContentType() string { return logbookContentType }

// EventToPayload encodes one history event as a protobuf Struct.
func (c *kafkaConverter) EventToPayload(shipName string, e model.Event) ([]byte, error) {
	ts := timestamppb.New(e.At)
	if err := ts.CheckValid(); err != nil {
		return nil, fmt.Errorf("invalid event timestamp: %w", err)
	}

	pb, err := structpb.NewStruct(map[string]any{
		fieldEventUUID:   e.ID.String(),
		fieldShipName:    shipName,
		fieldKind:        e.Kind.String(),
		fieldPartName:    e.PartName,
		fieldOldMaterial: e.OldMaterial,
		fieldNewMaterial: e.NewMaterial,
		fieldOldPartUUID: e.OldPartID.String(),
		fieldNewPartUUID: e.NewPartID.String(),
		fieldAtSeconds:   float64(ts.GetSeconds()),
		fieldAtNanos:     float64(ts.GetNanos()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build struct: %w", err)
	}

	payload, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PayloadToEvent(data []byte) (model.LogbookRecord, error) {
	var pb structpb.Struct
	if err := proto.Unmarshal(data, &pb); err != nil {
		return model.LogbookRecord{}, fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}
	f := pb.GetFields()

	kind, err := model.ParseEventKind(f[fieldKind].GetStringValue())
	if err != nil {
		return model.LogbookRecord{}, err
	}

	ids := make(map[string]uuid.UUID, 3)
	for _, key := range []string{fieldEventUUID, fieldOldPartUUID, fieldNewPartUUID} {
		id, err := uuid.Parse(f[key].GetStringValue())
		if err != nil {
			return model.LogbookRecord{}, fmt.Errorf("%w: %s: %w", model.ErrInvalidArgument, key, err)
		}
		ids[key] = id
	}

	ts := &timestamppb.Timestamp{
		Seconds: int64(f[fieldAtSeconds].GetNumberValue()),
		Nanos:   int32(f[fieldAtNanos].GetNumberValue()),
	}
	if err := ts.CheckValid(); err != nil {
		return model.LogbookRecord{}, fmt.Errorf("%w: timestamp: %w", model.ErrInvalidArgument, err)
	}

	return model.LogbookRecord{
		ShipName: f[fieldShipName].GetStringValue(),
		Event: model.Event{
			ID:          ids[fieldEventUUID],
			Kind:        kind,
			PartName:    f[fieldPartName].GetStringValue(),
			OldMaterial: f[fieldOldMaterial].GetStringValue(),
			NewMaterial: f[fieldNewMaterial].GetStringValue(),
			OldPartID:   ids[fieldOldPartUUID],
			NewPartID:   ids[fieldNewPartUUID],
			At:          ts.AsTime(),
		},
	}, nil
}
