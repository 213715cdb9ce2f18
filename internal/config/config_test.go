package config

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	require.NoError(t, Load())

	c := C()
	require.NotNil(t, c)

	assert.Equal(t, "warn", c.Logger.Level())
	assert.False(t, c.Logger.AsJSON())

	assert.Equal(t, "Thésée", c.Fleet.ShipName())
	assert.Equal(t, []model.PartSpec{
		{Name: "Mât", Material: "Bois"},
		{Name: "Coque", Material: "Bois"},
		{Name: "Voiles", Material: "Tissu"},
	}, c.Fleet.ShipParts())
	assert.Equal(t, "Thésée Racing", c.Fleet.RacingShipName())
	assert.Equal(t, 80, c.Fleet.RacingShipMaxSpeed())

	assert.False(t, c.Logbook.Enabled())
	assert.Equal(t, []string{"localhost:9092"}, c.Logbook.Brokers())
	assert.Equal(t, "ship.history", c.Logbook.Topic())
	assert.Equal(t, "logbook-reader", c.Logbook.ConsumerGroupID())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("LOGGER_AS_JSON", "true")
	t.Setenv("SHIP_NAME", "Argo")
	t.Setenv("SHIP_PARTS", " Proue : Chêne ,, Rames:Frêne")
	t.Setenv("RACING_SHIP_MAX_SPEED", "120")
	t.Setenv("LOGBOOK_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	require.NoError(t, Load())
	c := C()

	assert.Equal(t, "debug", c.Logger.Level())
	assert.True(t, c.Logger.AsJSON())
	assert.Equal(t, "Argo", c.Fleet.ShipName())
	assert.Equal(t, []model.PartSpec{
		{Name: "Proue", Material: "Chêne"},
		{Name: "Rames", Material: "Frêne"},
	}, c.Fleet.ShipParts())
	assert.Equal(t, 120, c.Fleet.RacingShipMaxSpeed())
	assert.True(t, c.Logbook.Enabled())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Logbook.Brokers())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{
			name:    "part without material separator",
			env:     map[string]string{"SHIP_PARTS": "Mât:Bois,Coque"},
			wantMsg: "Fleet",
		},
		{
			name:    "non numeric speed",
			env:     map[string]string{"RACING_SHIP_MAX_SPEED": "fast"},
			wantMsg: "Fleet",
		},
		{
			name:    "bad bool",
			env:     map[string]string{"LOGBOOK_ENABLED": "maybe"},
			wantMsg: "Logbook",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			err := Load()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestLogbookSaramaConfigs(t *testing.T) {
	t.Setenv("LOGBOOK_ENABLED", "true")
	require.NoError(t, Load())

	p := C().Logbook.ProducerConfig()
	assert.True(t, p.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, p.Producer.RequiredAcks)
	require.NoError(t, p.Validate())

	cc := C().Logbook.ConsumerConfig()
	assert.Equal(t, sarama.OffsetOldest, cc.Consumer.Offsets.Initial)
	assert.True(t, cc.Consumer.Return.Errors)
	require.NoError(t, cc.Validate())
}
