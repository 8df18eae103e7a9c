package sink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfsrt-position-logger/vehicle"
)

func TestPrinter_Write(t *testing.T) {
	ts := int64(1700000000)
	var buf bytes.Buffer

	err := NewPrinter(&buf).Write(vehicle.Snapshot{
		Timestamp: &ts,
		Entities:  3,
		Records: []vehicle.Record{
			{Route: "10", Position: vehicle.Position{Latitude: 32.75, Longitude: -97.33}},
			{Route: "22", Position: vehicle.Position{Latitude: 32.5, Longitude: -97.25}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "timestamp: 1700000000\n"+
		"entity count: 3\n"+
		"route 10 at (32.75, -97.33)\n"+
		"route 22 at (32.5, -97.25)\n", buf.String())
}

func TestPrinter_WriteNoTimestamp(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf).Write(vehicle.Snapshot{}))
	assert.Equal(t, "timestamp: none\nentity count: 0\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPrinter_WriteError(t *testing.T) {
	err := NewPrinter(failingWriter{}).Write(vehicle.Snapshot{})
	assert.EqualError(t, err, "closed pipe")
}
