package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseRoundTrip(t *testing.T) {
	for _, e := range All {
		got, err := Parse(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
	got, err := Parse(" Confirm ")
	require.NoError(t, err)
	assert.Equal(t, Confirm, got)

	_, err = Parse("jump")
	require.Error(t, err)
	assert.Equal(t, "Event(42)", Event(42).String())
}

func TestEventYAML(t *testing.T) {
	var evs []Event
	require.NoError(t, yaml.Unmarshal([]byte("[confirm, down, down, cancel]"), &evs))
	assert.Equal(t, []Event{Confirm, MoveDown, MoveDown, Cancel}, evs)

	require.Error(t, yaml.Unmarshal([]byte("[fly]"), &evs))
}
