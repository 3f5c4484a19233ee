package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Init("debug", true, &buf)

	log.Debug().Str("key", "value").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pomoboard", entry["app"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "debug", entry["level"])
}

func TestInitFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := Init("chatty", true, &buf)

	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	component := Component("timer")
	component.Info().Msg("shown")
	assert.Contains(t, buf.String(), `"component":"timer"`)
}
