package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel(" DEBUG ")
	assert.True(t, ok)
	assert.Equal(t, DebugLevel, lvl)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
}

func TestConfigureJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	Debug().Msg("hidden")
	l := WithField("record", 3)
	l.Info().Msg("created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "created", entry["message"])
	assert.Equal(t, float64(3), entry["record"])
	assert.Equal(t, "info", entry["level"])
}
