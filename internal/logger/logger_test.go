//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		pretty   bool
		expected zerolog.Level
	}{
		{name: "debug level", level: "debug", expected: zerolog.DebugLevel},
		{name: "info level", level: "info", expected: zerolog.InfoLevel},
		{name: "warn level", level: "warn", expected: zerolog.WarnLevel},
		{name: "error level", level: "error", expected: zerolog.ErrorLevel},
		{name: "invalid level defaults to info", level: "invalid", expected: zerolog.InfoLevel},
		{name: "pretty output", level: "info", pretty: true, expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", false)
	t.Cleanup(func() { Init("info", false) })

	l := Logger()
	l.Info().Str("variant", "gaming").Msg("order assembled")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "gaming", entry["variant"])
	assert.Equal(t, "order assembled", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestInitWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "warn", false)
	t.Cleanup(func() { Init("info", false) })

	l := Logger()
	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "debug", false)
	t.Cleanup(func() { Init("info", false) })

	l := Component("shop")
	l.Debug().Msg("catalog shown")

	assert.Contains(t, buf.String(), `"component":"shop"`)
}
