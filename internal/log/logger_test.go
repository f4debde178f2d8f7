package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)

	lvl, err = ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestParseLoggerType(t *testing.T) {
	typ, err := ParseLoggerType("json")
	require.NoError(t, err)
	assert.Equal(t, JSONLogger, typ)

	typ, err = ParseLoggerType("")
	require.NoError(t, err)
	assert.Equal(t, ConsoleLogger, typ)

	_, err = ParseLoggerType("xml")
	assert.Error(t, err)
}

func TestInit_JSONComponents(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.InfoLevel, Type: JSONLogger, Out: &buf})
	t.Cleanup(func() { Init(Options{LogLevel: zerolog.Disabled}) })

	Generator.Info().Int("index", 5).Msg("case selected")
	Generator.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "generator", entry["component"])
	assert.Equal(t, "case selected", entry["message"])
	assert.EqualValues(t, 5, entry["index"])
}

func TestInit_Console(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.InfoLevel, Type: ConsoleLogger, Out: &buf})
	t.Cleanup(func() { Init(Options{LogLevel: zerolog.Disabled}) })

	Suite.Info().Str("dir", "cases").Msg("suite written")
	assert.Contains(t, buf.String(), "| INFO  |")
	assert.Contains(t, buf.String(), "dir=cases")
	assert.Contains(t, buf.String(), "suite written")
}
