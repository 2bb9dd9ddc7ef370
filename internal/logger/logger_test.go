package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, "info", FormatJSON)
	require.NoError(t, err)

	log.Info().Str("file", "ledger.csv").Msg("test message")

	output := buf.String()
	assert.Contains(t, output, `"message":"test message"`)
	assert.Contains(t, output, `"file":"ledger.csv"`)
}

func TestNewWithWriter_Console(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, "", FormatConsole)
	require.NoError(t, err)

	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, "warn", FormatJSON)
	require.NoError(t, err)

	log.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	log.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWithWriter_InvalidInput(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "loud", FormatJSON)
	assert.Error(t, err)

	_, err = NewWithWriter(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestWithComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewWithWriter(buf, "info", FormatJSON)
	require.NoError(t, err)

	componentLog := WithComponent(log, "ingestor")
	componentLog.Info().Msg("loaded")
	assert.Contains(t, buf.String(), `"component":"ingestor"`)
}
