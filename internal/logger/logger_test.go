package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production", "debug")
	log.Debug().Str("component", "quote.usecase").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "quote.usecase", line["component"])
	assert.Equal(t, "hello", line["message"])
}

func TestNewWithWriter_BadLevelFallsBackToInfo(t *testing.T) {
	log := NewWithWriter(&bytes.Buffer{}, "production", "loud")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
