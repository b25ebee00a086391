package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("composition loaded")
	assert.Contains(t, buf.String(), "composition loaded")
	assert.Contains(t, buf.String(), "level=INFO")
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)
	log.SetJSON(true)

	log.Warn("cache nearly full")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "cache nearly full", record["msg"])
	assert.Equal(t, "WARN", record["level"])
}

func TestLogger_ErrorChain(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	err := zerr.Wrap(zerr.New("pin constraint conflict"), "render failed")
	log.Error(err)

	out := buf.String()
	assert.Contains(t, out, "render failed")
	assert.Contains(t, out, "caused by")
	assert.Contains(t, out, "pin constraint conflict")
}

func TestLogger_NilErrorIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Error(nil)
	assert.Empty(t, buf.String())
}
