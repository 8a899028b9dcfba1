package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerIncludesError(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(EnvProduction, &buf)
	log.Info("saved", Err(errors.New("boom")))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "saved", line["msg"])
	assert.Equal(t, "boom", line["error"])
}

func TestProductionSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	newLogger(EnvProduction, &buf).Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	log := newLogger(EnvLocal, &buf).With("component", "storage")
	log.Warn("slow query", "ms", 250)

	out := buf.String()
	assert.Contains(t, out, "WARN:")
	assert.Contains(t, out, "slow query")
	assert.Contains(t, out, `"component": "storage"`)
	assert.Contains(t, out, `"ms": 250`)
}
