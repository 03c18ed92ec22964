package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_WritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str(FieldSource, "current").Msg("source read")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "source read", line["message"])
	assert.Equal(t, "current", line[FieldSource])
	assert.Contains(t, line, "time")
	assert.Contains(t, line, "caller")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New("verbose")
	assert.Error(t, err)
}

func TestCtx_WithoutLogger(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Ctx(context.Background()).Info().Msg("dropped")
	})
}
