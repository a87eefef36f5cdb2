package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "backup-server")

	l.Info().Str("storage_key", "c0ffee00...").Msg("blob stored")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "backup-server", entry["role"])
	assert.Equal(t, "blob stored", entry["message"])
	assert.Equal(t, "c0ffee00...", entry["storage_key"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	require.NotNil(t, NewLogger("janitor"))

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_NeverNil(t *testing.T) {
	l := NewClientLogger("backup-client")

	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("restore started") })
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("restore failed")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "backup-client")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("operation", "backup").Logger()
	child.Info().Msg("snapshot exported")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "backup-client", entry["role"])
	assert.Equal(t, "backup", entry["operation"])

	buf.Reset()
	parent.Info().Msg("parent untouched")
	assert.NotContains(t, decodeEntry(t, &buf), "operation")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "trace-42").Logger()
	ctx := zl.WithContext(context.Background())

	t.Run("context", func(t *testing.T) {
		buf.Reset()
		FromContext(ctx).Info().Msg("from context")
		assert.Equal(t, "trace-42", decodeEntry(t, &buf)["trace_id"])
	})

	t.Run("request", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/version/", nil).WithContext(ctx)
		FromRequest(req).Info().Msg("from request")
		assert.Equal(t, "trace-42", decodeEntry(t, &buf)["trace_id"])
	})

	t.Run("empty context", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}
