package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAdapterWritesThroughSlog(t *testing.T) {
	buf := new(bytes.Buffer)
	log := NewLogger(buf, false)

	LogAdapter(log).Println("http: TLS handshake error")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "http: TLS handshake error", record["msg"])
}

func TestNewLoggerDebugUsesPrettyHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	log := NewLogger(buf, true)

	log.With("op", "test").Debug("visible in debug", "id", 1)

	assert.Contains(t, buf.String(), "visible in debug")
	assert.Contains(t, buf.String(), `"op": "test"`)
}
