package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestHandler_AddsServiceAndCorrelationID(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(newHandler(buf, "bitekit", nil, nil))

	ctx := SetCorrelationID(context.Background(), "cid-123")
	logger.InfoContext(ctx, "hello")

	line := decodeLine(t, buf)
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Equal(t, "bitekit", line["service"])
	assert.Equal(t, "cid-123", line["_cID"])
	assert.Contains(t, line, "ts")
	assert.Contains(t, line["file"], "internal/pkg/instrument/logging_test.go")
}

func TestHandler_MasksFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(newHandler(buf, "bitekit", nil, []string{" Secret ", "input"}))

	logger.Info("request",
		"secret", "s3cr3t",
		"body", `{"input":"abc","algorithm":"md5"}`,
		"headers", map[string]string{"Secret": "x", "Accept": "json"},
		slog.Group("nested", "input", "hidden", "keep", "shown"),
	)

	line := decodeLine(t, buf)
	assert.Equal(t, MaskValue, line["secret"])
	assert.JSONEq(t, `{"input":"***","algorithm":"md5"}`, line["body"].(string))
	assert.Equal(t, map[string]any{"Secret": MaskValue, "Accept": "json"}, line["headers"])
	assert.Equal(t, map[string]any{"input": MaskValue, "keep": "shown"}, line["nested"])
}

func TestHandler_WithAttrsKeepsContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(newHandler(buf, "bitekit", nil, []string{"token"})).With("token", "abc")

	logger.InfoContext(SetCorrelationID(context.Background(), "cid"), "x")

	line := decodeLine(t, buf)
	assert.Equal(t, "cid", line["_cID"])
	assert.Equal(t, "bitekit", line["service"])
}

func TestMaskData(t *testing.T) {
	keys := BuildMaskKeys([]string{"text", ""})
	got := MaskData([]any{map[string]any{"text": "abc", "n": 1.0}}, keys)

	assert.Equal(t, []any{map[string]any{"text": MaskValue, "n": 1.0}}, got)
	assert.Equal(t, "plain", MaskData("plain", keys))
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(context.Background(), "abc")))
}

func TestNew_Disabled(t *testing.T) {
	ins, err := New(context.Background(), &Config{Enabled: false, ServiceName: "bitekit"})
	require.NoError(t, err)

	_, span := ins.Tracer("test").Start(context.Background(), "op")
	span.End()
	assert.NoError(t, ins.Shutdown(context.Background()))
}
