package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	t.Cleanup(func() { SetOutput(prev) })
	return buf
}

func TestLevels(t *testing.T) {
	buf := capture(t)

	Info("listening on %s", ":3001")
	Warn("slow query %dms", 250)
	Error("failed: %v", "boom")

	out := buf.String()
	assert.Contains(t, out, "[INFO]  listening on :3001")
	assert.Contains(t, out, "[WARN]  slow query 250ms")
	assert.Contains(t, out, "[Error] failed: boom")
}

func TestWithContextAddsRequestID(t *testing.T) {
	buf := capture(t)

	ctx := WithRequestID(context.Background(), "req-42")
	InfoWithContext(ctx, "company %s created", "acme")
	ErrorWithContext(context.Background(), "no id")

	out := buf.String()
	assert.Contains(t, out, "[INFO] [req_id=req-42] company acme created")
	assert.Contains(t, out, "[ERROR] no id")
	assert.Equal(t, "req-42", RequestID(ctx))
}

func TestDebugIsGated(t *testing.T) {
	buf := capture(t)

	Debug("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	t.Cleanup(func() { SetDebug(false) })
	Debug("shown")
	assert.Contains(t, buf.String(), "[DEBUG] shown")
}

func TestInfoStruct(t *testing.T) {
	buf := capture(t)

	InfoStruct(struct{ Handle string }{"acme"})
	assert.Contains(t, buf.String(), `Handle: (string) (len=4) "acme"`)
}
