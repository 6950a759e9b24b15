package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	entries []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.entries = append(r.entries, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.entries = append(r.entries, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.entries = append(r.entries, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.entries = append(r.entries, "error:"+msg) }

func TestConsoleOutputMirrorsToLogger(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	t.Cleanup(func() { SetLogger(nil) })

	Error("boom")
	Warning("careful")
	Info("hello")
	Success("done")
	Debug("verbose")

	require.Len(t, rec.entries, 5)
	assert.Equal(t, "error:boom", rec.entries[0])
	assert.Equal(t, "warn:careful", rec.entries[1])
	assert.Equal(t, "info:hello", rec.entries[2])
	// Success mirrors at info level.
	assert.Equal(t, "info:done", rec.entries[3])
	assert.Equal(t, "debug:verbose", rec.entries[4])
}

func TestConsoleOutputWithoutLogger(t *testing.T) {
	SetLogger(nil)

	assert.NotPanics(t, func() {
		Error("dropped")
		Info("dropped")
	})
}
