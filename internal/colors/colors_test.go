package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	debugs []string
	infos  []string
	warns  []string
	errors []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.debugs = append(r.debugs, msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.warns = append(r.warns, msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.errors = append(r.errors, msg) }

func TestOutputMirrorsToLogger(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Error("load", "failed")
	Warning("settings fallback")
	Info("imported 3 quotes")
	Success("saved")
	Debug("backend selected")

	assert.Equal(t, []string{"load failed"}, rec.errors)
	assert.Equal(t, []string{"settings fallback"}, rec.warns)
	assert.Equal(t, []string{"imported 3 quotes", "saved"}, rec.infos)
	assert.Equal(t, []string{"backend selected"}, rec.debugs)
}

func TestSetDebugTogglesOutput(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	// Debug must not panic and must still mirror when a logger is set.
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Debug("visible")
	assert.Equal(t, []string{"visible"}, rec.debugs)
}
