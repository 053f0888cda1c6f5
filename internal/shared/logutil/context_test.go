package logutil

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestContextLogAppendsSortedPairs(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	sl := NewStderrLog("hooks")
	sl.SetOutput(&buf)
	sl.SetLevel(LogLevelInfo)

	log := WrapLogWithContext(sl, Context{"repo": "acme/api", "pr": 7})
	log.Infof("got %s", "event")

	out := buf.String()
	assert.Contains(t, out, "[hooks] got event [pr=7 repo=acme/api]")
}

func TestStderrLogLevelGate(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStderrLog("")
	sl.SetOutput(&buf)
	sl.SetLevel(LogLevelWarn)

	sl.Infof("hidden")
	sl.Warnf("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestChildNames(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStderrLog("api")
	sl.SetOutput(&buf)
	sl.SetLevel(LogLevelInfo)

	sl.Child("webhook").Infof("x")
	assert.Contains(t, buf.String(), "[api/webhook] x")
}
