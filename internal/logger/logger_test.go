package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type staticChecker bool

func (s staticChecker) IsVerbose() bool { return bool(s) }

func TestDebugGatedByVerbose(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewWithWriter("nav", staticChecker(false), &buf)
	quiet.Debug("hidden %d", 1)
	quiet.Info("hidden too")
	assert.Empty(t, buf.String())

	loud := NewWithWriter("nav", staticChecker(true), &buf)
	loud.Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "[nav]")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestWarnAndErrorAlwaysShown(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("data", nil, &buf)
	l.Warn("reload failed")
	l.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "reload failed")
	assert.Contains(t, out, "ERROR")
}

func TestFieldsAreRendered(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("ui", staticChecker(true), &buf)
	l.DebugWithFields("transition", []Field{
		F("screen", "dashboard"),
		Count(3),
		Duration(300 * time.Millisecond),
		Error(errors.New("nope")),
	})

	out := buf.String()
	for _, want := range []string{"screen", "dashboard", "count", "300ms", "nope"} {
		assert.True(t, strings.Contains(out, want), "missing %q in %q", want, out)
	}
}

func TestWithComponentRenames(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter("cli", staticChecker(true), &buf)
	child := base.WithComponent("mockdata")

	assert.Equal(t, "mockdata", child.Component())
	child.Info("loaded")
	assert.Contains(t, buf.String(), "[mockdata]")
	assert.NotContains(t, buf.String(), "cli.mockdata")
}

func TestCallbackChecker(t *testing.T) {
	verbose := false
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	l := NewWithCallback("cb", func() bool { return verbose })
	l.Debug("first")
	verbose = true
	l.Debug("second")

	assert.NotContains(t, buf.String(), "first")
	assert.Contains(t, buf.String(), "second")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Warn("goes nowhere")
	assert.Equal(t, "nop", l.Component())
}
