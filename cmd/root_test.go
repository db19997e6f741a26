package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf)

	l.Debug("hidden")
	assert.Equal(t, "", buf.String())

	l.Info("Loaded ROM", log.String("file", "pong.ch8"))
	assert.True(t, strings.Contains(buf.String(), "Loaded ROM"), buf.String())
	assert.True(t, strings.Contains(buf.String(), `"file":"pong.ch8"`), buf.String())

	buf.Reset()
	l.SetLevel(log.DebugLevel)
	l.Debug("Executing")
	assert.True(t, strings.Contains(buf.String(), "DEBUG"), buf.String())
}
