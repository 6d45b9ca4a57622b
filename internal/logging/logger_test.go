package logging

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
)

func TestNew_FallsBackWhenUninitialized(t *testing.T) {
	l := New(logr.Logger{})
	assert.NotNil(t, l.Logr().GetSink())
}

func TestLevelLogger_DebugEnablesV1(t *testing.T) {
	assert.True(t, LevelLogger("debug").V(1).Enabled())
	assert.False(t, LevelLogger("info").V(1).Enabled())
	assert.False(t, LevelLogger("bogus").V(1).Enabled())
}

func TestDiscard(t *testing.T) {
	l := Discard().WithName("x").WithValues("k", "v")
	l.Info("dropped")
	l.Debug("dropped")
	assert.False(t, l.Logr().V(1).Enabled())
}
