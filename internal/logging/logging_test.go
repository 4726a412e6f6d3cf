package logging_test

import (
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/internal/logging"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewDefaultsToWarn(t *testing.T) {
	l, err := logging.New("")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewDebugEnablesEverything(t *testing.T) {
	l, err := logging.New("debug")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNoOpDiscardsEverything(t *testing.T) {
	l := logging.NoOp()
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}
