package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/felixgeelhaar/reducekit/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		verbose bool
		want    zapcore.Level
	}{
		{"", false, zapcore.InfoLevel},
		{"warn", false, zapcore.WarnLevel},
		{"error", false, zapcore.ErrorLevel},
		{"error", true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.raw, tt.verbose)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "raw=%q verbose=%v", tt.raw, tt.verbose)
	}

	_, err := parseLevel("loud", false)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "info"}, false)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	dev, err := New(config.LogConfig{Level: "info", Development: true}, true)
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, config.LogConfig{Level: "warn"}, false)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
