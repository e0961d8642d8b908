package zap

import (
	"testing"
	"time"

	"github.com/lintang-b-s/gps-heatmap/pkg/logger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New(config.Configuration{Level: config.WARN_LEVEL, TimeFormat: time.RFC3339})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	_, err = New(config.Configuration{Level: 42, TimeFormat: time.RFC3339})
	assert.Error(t, err)
}
