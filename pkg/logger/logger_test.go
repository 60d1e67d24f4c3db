package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNilLoggerSafety(t *testing.T) {
	original := log
	t.Cleanup(func() { log = original })
	log = nil

	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")

	assert.NotNil(t, With(zap.String("key", "value")))
	assert.NotNil(t, WithRequestID("id"))
	assert.NotNil(t, WithFields(map[string]any{"k": "v"}))
	assert.NotNil(t, FromContext(context.Background()))
	assert.NoError(t, Sync())
}

func TestFileOutput(t *testing.T) {
	original := log
	t.Cleanup(func() { log = original })

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, Init(&config.LogConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: path,
	}, "production"))

	ctx := persistence.ContextWithRequestID(context.Background(), "req-9")
	FromContext(ctx).Info("cart persisted", zap.String("key", "bagweavers_cart"))
	WithFields(map[string]any{"count": 3, "ok": true}).Info("fields")
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"request_id":"req-9"`)
	assert.Contains(t, string(data), `"count":3`)
}

func TestDynamicLogLevel(t *testing.T) {
	original := log
	t.Cleanup(func() { log = original })

	require.NoError(t, Init(&config.LogConfig{Level: "debug", Output: "stdout"}, "development"))
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	UpdateLevel("warn")
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zap.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zap.InfoLevel, parseLevel("verbose"))
}
