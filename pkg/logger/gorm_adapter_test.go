package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	original := log
	t.Cleanup(func() { log = original })

	core, logs := observer.New(zapcore.DebugLevel)
	log = zap.New(core)
	return logs
}

func messages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, e := range logs.All() {
		out = append(out, e.Message)
	}
	return out
}

func TestGormLoggerAdapter_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   gormlogger.LogLevel
		present []string
		absent  []string
	}{
		{"warn", gormlogger.Warn, []string{"warn 1", "error 1"}, []string{"info 1", "SQL query executed"}},
		{"info", gormlogger.Info, []string{"info 1", "warn 1", "error 1", "SQL query executed"}, nil},
		{"silent", gormlogger.Silent, nil, []string{"info 1", "warn 1", "error 1", "SQL query executed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observe(t)
			adapter := NewGormLoggerAdapter(tt.level)
			ctx := context.Background()

			adapter.Info(ctx, "info %d", 1)
			adapter.Warn(ctx, "warn %d", 1)
			adapter.Error(ctx, "error %d", 1)
			adapter.Trace(ctx, time.Now(), func() (string, int64) {
				return "SELECT * FROM products", 4
			}, nil)

			got := messages(logs)
			for _, m := range tt.present {
				assert.Contains(t, got, m)
			}
			for _, m := range tt.absent {
				assert.NotContains(t, got, m)
			}
		})
	}
}

func TestGormLoggerAdapter_SlowQueryCarriesRequestID(t *testing.T) {
	logs := observe(t)
	adapter := NewGormLoggerAdapterWithConfig(gormlogger.Warn, GormLoggerConfig{SlowThreshold: time.Millisecond})
	ctx := persistence.ContextWithRequestID(context.Background(), "req-123")

	adapter.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT * FROM kv_entries", 1
	}, nil)

	entries := logs.FilterMessage("Slow SQL query").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
	}
}

func TestGormLoggerAdapter_RecordNotFound(t *testing.T) {
	logs := observe(t)
	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT 1", 0 }

	NewGormLoggerAdapter(gormlogger.Warn).Trace(ctx, time.Now(), fc, gormlogger.ErrRecordNotFound)
	assert.Empty(t, logs.All(), "not found is ignored by default")

	NewGormLoggerAdapter(gormlogger.Warn).Trace(ctx, time.Now(), fc, errors.New("boom"))
	assert.Len(t, logs.FilterMessage("Database operation failed").All(), 1)
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, ParseGormLevel("debug"))
	assert.Equal(t, gormlogger.Silent, ParseGormLevel("silent"))
	assert.Equal(t, gormlogger.Warn, ParseGormLevel("anything"))
}
