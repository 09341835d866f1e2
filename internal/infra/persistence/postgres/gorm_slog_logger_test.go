package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"agroalert/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(t *testing.T, debug bool) (*gormSlogLogger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 100 * time.Millisecond}}
	cfg.Env.Debug = debug

	l, ok := newGormSlogLogger(base, cfg).(*gormSlogLogger)
	if !ok {
		t.Fatal("unexpected logger type")
	}

	return l, buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	begin := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sqlFn := func() (string, int64) { return `SELECT * FROM "alert_subscriptions"`, 2 }

	t.Run("failed query logs error", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		l.now = func() time.Time { return begin.Add(time.Millisecond) }

		l.Trace(context.Background(), begin, sqlFn, errors.New("connection reset"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "connection reset")
		assert.Contains(t, buf.String(), "alert_subscriptions")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		l.now = func() time.Time { return begin.Add(time.Millisecond) }

		l.Trace(context.Background(), begin, sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query logs warning", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		l.now = func() time.Time { return begin.Add(time.Second) }

		l.Trace(context.Background(), begin, sqlFn, nil)

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "slow_threshold=100ms")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		l.now = func() time.Time { return begin.Add(time.Millisecond) }
		l.Trace(context.Background(), begin, sqlFn, nil)
		assert.Empty(t, buf.String())

		debugLogger, debugBuf := newTestGormLogger(t, true)
		debugLogger.now = l.now
		debugLogger.Trace(context.Background(), begin, sqlFn, nil)
		assert.Contains(t, debugBuf.String(), "level=DEBUG")
		assert.Contains(t, debugBuf.String(), "rows=2")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, buf := newTestGormLogger(t, true)
		silent := l.LogMode(logger.Silent)

		silent.Trace(context.Background(), begin, sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
