package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"vplmon/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestQueryLogger(buf *bytes.Buffer, debug bool) logger.Interface {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Preferences.Profile = "lift-a"
	cfg.Preferences.SlowQueryThreshold = 50 * time.Millisecond

	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg)
}

func TestPreferenceQueryLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name   string
		debug  bool
		begin  time.Time
		err    error
		want   string
		absent bool
	}{
		{name: "failed query", begin: time.Now(), err: errors.New("boom"), want: "Preference query failed"},
		{name: "record not found is quiet", begin: time.Now(), err: gorm.ErrRecordNotFound, absent: true},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "Slow preference query"},
		{name: "fast query hidden outside debug", begin: time.Now(), absent: true},
		{name: "fast query in debug", debug: true, begin: time.Now(), want: "msg=\"Preference query\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := newTestQueryLogger(buf, tt.debug)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.absent {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "profile=lift-a")
			assert.Contains(t, buf.String(), "sql=\"SELECT 1\"")
		})
	}
}

func TestPreferenceQueryLogger_LogMode(t *testing.T) {
	buf := &bytes.Buffer{}
	l := newTestQueryLogger(buf, false).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, buf.String())
}
