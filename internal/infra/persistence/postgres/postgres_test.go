package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}

	t.Run("no new waits", func(t *testing.T) {
		_, _, ok := poolWait(prev, prev)
		assert.False(t, ok)
	})

	t.Run("short wait is debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 5, WaitDuration: 20 * time.Millisecond, OpenConnections: 2}

		level, attrs, ok := poolWait(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Equal(t, int64(2), attrs[0].Value.Int64())
		assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())
	})

	t.Run("long wait is a warning", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 4, WaitDuration: 10*time.Millisecond + dbPoolWarnDurationThreshold}

		level, _, ok := poolWait(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelWarn, level)
	})
}
