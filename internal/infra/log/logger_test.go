package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"vplmon/config"
	"vplmon/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONWithServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "vplmon"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "vplmon", line["service"])
}

func TestNewLogger_HandlerByEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		pretty   bool
		wantJSON bool
	}{
		{name: "pretty in develop", env: constants.EnvDevelop, pretty: true, wantJSON: false},
		{name: "json when not pretty", env: constants.EnvDevelop, pretty: false, wantJSON: true},
		{name: "production ignores pretty", env: constants.EnvProduction, pretty: true, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Env.Env = tt.env
			cfg.Env.Log.Pretty = tt.pretty

			var buf bytes.Buffer
			logger, err := newLogger(cfg, &buf)
			require.NoError(t, err)

			logger.Info("hello")

			var line map[string]any
			isJSON := json.Unmarshal(buf.Bytes(), &line) == nil
			assert.Equal(t, tt.wantJSON, isJSON)
			assert.Contains(t, buf.String(), tt.env)
		})
	}
}
