package impl

import (
	"io"
	"log/slog"
	"time"

	"vplmon/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.MQTT.CommandTopic = "usf/messages"
	cfg.MQTT.Topics = []config.TopicConfig{
		{Name: "messages", Topic: "usf/messages", QoS: 1},
		{Name: "alerts", Topic: "usf/logs/alerts", QoS: 1, Category: "alert"},
		{Name: "command", Topic: "usf/logs/command", QoS: 1, Category: "command"},
		{Name: "status", Topic: "usf/status", Category: "status"},
		{Name: "telemetry", Topic: "usf/telemetry", Category: "telemetry"},
	}
	cfg.Classifier.MaxPayloadBytes = 1024
	cfg.Terminal.MaxEntries = 5
	cfg.Terminal.PersistTimeout = time.Second
	cfg.Fanout.Timeout = time.Second
	cfg.Notices.TTL = time.Minute
	cfg.Preferences.Profile = "default"
	cfg.SMSGateway.Concurrency = 2

	return cfg
}
