package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"
	"vplmon/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const commandQoS byte = 1

// MonitorServiceParams holds dependencies for the monitoring session, injected by Fx.
type MonitorServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Transport  service.Transport
	Classifier usecase.Classifier
	Terminal   usecase.TerminalUsecase
	Fanout     usecase.AlertFanoutUsecase
	Events     service.EventPublisher `optional:"true"`
}

type monitorService struct {
	commandTopic string
	transport    service.Transport
	classifier   usecase.Classifier
	terminal     usecase.TerminalUsecase
	fanout       usecase.AlertFanoutUsecase
	events       service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time

	mu     sync.RWMutex
	status entity.SessionStatus
}

// NewMonitorService creates the session that drives classification, logging and alerting.
func NewMonitorService(params MonitorServiceParams) usecase.MonitorUsecase {
	return &monitorService{
		commandTopic: params.Config.MQTT.CommandTopic,
		transport:    params.Transport,
		classifier:   params.Classifier,
		terminal:     params.Terminal,
		fanout:       params.Fanout,
		events:       params.Events,
		logger:       params.Logger,
		now:          time.Now,
		status: entity.SessionStatus{
			Connection: entity.StateDisconnected,
			Status:     map[string]string{},
			Telemetry:  map[string]string{},
		},
	}
}

func (s *monitorService) Run(ctx context.Context) error {
	events := s.transport.Events()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				s.logger.Info("Transport event stream closed")

				return nil
			}
			s.handle(ctx, ev)
		}
	}
}

func (s *monitorService) handle(ctx context.Context, ev service.TransportEvent) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered while handling transport event", slog.Any("error", errors.FromPanic(r)))
		}
	}()

	switch {
	case ev.State != nil:
		s.onStateChange(ev.State)
	case ev.Message != nil:
		s.onMessage(ctx, ev.Message)
	}
}

func (s *monitorService) onStateChange(change *service.StateChange) {
	s.mu.Lock()
	s.status.Connection = change.State
	s.mu.Unlock()

	switch change.State {
	case entity.StateConnected:
		if change.Err != nil {
			s.terminal.Append(entity.CategoryGeneral, "Subscription failed: "+change.Err.Error())

			return
		}
		if len(change.Topics) == 0 {
			s.terminal.Append(entity.CategoryGeneral, "Connected to MQTT broker")

			return
		}
		for _, topic := range change.Topics {
			s.terminal.Append(entity.CategoryGeneral, "Subscribed to "+topic)
		}
	case entity.StateReconnecting:
		if change.Err != nil {
			s.terminal.Append(entity.CategoryGeneral, "Connection lost: "+change.Err.Error())
		} else {
			s.terminal.Append(entity.CategoryGeneral, "Reconnecting to MQTT broker")
		}
	case entity.StateConnecting:
		s.terminal.Append(entity.CategoryGeneral, "Connecting to MQTT broker")
	case entity.StateDisconnected:
		if change.Err != nil {
			s.terminal.Append(entity.CategoryGeneral, "Connection failed: "+change.Err.Error())
		}
	case entity.StateClosed:
		s.terminal.Append(entity.CategoryGeneral, "Disconnected from MQTT broker")
	}
}

func (s *monitorService) onMessage(ctx context.Context, msg *entity.Message) {
	classified := s.classifier.Classify(*msg)

	if classified.Category == entity.CategoryUnknown {
		s.step("debug trace", func() {
			s.terminal.Append(entity.CategoryGeneral, fmt.Sprintf("[debug] Unclassified message on %s: %s", msg.Topic, classified.DisplayText))
		})

		return
	}

	s.step("append log", func() {
		entry := s.terminal.Append(classified.Category, classified.DisplayText)
		if severity, ok := classified.Category.Severity(); ok {
			s.terminal.Append(entity.CategoryGeneral, fmt.Sprintf("[%s ALARM] %s", severity.Upper(), classified.DisplayText))
		}
		s.terminal.PersistRemote(entry)
	})

	s.step("update status", func() {
		s.updateStatus(classified)
	})

	if !classified.Category.IsAlert() {
		return
	}

	s.step("publish alert event", func() {
		s.publishAlertEvent(ctx, classified)
	})

	s.step("fan out alert", func() {
		s.fanout.OnAlert(ctx, classified)
	})
}

// step runs one consumer so a failure in it never stops the ones after it.
func (s *monitorService) step(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Pipeline step failed", slog.String("step", name), slog.Any("error", errors.FromPanic(r)))
		}
	}()

	fn()
}

func (s *monitorService) updateStatus(msg *entity.ClassifiedMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.LastUpdate = s.now()

	switch msg.Category {
	case entity.CategoryStatus:
		maps.Copy(s.status.Status, msg.Structured())
	case entity.CategoryTelemetry:
		maps.Copy(s.status.Telemetry, msg.Structured())
	}
}

func (s *monitorService) publishAlertEvent(ctx context.Context, msg *entity.ClassifiedMessage) {
	if s.events == nil {
		return
	}

	severity, _ := msg.Category.Severity()
	event := &service.AlertEvent{
		EventID:   uuid.New().String(),
		Severity:  string(severity),
		Message:   msg.DisplayText,
		Fields:    msg.Structured(),
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
	if msg.Source != nil {
		event.Topic = msg.Source.Topic
	}

	if err := s.events.PublishAlertEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish alert event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

type commandPayload struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (s *monitorService) SendCommand(ctx context.Context, command string) error {
	command = strings.ToUpper(strings.TrimSpace(command))
	if command == "" {
		return domainerrors.ErrEmptyCommand
	}

	s.terminal.Append(entity.CategoryCommand, "> "+command)

	payload, err := json.Marshal(commandPayload{
		Type:      "command",
		Message:   "COMMAND:" + command,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errors.Wrap(err, "encode command")
	}

	if err := s.transport.Publish(ctx, s.commandTopic, payload, commandQoS); err != nil {
		s.terminal.Append(entity.CategoryCommand, "Failed to send command: "+err.Error())
		s.logger.Warn("Failed to publish command", slog.String("command", command), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrNotConnected) {
			return err
		}

		return domainerrors.NewTransportError("publish command", err)
	}

	return nil
}

func (s *monitorService) Status() entity.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := s.status
	status.Status = maps.Clone(s.status.Status)
	status.Telemetry = maps.Clone(s.status.Telemetry)

	return status
}
