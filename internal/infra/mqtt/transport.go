// Package mqtt adapts the Eclipse Paho client to the service.Transport interface.
package mqtt

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"sync"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"
	"vplmon/internal/errors"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/fx"
)

const (
	disconnectQuiesceMs = 250
	defaultBufferSize   = 256
	defaultWaitTimeout  = 10 * time.Second
)

var supportedSchemes = []string{"tcp", "mqtt", "ssl", "tls", "mqtts", "ws", "wss"}

// Client is the part of paho.Client the transport uses.
type Client interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload any) paho.Token
	SubscribeMultiple(filters map[string]byte, callback paho.MessageHandler) paho.Token
}

// ClientFactory builds a client from fully populated options.
type ClientFactory func(opts *paho.ClientOptions) Client

func newPahoClient(opts *paho.ClientOptions) Client {
	return paho.NewClient(opts)
}

// TransportParams holds dependencies for the MQTT transport, injected by Fx.
type TransportParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Transport is a single broker session. Inbound messages and state changes are delivered
// on one ordered channel; duplicate redeliveries of QoS 1/2 messages are dropped.
type Transport struct {
	cfg     config.MQTTConfig
	logger  *slog.Logger
	factory ClientFactory

	events chan service.TransportEvent
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup

	mu     sync.RWMutex
	client Client
	state  entity.ConnectionState
	closed bool

	seenMu sync.Mutex
	seen   map[uint16]struct{}
}

// NewTransport creates the broker session from the mqtt configuration.
func NewTransport(params TransportParams) service.Transport {
	return newTransport(params.Config.MQTT, params.Logger, newPahoClient)
}

func newTransport(cfg config.MQTTConfig, logger *slog.Logger, factory ClientFactory) *Transport {
	size := cfg.EventBufferSize
	if size <= 0 {
		size = defaultBufferSize
	}

	return &Transport{
		cfg:     cfg,
		logger:  logger,
		factory: factory,
		events:  make(chan service.TransportEvent, size),
		done:    make(chan struct{}),
		state:   entity.StateDisconnected,
		seen:    make(map[uint16]struct{}),
	}
}

// Connect validates the broker URL and makes the first connection attempt. A failed
// attempt is returned and retried in the background with bounded exponential backoff.
func (t *Transport) Connect(ctx context.Context) error {
	broker, err := parseBrokerURL(t.cfg.BrokerURL)
	if err != nil {
		return err
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()

		return domainerrors.ErrTransportClosed
	}
	if t.client != nil {
		t.mu.Unlock()

		return nil
	}
	t.client = t.factory(t.options(broker))
	t.mu.Unlock()

	t.setState(entity.StateConnecting, nil, true)

	if err := t.attempt(ctx); err != nil {
		t.logger.Warn("Initial MQTT connection failed, retrying in background",
			slog.String("broker", broker),
			slog.Any("error", err),
		)
		t.setState(entity.StateDisconnected, err, true)

		t.wg.Add(1)
		go t.retry()

		return domainerrors.NewTransportError("connect", err)
	}

	return nil
}

func (t *Transport) options(broker string) *paho.ClientOptions {
	opts := paho.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(t.cfg.ClientID)
	opts.SetUsername(t.cfg.Username)
	opts.SetPassword(t.cfg.Password)
	opts.SetCleanSession(true)
	opts.SetOrderMatters(true)
	opts.SetAutoReconnect(true)
	if t.cfg.KeepAlive > 0 {
		opts.SetKeepAlive(t.cfg.KeepAlive)
	}
	if t.cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(t.cfg.ConnectTimeout)
	}
	if t.cfg.Reconnect.MaxInterval > 0 {
		opts.SetMaxReconnectInterval(t.cfg.Reconnect.MaxInterval)
	}

	opts.SetOnConnectHandler(t.onConnect)
	opts.SetConnectionLostHandler(t.onConnectionLost)
	opts.SetReconnectingHandler(t.onReconnecting)
	opts.SetDefaultPublishHandler(t.onMessage)

	return opts
}

func (t *Transport) attempt(ctx context.Context) error {
	t.mu.RLock()
	client := t.client
	t.mu.RUnlock()

	return t.wait(ctx, client.Connect(), t.cfg.ConnectTimeout)
}

func (t *Transport) retry() {
	defer t.wg.Done()

	delay := t.cfg.Reconnect.InitialInterval
	if delay <= 0 {
		delay = time.Second
	}

	for {
		timer := time.NewTimer(delay)
		select {
		case <-t.done:
			timer.Stop()

			return
		case <-timer.C:
		}

		t.setState(entity.StateReconnecting, nil, false)

		err := t.attempt(context.Background())
		if err == nil {
			return
		}

		t.logger.Warn("MQTT connection attempt failed", slog.Any("error", err), slog.Duration("next_in", t.nextDelay(delay)))
		t.setState(entity.StateDisconnected, err, true)
		delay = t.nextDelay(delay)
	}
}

func (t *Transport) nextDelay(current time.Duration) time.Duration {
	multiplier := t.cfg.Reconnect.Multiplier
	if multiplier < 1 {
		multiplier = 2
	}

	next := time.Duration(float64(current) * multiplier)
	if limit := t.cfg.Reconnect.MaxInterval; limit > 0 && next > limit {
		next = limit
	}

	return next
}

func (t *Transport) onConnect(_ paho.Client) {
	t.seenMu.Lock()
	clear(t.seen)
	t.seenMu.Unlock()

	t.logger.Info("Connected to MQTT broker", slog.String("broker", t.cfg.BrokerURL))
	t.setState(entity.StateConnected, nil, true)

	filters := make(map[string]byte, len(t.cfg.Topics))
	topics := make([]string, 0, len(t.cfg.Topics))
	for _, topic := range t.cfg.Topics {
		filters[topic.Topic] = topic.QoS
		topics = append(topics, topic.Topic)
	}
	if len(filters) == 0 {
		return
	}
	slices.Sort(topics)

	t.mu.RLock()
	client := t.client
	t.mu.RUnlock()

	if err := t.wait(context.Background(), client.SubscribeMultiple(filters, t.onMessage), t.cfg.ConnectTimeout); err != nil {
		err = domainerrors.NewTransportError("subscribe", err)
		t.logger.Error("Failed to subscribe", slog.Any("topics", topics), slog.Any("error", err))
		t.emit(service.TransportEvent{State: &service.StateChange{State: entity.StateConnected, Err: err}})

		return
	}

	t.logger.Info("Subscribed to topics", slog.Any("topics", topics))
	t.emit(service.TransportEvent{State: &service.StateChange{State: entity.StateConnected, Topics: topics}})
}

func (t *Transport) onConnectionLost(_ paho.Client, err error) {
	t.logger.Warn("MQTT connection lost", slog.Any("error", err))
	t.setState(entity.StateReconnecting, err, true)
}

func (t *Transport) onReconnecting(_ paho.Client, _ *paho.ClientOptions) {
	t.setState(entity.StateReconnecting, nil, false)
}

func (t *Transport) onMessage(_ paho.Client, msg paho.Message) {
	if msg.Qos() > 0 && t.isRedelivery(msg) {
		t.logger.Debug("Dropping duplicate delivery",
			slog.String("topic", msg.Topic()),
			slog.Int("message_id", int(msg.MessageID())),
		)

		return
	}

	t.emit(service.TransportEvent{Message: &entity.Message{
		Topic:      msg.Topic(),
		Payload:    slices.Clone(msg.Payload()),
		ReceivedAt: time.Now(),
		MessageID:  msg.MessageID(),
		QoS:        msg.Qos(),
		Duplicate:  msg.Duplicate(),
	}})
}

// isRedelivery records the packet ID and reports whether a DUP-flagged copy was already seen.
func (t *Transport) isRedelivery(msg paho.Message) bool {
	t.seenMu.Lock()
	defer t.seenMu.Unlock()

	id := msg.MessageID()
	if _, ok := t.seen[id]; ok && msg.Duplicate() {
		return true
	}
	t.seen[id] = struct{}{}

	return false
}

func (t *Transport) Events() <-chan service.TransportEvent {
	return t.events
}

func (t *Transport) Publish(ctx context.Context, topic string, payload []byte, qos byte) error {
	t.mu.RLock()
	client, state := t.client, t.state
	t.mu.RUnlock()

	if client == nil || state != entity.StateConnected {
		return domainerrors.ErrNotConnected
	}

	if err := t.wait(ctx, client.Publish(topic, qos, false, payload), t.cfg.ConnectTimeout); err != nil {
		return domainerrors.NewTransportError("publish", err)
	}

	return nil
}

func (t *Transport) State() entity.ConnectionState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.state
}

// Close disconnects, stops background retries and closes the event stream. It is idempotent.
func (t *Transport) Close() error {
	t.once.Do(func() {
		t.setState(entity.StateClosed, nil, true)
		close(t.done)

		t.mu.RLock()
		client := t.client
		t.mu.RUnlock()
		if client != nil {
			client.Disconnect(disconnectQuiesceMs)
		}

		t.wg.Wait()

		t.mu.Lock()
		t.closed = true
		close(t.events)
		t.mu.Unlock()

		t.logger.Info("MQTT transport closed")
	})

	return nil
}

func (t *Transport) setState(state entity.ConnectionState, err error, notify bool) {
	t.mu.Lock()
	if t.closed || (t.state == entity.StateClosed && state != entity.StateClosed) {
		t.mu.Unlock()

		return
	}
	t.state = state
	t.mu.Unlock()

	if notify {
		t.emit(service.TransportEvent{State: &service.StateChange{State: state, Err: err}})
	}
}

// emit blocks while the buffer is full unless the transport is closing.
func (t *Transport) emit(ev service.TransportEvent) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return
	}

	if ev.State != nil && ev.State.State == entity.StateClosed {
		select {
		case t.events <- ev:
		default:
		}

		return
	}

	select {
	case t.events <- ev:
	case <-t.done:
	}
}

func (t *Transport) wait(ctx context.Context, token paho.Token, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for broker")
	case <-timer.C:
		return errors.New("timed out waiting for broker")
	case <-t.done:
		return domainerrors.ErrTransportClosed
	}
}

func parseBrokerURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || !slices.Contains(supportedSchemes, u.Scheme) {
		return "", domainerrors.ErrInvalidBrokerURL.WithDetails(raw)
	}

	return u.String(), nil
}
