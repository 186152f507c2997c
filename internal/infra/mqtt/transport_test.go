package mqtt

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"vplmon/config"
	"vplmon/internal/domain/entity"
	domainerrors "vplmon/internal/domain/errors"
	"vplmon/internal/domain/service"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	err  error
	done chan struct{}
}

func completed(err error) *fakeToken {
	t := &fakeToken{err: err, done: make(chan struct{})}
	close(t.done)

	return t
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	mu          sync.Mutex
	connectErrs []error
	connects    int
	subscribed  map[string]byte
	published   []published
	disconnects int
}

func (c *fakeClient) Connect() paho.Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connects++
	if len(c.connectErrs) > 0 {
		err := c.connectErrs[0]
		c.connectErrs = c.connectErrs[1:]

		return completed(err)
	}

	return completed(nil)
}

func (c *fakeClient) Disconnect(uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disconnects++
}

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload any) paho.Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.published = append(c.published, published{topic: topic, qos: qos, payload: payload.([]byte)})

	return completed(nil)
}

func (c *fakeClient) SubscribeMultiple(filters map[string]byte, _ paho.MessageHandler) paho.Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscribed = filters

	return completed(nil)
}

func (c *fakeClient) Connects() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.connects
}

type fakeMessage struct {
	topic     string
	payload   []byte
	id        uint16
	qos       byte
	duplicate bool
}

func (m fakeMessage) Duplicate() bool   { return m.duplicate }
func (m fakeMessage) Qos() byte         { return m.qos }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return m.id }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func testMQTTConfig() config.MQTTConfig {
	return config.MQTTConfig{
		BrokerURL:       "tcp://broker.example.com:1883",
		ClientID:        "vplmon-test",
		ConnectTimeout:  time.Second,
		EventBufferSize: 32,
		Reconnect: config.ReconnectConfig{
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     40 * time.Millisecond,
			Multiplier:      2,
		},
		Topics: []config.TopicConfig{
			{Name: "messages", Topic: "usf/messages", QoS: 1},
			{Name: "alerts", Topic: "usf/logs/alerts", QoS: 1, Category: "alert"},
		},
	}
}

func newTestTransport(cfg config.MQTTConfig, client *fakeClient) (*Transport, **paho.ClientOptions) {
	var captured *paho.ClientOptions
	tr := newTransport(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), func(opts *paho.ClientOptions) Client {
		captured = opts

		return client
	})

	return tr, &captured
}

func next(t *testing.T, tr *Transport) service.TransportEvent {
	t.Helper()

	select {
	case ev, ok := <-tr.Events():
		require.True(t, ok, "event stream closed")

		return ev
	case <-time.After(2 * time.Second):
		require.FailNow(t, "timed out waiting for transport event")
	}

	return service.TransportEvent{}
}

func TestTransport_RejectsInvalidBrokerURL(t *testing.T) {
	for _, raw := range []string{"", "broker.example.com", "http://broker.example.com", "tcp://"} {
		cfg := testMQTTConfig()
		cfg.BrokerURL = raw
		client := &fakeClient{}
		tr, _ := newTestTransport(cfg, client)

		err := tr.Connect(context.Background())

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidBrokerURL), raw)
		assert.Zero(t, client.Connects(), raw)
	}
}

func TestTransport_ConnectSubscribesAndDeliversInOrder(t *testing.T) {
	client := &fakeClient{}
	tr, opts := newTestTransport(testMQTTConfig(), client)
	defer tr.Close()

	require.NoError(t, tr.Connect(context.Background()))
	assert.Equal(t, entity.StateConnecting, next(t, tr).State.State)

	(*opts).OnConnect(nil)
	assert.Equal(t, entity.StateConnected, next(t, tr).State.State)
	subscribed := next(t, tr)
	assert.Equal(t, []string{"usf/logs/alerts", "usf/messages"}, subscribed.State.Topics)
	assert.Equal(t, map[string]byte{"usf/messages": 1, "usf/logs/alerts": 1}, client.subscribed)
	assert.Equal(t, entity.StateConnected, tr.State())

	handler := (*opts).DefaultPublishHandler
	handler(nil, fakeMessage{topic: "usf/messages", payload: []byte("one"), id: 1, qos: 1})
	handler(nil, fakeMessage{topic: "usf/messages", payload: []byte("two"), id: 2, qos: 1})

	assert.Equal(t, "one", string(next(t, tr).Message.Payload))
	assert.Equal(t, "two", string(next(t, tr).Message.Payload))
}

func TestTransport_DropsDuplicateRedelivery(t *testing.T) {
	client := &fakeClient{}
	tr, opts := newTestTransport(testMQTTConfig(), client)
	defer tr.Close()

	require.NoError(t, tr.Connect(context.Background()))
	(*opts).OnConnect(nil)
	next(t, tr)
	next(t, tr)
	next(t, tr)

	handler := (*opts).DefaultPublishHandler
	handler(nil, fakeMessage{topic: "usf/messages", payload: []byte("alert"), id: 7, qos: 1})
	handler(nil, fakeMessage{topic: "usf/messages", payload: []byte("alert"), id: 7, qos: 1, duplicate: true})
	handler(nil, fakeMessage{topic: "usf/messages", payload: []byte("after"), id: 8, qos: 1})

	assert.Equal(t, "alert", string(next(t, tr).Message.Payload))
	assert.Equal(t, "after", string(next(t, tr).Message.Payload))
}

func TestTransport_ReconnectDoesNotReplay(t *testing.T) {
	client := &fakeClient{}
	tr, opts := newTestTransport(testMQTTConfig(), client)
	defer tr.Close()

	require.NoError(t, tr.Connect(context.Background()))
	(*opts).OnConnect(nil)
	next(t, tr)
	next(t, tr)
	next(t, tr)

	handler := (*opts).DefaultPublishHandler
	handler(nil, fakeMessage{topic: "usf/messages", payload: []byte("before"), id: 3, qos: 1})
	assert.Equal(t, "before", string(next(t, tr).Message.Payload))

	(*opts).OnConnectionLost(nil, errors.New("EOF"))
	lost := next(t, tr)
	assert.Equal(t, entity.StateReconnecting, lost.State.State)
	assert.EqualError(t, lost.State.Err, "EOF")

	err := tr.Publish(context.Background(), "usf/messages", []byte("x"), 1)
	assert.True(t, errors.Is(err, domainerrors.ErrNotConnected))

	(*opts).OnConnect(nil)
	assert.Equal(t, entity.StateConnected, next(t, tr).State.State)
	assert.Len(t, next(t, tr).State.Topics, 2)

	handler(nil, fakeMessage{topic: "usf/messages", payload: []byte("after"), id: 4, qos: 1})
	assert.Equal(t, "after", string(next(t, tr).Message.Payload))
	assert.Empty(t, tr.Events())
}

func TestTransport_PublishWhenConnected(t *testing.T) {
	client := &fakeClient{}
	tr, opts := newTestTransport(testMQTTConfig(), client)
	defer tr.Close()

	err := tr.Publish(context.Background(), "usf/messages", []byte("x"), 1)
	assert.True(t, errors.Is(err, domainerrors.ErrNotConnected))

	require.NoError(t, tr.Connect(context.Background()))
	(*opts).OnConnect(nil)

	require.NoError(t, tr.Publish(context.Background(), "usf/messages", []byte(`{"type":"command"}`), 1))
	require.Len(t, client.published, 1)
	assert.Equal(t, published{topic: "usf/messages", qos: 1, payload: []byte(`{"type":"command"}`)}, client.published[0])
}

func TestTransport_FailedFirstAttemptRetriesInBackground(t *testing.T) {
	client := &fakeClient{connectErrs: []error{errors.New("connection refused"), errors.New("connection refused")}}
	tr, _ := newTestTransport(testMQTTConfig(), client)
	defer tr.Close()

	err := tr.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindTransport, domainerrors.KindOf(err))

	assert.Eventually(t, func() bool { return client.Connects() >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestTransport_CloseIsIdempotentAndClosesStream(t *testing.T) {
	client := &fakeClient{}
	tr, _ := newTestTransport(testMQTTConfig(), client)

	require.NoError(t, tr.Connect(context.Background()))
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	assert.Equal(t, entity.StateClosed, tr.State())
	assert.Equal(t, 1, client.disconnects)

	for range tr.Events() {
	}

	err := tr.Connect(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrTransportClosed))
}

func TestTransport_NextDelayIsBounded(t *testing.T) {
	tr, _ := newTestTransport(testMQTTConfig(), &fakeClient{})

	assert.Equal(t, 20*time.Millisecond, tr.nextDelay(10*time.Millisecond))
	assert.Equal(t, 40*time.Millisecond, tr.nextDelay(20*time.Millisecond))
	assert.Equal(t, 40*time.Millisecond, tr.nextDelay(40*time.Millisecond))
}
