// Package service defines interfaces for the external systems the monitor talks to.
package service

import (
	"context"

	"vplmon/internal/domain/entity"
)

// TransportEvent is one item of the transport's ordered event stream.
// Exactly one of Message and State is set.
type TransportEvent struct {
	Message *entity.Message
	State   *StateChange
}

// StateChange reports a connection lifecycle transition. Topics is set once the
// subscriptions of a (re)connected session are confirmed.
type StateChange struct {
	State  entity.ConnectionState
	Topics []string
	Err    error
}

// Transport is a publish/subscribe session with the broker.
type Transport interface {
	// Connect starts the session. It returns configuration errors and the result of the
	// first connection attempt; later attempts continue in the background until Close.
	Connect(ctx context.Context) error

	// Events delivers inbound messages and state changes in arrival order.
	// The channel is closed after Close.
	Events() <-chan TransportEvent

	// Publish sends payload. It fails fast with ErrNotConnected while not connected.
	Publish(ctx context.Context, topic string, payload []byte, qos byte) error

	State() entity.ConnectionState

	Close() error
}
