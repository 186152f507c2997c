package entity

import "time"

// ConnectionState is the transport lifecycle state.
type ConnectionState string

const (
	StateDisconnected ConnectionState = "disconnected"
	StateConnecting   ConnectionState = "connecting"
	StateConnected    ConnectionState = "connected"
	StateReconnecting ConnectionState = "reconnecting"
	StateClosed       ConnectionState = "closed"
)

// SessionStatus is the dashboard status indicator snapshot.
type SessionStatus struct {
	Connection ConnectionState   `json:"connection"`
	LastUpdate time.Time         `json:"last_update"`
	Status     map[string]string `json:"status"`
	Telemetry  map[string]string `json:"telemetry"`
}
