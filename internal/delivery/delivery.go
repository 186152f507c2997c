// Package delivery holds the inbound surfaces of the monitor.
package delivery

import "context"

// Delivery is a server started by main and stopped through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
